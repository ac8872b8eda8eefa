package main

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"yatube/app/repositories"
	"yatube/app/routes"
	"yatube/app/services"
	"yatube/config"

	"github.com/alexedwards/scs/v2"
	"github.com/dgraph-io/badger/v4"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("yatube version %s\n", cliVersion)
	case "serve":
		serve()
	case "adduser":
		addUser(os.Args[2:])
	case "addgroup":
		addGroup(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: yatube <command> [options]
Commands:
  help                                Display this help message.
  version                             Show version information.
  serve                               Run the blog server.
  adduser <username> [full name]      Create an account (prompts for a password).
  addgroup <title> <slug> [descr]     Create a group.
`
	fmt.Println(helpText)
}

func openDB(path string) *badger.DB {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	return db
}

// serve runs the HTTP server.
func serve() {
	cfg := config.Load()
	db := openDB(cfg.DBPath)
	defer db.Close()

	session := scs.New()
	session.Lifetime = cfg.SessionLifetime
	session.Cookie.HttpOnly = true

	handler := routes.SetupRoutes(db, session, "")

	log.Printf("Starting Yatube on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// addUser creates an account from the command line.
func addUser(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: username is required for adduser command")
		os.Exit(1)
	}
	username := args[0]
	fullName := strings.Join(args[1:], " ")

	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimSpace(password)

	cfg := config.Load()
	db := openDB(cfg.DBPath)
	defer db.Close()

	userService := services.NewUserService(
		repositories.NewBadgerUserRepository(db),
		repositories.NewBadgerPostRepository(db),
	)
	user, err := userService.Register(username, fullName, password)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	fmt.Printf("Created user %s (id %d)\n", user.Username, user.ID)
}

// addGroup creates a group from the command line. Groups are created by
// administrative action only, never through the web flows.
func addGroup(args []string) {
	if len(args) < 2 {
		fmt.Println("Error: title and slug are required for addgroup command")
		os.Exit(1)
	}
	title, slug := args[0], args[1]
	description := strings.Join(args[2:], " ")

	cfg := config.Load()
	db := openDB(cfg.DBPath)
	defer db.Close()

	groupService := services.NewGroupService(
		repositories.NewBadgerGroupRepository(db),
		repositories.NewBadgerPostRepository(db),
	)
	group, err := groupService.CreateGroup(title, slug, description)
	if err != nil {
		log.Fatalf("Failed to create group: %v", err)
	}
	fmt.Printf("Created group %q (/group/%s)\n", group.Title, group.Slug)
}
