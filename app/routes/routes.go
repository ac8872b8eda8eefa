package routes

import (
	"net/http"

	"yatube/app/controllers"
	"yatube/app/middleware"
	"yatube/app/repositories"
	"yatube/app/services"

	"github.com/alexedwards/scs/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services, controllers and middleware into
// the application handler. basePath is the directory holding app/views.
func SetupRoutes(db *badger.DB, session *scs.SessionManager, basePath string) http.Handler {
	// Repositories and services.
	userRepo := repositories.NewBadgerUserRepository(db)
	groupRepo := repositories.NewBadgerGroupRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)

	userService := services.NewUserService(userRepo, postRepo)
	groupService := services.NewGroupService(groupRepo, postRepo)
	postService := services.NewPostService(postRepo, userRepo, groupRepo)

	auth := &middleware.Auth{Session: session, Users: userService}

	postController := controllers.NewPostController(postService, groupService, basePath)
	authController := controllers.NewAuthController(userService, session, basePath)

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(auth.CurrentUser)

	// Public listings.
	router.HandleFunc("/", postController.Index).Methods(http.MethodGet)
	router.HandleFunc("/group/{slug}", postController.GroupPosts).Methods(http.MethodGet)
	router.HandleFunc("/profile/{username}", postController.Profile).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}", postController.Show).Methods(http.MethodGet)

	// Authenticated post mutation.
	authed := router.NewRoute().Subrouter()
	authed.Use(auth.RequireAuth)
	authed.HandleFunc("/create", postController.New).Methods(http.MethodGet)
	authed.HandleFunc("/create", postController.Create).Methods(http.MethodPost)
	authed.HandleFunc("/posts/{id:[0-9]+}/edit", postController.EditForm).Methods(http.MethodGet)
	authed.HandleFunc("/posts/{id:[0-9]+}/edit", postController.Edit).Methods(http.MethodPost)

	// Accounts.
	router.HandleFunc("/auth/signup", authController.SignupForm).Methods(http.MethodGet)
	router.HandleFunc("/auth/signup", authController.Signup).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", authController.LoginForm).Methods(http.MethodGet)
	router.HandleFunc("/auth/login", authController.Login).Methods(http.MethodPost)
	router.HandleFunc("/auth/logout", authController.Logout).Methods(http.MethodPost)

	return session.LoadAndSave(router)
}
