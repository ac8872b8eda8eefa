package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"yatube/app/middleware"
	"yatube/app/models"
	"yatube/app/services"

	"github.com/alexedwards/scs/v2"
)

// AuthController handles signup, login and logout
type AuthController struct {
	userService *services.UserService
	session     *scs.SessionManager
	templates   map[string]*template.Template
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService, session *scs.SessionManager, basePath string) *AuthController {
	return &AuthController{
		userService: userService,
		session:     session,
		templates: loadTemplates(basePath,
			"auth/signup",
			"auth/login",
		),
	}
}

type authFormData struct {
	CurrentUser *models.User
	Username    string
	FullName    string
	Error       string
	Next        string
}

// SignupForm displays the registration form
func (ac *AuthController) SignupForm(w http.ResponseWriter, r *http.Request) {
	render(w, ac.templates, "auth/signup", authFormData{CurrentUser: currentUser(r)})
}

// Signup handles the registration submission and signs the new account in
func (ac *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	fullName := r.FormValue("full_name")
	password := r.FormValue("password")

	user, err := ac.userService.Register(username, fullName, password)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			render(w, ac.templates, "auth/signup", authFormData{
				Username: username,
				FullName: fullName,
				Error:    verr.Message,
			})
			return
		}
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	ac.signIn(w, r, user, "/")
}

// LoginForm displays the login form
func (ac *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, ac.templates, "auth/login", authFormData{
		CurrentUser: currentUser(r),
		Next:        r.URL.Query().Get("next"),
	})
}

// Login handles the login submission
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	username := r.FormValue("username")
	password := r.FormValue("password")
	next := r.FormValue("next")

	user, err := ac.userService.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			render(w, ac.templates, "auth/login", authFormData{
				Username: username,
				Error:    err.Error(),
				Next:     next,
			})
			return
		}
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	ac.signIn(w, r, user, next)
}

// Logout clears the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.session.Remove(r.Context(), middleware.SessionUserKey)
	if err := ac.session.RenewToken(r.Context()); err != nil {
		http.Error(w, "Failed to sign out", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// signIn rotates the session token and stores the account ID
func (ac *AuthController) signIn(w http.ResponseWriter, r *http.Request, user *models.User, next string) {
	if err := ac.session.RenewToken(r.Context()); err != nil {
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}
	ac.session.Put(r.Context(), middleware.SessionUserKey, user.ID)

	// Only follow same-site redirect targets.
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}
