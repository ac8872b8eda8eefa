package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"yatube/app/models"
	"yatube/app/services"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
)

// SessionUserKey is the session key holding the signed-in account's ID.
const SessionUserKey = "userID"

type contextKey string

const userContextKey contextKey = "currentUser"

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()[:8]
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s took %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Auth resolves the session's account and gates authenticated routes.
type Auth struct {
	Session *scs.SessionManager
	Users   *services.UserService
}

// CurrentUser loads the signed-in account, if any, into the request context.
// A stale session pointing at a deleted account is treated as signed out.
func (a *Auth) CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := a.Session.GetInt(r.Context(), SessionUserKey)
		if id == 0 {
			next.ServeHTTP(w, r)
			return
		}
		user, err := a.Users.GetByID(id)
		if err != nil {
			a.Session.Remove(r.Context(), SessionUserKey)
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth redirects unauthenticated requests to the login page,
// preserving the requested URL in the "next" query parameter.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			http.Redirect(w, r, "/auth/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom extracts the signed-in account from a request context.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// WithUser returns a context carrying the given account. Exported for tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
