package interceptor

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"toala-backend/internal/config"
	"toala-backend/internal/domain"
	"toala-backend/internal/logger"
)

type userKey struct{}

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type AuthInterceptor struct {
	auth Authenticator
}

func NewAuthInterceptor(auth Authenticator) *AuthInterceptor {
	return &AuthInterceptor{auth: auth}
}

// Middleware authenticates requests to routes whose security level is not
// public. It must be installed with Router.Use so the matched route name is
// available.
func (i *AuthInterceptor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if level := config.GetSecurityLevel(routeName(r)); level == config.SecurityPublic {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := extractToken(r)
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := i.auth.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				writeDetail(w, http.StatusUnauthorized, err.Error())
				return
			}
			logger.ErrorContext(r.Context(), "Authentication lookup failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		ctx = logger.WithUserID(ctx, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the user stored by the auth middleware.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(*domain.User)
	return u, ok && u != nil
}

// ContextWithUser is used by tests that call handlers without the middleware.
func ContextWithUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		token := strings.TrimSpace(header[7:])
		return token, token != ""
	}
	return "", false
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		return route.GetName()
	}
	return ""
}
