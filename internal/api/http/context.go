package http

import (
	"net/http"

	"toala-backend/internal/api/http/interceptor"
	"toala-backend/internal/domain"
)

// currentUser returns the caller resolved by the auth interceptor.
func currentUser(r *http.Request) (*domain.User, error) {
	u, ok := interceptor.UserFromContext(r.Context())
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return u, nil
}
