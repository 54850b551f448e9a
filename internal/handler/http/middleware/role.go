package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/auth"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/user"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
)

// RequirePermission checks the caller's stored permissions. The user is
// reloaded on every request so deactivation and permission edits apply
// without waiting for the token to expire.
func RequirePermission(users user.UserRepository, permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			u, err := users.GetByUsername(r.Context(), claims.Username)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					response.HandleError(w, auth.ErrInvalidToken)
					return
				}
				slog.Error("Failed to load user for permission check", "username", claims.Username, "error", err)
				response.HandleError(w, err)
				return
			}

			if !u.Active {
				response.HandleError(w, auth.ErrAccountInactive)
				return
			}

			if !u.Can(permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, u.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
