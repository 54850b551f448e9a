package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/auth"
	"github.com/shiftsync/shiftsync-backend-go/internal/handler/http/response"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/jwt"
)

type contextKey string

const claimsKey contextKey = "claims"

// AuthRequired runs after jwtauth.Verifier. It rejects missing, revoked and
// non-access tokens and stores the caller's claims on the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			raw, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			claims, err := jwt.ClaimsFromMap(raw)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ClaimsFromContext returns the claims stored by AuthRequired.
func ClaimsFromContext(ctx context.Context) (jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(jwt.Claims)
	return claims, ok
}

// Actor is the username recorded on audit fields, or "" outside an authenticated request.
func Actor(ctx context.Context) string {
	claims, _ := ClaimsFromContext(ctx)
	return claims.Username
}
