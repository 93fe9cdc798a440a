package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type currentUserKey struct{}

// AuthRequired rejects requests without a valid, unrevoked access token and
// stores the decoded user.CurrentUser in the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			current, err := jwt.CurrentUserFromClaims(claims)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey{}, current)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// WithCurrentUser stores u the way AuthRequired does.
func WithCurrentUser(ctx context.Context, u user.CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserKey{}, u)
}

// CurrentUserFromContext returns the actor set by AuthRequired.
func CurrentUserFromContext(ctx context.Context) (user.CurrentUser, error) {
	u, ok := ctx.Value(currentUserKey{}).(user.CurrentUser)
	if !ok {
		return user.CurrentUser{}, auth.ErrInvalidToken
	}
	return u, nil
}
