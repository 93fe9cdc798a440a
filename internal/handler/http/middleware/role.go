package middleware

import (
	"net/http"
	"slices"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
)

// RequireRoles allows only the given roles through.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, err := CurrentUserFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !slices.Contains(roles, current.Role) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager requires manager or rootadmin role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, err := CurrentUserFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !current.CanManageUsers() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireNonMember blocks the member role.
func RequireNonMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, err := CurrentUserFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if current.IsMember() {
			response.HandleError(w, user.ErrNonMemberAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
