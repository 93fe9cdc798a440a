package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
)

// Locale resolves Accept-Language against the loaded catalogs.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := i18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Language", locale)
		next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), locale)))
	})
}
