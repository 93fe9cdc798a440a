package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// idParam reads a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.ValidationErrors{{Field: name, Message: name + " must be a positive integer"}}
	}
	return id, nil
}

// dayQuery reads ?date=YYYY-MM-DD, defaulting to today.
func dayQuery(r *http.Request) (time.Time, error) {
	day, err := dayfilter.ParseDay(r.URL.Query().Get("date"))
	if err != nil {
		return time.Time{}, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	return day, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
