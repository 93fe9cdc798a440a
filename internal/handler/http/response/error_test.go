package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/cardmessage"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validator.ValidationErrors{{Field: "name", Message: "name is required"}}, http.StatusUnprocessableEntity},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrTokenRevoked, http.StatusUnauthorized},
		{auth.ErrWrongOldPassword, http.StatusUnprocessableEntity},
		{user.ErrUserNotFound, http.StatusNotFound},
		{user.ErrUserEmailExists, http.StatusConflict},
		{user.ErrRootAdminImmutable, http.StatusConflict},
		{user.ErrManagerAccessRequired, http.StatusForbidden},
		{project.ErrProjectHasUsers, http.StatusConflict},
		{attendance.ErrReportForOthers, http.StatusForbidden},
		{fmt.Errorf("failed to get attendance: %w", attendance.ErrAttendanceNotFound), http.StatusNotFound},
		{report.ErrReportForbidden, http.StatusForbidden},
		{cardmessage.ErrInvalidCardPayload, http.StatusBadRequest},
		{cardmessage.ErrSenderNotAuthorized, http.StatusForbidden},
		{fmt.Errorf("%w: timeout", summary.ErrSummaryFailed), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHandleErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: password authentication failed"))
	assert.NotContains(t, rec.Body.String(), "password authentication")
}
