package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/cardmessage"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrWrongOldPassword):
		ValidationError(w, map[string]string{"oldPassword": err.Error()})
	case errors.Is(err, auth.ErrPasswordOwnerOnly):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrSupervisorNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrUserEmailExists),
		errors.Is(err, user.ErrUserHasSubordinates),
		errors.Is(err, user.ErrRootAdminImmutable):
		Conflict(w, err.Error())
	case errors.Is(err, user.ErrIneligibleSupervisor),
		errors.Is(err, user.ErrSelfSupervision):
		ValidationError(w, map[string]string{"supervisorId": err.Error()})
	case errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrNonMemberAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, project.ErrProjectNameExists),
		errors.Is(err, project.ErrProjectHasUsers):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, attendance.ErrReporterNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, attendance.ErrReportForOthers),
		errors.Is(err, attendance.ErrAttendanceForbidden):
		Forbidden(w, err.Error())

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound),
		errors.Is(err, report.ErrReportTargetNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, report.ErrReportForbidden):
		Forbidden(w, err.Error())

	// Card message domain errors
	case errors.Is(err, cardmessage.ErrInvalidCardPayload):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, cardmessage.ErrSenderNotAuthorized):
		Forbidden(w, err.Error())

	// Summary domain errors
	case errors.Is(err, summary.ErrNoReportsToSend):
		NotFound(w, err.Error())
	case errors.Is(err, summary.ErrSummaryFailed):
		BadGateway(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
