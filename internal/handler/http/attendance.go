package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListForDay(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.List(r.Context())
	if err != nil {
		slog.Error("List attendances error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListForDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListForDay(w http.ResponseWriter, r *http.Request) {
	day, err := dayQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListForDay(r.Context(), day)
	if err != nil {
		slog.Error("List day attendances error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.CurrentUserFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CreateAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.Create(r.Context(), current, req)
	if err != nil {
		slog.Error("Create attendance error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, i18n.T(r.Context(), "common.created", resourceData("Attendance")), created)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.CurrentUserFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.attendanceService.Update(r.Context(), current, id, req)
	if err != nil {
		slog.Error("Update attendance error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "common.updated", resourceData("Attendance")), updated)
}

// Report implements AttendanceHandler.
func (h *attendanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	day, err := dayQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.attendanceService.Report(r.Context(), day)
	if err != nil {
		slog.Error("Attendance report error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}
