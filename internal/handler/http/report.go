package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
)

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListWeekAgo(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Teams(w http.ResponseWriter, r *http.Request)
	Summarize(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService  report.ReportService
	summaryService summary.SummaryService
}

func NewReportHandler(reportService report.ReportService, summaryService summary.SummaryService) ReportHandler {
	return &reportHandlerImpl{
		reportService:  reportService,
		summaryService: summaryService,
	}
}

func (h *reportHandlerImpl) actor(r *http.Request) (report.Actor, error) {
	current, err := middleware.CurrentUserFromContext(r.Context())
	if err != nil {
		return report.Actor{}, err
	}
	return report.Actor{ID: current.ID, IsMember: current.IsMember()}, nil
}

// List implements ReportHandler.
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		slog.Error("List reports error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// Get implements ReportHandler.
func (h *reportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rep, err := h.reportService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

// ListWeekAgo implements ReportHandler.
func (h *reportHandlerImpl) ListWeekAgo(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	reports, err := h.reportService.ListWeekAgo(r.Context(), userID)
	if err != nil {
		slog.Error("List week reports error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, reports)
}

// Create implements ReportHandler.
func (h *reportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req report.CreateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.reportService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create report error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, i18n.T(r.Context(), "common.created", resourceData("Report")), created)
}

// Update implements ReportHandler.
func (h *reportHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req report.UpdateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.reportService.Update(r.Context(), actor, id, req)
	if err != nil {
		slog.Error("Update report error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "common.updated", resourceData("Report")), updated)
}

// Teams implements ReportHandler.
func (h *reportHandlerImpl) Teams(w http.ResponseWriter, r *http.Request) {
	day, err := dayQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	teams, err := h.reportService.Teams(r.Context(), day)
	if err != nil {
		slog.Error("Team reports error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, teams)
}

// Summarize implements ReportHandler.
func (h *reportHandlerImpl) Summarize(w http.ResponseWriter, r *http.Request) {
	userID, err := idParam(r, "userID")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.summaryService.SummarizeWeek(r.Context(), userID)
	if err != nil {
		slog.Error("Summarize reports error", "error", err, "user_id", userID)
		if errors.Is(err, summary.ErrSummaryFailed) {
			response.BadGateway(w, i18n.T(r.Context(), "summary.failed"))
			return
		}
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "summary.generated"), result)
}
