package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetOverview returns counts, report text and teams for ?date=
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOverview handles GET /dashboard
func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	day, err := dayQuery(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Overview(r.Context(), day)
	if err != nil {
		slog.Error("Dashboard overview error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
