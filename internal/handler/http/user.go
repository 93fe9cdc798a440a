package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListExcept(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SupervisorCandidates(w http.ResponseWriter, r *http.Request)
	AuthorizedReporters(w http.ResponseWriter, r *http.Request)
	SetCanReport(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{userService: userService}
}

func resourceData(name string) map[string]any {
	return map[string]any{"Resource": name}
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// ListExcept implements UserHandler.
func (h *userHandlerImpl) ListExcept(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	users, err := h.userService.ListExcept(r.Context(), id)
	if err != nil {
		slog.Error("List users error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// Get implements UserHandler.
func (h *userHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, u)
}

// Me implements UserHandler.
func (h *userHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.CurrentUserFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	u, err := h.userService.GetByID(r.Context(), current.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, u)
}

// Create implements UserHandler.
func (h *userHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	current, err := middleware.CurrentUserFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.userService.Create(r.Context(), current, req)
	if err != nil {
		slog.Error("Create user error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, i18n.T(r.Context(), "common.created", resourceData("User")), created)
}

// Update implements UserHandler.
func (h *userHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
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

	var req user.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.Update(r.Context(), current, id, req)
	if err != nil {
		slog.Error("Update user error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "common.updated", resourceData("User")), updated)
}

// Delete implements UserHandler.
func (h *userHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.userService.Delete(r.Context(), current, id); err != nil {
		slog.Error("Delete user error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "common.deleted", resourceData("User")), nil)
}

// SupervisorCandidates implements UserHandler.
func (h *userHandlerImpl) SupervisorCandidates(w http.ResponseWriter, r *http.Request) {
	role := user.Role(r.URL.Query().Get("role"))
	if !role.IsValid() {
		response.HandleError(w, validator.ValidationErrors{{Field: "role", Message: "role is invalid"}})
		return
	}

	users, err := h.userService.ListSupervisorCandidates(r.Context(), role)
	if err != nil {
		slog.Error("List supervisor candidates error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// AuthorizedReporters implements UserHandler.
func (h *userHandlerImpl) AuthorizedReporters(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListAuthorizedReporters(r.Context())
	if err != nil {
		slog.Error("List authorized reporters error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// SetCanReport implements UserHandler.
func (h *userHandlerImpl) SetCanReport(w http.ResponseWriter, r *http.Request) {
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

	var req user.SetCanReportRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.SetCanReport(r.Context(), current, id, req)
	if err != nil {
		slog.Error("Set can_report error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "user.can_report_updated"), updated)
}
