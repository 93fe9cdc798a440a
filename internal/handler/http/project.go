package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/i18n"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{projectService: projectService}
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("List projects error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, projects)
}

// Get implements ProjectHandler.
func (h *projectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	p, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req project.CreateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create project error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, i18n.T(r.Context(), "common.created", resourceData("Project")), created)
}

// Update implements ProjectHandler.
func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req project.UpdateProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Update project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.projectService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update project error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "common.updated", resourceData("Project")), updated)
}

// Delete implements ProjectHandler.
func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete project error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, i18n.T(r.Context(), "common.deleted", resourceData("Project")), nil)
}
