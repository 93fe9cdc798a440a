package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/jackc/pgx/v5"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

func NewProjectService(repo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{ProjectRepository: repo}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.Project, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id int64) (project.Project, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.ProjectRepository.ExistsByName(ctx, name)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to check project name: %w", err)
	}
	if exists {
		return project.Project{}, project.ErrProjectNameExists
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		Name:  name,
		Color: strings.ToLower(req.Color),
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, id int64, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != existing.Name {
			exists, err := s.ProjectRepository.ExistsByName(ctx, name)
			if err != nil {
				return project.Project{}, fmt.Errorf("failed to check project name: %w", err)
			}
			if exists {
				return project.Project{}, project.ErrProjectNameExists
			}
			existing.Name = name
		}
	}
	if req.Color != nil {
		existing.Color = strings.ToLower(*req.Color)
	}

	updated, err := s.ProjectRepository.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.HasUsers() {
		return project.ErrProjectHasUsers
	}

	if err := s.ProjectRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
