package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	projectRepo project.ProjectRepository
}

func NewUserService(userRepo user.UserRepository, projectRepo project.ProjectRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepo,
		projectRepo:    projectRepo,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListExcept implements user.UserService.
func (s *UserServiceImpl) ListExcept(ctx context.Context, id int64) ([]user.User, error) {
	users, err := s.UserRepository.ListExcept(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, actor user.CurrentUser, req user.CreateUserRequest) (user.User, error) {
	if !actor.CanManageUsers() {
		return user.User{}, user.ErrManagerAccessRequired
	}
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.UserRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.User{}, user.ErrUserEmailExists
	}

	role := user.Role(req.Role)
	if err := s.checkSupervisor(ctx, 0, role, req.SupervisorID); err != nil {
		return user.User{}, err
	}
	if err := s.checkProject(ctx, req.ProjectID); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		ProjectID:    req.ProjectID,
		SupervisorID: req.SupervisorID,
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, actor user.CurrentUser, id int64, req user.UpdateUserRequest) (user.User, error) {
	if !actor.CanManageUsers() {
		return user.User{}, user.ErrManagerAccessRequired
	}
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != existing.Email {
			exists, err := s.UserRepository.ExistsByEmail(ctx, email)
			if err != nil {
				return user.User{}, fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return user.User{}, user.ErrUserEmailExists
			}
			existing.Email = email
		}
	}
	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		if existing.ID == user.RootAdminID {
			return user.User{}, user.ErrRootAdminImmutable
		}
		existing.Role = user.Role(*req.Role)
	}
	if req.ProjectID != nil {
		if err := s.checkProject(ctx, req.ProjectID); err != nil {
			return user.User{}, err
		}
		existing.ProjectID = req.ProjectID
	}
	if req.SupervisorID != nil {
		existing.SupervisorID = req.SupervisorID
	}

	// A role change can invalidate the current supervisor.
	if req.Role != nil || req.SupervisorID != nil {
		if err := s.checkSupervisor(ctx, existing.ID, existing.Role, existing.SupervisorID); err != nil {
			return user.User{}, err
		}
	}

	updated, err := s.UserRepository.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, actor user.CurrentUser, id int64) error {
	if !actor.CanManageUsers() {
		return user.ErrManagerAccessRequired
	}
	if id == user.RootAdminID {
		return user.ErrRootAdminImmutable
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.UserRepository.CountSubordinates(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count subordinates: %w", err)
	}
	if count > 0 {
		return user.ErrUserHasSubordinates
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListSupervisorCandidates implements user.UserService.
func (s *UserServiceImpl) ListSupervisorCandidates(ctx context.Context, role user.Role) ([]user.User, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return user.FilterCandidatesForRole(role, users), nil
}

// ListAuthorizedReporters implements user.UserService.
func (s *UserServiceImpl) ListAuthorizedReporters(ctx context.Context) ([]user.User, error) {
	users, err := s.UserRepository.ListWithReportsSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users with reports: %w", err)
	}
	return user.AuthorizedReporters(users), nil
}

// SetCanReport implements user.UserService.
func (s *UserServiceImpl) SetCanReport(ctx context.Context, actor user.CurrentUser, id int64, req user.SetCanReportRequest) (user.User, error) {
	if !actor.CanManageUsers() {
		return user.User{}, user.ErrManagerAccessRequired
	}

	updated, err := s.UserRepository.SetCanReport(ctx, id, req.CanReport)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to set can_report: %w", err)
	}
	return updated, nil
}

func (s *UserServiceImpl) checkSupervisor(ctx context.Context, selfID int64, role user.Role, supervisorID *int64) error {
	if supervisorID == nil {
		return nil
	}
	if selfID != 0 && *supervisorID == selfID {
		return user.ErrSelfSupervision
	}

	supervisor, err := s.UserRepository.GetByID(ctx, *supervisorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrSupervisorNotFound
		}
		return fmt.Errorf("failed to get supervisor: %w", err)
	}
	if !user.IsEligibleSupervisor(role, supervisor.Role) {
		return user.ErrIneligibleSupervisor
	}
	return nil
}

func (s *UserServiceImpl) checkProject(ctx context.Context, projectID *int64) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projectRepo.GetByID(ctx, *projectID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}
	return nil
}
