package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]User, error)
	ListExcept(ctx context.Context, id int64) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, actor CurrentUser, req CreateUserRequest) (User, error)
	Update(ctx context.Context, actor CurrentUser, id int64, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, actor CurrentUser, id int64) error

	// ListSupervisorCandidates applies the role hierarchy to all users
	ListSupervisorCandidates(ctx context.Context, role Role) ([]User, error)

	// ListAuthorizedReporters returns can_report users with subordinates and reports
	ListAuthorizedReporters(ctx context.Context) ([]User, error)
	SetCanReport(ctx context.Context, actor CurrentUser, id int64, req SetCanReportRequest) (User, error)
}
