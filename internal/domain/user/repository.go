package user

import (
	"context"
	"time"
)

type UserRepository interface {
	// List returns every user with their project joined
	List(ctx context.Context) ([]User, error)
	ListExcept(ctx context.Context, id int64) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetCanReport(ctx context.Context, id int64, canReport bool) (User, error)
	Delete(ctx context.Context, id int64) error
	CountSubordinates(ctx context.Context, id int64) (int, error)

	// ListWithReportsSince returns all users with their reports updated at or after since
	ListWithReportsSince(ctx context.Context, since time.Time) ([]User, error)
}
