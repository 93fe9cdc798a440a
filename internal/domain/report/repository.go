package report

import (
	"context"
	"time"
)

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id int64) (Report, error)

	// ListByUserSince returns a user's reports updated at or after since, oldest first
	ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]Report, error)

	// CreateBatch inserts one day of tasks atomically
	CreateBatch(ctx context.Context, reports []Report) ([]Report, error)
	Update(ctx context.Context, r Report) (Report, error)
}
