package report

import (
	"context"
	"time"
)

// Actor is the caller of a report mutation. Kept local so this package does
// not depend on the user domain.
type Actor struct {
	ID       int64
	IsMember bool
}

// ReportService covers task reports and the team view built on them.
type ReportService interface {
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id int64) (Report, error)
	ListWeekAgo(ctx context.Context, userID int64) ([]Report, error)
	Create(ctx context.Context, actor Actor, req CreateReportRequest) ([]Report, error)
	Update(ctx context.Context, actor Actor, id int64, req UpdateReportRequest) (Report, error)

	// Teams groups authorized reporters into teams for the given day
	Teams(ctx context.Context, day time.Time) ([]TeamDayResponse, error)
}
