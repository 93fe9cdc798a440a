package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/clipboard"
)

type AttendanceService interface {
	List(ctx context.Context) ([]Attendance, error)

	// ListForDay returns the day's records, managers first then by project
	ListForDay(ctx context.Context, day time.Time) ([]Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	Create(ctx context.Context, actor user.CurrentUser, req CreateAttendanceRequest) (Attendance, error)
	Update(ctx context.Context, actor user.CurrentUser, id int64, req UpdateAttendanceRequest) (Attendance, error)

	// Report formats the day's records for posting
	Report(ctx context.Context, day time.Time) (ReportResponse, error)

	// CopyReport formats the day's records and writes them to w.
	// The bool is false when the write failed.
	CopyReport(ctx context.Context, day time.Time, w clipboard.Writer) (string, bool, error)
}
