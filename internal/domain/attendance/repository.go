package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Reads join reporter and creator.
type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	Update(ctx context.Context, attendance Attendance) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)

	// ListUpdatedBetween narrows the scan; callers still apply the day filter
	ListUpdatedBetween(ctx context.Context, from, to time.Time) ([]Attendance, error)
}
