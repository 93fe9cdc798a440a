package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
)

type fakeAttendanceService struct {
	attendance.AttendanceService
	resp attendance.ReportResponse
	err  error
}

func (f fakeAttendanceService) Report(ctx context.Context, day time.Time) (attendance.ReportResponse, error) {
	return f.resp, f.err
}

type fakeReportService struct {
	report.ReportService
	teams []report.TeamDayResponse
	err   error
}

func (f fakeReportService) Teams(ctx context.Context, day time.Time) ([]report.TeamDayResponse, error) {
	return f.teams, f.err
}

func TestOverview(t *testing.T) {
	att := fakeAttendanceService{resp: attendance.ReportResponse{
		Date:  "2024.05.01",
		Text:  "report",
		Total: 3,
		Buckets: attendance.Buckets{
			Office: make([]attendance.Attendance, 1),
			Home:   make([]attendance.Attendance, 2),
			Leave:  make([]attendance.Attendance, 1),
		},
	}}
	reps := fakeReportService{teams: []report.TeamDayResponse{{Name: "Ann's Team"}}}

	got, err := NewDashboardService(att, reps).Overview(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, "2024.05.01", got.Date)
	assert.Equal(t, 3, got.Attendance.Total)
	assert.Equal(t, 1, got.Attendance.Office)
	assert.Equal(t, 2, got.Attendance.Home)
	assert.Equal(t, 1, got.Attendance.Leave)
	assert.Equal(t, "report", got.ReportText)
	assert.Len(t, got.Teams, 1)
}

func TestOverview_Error(t *testing.T) {
	boom := errors.New("db down")
	svc := NewDashboardService(fakeAttendanceService{}, fakeReportService{err: boom})

	_, err := svc.Overview(context.Background(), time.Now())

	assert.ErrorIs(t, err, boom)
}
