package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendance attendance.AttendanceService
	reports    report.ReportService
}

func NewDashboardService(attendanceService attendance.AttendanceService, reportService report.ReportService) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendance: attendanceService,
		reports:    reportService,
	}
}

// Overview returns the day's attendance report and team reports in one call.
// The two sources are loaded in parallel.
func (s *DashboardServiceImpl) Overview(ctx context.Context, day time.Time) (*dashboard.OverviewResponse, error) {
	var (
		attendanceReport attendance.ReportResponse
		teams            []report.TeamDayResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Attendance report (formatted text + buckets)
	g.Go(func() error {
		resp, err := s.attendance.Report(gCtx, day)
		if err != nil {
			return err
		}
		attendanceReport = resp
		return nil
	})

	// 2. Teams with the day's task reports
	g.Go(func() error {
		resp, err := s.reports.Teams(gCtx, day)
		if err != nil {
			return err
		}
		teams = resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.OverviewResponse{
		Date: attendanceReport.Date,
		Attendance: dashboard.AttendanceCounts{
			Total:  attendanceReport.Total,
			Office: len(attendanceReport.Buckets.Office),
			Home:   len(attendanceReport.Buckets.Home),
			Leave:  len(attendanceReport.Buckets.Leave),
		},
		ReportText: attendanceReport.Text,
		Teams:      teams,
	}, nil
}
