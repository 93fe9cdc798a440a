package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/clipboard"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	userRepo user.UserRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		userRepo:             userRepo,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return records, nil
}

// ListForDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForDay(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	from, to := dayfilter.Bounds(day)
	records, err := s.AttendanceRepository.ListUpdatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for day: %w", err)
	}

	records = dayfilter.FilterByDay(records, day, func(a attendance.Attendance) time.Time { return a.UpdatedAt })
	return SortAttendance(records), nil
}

// GetByID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return record, nil
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, actor user.CurrentUser, req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	reporterID := actor.ID
	if req.ReportedBy != nil && *req.ReportedBy != actor.ID {
		if actor.IsMember() {
			return attendance.Attendance{}, attendance.ErrReportForOthers
		}
		reporterID = *req.ReportedBy
	}

	reporter, err := s.userRepo.GetByID(ctx, reporterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrReporterNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get reporter: %w", err)
	}

	newRecord := newAttendanceFromRequest(req)
	newRecord.ReportedBy = reporter.ID
	newRecord.CreatedBy = actor.ID

	// Project is denormalized from the reporter at submission time.
	if newRecord.Project == "" {
		newRecord.Project = reporter.ProjectName()
	}
	if newRecord.Workspace != "" && newRecord.Project == "" {
		return attendance.Attendance{}, validator.ValidationErrors{{
			Field:   "project",
			Message: "project is required when a workspace is set",
		}}
	}

	created, err := s.AttendanceRepository.Create(ctx, newRecord)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

func newAttendanceFromRequest(req attendance.CreateAttendanceRequest) attendance.Attendance {
	a := attendance.Attendance{
		Type:      attendance.Type(req.Type),
		Workspace: attendance.Workspace(req.Workspace),
		Project:   req.Project,
	}

	switch a.Type {
	case attendance.TypeWorking:
		a.WorkingTime = attendance.Period(req.WorkingTime)
	case attendance.TypeLeave:
		a.LeavePeriod = attendance.Period(req.LeavePeriod)
		if a.LeavePeriod == attendance.PeriodFull {
			a.Workspace = ""
		}
	}

	if a.WorkingTime != attendance.PeriodFull {
		a.LeaveReason = attendance.LeaveReason(req.LeaveReason)
		if a.LeaveReason == attendance.LeaveReasonOther {
			a.OtherLeaveReason = req.OtherLeaveReason
		}
	}
	if req.IsLate {
		a.LateMinute = req.LateMinute
	}
	return a
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, actor user.CurrentUser, id int64, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if actor.IsMember() && existing.ReportedBy != actor.ID && existing.CreatedBy != actor.ID {
		return attendance.Attendance{}, attendance.ErrAttendanceForbidden
	}

	if req.Workspace != nil {
		if existing.Type == attendance.TypeLeave && existing.LeavePeriod == attendance.PeriodFull {
			return attendance.Attendance{}, validator.ValidationErrors{{
				Field:   "workspace",
				Message: "workspace must be empty for a full day leave",
			}}
		}
		existing.Workspace = attendance.Workspace(*req.Workspace)
	}
	if req.Project != nil {
		existing.Project = *req.Project
	}
	if req.LeaveReason != nil {
		existing.LeaveReason = attendance.LeaveReason(*req.LeaveReason)
		if existing.LeaveReason != attendance.LeaveReasonOther {
			existing.OtherLeaveReason = ""
		}
	}
	if req.OtherLeaveReason != nil {
		existing.OtherLeaveReason = *req.OtherLeaveReason
	}
	if req.LateMinute != nil {
		existing.LateMinute = *req.LateMinute
	}

	if existing.LeaveReason == attendance.LeaveReasonOther && existing.OtherLeaveReason == "" {
		return attendance.Attendance{}, validator.ValidationErrors{{
			Field:   "otherLeaveReason",
			Message: "otherLeaveReason is required when leaveReason is other",
		}}
	}
	if existing.Workspace != "" && existing.Project == "" {
		return attendance.Attendance{}, validator.ValidationErrors{{
			Field:   "project",
			Message: "project is required when a workspace is set",
		}}
	}

	updated, err := s.AttendanceRepository.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return updated, nil
}

// Report implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Report(ctx context.Context, day time.Time) (attendance.ReportResponse, error) {
	records, err := s.ListForDay(ctx, day)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	return attendance.ReportResponse{
		Date:    day.Format(ReportDateLayout),
		Text:    FormatAttendanceReport(records, day),
		Total:   len(records),
		Buckets: BucketAttendance(records),
	}, nil
}

// CopyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CopyReport(ctx context.Context, day time.Time, w clipboard.Writer) (string, bool, error) {
	records, err := s.ListForDay(ctx, day)
	if err != nil {
		return "", false, err
	}

	text, ok := CopyAttendanceWithFormat(ctx, w, records, day)
	return text, ok, nil
}
