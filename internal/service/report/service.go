package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
	"github.com/jackc/pgx/v5"
)

const weekAgo = 7 * 24 * time.Hour

type ReportServiceImpl struct {
	report.ReportRepository
	userRepo user.UserRepository
	now      func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, userRepo user.UserRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		userRepo:         userRepo,
		now:              time.Now,
	}
}

// List implements report.ReportService.
func (s *ReportServiceImpl) List(ctx context.Context) ([]report.Report, error) {
	reports, err := s.ReportRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// GetByID implements report.ReportService.
func (s *ReportServiceImpl) GetByID(ctx context.Context, id int64) (report.Report, error) {
	r, err := s.ReportRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report: %w", err)
	}
	return r, nil
}

// ListWeekAgo implements report.ReportService.
func (s *ReportServiceImpl) ListWeekAgo(ctx context.Context, userID int64) ([]report.Report, error) {
	reports, err := s.ReportRepository.ListByUserSince(ctx, userID, s.now().Add(-weekAgo))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports of the last week: %w", err)
	}
	return reports, nil
}

// Create implements report.ReportService.
func (s *ReportServiceImpl) Create(ctx context.Context, actor report.Actor, req report.CreateReportRequest) ([]report.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	targetID := actor.ID
	if req.UserID != nil && *req.UserID != actor.ID {
		if actor.IsMember {
			return nil, report.ErrReportForbidden
		}
		targetID = *req.UserID
	}

	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, report.ErrReportTargetNotFound
		}
		return nil, fmt.Errorf("failed to get report target: %w", err)
	}

	var batch []report.Report
	if req.WorkingTime == 0 {
		batch = []report.Report{{UserID: targetID, WorkingTime: 0}}
	} else {
		batch = make([]report.Report, 0, len(req.Tasks))
		for _, task := range req.Tasks {
			batch = append(batch, report.Report{
				UserID:          targetID,
				Project:         task.Project,
				TaskTitle:       task.Title,
				TaskDescription: task.Description,
				WorkingTime:     req.WorkingTime,
				ManHours:        task.ManHours,
			})
		}
	}

	created, err := s.ReportRepository.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create reports: %w", err)
	}
	return created, nil
}

// Update implements report.ReportService.
func (s *ReportServiceImpl) Update(ctx context.Context, actor report.Actor, id int64, req report.UpdateReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return report.Report{}, err
	}
	if actor.IsMember && existing.UserID != actor.ID {
		return report.Report{}, report.ErrReportForbidden
	}

	if req.Project != nil {
		existing.Project = *req.Project
	}
	if req.TaskTitle != nil {
		existing.TaskTitle = *req.TaskTitle
	}
	if req.TaskDescription != nil {
		existing.TaskDescription = *req.TaskDescription
	}
	if req.ManHours != nil {
		existing.ManHours = *req.ManHours
	}

	updated, err := s.ReportRepository.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to update report: %w", err)
	}
	return updated, nil
}

// Teams implements report.ReportService.
func (s *ReportServiceImpl) Teams(ctx context.Context, day time.Time) ([]report.TeamDayResponse, error) {
	users, err := s.userRepo.ListWithReportsSince(ctx, dayfilter.StartOfDay(day))
	if err != nil {
		return nil, fmt.Errorf("failed to list reporters: %w", err)
	}

	teams := BuildTeams(user.AuthorizedReporters(users))
	return TeamsForDay(teams, day), nil
}
