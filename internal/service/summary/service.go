package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

type SummaryServiceImpl struct {
	userRepo  user.UserRepository
	reports   report.ReportService
	completer summary.Completer
}

func NewSummaryService(userRepo user.UserRepository, reports report.ReportService, completer summary.Completer) summary.SummaryService {
	return &SummaryServiceImpl{
		userRepo:  userRepo,
		reports:   reports,
		completer: completer,
	}
}

// SummarizeWeek implements summary.SummaryService.
func (s *SummaryServiceImpl) SummarizeWeek(ctx context.Context, userID int64) (summary.Result, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.Result{}, user.ErrUserNotFound
		}
		return summary.Result{}, fmt.Errorf("failed to get user: %w", err)
	}

	reports, err := s.reports.ListWeekAgo(ctx, userID)
	if err != nil {
		return summary.Result{}, err
	}
	if len(reports) == 0 {
		return summary.Result{}, summary.ErrNoReportsToSend
	}

	prompt, err := BuildPrompt(u.Name, reports)
	if err != nil {
		return summary.Result{}, err
	}

	content, err := s.completer.ChatCompletion(ctx, prompt)
	if err != nil {
		slog.Warn("Summary completion failed", "user_id", userID, "error", err)
		return summary.Result{}, fmt.Errorf("%w: %v", summary.ErrSummaryFailed, err)
	}

	return summary.Result{
		UserID:  u.ID,
		Name:    u.Name,
		Content: content,
		Reports: ParseSummary(content),
	}, nil
}
