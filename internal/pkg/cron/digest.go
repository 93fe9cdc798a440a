package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
)

type ReportSource interface {
	Report(ctx context.Context, day time.Time) (attendance.ReportResponse, error)
}

type TextPoster interface {
	PostText(ctx context.Context, text string) error
}

// DigestJob posts the day's attendance report text to a webhook, at most once per day
// and not before postAt past local midnight.
type DigestJob struct {
	reports ReportSource
	poster  TextPoster
	postAt  time.Duration
	now     func() time.Time

	mu         sync.Mutex
	lastPosted time.Time
}

func NewDigestJob(reports ReportSource, poster TextPoster, postAt time.Duration) *DigestJob {
	return &DigestJob{
		reports: reports,
		poster:  poster,
		postAt:  postAt,
		now:     time.Now,
	}
}

func (j *DigestJob) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("attendance_digest", interval, j.PostDailyDigest)
}

func (j *DigestJob) PostDailyDigest(ctx context.Context) error {
	now := j.now()
	today := dayfilter.StartOfDay(now)
	if now.Before(today.Add(j.postAt)) {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.lastPosted.IsZero() && dayfilter.SameDay(j.lastPosted, today) {
		slog.Debug("Cron: attendance digest already posted today", "date", today.Format(dayfilter.DateLayout))
		return nil
	}

	report, err := j.reports.Report(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to build attendance report: %w", err)
	}
	if report.Total == 0 {
		slog.Info("Cron: no attendance recorded yet, skipping digest", "date", report.Date)
		return nil
	}

	if err := j.poster.PostText(ctx, report.Text); err != nil {
		return fmt.Errorf("failed to post attendance digest: %w", err)
	}

	j.lastPosted = today
	slog.Info("Cron: attendance digest posted", "date", report.Date, "total", report.Total)
	return nil
}
