package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Full leave markers carry no project or task, hence the COALESCEs.
const reportSelect = `
	SELECT id, user_id, COALESCE(project, ''), COALESCE(task_title, ''), COALESCE(task_description, ''),
		   working_time, man_hours, created_at, updated_at
	FROM reports
`

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func scanReport(row pgx.Row) (report.Report, error) {
	var r report.Report
	err := row.Scan(
		&r.ID, &r.UserID, &r.Project, &r.TaskTitle, &r.TaskDescription,
		&r.WorkingTime, &r.ManHours, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (r *reportRepositoryImpl) queryReports(ctx context.Context, query string, args ...interface{}) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}
	return reports, nil
}

// List implements report.ReportRepository.
func (r *reportRepositoryImpl) List(ctx context.Context) ([]report.Report, error) {
	return r.queryReports(ctx, reportSelect+` ORDER BY updated_at DESC, id DESC`)
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id int64) (report.Report, error) {
	q := GetQuerier(ctx, r.db)
	return scanReport(q.QueryRow(ctx, reportSelect+` WHERE id = $1`, id))
}

// ListByUserSince implements report.ReportRepository.
func (r *reportRepositoryImpl) ListByUserSince(ctx context.Context, userID int64, since time.Time) ([]report.Report, error) {
	return r.queryReports(ctx, reportSelect+` WHERE user_id = $1 AND updated_at >= $2 ORDER BY updated_at, id`, userID, since)
}

// CreateBatch implements report.ReportRepository.
func (r *reportRepositoryImpl) CreateBatch(ctx context.Context, reports []report.Report) ([]report.Report, error) {
	query := `
		INSERT INTO reports (user_id, project, task_title, task_description, working_time, man_hours)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING id, created_at, updated_at
	`

	created := make([]report.Report, 0, len(reports))
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, rep := range reports {
			err := q.QueryRow(txCtx, query,
				rep.UserID,
				rep.Project,
				rep.TaskTitle,
				rep.TaskDescription,
				rep.WorkingTime,
				rep.ManHours,
			).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert report: %w", err)
			}
			created = append(created, rep)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update implements report.ReportRepository.
func (r *reportRepositoryImpl) Update(ctx context.Context, rep report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reports
		SET project = NULLIF($1, ''), task_title = NULLIF($2, ''), task_description = NULLIF($3, ''),
			working_time = $4, man_hours = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rep.Project,
		rep.TaskTitle,
		rep.TaskDescription,
		rep.WorkingTime,
		rep.ManHours,
		rep.ID,
	).Scan(&rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return report.Report{}, err
	}
	return rep, nil
}
