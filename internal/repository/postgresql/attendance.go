package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Unset optional columns read back as empty strings.
const attendanceSelect = `
	SELECT a.id, a.type, COALESCE(a.working_time, ''), COALESCE(a.workspace, ''), COALESCE(a.project, ''),
		   COALESCE(a.leave_period, ''), COALESCE(a.leave_reason, ''), COALESCE(a.other_leave_reason, ''),
		   COALESCE(a.late_minute, ''), a.reported_by, a.created_by, a.created_at, a.updated_at,
		   r.id, r.name, r.role,
		   c.id, c.name, c.role
	FROM attendances a
	LEFT JOIN users r ON r.id = a.reported_by
	LEFT JOIN users c ON c.id = a.created_by
`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var (
		att                       attendance.Attendance
		reporterID, creatorID     *int64
		reporterName, creatorName *string
		reporterRole, creatorRole *string
	)
	err := row.Scan(
		&att.ID, &att.Type, &att.WorkingTime, &att.Workspace, &att.Project,
		&att.LeavePeriod, &att.LeaveReason, &att.OtherLeaveReason,
		&att.LateMinute, &att.ReportedBy, &att.CreatedBy, &att.CreatedAt, &att.UpdatedAt,
		&reporterID, &reporterName, &reporterRole,
		&creatorID, &creatorName, &creatorRole,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	if reporterID != nil {
		att.Reporter = &user.User{ID: *reporterID, Name: deref(reporterName), Role: user.Role(deref(reporterRole))}
	}
	if creatorID != nil {
		att.Creator = &user.User{ID: *creatorID, Name: deref(creatorName), Role: user.Role(deref(creatorRole))}
	}
	return att, nil
}

func (a *attendanceRepository) queryAttendances(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendances: %w", err)
	}
	return records, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			type, working_time, workspace, project, leave_period, leave_reason,
			other_leave_reason, late_minute, reported_by, created_by
		) VALUES (
			$1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
			NULLIF($7, ''), NULLIF($8, ''), $9, $10
		) RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		newAttendance.Type,
		newAttendance.WorkingTime,
		newAttendance.Workspace,
		newAttendance.Project,
		newAttendance.LeavePeriod,
		newAttendance.LeaveReason,
		newAttendance.OtherLeaveReason,
		newAttendance.LateMinute,
		newAttendance.ReportedBy,
		newAttendance.CreatedBy,
	).Scan(&id)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)
	return scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET type = $1, working_time = NULLIF($2, ''), workspace = NULLIF($3, ''), project = NULLIF($4, ''),
			leave_period = NULLIF($5, ''), leave_reason = NULLIF($6, ''), other_leave_reason = NULLIF($7, ''),
			late_minute = NULLIF($8, ''), updated_at = NOW()
		WHERE id = $9
	`

	commandTag, err := q.Exec(ctx, query,
		att.Type,
		att.WorkingTime,
		att.Workspace,
		att.Project,
		att.LeavePeriod,
		att.LeaveReason,
		att.OtherLeaveReason,
		att.LateMinute,
		att.ID,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.Attendance{}, pgx.ErrNoRows
	}

	return a.GetByID(ctx, att.ID)
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	return a.queryAttendances(ctx, attendanceSelect+` ORDER BY a.updated_at DESC, a.id DESC`)
}

// ListUpdatedBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListUpdatedBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	return a.queryAttendances(ctx, attendanceSelect+` WHERE a.updated_at >= $1 AND a.updated_at < $2 ORDER BY a.id`, from, to)
}
