package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const userSelect = `
	SELECT u.id, u.name, u.email, u.password_hash, u.role, u.project_id, u.supervisor_id,
		   u.can_report, u.created_at, u.updated_at,
		   p.id, p.name, p.color, p.updated_at,
		   s.id, s.name, s.role
	FROM users u
	LEFT JOIN projects p ON p.id = u.project_id
	LEFT JOIN users s ON s.id = u.supervisor_id
`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// scanUser reads one row of userSelect and attaches the joined project and supervisor.
func scanUser(row pgx.Row) (user.User, error) {
	var (
		u            user.User
		projectID    *int64
		projectName  *string
		projectColor *string
		projectAt    *time.Time
		superID      *int64
		superName    *string
		superRole    *string
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.ProjectID, &u.SupervisorID,
		&u.CanReport, &u.CreatedAt, &u.UpdatedAt,
		&projectID, &projectName, &projectColor, &projectAt,
		&superID, &superName, &superRole,
	)
	if err != nil {
		return user.User{}, err
	}

	if projectID != nil {
		u.Project = &project.Project{ID: *projectID, Name: deref(projectName), Color: deref(projectColor)}
		if projectAt != nil {
			u.Project.UpdatedAt = *projectAt
		}
	}
	if superID != nil {
		u.Supervisor = &user.User{ID: *superID, Name: deref(superName), Role: user.Role(deref(superRole))}
	}
	return u, nil
}

func (r *userRepositoryImpl) queryUsers(ctx context.Context, query string, args ...interface{}) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	return r.queryUsers(ctx, userSelect+` ORDER BY u.id`)
}

// ListExcept implements user.UserRepository.
func (r *userRepositoryImpl) ListExcept(ctx context.Context, id int64) ([]user.User, error) {
	return r.queryUsers(ctx, userSelect+` WHERE u.id <> $1 ORDER BY u.id`, id)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	return scanUser(q.QueryRow(ctx, userSelect+` WHERE u.email = $1`, email))
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, password_hash, role, project_id, supervisor_id, can_report)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.ProjectID,
		newUser.SupervisorID,
		newUser.CanReport,
	).Scan(&id)
	if err != nil {
		return user.User{}, err
	}

	return r.GetByID(ctx, id)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $1, email = $2, role = $3, project_id = $4, supervisor_id = $5, updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query, u.Name, u.Email, u.Role, u.ProjectID, u.SupervisorID, u.ID)
	if err != nil {
		return user.User{}, err
	}
	if commandTag.RowsAffected() == 0 {
		return user.User{}, pgx.ErrNoRows
	}

	return r.GetByID(ctx, u.ID)
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SetCanReport implements user.UserRepository.
func (r *userRepositoryImpl) SetCanReport(ctx context.Context, id int64, canReport bool) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `UPDATE users SET can_report = $1, updated_at = NOW() WHERE id = $2`, canReport, id)
	if err != nil {
		return user.User{}, err
	}
	if commandTag.RowsAffected() == 0 {
		return user.User{}, pgx.ErrNoRows
	}

	return r.GetByID(ctx, id)
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountSubordinates implements user.UserRepository.
func (r *userRepositoryImpl) CountSubordinates(ctx context.Context, id int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE supervisor_id = $1`, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListWithReportsSince implements user.UserRepository.
func (r *userRepositoryImpl) ListWithReportsSince(ctx context.Context, since time.Time) ([]user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, reportSelect+` WHERE updated_at >= $1 ORDER BY updated_at, id`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	byUser := make(map[int64][]report.Report)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		byUser[rep.UserID] = append(byUser[rep.UserID], rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	for i := range users {
		users[i].Reports = byUser[users[i].ID]
	}
	return users, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
