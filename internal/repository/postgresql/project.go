package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// membersByProject loads assigned users grouped by project. A zero id loads all projects.
func (r *projectRepositoryImpl) membersByProject(ctx context.Context, id int64) (map[int64][]project.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT project_id, id, name
		FROM users
		WHERE project_id IS NOT NULL AND ($1::bigint = 0 OR project_id = $1::bigint)
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query project members: %w", err)
	}
	defer rows.Close()

	members := make(map[int64][]project.Member)
	for rows.Next() {
		var projectID int64
		var m project.Member
		if err := rows.Scan(&projectID, &m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members[projectID] = append(members[projectID], m)
	}
	return members, rows.Err()
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, color, updated_at FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	members, err := r.membersByProject(ctx, 0)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Users = members[projects[i].ID]
	}
	return projects, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id int64) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	var p project.Project
	err := q.QueryRow(ctx, `SELECT id, name, color, updated_at FROM projects WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Color, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}

	members, err := r.membersByProject(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	p.Users = members[id]
	return p, nil
}

// ExistsByName implements project.ProjectRepository.
func (r *projectRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE LOWER(name) = LOWER($1))`, name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `INSERT INTO projects (name, color) VALUES ($1, $2) RETURNING id, updated_at`, p.Name, p.Color).
		Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, color = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	if err := q.QueryRow(ctx, query, p.Name, p.Color, p.ID).Scan(&p.UpdatedAt); err != nil {
		return project.Project{}, err
	}
	return p, nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
