package project

import "context"

type ProjectRepository interface {
	// List returns projects with their assigned users
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id int64) (Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id int64) error
}
