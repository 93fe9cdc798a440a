package project

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

type fakeProjectRepo struct {
	project.ProjectRepository
	projects []project.Project
	deleted  []int64
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id int64) (project.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, pgx.ErrNoRows
}

func (f *fakeProjectRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, p := range f.projects {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	p.ID = int64(len(f.projects) + 1)
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p project.Project) (project.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == p.ID {
			f.projects[i] = p
			return p, nil
		}
	}
	return project.Project{}, pgx.ErrNoRows
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func newTestService() (project.ProjectService, *fakeProjectRepo) {
	repo := &fakeProjectRepo{projects: []project.Project{
		{ID: 1, Name: "Alpha", Color: "#112233", Users: []project.Member{{ID: 5, Name: "Meg"}}},
		{ID: 2, Name: "Beta", Color: "#445566"},
	}}
	return NewProjectService(repo), repo
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	got, err := svc.Create(ctx, project.CreateProjectRequest{Name: " Gamma ", Color: "#AABBCC"})
	require.NoError(t, err)
	assert.Equal(t, "Gamma", got.Name)
	assert.Equal(t, "#aabbcc", got.Color)

	_, err = svc.Create(ctx, project.CreateProjectRequest{Name: "Alpha", Color: "#000000"})
	assert.ErrorIs(t, err, project.ErrProjectNameExists)

	_, err = svc.Create(ctx, project.CreateProjectRequest{Name: "Delta", Color: "red"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "color")
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	got, err := svc.Update(ctx, 2, project.UpdateProjectRequest{Color: ptr("#FFFFFF")})
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", got.Color)
	assert.Equal(t, "Beta", got.Name)

	_, err = svc.Update(ctx, 2, project.UpdateProjectRequest{Name: ptr("Alpha")})
	assert.ErrorIs(t, err, project.ErrProjectNameExists)

	_, err = svc.Update(ctx, 9, project.UpdateProjectRequest{})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 1), project.ErrProjectHasUsers)
	assert.ErrorIs(t, svc.Delete(ctx, 9), project.ErrProjectNotFound)
	require.NoError(t, svc.Delete(ctx, 2))
	assert.Equal(t, []int64{2}, repo.deleted)
}
