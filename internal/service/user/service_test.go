package user

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	user.UserRepository
	users        []user.User
	subordinates map[int64]int
	deleted      []int64
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	for i := range f.users {
		if f.users[i].ID == u.ID {
			f.users[i] = u
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) SetCanReport(ctx context.Context, id int64, canReport bool) (user.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].CanReport = canReport
			return f.users[i], nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) CountSubordinates(ctx context.Context, id int64) (int, error) {
	return f.subordinates[id], nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserRepo) ListWithReportsSince(ctx context.Context, since time.Time) ([]user.User, error) {
	return f.users, nil
}

type fakeProjectRepo struct {
	project.ProjectRepository
}

func (fakeProjectRepo) GetByID(ctx context.Context, id int64) (project.Project, error) {
	if id == 1 {
		return project.Project{ID: 1, Name: "Alpha"}, nil
	}
	return project.Project{}, pgx.ErrNoRows
}

var (
	root    = user.CurrentUser{ID: 1, Role: user.RoleRootAdmin}
	manager = user.CurrentUser{ID: 2, Role: user.RoleManager}
	leader  = user.CurrentUser{ID: 3, Role: user.RoleLeader}
)

func ptr[T any](v T) *T { return &v }

func newTestService() (*UserServiceImpl, *fakeUserRepo) {
	supervisorID := int64(2)
	repo := &fakeUserRepo{
		users: []user.User{
			{ID: 1, Name: "Root", Email: "root@example.com", Role: user.RoleRootAdmin},
			{ID: 2, Name: "Ann", Email: "ann@example.com", Role: user.RoleManager},
			{ID: 3, Name: "Lee", Email: "lee@example.com", Role: user.RoleLeader, SupervisorID: &supervisorID},
			{ID: 4, Name: "Max", Email: "max@example.com", Role: user.RoleMember},
		},
		subordinates: map[int64]int{2: 1},
	}
	return NewUserService(repo, fakeProjectRepo{}).(*UserServiceImpl), repo
}

func validCreate() user.CreateUserRequest {
	return user.CreateUserRequest{
		Name:     "New Member",
		Email:    "New@Example.com",
		Password: "secret1",
		Role:     "member",
	}
}

func TestCreate(t *testing.T) {
	t.Run("hashes password and normalizes email", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.SupervisorID = ptr(int64(3))
		req.ProjectID = ptr(int64(1))

		got, err := svc.Create(context.Background(), manager, req)

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", got.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("secret1")))
	})

	t.Run("requires manager", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(context.Background(), leader, validCreate())
		assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	})

	t.Run("short password", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Password = "12345"
		_, err := svc.Create(context.Background(), root, req)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Email = "ann@example.com"
		_, err := svc.Create(context.Background(), root, req)
		assert.ErrorIs(t, err, user.ErrUserEmailExists)
	})

	t.Run("ineligible supervisor", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.Role = "bse"
		req.SupervisorID = ptr(int64(3))
		_, err := svc.Create(context.Background(), root, req)
		assert.ErrorIs(t, err, user.ErrIneligibleSupervisor)
	})

	t.Run("unknown supervisor", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.SupervisorID = ptr(int64(99))
		_, err := svc.Create(context.Background(), root, req)
		assert.ErrorIs(t, err, user.ErrSupervisorNotFound)
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, _ := newTestService()
		req := validCreate()
		req.ProjectID = ptr(int64(42))
		_, err := svc.Create(context.Background(), root, req)
		assert.ErrorIs(t, err, project.ErrProjectNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("self supervision", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Update(context.Background(), manager, 4, user.UpdateUserRequest{SupervisorID: ptr(int64(4))})
		assert.ErrorIs(t, err, user.ErrSelfSupervision)
	})

	t.Run("role change revalidates supervisor", func(t *testing.T) {
		svc, _ := newTestService()
		// Lee is supervised by a manager, which stays valid for bse.
		got, err := svc.Update(context.Background(), manager, 3, user.UpdateUserRequest{Role: ptr("bse")})
		require.NoError(t, err)
		assert.Equal(t, user.RoleBSE, got.Role)

		_, err = svc.Update(context.Background(), manager, 4, user.UpdateUserRequest{Role: ptr("manager"), SupervisorID: ptr(int64(3))})
		assert.ErrorIs(t, err, user.ErrIneligibleSupervisor)
	})

	t.Run("root admin role is fixed", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Update(context.Background(), root, user.RootAdminID, user.UpdateUserRequest{Role: ptr("member")})
		assert.ErrorIs(t, err, user.ErrRootAdminImmutable)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Update(context.Background(), root, 99, user.UpdateUserRequest{Name: ptr("x")})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, root, user.RootAdminID), user.ErrRootAdminImmutable)
	assert.ErrorIs(t, svc.Delete(ctx, leader, 4), user.ErrManagerAccessRequired)
	assert.ErrorIs(t, svc.Delete(ctx, root, 2), user.ErrUserHasSubordinates)
	assert.ErrorIs(t, svc.Delete(ctx, root, 99), user.ErrUserNotFound)

	require.NoError(t, svc.Delete(ctx, manager, 4))
	assert.Equal(t, []int64{4}, repo.deleted)
}

func TestListSupervisorCandidates(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.ListSupervisorCandidates(context.Background(), user.RoleBSE)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)

	all, err := svc.ListSupervisorCandidates(context.Background(), user.RoleMember)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestListAuthorizedReporters(t *testing.T) {
	svc, repo := newTestService()
	repo.users[1].CanReport = true

	got, err := svc.ListAuthorizedReporters(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ann", got[0].Name)
	require.Len(t, got[0].Subordinates, 1)
	assert.Equal(t, "Lee", got[0].Subordinates[0].Name)
}

func TestSetCanReport(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetCanReport(context.Background(), leader, 4, user.SetCanReportRequest{CanReport: true})
	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)

	got, err := svc.SetCanReport(context.Background(), manager, 4, user.SetCanReportRequest{CanReport: true})
	require.NoError(t, err)
	assert.True(t, got.CanReport)

	_, err = svc.SetCanReport(context.Background(), manager, 99, user.SetCanReportRequest{})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
