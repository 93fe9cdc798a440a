package user

import (
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
)

type Role string

const (
	RoleRootAdmin Role = "rootadmin" // Seeded administrator, cannot be deleted
	RoleManager   Role = "manager"
	RoleBSE       Role = "bse"
	RoleLeader    Role = "leader"
	RoleSubLeader Role = "subleader"
	RoleMember    Role = "member"
)

// RootAdminID is the id of the seeded root administrator.
const RootAdminID int64 = 1

// AssignableRoles are the roles that can be given through the user forms.
var AssignableRoles = []Role{RoleManager, RoleBSE, RoleLeader, RoleSubLeader, RoleMember}

func (r Role) IsValid() bool {
	switch r {
	case RoleRootAdmin, RoleManager, RoleBSE, RoleLeader, RoleSubLeader, RoleMember:
		return true
	}
	return false
}

type User struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Role         Role             `json:"role"`
	ProjectID    *int64           `json:"project_id"`
	Project      *project.Project `json:"project,omitempty"`
	SupervisorID *int64           `json:"supervisor_id"`
	Supervisor   *User            `json:"supervisor,omitempty"`
	CanReport    bool             `json:"can_report"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	// Derived, never stored
	Subordinates []User          `json:"subordinates,omitempty"`
	Reports      []report.Report `json:"reports,omitempty"`
}

// ProjectName returns the assigned project's name or "" when none is loaded.
func (u User) ProjectName() string {
	if u.Project == nil {
		return ""
	}
	return u.Project.Name
}

// IsMember reports whether the user holds the lowest role.
func (u User) IsMember() bool {
	return u.Role == RoleMember
}

// CurrentUser is the authenticated actor decoded from the access token.
type CurrentUser struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Project string `json:"project"`
}

func (c CurrentUser) IsMember() bool {
	return c.Role == RoleMember
}

// CanManageUsers checks if the actor may create, edit, delete or authorize users
func (c CurrentUser) CanManageUsers() bool {
	return c.Role == RoleRootAdmin || c.Role == RoleManager
}
