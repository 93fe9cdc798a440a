package project

import "time"

type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	UpdatedAt time.Time `json:"updated_at"`

	// Users currently assigned, only loaded for listings
	Users []Member `json:"users,omitempty"`
}

// Member is the slim view of a user assigned to a project.
type Member struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HasUsers reports whether deleting the project must be blocked.
func (p Project) HasUsers() bool {
	return len(p.Users) > 0
}
