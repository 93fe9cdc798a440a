package report

import "time"

const (
	HalfWorkingTime = 4
	FullWorkingTime = 8
)

// Report is one task entry of a user's daily work report.
type Report struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Project         string    `json:"project"`
	TaskTitle       string    `json:"task_title"`
	TaskDescription string    `json:"task_description"`
	WorkingTime     int       `json:"working_time"`
	ManHours        float64   `json:"man_hours"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsFullLeave reports whether the entry marks a day off.
func (r Report) IsFullLeave() bool {
	return r.WorkingTime <= 0
}

// IsHalfLeave reports whether the entry belongs to a half working day.
func (r Report) IsHalfLeave() bool {
	return r.WorkingTime == HalfWorkingTime
}

// Member is a projection of a user inside a Team. Recomputed per request.
type Member struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	ProjectName string   `json:"project_name"`
	Reports     []Report `json:"reports"`
}

// Team is one supervisor and their direct subordinates.
type Team struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}
