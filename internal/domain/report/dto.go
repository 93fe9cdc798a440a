package report

import (
	"fmt"
	"math"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

type TaskInput struct {
	Project     string  `json:"project"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ManHours    float64 `json:"manHours"`
}

// CreateReportRequest submits a whole day of tasks. UserID is set when a
// leader reports on behalf of a member.
type CreateReportRequest struct {
	UserID      *int64      `json:"userId,omitempty"`
	WorkingTime int         `json:"workingTime"`
	Tasks       []TaskInput `json:"tasks"`
}

func (r *CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkingTime != 0 && r.WorkingTime != HalfWorkingTime && r.WorkingTime != FullWorkingTime {
		errs = append(errs, validator.ValidationError{
			Field:   "workingTime",
			Message: fmt.Sprintf("workingTime must be 0, %d or %d", HalfWorkingTime, FullWorkingTime),
		})
	}

	// Full leave carries no tasks
	if r.WorkingTime == 0 {
		if len(errs) > 0 {
			return errs
		}
		return nil
	}

	if len(r.Tasks) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "tasks",
			Message: "at least one task is required",
		})
	}

	var total float64
	for i, task := range r.Tasks {
		if validator.IsEmpty(task.Project) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("tasks[%d].project", i),
				Message: "project is required",
			})
		}
		if validator.IsEmpty(task.Title) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("tasks[%d].title", i),
				Message: "title is required",
			})
		}
		if task.ManHours <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("tasks[%d].manHours", i),
				Message: "manHours must be greater than 0",
			})
		}
		total += task.ManHours
	}

	if len(r.Tasks) > 0 && math.Abs(total-float64(r.WorkingTime)) > 1e-9 {
		errs = append(errs, validator.ValidationError{
			Field:   "tasks",
			Message: fmt.Sprintf("total manHours must equal workingTime (%d)", r.WorkingTime),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReportRequest struct {
	Project         *string  `json:"project,omitempty"`
	TaskTitle       *string  `json:"taskTitle,omitempty"`
	TaskDescription *string  `json:"taskDescription,omitempty"`
	ManHours        *float64 `json:"manHours,omitempty"`
}

func (r *UpdateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Project != nil && validator.IsEmpty(*r.Project) {
		errs = append(errs, validator.ValidationError{
			Field:   "project",
			Message: "project must not be empty",
		})
	}
	if r.TaskTitle != nil && validator.IsEmpty(*r.TaskTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "taskTitle",
			Message: "taskTitle must not be empty",
		})
	}
	if r.ManHours != nil && *r.ManHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "manHours",
			Message: "manHours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MemberDayResponse is a team member with the reports of the selected day
// and their rendered lines.
type MemberDayResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	ProjectName string   `json:"project_name"`
	Submitted   bool     `json:"submitted"`
	Reports     []Report `json:"reports"`
	Lines       []string `json:"lines"`
}

type TeamDayResponse struct {
	Name    string              `json:"name"`
	Members []MemberDayResponse `json:"members"`
}
