package user

import (
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

func assignableRoleStrings() []string {
	roles := make([]string, 0, len(AssignableRoles))
	for _, r := range AssignableRoles {
		roles = append(roles, string(r))
	}
	return roles
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ProjectID    *int64 `json:"projectId,omitempty"`
	SupervisorID *int64 `json:"supervisorId,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(r.Password) < MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(r.Role, assignableRoleStrings()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest represents a partial update (PATCH)
type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Role         *string `json:"role,omitempty"`
	ProjectID    *int64  `json:"projectId,omitempty"`
	SupervisorID *int64  `json:"supervisorId,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, assignableRoleStrings()) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetCanReportRequest toggles whether a user's Teams messages feed the card view
type SetCanReportRequest struct {
	CanReport bool `json:"canReport"`
}

// MinPasswordLength is shared with the auth password change form.
const MinPasswordLength = 6
