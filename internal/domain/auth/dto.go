package auth

import (
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email format is wrong!",
		})
	}

	if len(r.Password) < user.MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	ExpiresAt   int64            `json:"expires_at"`
	User        user.CurrentUser `json:"user"`
}

type ChangePasswordRequest struct {
	UserID      int64  `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId is required",
		})
	}

	if validator.IsEmpty(r.OldPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "oldPassword",
			Message: "oldPassword is required",
		})
	}

	if len(r.NewPassword) < user.MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "Password must be at least 6 characters",
		})
	} else if r.NewPassword == r.OldPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword must differ from oldPassword",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
