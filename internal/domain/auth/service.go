package auth

import (
	"context"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, actor user.CurrentUser, req ChangePasswordRequest) error
}
