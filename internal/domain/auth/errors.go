package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
	ErrPasswordOwnerOnly  = errors.New("password can only be changed by its owner")
)
