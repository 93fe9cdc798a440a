package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrSupervisorNotFound      = errors.New("supervisor not found")
	ErrIneligibleSupervisor    = errors.New("supervisor role is not allowed for this role")
	ErrSelfSupervision         = errors.New("user cannot supervise themselves")
	ErrRootAdminImmutable      = errors.New("root admin cannot be deleted")
	ErrUserHasSubordinates     = errors.New("user still has subordinates")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrNonMemberAccessRequired = errors.New("leader or higher role required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
