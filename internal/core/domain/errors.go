package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrManagerRequired    = errors.New("a manager is required for the User role")

	ErrActivityNotFound   = errors.New("activity not found")
	ErrPermissionDenied   = errors.New("activity permission denied")
	ErrInvalidDate        = errors.New("invalid activity date")
	ErrEmptyActivityText  = errors.New("activity text is empty")

	ErrViewLocked     = errors.New("view cannot be revoked while other permissions are granted")
	ErrInvalidPerm    = errors.New("unknown permission field")
	ErrNoDraft        = errors.New("no permission draft in progress")
	ErrPasswordReused = errors.New("new password must be different")
	ErrWrongPassword  = errors.New("old password incorrect")
	ErrInvalidImage   = errors.New("invalid image payload")
)
