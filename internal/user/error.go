package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSelfDeactivate     = errors.New("cannot deactivate your own account")
	ErrMissingFields      = errors.New("name, email, password and role are required")
)
