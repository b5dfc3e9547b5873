package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal server error")
)

// ErrRequiredFieldEmpty - попытка записать null в email или role.
var ErrRequiredFieldEmpty = errors.New("email and role cannot be empty")
