package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP status codes by
// the API error handler.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCallNotFound     = errors.New("call not found")

	// ErrInvalidCredentials is returned for any login failure. The message
	// deliberately does not reveal whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserExists = errors.New("user already exists")

	// ErrAdminProtected rejects deletion of any user whose role is admin.
	ErrAdminProtected = errors.New("admin users cannot be deleted")

	ErrForbidden  = errors.New("access forbidden")
	ErrValidation = errors.New("validation failed")
)
