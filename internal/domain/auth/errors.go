package auth

import "errors"

var (
	ErrInvalidToken          = errors.New("Invalid or missing token")
	ErrAdminAccessRequired   = errors.New("Admin access required")
	ErrAuthenticationMissing = errors.New("Authentication required")
)
