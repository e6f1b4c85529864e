package entity

import "errors"

var (
	ErrDuplicateAccount   = errors.New("username already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrLeadNotFound       = errors.New("lead not found")
)
