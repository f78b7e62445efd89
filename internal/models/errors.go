package models

import "errors"

// Domain errors surfaced to callers. The handler layer maps these to HTTP
// status codes, everything else is treated as an internal error.
var (
	ErrClientNotFound    = errors.New("client not found")
	ErrCreditNotFound    = errors.New("credit not found")
	ErrRepaymentNotFound = errors.New("repayment not found")
	ErrUserNotFound      = errors.New("user not found")

	// ErrCreditNotAccepted is returned when a repayment is recorded against
	// a credit that is not in the ACCEPTED state.
	ErrCreditNotAccepted = errors.New("credit is not accepted")

	// ErrCreditFinalized is returned when approving or rejecting a credit
	// that has already left the IN_PROGRESS state.
	ErrCreditFinalized = errors.New("credit has already been decided")

	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
