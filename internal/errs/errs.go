package errs

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSelfTransfer       = errors.New("cannot transfer to the same account")
	ErrCredentialMismatch = errors.New("username or pin does not match")
	ErrLoanRejected       = errors.New("no deposit of at least 10% of the requested loan")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrSessionNotFound    = errors.New("session not found or expired")
)
