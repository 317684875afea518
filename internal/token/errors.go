package token

import "errors"

var (
	// ErrInsufficientBalance represents insufficient token balance error
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInsufficientAuthorization indicates the operator's authorized
	// amount does not cover the transfer.
	ErrInsufficientAuthorization = errors.New("insufficient operator authorization")
)
