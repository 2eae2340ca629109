package service

import "errors"

// Domain error taxonomy. The HTTP layer translates these to status codes;
// everything else maps to the unclassified 400 fallback.
var (
	ErrDuplicateUser     = errors.New("username already registered")
	ErrMinPasswordLength = errors.New("password below minimum length")
	ErrLogin             = errors.New("invalid username or password")
	ErrAccountNotFound   = errors.New("account not found")
	ErrMessageNotFound   = errors.New("message not found")
	ErrMessageLength     = errors.New("message text length out of bounds")
)
