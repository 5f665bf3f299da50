package domain

import "errors"

// Sentinel errors returned by the rewrite workflow.
var (
	ErrInputNotFound = errors.New("input document not found or unreadable")
	ErrWriteFailure  = errors.New("output document could not be written")
	ErrInvalidConfig = errors.New("invalid rewrite configuration")
)
