package domain

import "errors"

// Validation and command outcomes. All recoverable: the transport layer
// maps each one to an HTTP status and a user-facing message.
var (
	ErrInvalidRange     = errors.New("invalid_range")
	ErrPastTime         = errors.New("past_time")
	ErrBadGranularity   = errors.New("bad_granularity")
	ErrDurationExceeded = errors.New("duration_exceeded")
	ErrAfterClosing     = errors.New("after_closing")
	ErrConflict         = errors.New("conflict")
	ErrForbidden        = errors.New("forbidden")
	ErrTooLateToCancel  = errors.New("too_late_to_cancel")
	ErrNotFound         = errors.New("not_found")
)
