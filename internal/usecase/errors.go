package usecase

import "errors"

// Error taxonomy shared by all services. Handlers map these onto HTTP codes;
// everything else is treated as an internal error.
var (
	// ErrValidation marks malformed or constraint-violating input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound covers unknown resources. Access resolution deliberately
	// returns it for wrong passwords and inactive windows too, so callers
	// cannot probe which part failed.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a claim attempt that lost the race for a slot.
	ErrConflict = errors.New("conflict")

	// ErrStorage wraps persistence failures.
	ErrStorage = errors.New("storage error")
)
