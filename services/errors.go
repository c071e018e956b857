package services

import "errors"

// Stable error categories surfaced by the service layer. Callers wrap these
// with fmt.Errorf("...: %w", Err...) so controllers can map them to HTTP
// statuses with errors.Is while keeping the detailed message.
var (
	// ErrValidation marks missing or malformed input parameters.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing user, conference, paper, or an empty
	// reviewer pool.
	ErrNotFound = errors.New("not found")

	// ErrAuthorization marks a caller without the required conference role.
	ErrAuthorization = errors.New("permission denied")

	// ErrConflict marks duplicate submissions and concurrent-run rejections.
	ErrConflict = errors.New("conflict")

	// ErrOptimization marks a solve that did not reach an optimal solution.
	// No partial assignment is ever applied.
	ErrOptimization = errors.New("could not find optimal assignment")

	// ErrPersistence marks a failed replace-and-flag transaction. The prior
	// assignment set is left untouched.
	ErrPersistence = errors.New("persistence failed")
)
