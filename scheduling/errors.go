package scheduling

import "errors"

var (
	// ErrInvalidAlgorithm is returned when the algorithm selector is not one
	// of the supported algorithms.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidQuantum is returned when Round-Robin is asked to run with a
	// non-positive quantum.
	ErrInvalidQuantum = errors.New("invalid quantum")

	// ErrDuplicateID is returned when two processes of a run share an ID.
	ErrDuplicateID = errors.New("duplicate process id")

	// ErrSchedulerUsed is returned when a scheduler is asked to run twice.
	ErrSchedulerUsed = errors.New("scheduler already used")
)
