package hybrid

import "errors"

// Configuration errors reported before a run starts.
var (
	// ErrNonPositiveStep indicates a zero or negative step size.
	ErrNonPositiveStep = errors.New("hybrid: step sizes must be positive")

	// ErrUnorderedSteps indicates a step triple that is not ordered
	// finest to coarsest.
	ErrUnorderedSteps = errors.New("hybrid: step sizes must satisfy event <= obs <= report")

	// ErrReversedRange indicates a final time before the initial time.
	ErrReversedRange = errors.New("hybrid: final time precedes initial time")

	// ErrNilSystem indicates integration without a dynamics provider.
	ErrNilSystem = errors.New("hybrid: system is nil")

	// ErrEmptyState indicates an initial state with no components.
	ErrEmptyState = errors.New("hybrid: initial state is empty")
)
