package scenario

import "errors"

// Scenario errors
var (
	ErrEmptyScenario = errors.New("scenario has no problems")
	ErrInvalidFormat = errors.New("invalid scenario format")
	ErrUnknownKind   = errors.New("unknown problem kind")
	ErrMissingParam  = errors.New("missing problem parameter")
	ErrUnknownParam  = errors.New("unknown problem parameter")
	ErrDuplicateName = errors.New("duplicate problem name")
	ErrNonFinite     = errors.New("result is not a finite number")
)
