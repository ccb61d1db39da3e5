package kinematics

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Solver errors
var (
	ErrUnreachablePosition = fmt.Errorf("%w: position unreachable (negative v^2)", ErrInvalidArgument)
	ErrUnreachableTarget   = fmt.Errorf("%w: target unreachable (no non-negative time)", ErrInvalidArgument)
	ErrNoSolution          = fmt.Errorf("%w: no solution with zero velocity and zero acceleration", ErrInvalidArgument)
	ErrNeverStops          = fmt.Errorf("%w: acceleration does not oppose velocity", ErrInvalidArgument)
	ErrUnreachableVelocity = fmt.Errorf("%w: velocity unreachable", ErrInvalidArgument)
	ErrNaNInput            = fmt.Errorf("%w: NaN input", ErrInvalidArgument)
)
