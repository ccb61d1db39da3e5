// Package kinematics implements the one-dimensional equations of motion under
// constant acceleration and their closed-form inverses.
//
// Positions are in metres, velocities in m/s, accelerations in m/s² and times
// in seconds. Every function is pure.
package kinematics

import (
	"fmt"
	"math"
	"slices"
)

// Gravity is the acceleration due to gravity near the Earth's surface, pointing down.
const Gravity = -9.8

// Position returns x0 + v0·t + ½·a·t². Negative t refers to the time before the reference instant.
func Position(x0, v0, t, a float64) float64 {
	return x0 + v0*t + 0.5*a*t*t
}

// VelocityAtTime returns v0 + a·t.
func VelocityAtTime(v0, t, a float64) float64 {
	return v0 + a*t
}

// VelocityFromPosition returns the speed at position x for a body that was at x0
// with velocity v0, from v² = v0² + 2a(x − x0). The non-negative root is returned.
// Note the argument order: final position x comes before initial position x0.
func VelocityFromPosition(v0, x, x0, a float64) (float64, error) {
	if hasNaN(v0, x, x0, a) {
		return 0, ErrNaNInput
	}
	vSquared := v0*v0 + 2.0*a*(x-x0)
	if vSquared < 0 {
		return 0, fmt.Errorf("%w: v0=%g x=%g x0=%g a=%g", ErrUnreachablePosition, v0, x, x0, a)
	}
	return math.Sqrt(vSquared), nil
}

// TimeToPosition returns the earliest non-negative time at which a body starting at x0
// with velocity v0 and acceleration a reaches x.
//
// With a == 0 the equation is linear and (x − x0)/v0 is returned as is. A body at rest
// on its target yields 0; at rest elsewhere it is ErrNoSolution.
func TimeToPosition(x0, x, v0, a float64) (float64, error) {
	if hasNaN(x0, x, v0, a) {
		return 0, ErrNaNInput
	}
	if a == 0 {
		return linearTime(x0, x, v0)
	}

	lo, hi, err := quadraticRoots(x0, x, v0, a)
	if err != nil {
		return 0, err
	}
	switch {
	case lo >= 0:
		return lo + 0, nil // +0 drops a negative zero
	case hi >= 0:
		return hi + 0, nil
	default:
		return 0, fmt.Errorf("%w: both roots negative (%g, %g)", ErrUnreachableTarget, lo, hi)
	}
}

// TimesToPosition returns every real time, ascending and including negative ones,
// at which the body is at x. A body at rest on its target reports [0].
func TimesToPosition(x0, x, v0, a float64) ([]float64, error) {
	if hasNaN(x0, x, v0, a) {
		return nil, ErrNaNInput
	}
	if a == 0 {
		t, err := linearTime(x0, x, v0)
		if err != nil {
			return nil, err
		}
		return []float64{t}, nil
	}

	lo, hi, err := quadraticRoots(x0, x, v0, a)
	if err != nil {
		return nil, err
	}
	lo, hi = lo+0, hi+0
	if lo == hi {
		return []float64{lo}, nil
	}
	return []float64{lo, hi}, nil
}

// NextTimeAtPosition returns the first time strictly after `after` at which the body
// is at x. Useful for a return trip, where TimeToPosition would report the start.
// A body resting on its target is there at every instant, so `after` is returned.
func NextTimeAtPosition(x0, x, v0, a, after float64) (float64, error) {
	if hasNaN(x0, x, v0, a, after) {
		return 0, ErrNaNInput
	}
	if a == 0 && v0 == 0 && x == x0 {
		return after, nil
	}

	times, err := TimesToPosition(x0, x, v0, a)
	if err != nil {
		return 0, err
	}
	idx := slices.IndexFunc(times, func(t float64) bool { return t > after })
	if idx < 0 {
		return 0, fmt.Errorf("%w: no crossing after t=%g", ErrUnreachableTarget, after)
	}
	return times[idx], nil
}

// StoppingDistance returns the distance covered until the velocity reaches zero,
// -v0²/(2a). The acceleration must oppose v0.
func StoppingDistance(v0, a float64) (float64, error) {
	if hasNaN(v0, a) {
		return 0, ErrNaNInput
	}
	if v0 == 0 {
		return 0, nil
	}
	if a == 0 || math.Signbit(a) == math.Signbit(v0) {
		return 0, fmt.Errorf("%w: v0=%g a=%g", ErrNeverStops, v0, a)
	}
	return -(v0 * v0) / (2 * a), nil
}

// TimeToVelocity returns the non-negative time to go from v0 to v, (v − v0)/a.
func TimeToVelocity(v0, v, a float64) (float64, error) {
	if hasNaN(v0, v, a) {
		return 0, ErrNaNInput
	}
	if v == v0 {
		return 0, nil
	}
	if a == 0 {
		return 0, fmt.Errorf("%w: v0=%g v=%g with zero acceleration", ErrUnreachableVelocity, v0, v)
	}
	t := (v - v0) / a
	if t < 0 {
		return 0, fmt.Errorf("%w: v=%g was reached %g s in the past", ErrUnreachableVelocity, v, -t)
	}
	return t, nil
}

// hasNaN reports whether any input is NaN. NaN fails every comparison, so it would
// otherwise fall through to the unreachable branches.
func hasNaN(vals ...float64) bool {
	return slices.ContainsFunc(vals, math.IsNaN)
}

func linearTime(x0, x, v0 float64) (float64, error) {
	if v0 == 0 {
		if x == x0 {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: x0=%g x=%g", ErrNoSolution, x0, x)
	}
	return (x - x0) / v0, nil
}

// quadraticRoots solves ½a·t² + v0·t + (x0 − x) = 0 for a != 0 and returns the roots
// in ascending order. The discriminant is v0² − 2a(x0 − x).
func quadraticRoots(x0, x, v0, a float64) (lo, hi float64, err error) {
	qa, qb, qc := 0.5*a, v0, x0-x
	disc := v0*v0 - 2.0*a*(x0-x)
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: discriminant %g < 0", ErrUnreachableTarget, disc)
	}

	// q = -½(b + sign(b)·√D) avoids cancellation when b² dominates.
	q := -0.5 * (qb + math.Copysign(math.Sqrt(disc), qb))
	if q == 0 {
		// b == 0 and D == 0, which forces c == 0: a double root at zero.
		return 0, 0, nil
	}
	r1, r2 := q/qa, qc/q
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return r1, r2, nil
}
