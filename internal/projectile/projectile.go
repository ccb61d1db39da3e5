// Package projectile samples the flight of a body launched over flat ground, treating
// the horizontal axis as uniform motion and the vertical axis as uniformly accelerated.
package projectile

import (
	"errors"
	"fmt"
	"math"

	"github.com/zeusync/physkit/pkg/kinematics"
	"github.com/zeusync/physkit/pkg/linalg"
)

// MaxSamples bounds the length of a trajectory.
const MaxSamples = 1_000_000

var (
	ErrInvalidLaunch  = errors.New("invalid launch")
	ErrNoFlight       = errors.New("launch angle gives no upward velocity")
	ErrTooManySamples = errors.New("trajectory exceeds sample limit")
)

// Launch describes the initial conditions. Gravity is signed and must be negative.
type Launch struct {
	Speed    float64 // m/s
	AngleDeg float64 // degrees above the horizon
	Gravity  float64 // m/s²
	Step     float64 // s
}

type Sample struct {
	T        float64        `json:"t"`
	Position linalg.Vector2 `json:"position"`
}

type Summary struct {
	MaxHeight            float64 `json:"max_height"`
	Range                float64 `json:"range"`
	FlightTime           float64 `json:"flight_time"`
	TheoreticalMaxHeight float64 `json:"theoretical_max_height"`
	TheoreticalRange     float64 `json:"theoretical_range"`
	HeightError          float64 `json:"height_error"`
	RangeError           float64 `json:"range_error"`
	Samples              int     `json:"samples"`
}

func (l Launch) Validate() error {
	switch {
	case !(l.Speed > 0):
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidLaunch, l.Speed)
	case !(l.Step > 0):
		return fmt.Errorf("%w: step must be positive, got %g", ErrInvalidLaunch, l.Step)
	case !(l.Gravity < 0):
		return fmt.Errorf("%w: gravity must be negative, got %g", ErrInvalidLaunch, l.Gravity)
	}
	if l.Velocity().Y() <= 0 {
		return fmt.Errorf("%w: angle %g°", ErrNoFlight, l.AngleDeg)
	}
	return nil
}

// Velocity is the initial velocity vector.
func (l Launch) Velocity() linalg.Vector2 {
	return linalg.FromMagAng(l.Speed, linalg.DegToRad(l.AngleDeg))
}

// FlightTime is the time until the body returns to launch height.
func (l Launch) FlightTime() (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	return kinematics.NextTimeAtPosition(0, 0, l.Velocity().Y(), l.Gravity, 0)
}

// At returns the position at time t.
func (l Launch) At(t float64) linalg.Vector2 {
	vx, vy := l.Velocity().Components()
	return linalg.New(
		kinematics.Position(0, vx, t, 0),
		kinematics.Position(0, vy, t, l.Gravity),
	)
}

// Trajectory samples the flight every Step seconds and ends with the landing point.
func (l Launch) Trajectory() ([]Sample, error) {
	flight, err := l.FlightTime()
	if err != nil {
		return nil, err
	}
	// compare in float: the ratio can exceed the int range, and flight is +Inf once v² overflows
	ratio := math.Ceil(flight / l.Step)
	if math.IsInf(flight, 0) || math.IsNaN(ratio) || ratio+1 > MaxSamples {
		return nil, fmt.Errorf("%w: flight %g s at step %g s", ErrTooManySamples, flight, l.Step)
	}
	n := int(ratio)

	samples := make([]Sample, 0, n+1)
	for i := 0; i < n; i++ {
		t := float64(i) * l.Step
		if t >= flight {
			break
		}
		p := l.At(t)
		if p.Y() < 0 {
			break
		}
		samples = append(samples, Sample{T: t, Position: p})
	}

	// landing is at launch height by construction; drop the rounding residue in y
	landing := l.At(flight)
	samples = append(samples, Sample{
		T:        flight,
		Position: linalg.New(landing.X(), 0),
	})
	return samples, nil
}

// Analyze compares the sampled trajectory against the closed-form apex and range.
func (l Launch) Analyze() (Summary, error) {
	samples, err := l.Trajectory()
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, smp := range samples {
		s.MaxHeight = math.Max(s.MaxHeight, smp.Position.Y())
		s.Range = math.Max(s.Range, smp.Position.X())
	}
	s.FlightTime = samples[len(samples)-1].T
	s.Samples = len(samples)

	vx, vy := l.Velocity().Components()
	if s.TheoreticalMaxHeight, err = kinematics.StoppingDistance(vy, l.Gravity); err != nil {
		return Summary{}, err
	}
	s.TheoreticalRange = vx * s.FlightTime
	s.HeightError = math.Abs(s.MaxHeight - s.TheoreticalMaxHeight)
	s.RangeError = math.Abs(s.Range - s.TheoreticalRange)
	return s, nil
}
