// Package arith holds the scalar helpers exposed next to the vector and kinematics APIs.
package arith

import (
	"errors"
	"fmt"
)

var ErrDivisionByZero = errors.New("divisor is zero")

func Add(i, j float64) float64 { return i + j }
func Sub(i, j float64) float64 { return i - j }
func Mul(i, j float64) float64 { return i * j }

// Div returns i / j, refusing a zero divisor.
func Div(i, j float64) (float64, error) {
	if j == 0 {
		return 0, fmt.Errorf("%w: %g / %g", ErrDivisionByZero, i, j)
	}
	return i / j, nil
}

// Reduce sums values onto initial.
func Reduce(values []float64, initial float64) float64 {
	sum := initial
	for _, v := range values {
		sum += v
	}
	return sum
}
