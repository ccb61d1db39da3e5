package linalg

import "math"

const (
	Pi = math.Pi
	E  = math.E
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * (Pi / 180.0) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * (180.0 / Pi) }
