// Package linalg provides a small 2D vector value type.
//
// Vector2 methods with value receivers never modify their operands and return
// a new vector. The *Assign methods use pointer receivers, update the receiver
// in place and return it so calls can be chained.
package linalg

import (
	"encoding/json"
	"math"
	"strconv"
)

// Vector2 is a 2D vector of float64 components. The zero value is (0, 0).
type Vector2 struct {
	x, y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vector2 {
	return Vector2{x: x, y: y}
}

// FromMagAng builds a vector from polar form, angle in radians.
func FromMagAng(magnitude, angle float64) Vector2 {
	return Vector2{
		x: magnitude * math.Cos(angle),
		y: magnitude * math.Sin(angle),
	}
}

func (v Vector2) X() float64 { return v.x }
func (v Vector2) Y() float64 { return v.y }

// Components returns both coordinates.
func (v Vector2) Components() (x, y float64) { return v.x, v.y }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.x + o.x, v.y + o.y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.x - o.x, v.y - o.y} }
func (v Vector2) Mul(s float64) Vector2 { return Vector2{v.x * s, v.y * s} }

// Div divides both components by s. Dividing by zero yields IEEE-754 infinities or NaN.
func (v Vector2) Div(s float64) Vector2 { return Vector2{v.x / s, v.y / s} }

func (v Vector2) Negate() Vector2 { return Vector2{-v.x, -v.y} }

func (v *Vector2) AddAssign(o Vector2) *Vector2 {
	v.x += o.x
	v.y += o.y
	return v
}

func (v *Vector2) SubAssign(o Vector2) *Vector2 {
	v.x -= o.x
	v.y -= o.y
	return v
}

func (v *Vector2) MulAssign(s float64) *Vector2 {
	v.x *= s
	v.y *= s
	return v
}

func (v *Vector2) DivAssign(s float64) *Vector2 {
	v.x /= s
	v.y /= s
	return v
}

// Scale is scalar-first multiplication, s * v. It always equals v.Mul(s).
func Scale(s float64, v Vector2) Vector2 {
	return Vector2{s * v.x, s * v.y}
}

// DivBy divides the scalar by each component: (s / v.x, s / v.y).
func DivBy(s float64, v Vector2) Vector2 {
	return Vector2{s / v.x, s / v.y}
}

// Mag returns the SQUARED magnitude x² + y², not the Euclidean length.
// Mag of (3, 4) is 25. Use Length for the true length.
func (v Vector2) Mag() float64 {
	return v.x*v.x + v.y*v.y
}

// MagSquared is an explicit alias of Mag.
func (v Vector2) MagSquared() float64 {
	return v.Mag()
}

// Unit divides the vector by Mag(), i.e. by the squared magnitude, so the result
// is generally not of length one: (3, 4).Unit() is (0.12, 0.16).
// Existing callers depend on this; use Normalize for a real unit vector.
func (v Vector2) Unit() Vector2 {
	return v.Div(v.Mag())
}

// Length returns the Euclidean length.
func (v Vector2) Length() float64 {
	return math.Hypot(v.x, v.y)
}

// Normalize returns the vector scaled to length one. The zero vector is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Div(l)
}

// Angle returns atan2(y, x) in radians.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.y, v.x)
}

// Equal compares components exactly, without tolerance.
func (v Vector2) Equal(o Vector2) bool {
	return v.x == o.x && v.y == o.y
}

func (v Vector2) NotEqual(o Vector2) bool {
	return v.x != o.x || v.y != o.y
}

// String formats the vector as "X: <x> Y: <y>" using the shortest representation
// of each component, so integral values carry no decimal point.
func (v Vector2) String() string {
	return "X: " + formatFloat(v.x) + " Y: " + formatFloat(v.y)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type vectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector2) MarshalJSON() ([]byte, error) {
	return json.Marshal(vectorJSON{X: v.x, Y: v.y})
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var raw vectorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.x, v.y = raw.X, raw.Y
	return nil
}
