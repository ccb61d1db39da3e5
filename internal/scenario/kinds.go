package scenario

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zeusync/physkit/internal/projectile"
	"github.com/zeusync/physkit/pkg/arith"
	"github.com/zeusync/physkit/pkg/kinematics"
	"github.com/zeusync/physkit/pkg/linalg"
)

// Kind names the calculation a Problem performs.
type Kind string

const (
	KindPosition             Kind = "position"
	KindVelocityAtTime       Kind = "velocity_at_time"
	KindVelocityFromPosition Kind = "velocity_from_position"
	KindTimeToPosition       Kind = "time_to_position"
	KindTimesToPosition      Kind = "times_to_position"
	KindNextTimeAtPosition   Kind = "next_time_at_position"
	KindStoppingDistance     Kind = "stopping_distance"
	KindTimeToVelocity       Kind = "time_to_velocity"
	KindProjectile           Kind = "projectile"
	KindVector               Kind = "vector"
	KindAdd                  Kind = "add"
	KindSub                  Kind = "sub"
	KindMul                  Kind = "mul"
	KindDiv                  Kind = "div"
)

// VectorReport describes a single vector.
type VectorReport struct {
	Vector     linalg.Vector2  `json:"vector"`
	Mag        float64         `json:"mag"` // squared magnitude
	Length     float64         `json:"length"`
	Unit       *linalg.Vector2 `json:"unit,omitempty"` // unset for the zero vector
	Normalized linalg.Vector2  `json:"normalized"`
	AngleRad   float64         `json:"angle_rad"`
	AngleDeg   float64         `json:"angle_deg"`
	Text       string          `json:"text"`
}

// outcome is what a solver produces; exactly one field is set on success.
type outcome struct {
	value      *float64
	values     []float64
	vector     *VectorReport
	projectile *projectile.Summary
}

func scalar(v float64, err error) (outcome, error) {
	if err != nil {
		return outcome{}, err
	}
	return outcome{value: &v}, nil
}

type solver struct {
	required []string
	optional map[string]float64
	solve    func(p params) (outcome, error)
}

var solvers = map[Kind]solver{
	KindPosition: {
		required: []string{"x0", "v0", "t", "a"},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.Position(p["x0"], p["v0"], p["t"], p["a"]), nil)
		},
	},
	KindVelocityAtTime: {
		required: []string{"v0", "t", "a"},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.VelocityAtTime(p["v0"], p["t"], p["a"]), nil)
		},
	},
	KindVelocityFromPosition: {
		required: []string{"v0", "x", "x0", "a"},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.VelocityFromPosition(p["v0"], p["x"], p["x0"], p["a"]))
		},
	},
	KindTimeToPosition: {
		required: []string{"x0", "x", "v0", "a"},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.TimeToPosition(p["x0"], p["x"], p["v0"], p["a"]))
		},
	},
	KindTimesToPosition: {
		required: []string{"x0", "x", "v0", "a"},
		solve: func(p params) (outcome, error) {
			times, err := kinematics.TimesToPosition(p["x0"], p["x"], p["v0"], p["a"])
			if err != nil {
				return outcome{}, err
			}
			return outcome{values: times}, nil
		},
	},
	KindNextTimeAtPosition: {
		required: []string{"x0", "x", "v0", "a"},
		optional: map[string]float64{"after": 0},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.NextTimeAtPosition(p["x0"], p["x"], p["v0"], p["a"], p["after"]))
		},
	},
	KindStoppingDistance: {
		required: []string{"v0", "a"},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.StoppingDistance(p["v0"], p["a"]))
		},
	},
	KindTimeToVelocity: {
		required: []string{"v0", "v", "a"},
		solve: func(p params) (outcome, error) {
			return scalar(kinematics.TimeToVelocity(p["v0"], p["v"], p["a"]))
		},
	},
	KindProjectile: {
		required: []string{"speed", "angle_deg"},
		optional: map[string]float64{"gravity": kinematics.Gravity, "step": 0.01},
		solve: func(p params) (outcome, error) {
			launch := projectile.Launch{
				Speed:    p["speed"],
				AngleDeg: p["angle_deg"],
				Gravity:  p["gravity"],
				Step:     p["step"],
			}
			summary, err := launch.Analyze()
			if err != nil {
				return outcome{}, err
			}
			return outcome{projectile: &summary}, nil
		},
	},
	KindVector: {
		required: []string{"x", "y"},
		solve: func(p params) (outcome, error) {
			v := linalg.New(p["x"], p["y"])
			report := &VectorReport{
				Vector:     v,
				Mag:        v.Mag(),
				Length:     v.Length(),
				Normalized: v.Normalize(),
				AngleRad:   v.Angle(),
				AngleDeg:   linalg.RadToDeg(v.Angle()),
				Text:       v.String(),
			}
			if v.Mag() != 0 {
				unit := v.Unit()
				report.Unit = &unit
			}
			return outcome{vector: report}, nil
		},
	},
	KindAdd: binary(func(i, j float64) (float64, error) { return arith.Add(i, j), nil }),
	KindSub: binary(func(i, j float64) (float64, error) { return arith.Sub(i, j), nil }),
	KindMul: binary(func(i, j float64) (float64, error) { return arith.Mul(i, j), nil }),
	KindDiv: binary(arith.Div),
}

func binary(fn func(i, j float64) (float64, error)) solver {
	return solver{
		required: []string{"i", "j"},
		solve: func(p params) (outcome, error) {
			return scalar(fn(p["i"], p["j"]))
		},
	}
}

// Kinds lists every supported problem kind, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(solvers))
	for k := range solvers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

type params map[string]float64

// bind checks the raw parameters against the solver signature and fills in defaults.
func (s solver) bind(raw map[string]float64) (params, error) {
	var missing, unknown []string
	for _, name := range s.required {
		if _, ok := raw[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range raw {
		if !slices.Contains(s.required, name) {
			if _, ok := s.optional[name]; !ok {
				unknown = append(unknown, name)
			}
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingParam, strings.Join(missing, ", "))
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownParam, strings.Join(unknown, ", "))
	}

	p := make(params, len(s.required)+len(s.optional))
	for name, def := range s.optional {
		p[name] = def
	}
	for name, v := range raw {
		p[name] = v
	}
	return p, nil
}
