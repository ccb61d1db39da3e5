package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/physkit/internal/core/observability/log"
	"github.com/zeusync/physkit/internal/projectile"
)

// Result is the outcome of one problem. Error is set instead of the value fields on failure.
type Result struct {
	Name       string              `json:"name"`
	Kind       Kind                `json:"kind"`
	Value      *float64            `json:"value,omitempty"`
	Values     []float64           `json:"values,omitempty"`
	Vector     *VectorReport       `json:"vector,omitempty"`
	Projectile *projectile.Summary `json:"projectile,omitempty"`
	Error      string              `json:"error,omitempty"`

	err error
}

// Err returns the evaluation error, if any.
func (r Result) Err() error { return r.err }

// Report collects the results of one scenario run.
type Report struct {
	ID       string   `json:"id"`
	Scenario string   `json:"scenario"`
	Digest   string   `json:"digest,omitempty"`
	Results  []Result `json:"results"`
	Failed   int      `json:"failed"`
}

// Result looks a result up by problem name.
func (r *Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Evaluator solves scenario problems one after another.
type Evaluator struct {
	logger log.Log
	newID  func() string
}

func NewEvaluator(logger log.Log) *Evaluator {
	return &Evaluator{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Run reads a scenario, evaluates it and returns the report. The digest is taken
// over the raw input so identical files can be recognised across runs.
func (e *Evaluator) Run(r io.Reader, format Format) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	s, err := Load(data, format)
	if err != nil {
		e.logger.Error("scenario rejected", log.Error(err))
		return nil, err
	}

	report := e.Evaluate(s)
	report.Digest = Digest(data)
	return report, nil
}

// Evaluate solves every problem in order. Problem failures are recorded, not returned.
func (e *Evaluator) Evaluate(s *Scenario) *Report {
	report := &Report{
		ID:       e.newID(),
		Scenario: s.Name,
		Results:  make([]Result, 0, len(s.Problems)),
	}
	logger := e.logger.With(log.String("scenario", s.Name), log.String("run", report.ID))
	logger.Info("evaluating scenario", log.Int("problems", len(s.Problems)))

	for _, p := range s.Problems {
		res := e.solve(p)
		if res.err != nil {
			report.Failed++
			logger.Warn("problem failed",
				log.String("problem", p.Name),
				log.String("kind", string(p.Kind)),
				log.Any("params", p.Params),
				log.Error(res.err),
			)
		} else {
			logger.Debug("problem solved",
				log.String("problem", p.Name),
				log.String("kind", string(p.Kind)),
			)
		}
		report.Results = append(report.Results, res)
	}

	logger.Info("scenario evaluated",
		log.Int("solved", len(report.Results)-report.Failed),
		log.Int("failed", report.Failed),
	)
	return report
}

func (e *Evaluator) solve(p Problem) Result {
	res := Result{Name: p.Name, Kind: p.Kind}

	s, ok := solvers[p.Kind]
	if !ok {
		return res.fail(fmt.Errorf("%w: %q", ErrUnknownKind, p.Kind))
	}
	args, err := s.bind(p.Params)
	if err != nil {
		return res.fail(err)
	}
	out, err := s.solve(args)
	if err != nil {
		return res.fail(err)
	}
	if !out.finite() {
		return res.fail(ErrNonFinite)
	}

	res.Value = out.value
	res.Values = out.values
	res.Vector = out.vector
	res.Projectile = out.projectile
	return res
}

func (o outcome) finite() bool {
	isFinite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	if o.value != nil && !isFinite(*o.value) {
		return false
	}
	for _, v := range o.values {
		if !isFinite(v) {
			return false
		}
	}
	if o.vector != nil {
		x, y := o.vector.Vector.Components()
		if !isFinite(x) || !isFinite(y) || !isFinite(o.vector.Mag) {
			return false
		}
	}
	if s := o.projectile; s != nil {
		for _, f := range []float64{s.MaxHeight, s.Range, s.FlightTime, s.TheoreticalMaxHeight,
			s.TheoreticalRange, s.HeightError, s.RangeError} {
			if !isFinite(f) {
				return false
			}
		}
	}
	return true
}

func (r Result) fail(err error) Result {
	r.err = err
	r.Error = err.Error()
	return r
}

// Digest is the hex xxhash64 of the raw scenario bytes.
func Digest(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}

// Encode writes the report as indented JSON.
func (r *Report) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
