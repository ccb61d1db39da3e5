package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the scenario decoder.
type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml", "json" or "" (auto).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// FormatForPath guesses the format from a file extension, falling back to auto.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Scenario is a named list of problems, written in YAML or JSON.
type Scenario struct {
	Name     string    `json:"name" yaml:"name"`
	Problems []Problem `json:"problems" yaml:"problems"`
}

// Problem is one calculation. Params are keyed by the argument names of the
// underlying function, e.g. x0, v0, t, a for position.
type Problem struct {
	Name   string             `json:"name" yaml:"name"`
	Kind   Kind               `json:"kind" yaml:"kind"`
	Params map[string]float64 `json:"params,omitempty" yaml:"params,omitempty"`
}

// LoadJSON loads a scenario from a JSON reader.
func LoadJSON(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalidFormat, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadYAML loads a scenario from a YAML reader.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrInvalidFormat, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load decodes data in the given format. FormatAuto treats input starting with '{' as JSON.
func Load(data []byte, format Format) (*Scenario, error) {
	if format == FormatAuto {
		format = FormatYAML
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	switch format {
	case FormatJSON:
		return LoadJSON(bytes.NewReader(data))
	case FormatYAML:
		return LoadYAML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// Validate checks the scenario shape. Parameter errors are reported per problem at evaluation.
func (s *Scenario) Validate() error {
	if len(s.Problems) == 0 {
		return ErrEmptyScenario
	}
	seen := make(map[string]struct{}, len(s.Problems))
	for i := range s.Problems {
		p := &s.Problems[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("problem-%d", i+1)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
