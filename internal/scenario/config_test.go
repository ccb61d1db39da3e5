package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const freeFallYAML = `
name: free fall
problems:
  - name: drop time
    kind: time_to_position
    params: {x0: 100, x: 0, v0: 0, a: -9.8}
  - name: impact speed
    kind: velocity_from_position
    params: {v0: 0, x: 0, x0: 100, a: -9.8}
`

const freeFallJSON = `{
  "name": "free fall",
  "problems": [
    {"name": "drop time", "kind": "time_to_position", "params": {"x0": 100, "x": 0, "v0": 0, "a": -9.8}}
  ]
}`

func TestLoadYAML(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(freeFallYAML))
	require.NoError(t, err)
	require.Equal(t, "free fall", s.Name)
	require.Len(t, s.Problems, 2)
	assert.Equal(t, KindTimeToPosition, s.Problems[0].Kind)
	assert.Equal(t, 100.0, s.Problems[0].Params["x0"])
	assert.Equal(t, -9.8, s.Problems[1].Params["a"])
}

func TestLoadJSON(t *testing.T) {
	s, err := LoadJSON(strings.NewReader(freeFallJSON))
	require.NoError(t, err)
	require.Len(t, s.Problems, 1)
	assert.Equal(t, "drop time", s.Problems[0].Name)
}

func TestLoad_Detect(t *testing.T) {
	s, err := Load([]byte("  \n"+freeFallJSON), FormatAuto)
	require.NoError(t, err)
	require.Len(t, s.Problems, 1)

	s, err = Load([]byte(freeFallYAML), FormatAuto)
	require.NoError(t, err)
	require.Len(t, s.Problems, 2)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Load([]byte("name: nothing\n"), FormatYAML)
		require.ErrorIs(t, err, ErrEmptyScenario)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load([]byte(`{"name":"x","problems":[],"extra":1}`), FormatJSON)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("garbage yaml", func(t *testing.T) {
		_, err := Load([]byte("problems: [unterminated"), FormatYAML)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := Load(nil, FormatAuto)
		require.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("duplicate names", func(t *testing.T) {
		doc := "problems:\n  - {name: a, kind: add}\n  - {name: a, kind: sub}\n"
		_, err := Load([]byte(doc), FormatYAML)
		require.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := Load([]byte(freeFallJSON), Format("toml"))
		require.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestValidate_NamesUnnamedProblems(t *testing.T) {
	s := &Scenario{Problems: []Problem{{Kind: KindAdd}, {Name: "named", Kind: KindSub}}}
	require.NoError(t, s.Validate())
	assert.Equal(t, "problem-1", s.Problems[0].Name)
	assert.Equal(t, "named", s.Problems[1].Name)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "YAML": FormatYAML, "yml": FormatYAML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrInvalidFormat)

	assert.Equal(t, FormatJSON, FormatForPath("problems/drop.JSON"))
	assert.Equal(t, FormatYAML, FormatForPath("drop.yml"))
	assert.Equal(t, FormatAuto, FormatForPath("-"))
}
