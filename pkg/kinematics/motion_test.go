package kinematics

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name          string
		x0, v0, tt, a float64
		want          float64
	}{
		{"at rest", 10, 0, 5, 0, 10},
		{"constant velocity", 0, 5, 10, 0, 50},
		{"constant acceleration from rest", 0, 0, 4, 2, 16},
		{"readme example", 0, 0, 5, 2, 25},
		{"negative time", 0, 10, -2, 0, -20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Position(tt.x0, tt.v0, tt.tt, tt.a))
		})
	}
}

func TestVelocityAtTime(t *testing.T) {
	require.Equal(t, 20.0, VelocityAtTime(10, 5, 2))
	require.Equal(t, 10.0, VelocityAtTime(0, 5, 2))
}

func TestVelocityFromPosition(t *testing.T) {
	t.Run("dropped from 100m", func(t *testing.T) {
		v, err := VelocityFromPosition(0, 0, 100, Gravity)
		require.NoError(t, err)
		assert.InDelta(t, 44.3, v, 0.1)
	})

	t.Run("unreachable", func(t *testing.T) {
		// thrown up at 10 m/s cannot reach 100 m
		_, err := VelocityFromPosition(10, 100, 0, Gravity)
		require.ErrorIs(t, err, ErrUnreachablePosition)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("speed on the way up", func(t *testing.T) {
		v, err := VelocityFromPosition(20, 15, 0, Gravity)
		require.NoError(t, err)
		assert.InDelta(t, 10.2956, v, 0.001)
	})
}

func TestTimeToPosition(t *testing.T) {
	t.Run("free fall from 100m", func(t *testing.T) {
		tt, err := TimeToPosition(100, 0, 0, Gravity)
		require.NoError(t, err)
		assert.InDelta(t, 4.52, tt, 0.01)
	})

	t.Run("target above max height", func(t *testing.T) {
		_, err := TimeToPosition(0, 100, 10, Gravity)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnreachableTarget))
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("both roots negative", func(t *testing.T) {
		_, err := TimeToPosition(0, -10, 10, 2)
		require.ErrorIs(t, err, ErrUnreachableTarget)
	})

	t.Run("earliest of two future crossings", func(t *testing.T) {
		// thrown up at 20 m/s passes 15 m on the way up and down
		tt, err := TimeToPosition(0, 15, 20, Gravity)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, tt, 0.05)
		assert.InDelta(t, 15, Position(0, 20, tt, Gravity), 1e-9)
	})

	t.Run("start equals target", func(t *testing.T) {
		tt, err := TimeToPosition(0, 0, 30, Gravity)
		require.NoError(t, err)
		require.Equal(t, 0.0, tt)
	})

	t.Run("linear", func(t *testing.T) {
		tt, err := TimeToPosition(0, 50, 5, 0)
		require.NoError(t, err)
		require.Equal(t, 10.0, tt)

		tt, err = TimeToPosition(10, 0, 5, 0)
		require.NoError(t, err)
		require.Equal(t, -2.0, tt)
	})

	t.Run("at rest", func(t *testing.T) {
		tt, err := TimeToPosition(3, 3, 0, 0)
		require.NoError(t, err)
		require.Equal(t, 0.0, tt)

		_, err = TimeToPosition(3, 4, 0, 0)
		require.ErrorIs(t, err, ErrNoSolution)
	})

	t.Run("solution satisfies position", func(t *testing.T) {
		cases := [][4]float64{
			{0, 80.4, 0, 26.8 / 6},
			{5, -20, 3, -2},
			{-1, 7, 0.5, 0.25},
		}
		for _, c := range cases {
			tt, err := TimeToPosition(c[0], c[1], c[2], c[3])
			require.NoError(t, err)
			require.GreaterOrEqual(t, tt, 0.0)
			assert.InDelta(t, c[1], Position(c[0], c[2], tt, c[3]), 1e-6)
		}
	})
}

func TestTimesToPosition(t *testing.T) {
	times, err := TimesToPosition(0, 0, 30, Gravity)
	require.NoError(t, err)
	require.Len(t, times, 2)
	require.Equal(t, 0.0, times[0])
	assert.InDelta(t, 6.12, times[1], 0.01)

	times, err = TimesToPosition(100, 0, 0, Gravity)
	require.NoError(t, err)
	require.Len(t, times, 2)
	assert.InDelta(t, -4.52, times[0], 0.01)
	assert.InDelta(t, 4.52, times[1], 0.01)

	times, err = TimesToPosition(0, 0, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, times)

	_, err = TimesToPosition(0, 100, 10, Gravity)
	require.ErrorIs(t, err, ErrUnreachableTarget)
}

func TestNextTimeAtPosition(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tt, err := NextTimeAtPosition(0, 0, 30, Gravity, 0)
		require.NoError(t, err)
		assert.InDelta(t, 6.12, tt, 0.01)
	})

	t.Run("no later crossing", func(t *testing.T) {
		_, err := NextTimeAtPosition(0, 0, 30, Gravity, 7)
		require.ErrorIs(t, err, ErrUnreachableTarget)
	})

	t.Run("resting on target", func(t *testing.T) {
		tt, err := NextTimeAtPosition(1, 1, 0, 0, 2.5)
		require.NoError(t, err)
		require.Equal(t, 2.5, tt)
	})
}

func TestStoppingDistance(t *testing.T) {
	d, err := StoppingDistance(30, -6)
	require.NoError(t, err)
	require.Equal(t, 75.0, d)

	h, err := StoppingDistance(20, Gravity)
	require.NoError(t, err)
	assert.InDelta(t, 20.4, h, 0.1)

	d, err = StoppingDistance(-10, 2)
	require.NoError(t, err)
	require.Equal(t, -25.0, d)

	d, err = StoppingDistance(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	_, err = StoppingDistance(10, 2)
	require.ErrorIs(t, err, ErrNeverStops)
	_, err = StoppingDistance(10, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimeToVelocity(t *testing.T) {
	tt, err := TimeToVelocity(30, 0, -6)
	require.NoError(t, err)
	require.Equal(t, 5.0, tt)

	tt, err = TimeToVelocity(4, 4, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, tt)

	_, err = TimeToVelocity(0, 10, 0)
	require.ErrorIs(t, err, ErrUnreachableVelocity)

	_, err = TimeToVelocity(0, 10, -2)
	require.ErrorIs(t, err, ErrUnreachableVelocity)
}

func TestWordProblems(t *testing.T) {
	t.Run("car reaching 60 mph", func(t *testing.T) {
		a := (26.8 - 0) / 6
		assert.InDelta(t, 4.47, a, 0.01)
		assert.InDelta(t, 80.4, Position(0, 0, 6, a), 0.1)
	})

	t.Run("passing car", func(t *testing.T) {
		xA := Position(0, 25, 10, 0)
		xB := Position(0, 0, 10, 5)
		assert.InDelta(t, xA, xB, 0.1)
		assert.InDelta(t, 250, xA, 0.1)
	})

	t.Run("chase", func(t *testing.T) {
		tc := 23.83
		assert.InDelta(t, Position(0, 40, tc, 0), Position(0, 0, tc-2, 4), 1.0)
	})
}

func TestNaNInput(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		call func() error
	}{
		{"velocity from position", func() error { _, err := VelocityFromPosition(0, nan, 100, Gravity); return err }},
		{"time to position", func() error { _, err := TimeToPosition(nan, 0, 0, Gravity); return err }},
		{"time to position linear", func() error { _, err := TimeToPosition(0, 10, nan, 0); return err }},
		{"times to position", func() error { _, err := TimesToPosition(0, 0, 30, nan); return err }},
		{"next time at position", func() error { _, err := NextTimeAtPosition(0, 0, 30, Gravity, nan); return err }},
		{"stopping distance", func() error { _, err := StoppingDistance(nan, -2); return err }},
		{"time to velocity", func() error { _, err := TimeToVelocity(0, nan, 2); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, ErrNaNInput)
			require.ErrorIs(t, err, ErrInvalidArgument)
			require.NotErrorIs(t, err, ErrUnreachableTarget)
		})
	}
}
