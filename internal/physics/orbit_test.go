package physics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircularDisplacement(t *testing.T) {
	day := 24 * time.Hour
	o, err := NewCircular(4*day, 10, 0)
	require.NoError(t, err)

	assert.InDelta(t, 10, o.Displacement(0).X, 1e-9)
	assert.InDelta(t, 0, o.Displacement(0).Y, 1e-9)

	quarter := o.Displacement(day)
	assert.InDelta(t, 0, quarter.X, 1e-9)
	assert.InDelta(t, 10, quarter.Y, 1e-9)

	// One full period later the body is back where it started.
	assert.InDelta(t, o.Displacement(day).X, o.Displacement(5*day).X, 1e-9)
	assert.InDelta(t, 10, float64(o.Displacement(3*day+time.Hour).Len()), 1e-9)
	assert.Equal(t, Length(10), o.Distance(day))
}

func TestCircularPhase(t *testing.T) {
	o, err := NewCircular(time.Hour, 2, Degrees(90))
	require.NoError(t, err)
	d := o.Displacement(0)
	assert.InDelta(t, 0, d.X, 1e-9)
	assert.InDelta(t, 2, d.Y, 1e-9)
}

func TestNewCircularRejectsBadInput(t *testing.T) {
	_, err := NewCircular(0, 1, 0)
	assert.Error(t, err)
	_, err = NewCircular(time.Hour, -1, 0)
	assert.Error(t, err)
}

func TestVec(t *testing.T) {
	v := Vec{3, 4, 0}
	assert.Equal(t, Length(5), v.Len())
	assert.Equal(t, Vec{4, 6, 1}, v.Add(Vec{1, 2, 1}))
	assert.Equal(t, Vec{2, 2, -1}, v.Sub(Vec{1, 2, 1}))
	assert.InDelta(t, math.Pi, float64(Degrees(180)), 1e-12)

	f := Fixed{Offset: v}
	assert.Equal(t, v, f.Displacement(time.Hour))
	assert.Equal(t, Length(5), f.Distance(0))
}
