package physics

import (
	"fmt"
	"math"
	"time"
)

// Orbit gives a body's displacement from whatever it orbits at a time offset
// from the simulation epoch. Implementations must be pure and total.
type Orbit interface {
	Displacement(t time.Duration) Vec
	Distance(t time.Duration) Length
}

// Circular is a circular orbit in the reference plane.
type Circular struct {
	Period time.Duration
	Radius Length
	Phase  Angle // angle at the epoch
}

// NewCircular validates the parameters of a circular orbit.
func NewCircular(period time.Duration, radius Length, phase Angle) (Circular, error) {
	if period <= 0 {
		return Circular{}, fmt.Errorf("orbit period must be positive, got %s", period)
	}
	if radius < 0 {
		return Circular{}, fmt.Errorf("orbit radius must not be negative, got %g", float64(radius))
	}
	return Circular{Period: period, Radius: radius, Phase: phase}, nil
}

func (c Circular) angle(t time.Duration) float64 {
	if c.Period <= 0 {
		return float64(c.Phase)
	}
	turns := float64(t%c.Period) / float64(c.Period)
	return float64(c.Phase) + 2*math.Pi*turns
}

func (c Circular) Displacement(t time.Duration) Vec {
	a := c.angle(t)
	r := float64(c.Radius)
	return Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

func (c Circular) Distance(time.Duration) Length {
	return c.Radius
}

// Fixed never moves; handy for bodies parked at an offset.
type Fixed struct {
	Offset Vec
}

func (f Fixed) Displacement(time.Duration) Vec { return f.Offset }
func (f Fixed) Distance(time.Duration) Length  { return f.Offset.Len() }
