package physics

import "math"

// SI-valued scalar quantities. Conversions are kept here so tables and
// scenario files never mix units.
type (
	Mass        float64 // kilograms
	Length      float64 // metres
	Area        float64 // square metres
	Temperature float64 // kelvin
	Angle       float64 // radians
)

const (
	AstronomicalUnit Length = 1.495978707e11
	Kilometre        Length = 1e3
	SolarMass        Mass   = 1.98847e30
	EarthMass        Mass   = 5.9722e24
	SolarRadius      Length = 6.957e8
	EarthRadius      Length = 6.371e6
)

func Degrees(d float64) Angle { return Angle(d * math.Pi / 180) }

// Vec is a position or displacement in metres.
type Vec struct {
	X, Y, Z float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec) Len() Length {
	return Length(math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z))
}
