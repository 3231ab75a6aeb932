package world

import (
	"testing"
	"time"

	"github.com/orrery/orrery/internal/physics"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

var variants = []RelationVariant{RelationRange, RelationGraph}

// rigel describes one star with four planets; the second planet has two
// moons.
func rigel() Setup {
	return Setup{Systems: []StellarSystem{{
		Star: Star{Name: "Rigel", Mass: 21 * physics.SolarMass, Temperature: 12100, Position: physics.Vec{X: 100, Y: 200, Z: 5}},
		Planets: []Planet{
			{
				Body:    Body{Name: "Ashfall", Orbit: physics.Circular{Period: day, Radius: 1000}},
				Regions: []Region{{Area: 1, Terrain: TerrainDesert}},
			},
			{
				Body:    Body{Name: "Brine", Orbit: physics.Circular{Period: 10 * day, Radius: 5000}},
				Regions: []Region{{Area: 2}, {Area: 3}},
				Moons: []Moon{
					{
						Body:    Body{Name: "Pebble", Orbit: physics.Circular{Period: 2 * day, Radius: 50}},
						Regions: []Region{{Area: 4}},
					},
					{
						Body: Body{Name: "Shard", Orbit: physics.Circular{Period: 3 * day, Radius: 80, Phase: physics.Degrees(90)}},
					},
				},
			},
			{Body: Body{Name: "Cinder", Orbit: physics.Circular{Period: 20 * day, Radius: 9000}}},
			{Body: Body{Name: "Dust", Orbit: physics.Fixed{Offset: physics.Vec{X: 12000}}}},
		},
	}}}
}

func build(t *testing.T, setup Setup, variant RelationVariant) *State {
	t.Helper()
	sys, err := setup.Create(Options{Relations: variant})
	require.NoError(t, err)
	return sys.State
}

func byName(t *testing.T, s *State, name string) BodyID {
	t.Helper()
	var found BodyID
	s.Body.Name.Each(func(id BodyID, n string) {
		if n == name {
			found = id
		}
	})
	require.Falsef(t, found.IsZero(), "no body named %q", name)
	return found
}
