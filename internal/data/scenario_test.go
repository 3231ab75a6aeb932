package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orrery/orrery/internal/physics"
	"github.com/orrery/orrery/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario("testdata/rigel.yaml")
	require.NoError(t, err)

	assert.Equal(t, uint64(1977), sc.Seed)
	assert.Equal(t, 1, sc.Count())
	assert.Equal(t, 4, sc.BodyCount())
	assert.Equal(t, 7, sc.RegionCount())

	sys := sc.Setup.Systems[0]
	assert.Equal(t, "Rigel", sys.Star.Name)
	assert.InEpsilon(t, 21*float64(physics.SolarMass), float64(sys.Star.Mass), 1e-12)
	assert.Equal(t, float64(physics.AstronomicalUnit), sys.Star.Position.X)
	require.Len(t, sys.Planets, 2)

	ashfall := sys.Planets[0]
	assert.Equal(t, world.TerrainVolcanic, ashfall.Regions[1].Terrain)
	assert.Equal(t, physics.Area(2e9), ashfall.Regions[1].Area)

	brine := sys.Planets[1]
	orbit, ok := brine.Body.Orbit.(physics.Circular)
	require.True(t, ok)
	assert.Equal(t, 400*24*time.Hour, orbit.Period)
	assert.InEpsilon(t, 1.4*float64(physics.AstronomicalUnit), float64(orbit.Radius), 1e-12)
	require.Len(t, brine.Regions, 4)
	r := 7000e3
	assert.InEpsilon(t, math.Pi*r*r, float64(brine.Regions[0].Area), 1e-12)
	assert.Equal(t, world.TerrainUnknown, brine.Regions[0].Terrain)

	require.Len(t, brine.Moons, 2)
	assert.Equal(t, "Shard", brine.Moons[1].Body.Name)
	assert.Empty(t, brine.Moons[1].Regions)
}

func TestScenarioBuildsWorld(t *testing.T) {
	sc, err := LoadScenario("testdata/rigel.yaml")
	require.NoError(t, err)
	sys, err := sc.Setup.Create(world.Options{Seed: sc.Seed, Terrain: world.FlatTerrain(world.TerrainOcean)})
	require.NoError(t, err)

	s := sys.State
	star := s.Stars().At(0)
	planets := s.Planets(star)
	require.Len(t, planets, 2)
	assert.Equal(t, "Rigel II", s.MustStandardName(planets[1]))
	assert.Equal(t, "Rigel II-B", s.MustStandardName(s.Bodies(star).At(3)))
}

func TestParseScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "systems: [", "parse scenario"},
		{"no star name", "systems:\n  - star: {}\n", "star has no name"},
		{"no body name", "systems:\n  - star: {name: A}\n    planets:\n      - orbit: {period_days: 1}\n", "body has no name"},
		{"period overflow", "systems:\n  - star: {name: A}\n    planets:\n      - name: B\n        orbit: {period_days: 200000}\n", "out of range"},
		{"blank star name", "systems:\n  - star: {name: \"  \"}\n", "star has no name"},
		{"bad period", "systems:\n  - star: {name: A}\n    planets:\n      - name: B\n", "period must be positive"},
		{"bad terrain", "systems:\n  - star: {name: A}\n    planets:\n      - name: B\n        orbit: {period_days: 1}\n        regions: [{terrain: jelly}]\n", "unknown terrain"},
		{"both region forms", "systems:\n  - star: {name: A}\n    planets:\n      - name: B\n        orbit: {period_days: 1}\n        region_count: 2\n        regions: [{terrain: ice}]\n", "mutually exclusive"},
		{"nested moons", "systems:\n  - star: {name: A}\n    planets:\n      - name: B\n        orbit: {period_days: 1}\n        moons:\n          - name: C\n            orbit: {period_days: 1}\n            moons: [{name: D}]\n", "moons of moons"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseScenarioStarNames(t *testing.T) {
	sc, err := ParseScenario([]byte(`
systems:
  - star: {name: "  eps eridani "}
  - star: {name: "van Maanen's star"}
  - star: {name: McNeil}
`))
	require.NoError(t, err)
	require.Equal(t, 3, sc.Count())
	assert.Equal(t, "Eps Eridani", sc.Setup.Systems[0].Star.Name)
	assert.Equal(t, "Van Maanen's Star", sc.Setup.Systems[1].Star.Name)
	assert.Equal(t, "McNeil", sc.Setup.Systems[2].Star.Name)

	s, err := sc.Setup.Create(world.Options{})
	require.NoError(t, err)
	stars := s.State.Stars()
	assert.Equal(t, "Eps Eridani", s.State.Star.Name.Index(stars.At(0)))
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
