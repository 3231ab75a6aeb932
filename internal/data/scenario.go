package data

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/orrery/orrery/internal/physics"
	"github.com/orrery/orrery/internal/world"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// maxPeriodDays is the longest orbital period a time.Duration can hold.
const maxPeriodDays = math.MaxInt64 / float64(24*time.Hour)

// VecEntry is a position in astronomical units.
type VecEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type StarEntry struct {
	Name        string   `yaml:"name"`
	MassSolar   float64  `yaml:"mass_solar"`
	RadiusSolar float64  `yaml:"radius_solar"`
	Temperature float64  `yaml:"temperature_k"`
	Position    VecEntry `yaml:"position"`
}

// OrbitEntry describes a circular orbit around the parent (star or planet).
type OrbitEntry struct {
	PeriodDays float64 `yaml:"period_days"`
	RadiusKm   float64 `yaml:"radius_km"`
	RadiusAU   float64 `yaml:"radius_au"` // used when radius_km is 0
	PhaseDeg   float64 `yaml:"phase_deg"`
}

type RegionEntry struct {
	AreaKm2 float64 `yaml:"area_km2"`
	Terrain string  `yaml:"terrain"`
}

// BodyEntry is a planet or a moon. Moons listed under a moon are rejected.
type BodyEntry struct {
	Name        string        `yaml:"name"`
	MassEarth   float64       `yaml:"mass_earth"`
	RadiusKm    float64       `yaml:"radius_km"`
	Orbit       OrbitEntry    `yaml:"orbit"`
	Regions     []RegionEntry `yaml:"regions"`
	RegionCount int           `yaml:"region_count"` // equal-area regions, terrain left to the generator
	Moons       []BodyEntry   `yaml:"moons"`
}

type SystemEntry struct {
	Star    StarEntry   `yaml:"star"`
	Planets []BodyEntry `yaml:"planets"`
}

type scenarioFile struct {
	Seed    uint64        `yaml:"seed"`
	Systems []SystemEntry `yaml:"systems"`
}

// Scenario is a loaded seeding description ready for world.Setup.Create.
type Scenario struct {
	Seed  uint64
	Setup world.Setup

	bodies  int
	regions int
}

// LoadScenario loads a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := ParseScenario(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario converts scenario YAML into SI units and validates it.
func ParseScenario(raw []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	sc := &Scenario{Seed: f.Seed}
	for i, se := range f.Systems {
		sys, err := sc.system(se)
		if err != nil {
			return nil, fmt.Errorf("system %d (%s): %w", i, se.Star.Name, err)
		}
		sc.Setup.Systems = append(sc.Setup.Systems, sys)
	}
	return sc, nil
}

func (sc *Scenario) system(se SystemEntry) (world.StellarSystem, error) {
	name := starName(se.Star.Name)
	if name == "" {
		return world.StellarSystem{}, fmt.Errorf("star has no name")
	}
	au := float64(physics.AstronomicalUnit)
	sys := world.StellarSystem{
		Star: world.Star{
			Name:        name,
			Mass:        physics.Mass(se.Star.MassSolar) * physics.SolarMass,
			Radius:      physics.Length(se.Star.RadiusSolar) * physics.SolarRadius,
			Temperature: physics.Temperature(se.Star.Temperature),
			Position:    physics.Vec{X: se.Star.Position.X * au, Y: se.Star.Position.Y * au, Z: se.Star.Position.Z * au},
		},
	}
	for _, pe := range se.Planets {
		body, regions, err := sc.body(pe)
		if err != nil {
			return sys, err
		}
		planet := world.Planet{Body: body, Regions: regions}
		for _, me := range pe.Moons {
			if len(me.Moons) > 0 {
				return sys, fmt.Errorf("moon %q: moons of moons are not supported", me.Name)
			}
			moon, moonRegions, err := sc.body(me)
			if err != nil {
				return sys, err
			}
			planet.Moons = append(planet.Moons, world.Moon{Body: moon, Regions: moonRegions})
		}
		sys.Planets = append(sys.Planets, planet)
	}
	return sys, nil
}

func (sc *Scenario) body(be BodyEntry) (world.Body, []world.Region, error) {
	if be.Name == "" {
		return world.Body{}, nil, fmt.Errorf("body has no name")
	}
	radius := physics.Length(be.Orbit.RadiusKm) * physics.Kilometre
	if radius == 0 {
		radius = physics.Length(be.Orbit.RadiusAU) * physics.AstronomicalUnit
	}
	if be.Orbit.PeriodDays >= maxPeriodDays {
		return world.Body{}, nil, fmt.Errorf("body %q: period of %g days is out of range", be.Name, be.Orbit.PeriodDays)
	}
	period := time.Duration(be.Orbit.PeriodDays * float64(24*time.Hour))
	orbit, err := physics.NewCircular(period, radius, physics.Degrees(be.Orbit.PhaseDeg))
	if err != nil {
		return world.Body{}, nil, fmt.Errorf("body %q: %w", be.Name, err)
	}
	body := world.Body{
		Name:   be.Name,
		Mass:   physics.Mass(be.MassEarth) * physics.EarthMass,
		Radius: physics.Length(be.RadiusKm) * physics.Kilometre,
		Orbit:  orbit,
	}

	regions, err := regionsOf(be, body.Radius)
	if err != nil {
		return world.Body{}, nil, fmt.Errorf("body %q: %w", be.Name, err)
	}
	sc.bodies++
	sc.regions += len(regions)
	return body, regions, nil
}

func regionsOf(be BodyEntry, radius physics.Length) ([]world.Region, error) {
	if len(be.Regions) > 0 && be.RegionCount > 0 {
		return nil, fmt.Errorf("regions and region_count are mutually exclusive")
	}
	if be.RegionCount < 0 {
		return nil, fmt.Errorf("negative region_count %d", be.RegionCount)
	}
	if be.RegionCount > 0 {
		r := float64(radius)
		area := physics.Area(4 * math.Pi * r * r / float64(be.RegionCount))
		out := make([]world.Region, be.RegionCount)
		for i := range out {
			out[i].Area = area
		}
		return out, nil
	}
	out := make([]world.Region, 0, len(be.Regions))
	for i, re := range be.Regions {
		t := world.Terrain(re.Terrain)
		if !t.Valid() {
			return nil, fmt.Errorf("region %d: unknown terrain %q", i, re.Terrain)
		}
		out = append(out, world.Region{Area: physics.Area(re.AreaKm2 * 1e6), Terrain: t})
	}
	return out, nil
}

// Count returns the number of stellar systems in the scenario.
func (sc *Scenario) Count() int {
	return len(sc.Setup.Systems)
}

// BodyCount returns the number of planets and moons in the scenario.
func (sc *Scenario) BodyCount() int {
	return sc.bodies
}

// RegionCount returns the number of regions in the scenario.
func (sc *Scenario) RegionCount() int {
	return sc.regions
}

// starName capitalises the start of each word of a star name and keeps the
// rest as written ("alpha centauri" → "Alpha Centauri", "McNeil" stays).
// A Caser carries state, so each call gets its own.
func starName(name string) string {
	return cases.Title(language.Und, cases.NoLower).String(strings.TrimSpace(name))
}
