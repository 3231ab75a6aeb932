package world

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultEpoch is the simulation start used when Options.Epoch is unset.
var DefaultEpoch = time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrBurstMismatch reports that a construction burst issued a different
// number of identifiers than it linked or populated. The store is corrupt
// when this is returned and must be discarded.
var ErrBurstMismatch = errors.New("world: construction burst mismatch")

// Setup is the nested description a world is seeded from.
type Setup struct {
	Systems []StellarSystem
}

type StellarSystem struct {
	Star    Star
	Planets []Planet
}

type Planet struct {
	Body    Body
	Moons   []Moon
	Regions []Region
}

type Moon struct {
	Body    Body
	Regions []Region
}

type Options struct {
	Epoch     time.Time
	Relations RelationVariant
	Seed      uint64
	Log       *zap.Logger

	// Terrain fills regions whose terrain is unset. Nil leaves them unknown.
	Terrain TerrainGenerator
}

// Create builds the store in one sequential pass. Each body is allocated
// right after its previous sibling (or its parent), and each body's regions
// are allocated as one block, which is what the range-coded relations and
// links rely on.
func (s Setup) Create(opts Options) (*SystemState, error) {
	if opts.Epoch.IsZero() {
		opts.Epoch = DefaultEpoch
	}
	if opts.Relations == "" {
		opts.Relations = RelationRange
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	b := &builder{state: NewState(opts.Relations), opts: opts, log: log}
	for i, sys := range s.Systems {
		if err := b.system(sys); err != nil {
			return nil, fmt.Errorf("stellar system %d (%s): %w", i, sys.Star.Name, err)
		}
	}

	alloc := b.state.Allocators
	log.Info("world built",
		zap.Int("stars", alloc.Star.Len()),
		zap.Int("bodies", alloc.Body.Len()),
		zap.Int("regions", alloc.Region.Len()),
		zap.String("relations", string(opts.Relations)),
		zap.Time("epoch", opts.Epoch),
	)
	return &SystemState{State: b.state, Epoch: opts.Epoch}, nil
}

type builder struct {
	state *State
	opts  Options
	log   *zap.Logger
}

func (b *builder) system(sys StellarSystem) error {
	alloc := b.state.Allocators
	bodiesBefore := alloc.Body.Len()
	regionsBefore := alloc.Region.Len()

	star := alloc.Star.Create()
	b.state.Star.insert(star, sys.Star)

	wantBodies, wantRegions := 0, 0
	for _, planet := range sys.Planets {
		var root BodyID
		id, err := b.body(sys.Star.Name, star, root, planet.Body, planet.Regions)
		if err != nil {
			return err
		}
		wantBodies++
		wantRegions += len(planet.Regions)

		for _, moon := range planet.Moons {
			if _, err := b.body(sys.Star.Name, star, id, moon.Body, moon.Regions); err != nil {
				return err
			}
			wantBodies++
			wantRegions += len(moon.Regions)
		}
	}

	if err := b.verify(star, alloc.Body.Len()-bodiesBefore, wantBodies, alloc.Region.Len()-regionsBefore, wantRegions); err != nil {
		return err
	}
	b.log.Debug("stellar system built",
		zap.String("star", sys.Star.Name),
		zap.Stringer("id", star),
		zap.Int("bodies", wantBodies),
		zap.Int("regions", wantRegions),
	)
	return nil
}

func (b *builder) body(starName string, star StarID, parent BodyID, body Body, regions []Region) (BodyID, error) {
	alloc := b.state.Allocators
	id := alloc.Body.Create()
	if err := b.state.Body.insert(id, body, BodyLinks{Star: star, Parent: parent}); err != nil {
		return id, fmt.Errorf("body %q: %w", body.Name, err)
	}
	if err := b.state.StarBodies.Link(star, id); err != nil {
		return id, fmt.Errorf("body %q: %w", body.Name, err)
	}

	regions, err := b.fillTerrain(starName, body, regions)
	if err != nil {
		return id, fmt.Errorf("body %q: %w", body.Name, err)
	}
	ids, err := b.state.Region.insert(regions, id, alloc.Region, b.state.BodyRegions)
	if err != nil {
		return id, fmt.Errorf("body %q: %w", body.Name, err)
	}

	b.log.Debug("body created",
		zap.String("name", body.Name),
		zap.Stringer("id", id),
		zap.Stringer("parent", parent),
		zap.Stringer("regions", ids),
	)
	return id, nil
}

// fillTerrain returns regions with every unset terrain generated. The
// caller's slice is left untouched.
func (b *builder) fillTerrain(starName string, body Body, regions []Region) ([]Region, error) {
	if b.opts.Terrain == nil || len(regions) == 0 {
		return regions, nil
	}
	missing := false
	for _, r := range regions {
		if r.Terrain == TerrainUnknown {
			missing = true
			break
		}
	}
	if !missing {
		return regions, nil
	}

	seed := TerrainSeed(b.opts.Seed, starName, body.Name)
	generated, err := b.opts.Terrain.GenerateTerrain(body.Radius, len(regions), seed)
	if err != nil {
		return nil, fmt.Errorf("generate terrain: %w", err)
	}
	if len(generated) != len(regions) {
		return nil, fmt.Errorf("terrain generator returned %d values for %d regions", len(generated), len(regions))
	}
	out := make([]Region, len(regions))
	for i, r := range regions {
		if r.Terrain == TerrainUnknown {
			r.Terrain = generated[i]
		}
		out[i] = r
	}
	return out, nil
}

// verify is the post-condition of one stellar-system burst: everything
// allocated was linked, and every attribute table covers every identifier.
func (b *builder) verify(star StarID, gotBodies, wantBodies, gotRegions, wantRegions int) error {
	s := b.state
	if gotBodies != wantBodies {
		return fmt.Errorf("%w: allocated %d bodies for %d described", ErrBurstMismatch, gotBodies, wantBodies)
	}
	if linked := s.Bodies(star).Len(); linked != wantBodies {
		return fmt.Errorf("%w: star owns %d bodies, want %d", ErrBurstMismatch, linked, wantBodies)
	}
	if gotRegions != wantRegions {
		return fmt.Errorf("%w: allocated %d regions for %d described", ErrBurstMismatch, gotRegions, wantRegions)
	}
	if linked, issued := s.BodyRegions.Len(), s.Allocators.Region.Len(); linked != issued {
		return fmt.Errorf("%w: %d of %d regions linked to a body", ErrBurstMismatch, linked, issued)
	}
	if err := s.Star.registry.Verify(s.Allocators.Star.Len()); err != nil {
		return fmt.Errorf("%w: %w", ErrBurstMismatch, err)
	}
	if err := s.Body.registry.Verify(s.Allocators.Body.Len()); err != nil {
		return fmt.Errorf("%w: %w", ErrBurstMismatch, err)
	}
	if err := s.Region.registry.Verify(s.Allocators.Region.Len()); err != nil {
		return fmt.Errorf("%w: %w", ErrBurstMismatch, err)
	}
	return nil
}
