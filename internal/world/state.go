package world

import (
	"slices"
	"time"

	"github.com/orrery/orrery/internal/core/ecs"
)

type Allocators struct {
	Star   *ecs.Allocator[Star]
	Body   *ecs.Allocator[Body]
	Region *ecs.Allocator[Region]
}

// State is the whole entity store. It is written only by Setup.Create and is
// read-only afterwards; readers may then query it from any goroutine.
type State struct {
	Allocators Allocators
	Star       *Stars
	Body       *Bodies
	Region     *Regions

	StarBodies  *ecs.OwnerRange[Star, Body]
	BodyRegions *ecs.OwnerRange[Body, Region]
}

func NewState(variant RelationVariant) *State {
	return &State{
		Allocators: Allocators{
			Star:   ecs.NewAllocator[Star](),
			Body:   ecs.NewAllocator[Body](),
			Region: ecs.NewAllocator[Region](),
		},
		Star:        newStars(),
		Body:        newBodies(variant),
		Region:      newRegions(),
		StarBodies:  ecs.NewOwnerRange[Star, Body]("star_bodies"),
		BodyRegions: ecs.NewOwnerRange[Body, Region]("body_regions"),
	}
}

// Stars returns every star in allocation order.
func (s *State) Stars() ecs.Range[Star] {
	return s.Allocators.Star.Issued()
}

// Bodies returns all bodies of star, planets and moons interleaved in
// creation order.
func (s *State) Bodies(star StarID) ecs.Range[Body] {
	r, _ := s.StarBodies.TryOwned(star)
	return r
}

// Planets returns the root bodies of star in order.
func (s *State) Planets(star StarID) []BodyID {
	return slices.Collect(s.Body.Relation.Roots(s.Bodies(star)))
}

// Regions returns body's region block; empty if it has none.
func (s *State) Regions(body BodyID) ecs.Range[Region] {
	r, _ := s.BodyRegions.TryOwned(body)
	return r
}

// SystemState pairs the store with the simulation epoch that orbit times are
// measured from.
type SystemState struct {
	State *State
	Epoch time.Time
}

// Since converts an absolute time into an offset from the epoch.
func (s *SystemState) Since(t time.Time) time.Duration {
	return t.Sub(s.Epoch)
}
