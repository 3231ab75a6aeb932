package world

import (
	"github.com/orrery/orrery/internal/core/ecs"
	"github.com/orrery/orrery/internal/physics"
)

// Star is the seeding description of a star. Once inserted, each field lives
// in its own table on Stars.
type Star struct {
	Name        string
	Mass        physics.Mass
	Radius      physics.Length
	Temperature physics.Temperature
	Position    physics.Vec
}

type StarID = ecs.ID[Star]

type Stars struct {
	Name        *ecs.Table[Star, string]
	Mass        *ecs.Table[Star, physics.Mass]
	Radius      *ecs.Table[Star, physics.Length]
	Temperature *ecs.Table[Star, physics.Temperature]
	Position    *ecs.Table[Star, physics.Vec]

	registry *ecs.Registry
}

func newStars() *Stars {
	s := &Stars{
		Name:        ecs.NewTable[Star, string]("star.name"),
		Mass:        ecs.NewTable[Star, physics.Mass]("star.mass"),
		Radius:      ecs.NewTable[Star, physics.Length]("star.radius"),
		Temperature: ecs.NewTable[Star, physics.Temperature]("star.temperature"),
		Position:    ecs.NewTable[Star, physics.Vec]("star.position"),
		registry:    ecs.NewRegistry("star"),
	}
	s.registry.Register("name", s.Name)
	s.registry.Register("mass", s.Mass)
	s.registry.Register("radius", s.Radius)
	s.registry.Register("temperature", s.Temperature)
	s.registry.Register("position", s.Position)
	return s
}

func (s *Stars) insert(id StarID, star Star) {
	s.Name.Insert(id, star.Name)
	s.Mass.Insert(id, star.Mass)
	s.Radius.Insert(id, star.Radius)
	s.Temperature.Insert(id, star.Temperature)
	s.Position.Insert(id, star.Position)
}
