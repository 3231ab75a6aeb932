package world

import (
	"time"

	"github.com/orrery/orrery/internal/core/ecs"
	"github.com/orrery/orrery/internal/physics"
)

// Position returns body's absolute position t after the epoch: the star's
// position plus the orbital displacement of the body and of every ancestor
// up to the root planet.
func (s *State) Position(body BodyID, t time.Duration) physics.Vec {
	star := s.StarBodies.Owner(body)
	return s.Star.Position.Index(star).Add(s.displacement(body, t))
}

// Distance is the distance from body to its star t after the epoch.
func (s *State) Distance(body BodyID, t time.Duration) physics.Length {
	return s.displacement(body, t).Len()
}

func (s *State) displacement(body BodyID, t time.Duration) physics.Vec {
	d := s.Body.Orbit.Index(body).Displacement(t)
	for a := range ecs.Ancestors(s.Body.Relation, body) {
		d = d.Add(s.Body.Orbit.Index(a).Displacement(t))
	}
	return d
}

// PositionAt is Position for an absolute time.
func (s *SystemState) PositionAt(body BodyID, at time.Time) physics.Vec {
	return s.State.Position(body, s.Since(at))
}
