package world

import (
	"fmt"

	"github.com/orrery/orrery/internal/core/ecs"
	"github.com/orrery/orrery/internal/physics"
)

// Body is a planet or moon. Whether it is one or the other is decided by its
// relation entry, not by the description.
type Body struct {
	Name   string
	Mass   physics.Mass
	Radius physics.Length
	Orbit  physics.Orbit
}

type BodyID = ecs.ID[Body]

// BodyLinks places a new body in the world. A zero Parent makes it a root.
type BodyLinks struct {
	Star   StarID
	Parent BodyID
}

// RelationVariant selects the relation store used for the body forest.
type RelationVariant string

const (
	RelationRange RelationVariant = "range"
	RelationGraph RelationVariant = "graph"
)

func ParseRelationVariant(s string) (RelationVariant, error) {
	switch v := RelationVariant(s); v {
	case RelationRange, RelationGraph:
		return v, nil
	case "":
		return RelationRange, nil
	default:
		return "", fmt.Errorf("unknown relation variant %q (want %q or %q)", s, RelationRange, RelationGraph)
	}
}

type Bodies struct {
	Name     *ecs.Table[Body, string]
	Mass     *ecs.Table[Body, physics.Mass]
	Radius   *ecs.Table[Body, physics.Length]
	Orbit    *ecs.Table[Body, physics.Orbit]
	Relation ecs.Relations[Body]

	registry *ecs.Registry
}

func newBodies(variant RelationVariant) *Bodies {
	b := &Bodies{
		Name:     ecs.NewTable[Body, string]("body.name"),
		Mass:     ecs.NewTable[Body, physics.Mass]("body.mass"),
		Radius:   ecs.NewTable[Body, physics.Length]("body.radius"),
		Orbit:    ecs.NewTable[Body, physics.Orbit]("body.orbit"),
		registry: ecs.NewRegistry("body"),
	}
	if variant == RelationGraph {
		b.Relation = ecs.NewGraph[Body]()
	} else {
		b.Relation = ecs.NewForest[Body]()
	}
	b.registry.Register("name", b.Name)
	b.registry.Register("mass", b.Mass)
	b.registry.Register("radius", b.Radius)
	b.registry.Register("orbit", b.Orbit)
	b.registry.Register("relation", b.Relation)
	return b
}

func (b *Bodies) insert(id BodyID, body Body, links BodyLinks) error {
	if body.Orbit == nil {
		return fmt.Errorf("body %q has no orbit", body.Name)
	}
	b.Name.Insert(id, body.Name)
	b.Mass.Insert(id, body.Mass)
	b.Radius.Insert(id, body.Radius)
	b.Orbit.Insert(id, body.Orbit)

	if links.Parent.IsZero() {
		return b.Relation.InsertParent(id)
	}
	return b.Relation.InsertChild(id, links.Parent)
}
