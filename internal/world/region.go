package world

import (
	"fmt"

	"github.com/orrery/orrery/internal/core/ecs"
	"github.com/orrery/orrery/internal/physics"
)

// Terrain classifies a region's surface.
type Terrain string

const (
	TerrainUnknown   Terrain = ""
	TerrainOcean     Terrain = "ocean"
	TerrainPlains    Terrain = "plains"
	TerrainDesert    Terrain = "desert"
	TerrainMountains Terrain = "mountains"
	TerrainIce       Terrain = "ice"
	TerrainVolcanic  Terrain = "volcanic"
)

func (t Terrain) Valid() bool {
	switch t {
	case TerrainUnknown, TerrainOcean, TerrainPlains, TerrainDesert,
		TerrainMountains, TerrainIce, TerrainVolcanic:
		return true
	}
	return false
}

// Region is one surface patch of a body. A body's regions are allocated as
// one block, so they are addressed by the body's region range.
type Region struct {
	Area    physics.Area
	Terrain Terrain
}

type RegionID = ecs.ID[Region]

type Regions struct {
	Area    *ecs.Table[Region, physics.Area]
	Terrain *ecs.Table[Region, Terrain]

	registry *ecs.Registry
}

func newRegions() *Regions {
	r := &Regions{
		Area:     ecs.NewTable[Region, physics.Area]("region.area"),
		Terrain:  ecs.NewTable[Region, Terrain]("region.terrain"),
		registry: ecs.NewRegistry("region"),
	}
	r.registry.Register("area", r.Area)
	r.registry.Register("terrain", r.Terrain)
	return r
}

// insert bulk-allocates one block for regions and links the whole block to
// body.
func (r *Regions) insert(regions []Region, body BodyID, alloc *ecs.Allocator[Region], link *ecs.OwnerRange[Body, Region]) (ecs.Range[Region], error) {
	ids := alloc.CreateRange(len(regions))
	i := 0
	for id := range ids.All() {
		region := regions[i]
		if !region.Terrain.Valid() {
			return ids, fmt.Errorf("region %d of %s: unknown terrain %q", i, body, region.Terrain)
		}
		r.Area.Insert(id, region.Area)
		r.Terrain.Insert(id, region.Terrain)
		i++
	}
	if err := link.LinkRange(body, ids); err != nil {
		return ids, err
	}
	return ids, nil
}
