package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/orrery/orrery/internal/physics"
)

// TerrainGenerator fills in the terrain of a body's regions. It receives the
// body radius, the number of regions and a deterministic seed, and must
// return exactly count values.
type TerrainGenerator interface {
	GenerateTerrain(radius physics.Length, count int, seed uint64) ([]Terrain, error)
}

// TerrainFunc adapts a plain function to TerrainGenerator.
type TerrainFunc func(radius physics.Length, count int, seed uint64) ([]Terrain, error)

func (f TerrainFunc) GenerateTerrain(radius physics.Length, count int, seed uint64) ([]Terrain, error) {
	return f(radius, count, seed)
}

// FlatTerrain assigns the same terrain to every region.
func FlatTerrain(t Terrain) TerrainGenerator {
	return TerrainFunc(func(_ physics.Length, count int, _ uint64) ([]Terrain, error) {
		out := make([]Terrain, count)
		for i := range out {
			out[i] = t
		}
		return out, nil
	})
}

// TerrainSeed derives a per-body seed from the scenario seed and the body's
// star and name, so reordering unrelated systems does not reshuffle terrain.
func TerrainSeed(seed uint64, star, body string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(star)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(body)
	return d.Sum64()
}
