package scripting

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/orrery/orrery/internal/physics"
	"github.com/orrery/orrery/internal/world"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM that hosts the terrain scripts.
// Single-goroutine access only (world construction).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the terrain
// subdirectory of scriptsDir.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	e := &Engine{vm: vm, log: log}

	if err := e.loadDir(filepath.Join(scriptsDir, "terrain")); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load terrain scripts: %w", err)
	}
	if e.vm.GetGlobal("generate_terrain") == lua.LNil {
		vm.Close()
		return nil, fmt.Errorf("no generate_terrain function in %s", scriptsDir)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// GenerateTerrain calls the Lua generate_terrain(ctx) function. ctx carries
// radius_km, count and a random() function seeded from seed, and the script
// must return a list of count terrain names.
func (e *Engine) GenerateTerrain(radius physics.Length, count int, seed uint64) ([]world.Terrain, error) {
	fn := e.vm.GetGlobal("generate_terrain")
	if fn == lua.LNil {
		return nil, fmt.Errorf("lua function generate_terrain not found")
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	t := e.vm.NewTable()
	t.RawSetString("radius_km", lua.LNumber(float64(radius/physics.Kilometre)))
	t.RawSetString("count", lua.LNumber(count))
	t.RawSetString("random", e.vm.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(rng.Float64()))
		return 1
	}))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		return nil, fmt.Errorf("lua generate_terrain: %w", err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("lua generate_terrain returned %s, want table", result.Type())
	}
	if n := rt.Len(); n != count {
		return nil, fmt.Errorf("lua generate_terrain returned %d values for %d regions", n, count)
	}

	out := make([]world.Terrain, count)
	for i := range out {
		v, ok := rt.RawGetInt(i + 1).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("lua generate_terrain: value %d is not a string", i+1)
		}
		terrain := world.Terrain(v)
		if !terrain.Valid() {
			return nil, fmt.Errorf("lua generate_terrain: unknown terrain %q", string(v))
		}
		out[i] = terrain
	}
	e.log.Debug("terrain generated",
		zap.Float64("radius_km", float64(radius/physics.Kilometre)),
		zap.Int("regions", count),
	)
	return out, nil
}

// Close releases the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

var _ world.TerrainGenerator = (*Engine)(nil)
