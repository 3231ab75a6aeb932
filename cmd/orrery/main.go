package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/orrery/orrery/internal/config"
	"github.com/orrery/orrery/internal/data"
	"github.com/orrery/orrery/internal/scripting"
	"github.com/orrery/orrery/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m               orrery  v0.1.0              \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Main logic ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/orrery.toml"
	if p := os.Getenv("ORRERY_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	// 3. Load scenario
	printSection("Scenario")
	scenario, err := data.LoadScenario(cfg.Scenario.Path)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	printStat("Stellar systems", scenario.Count())
	printStat("Bodies", scenario.BodyCount())
	printStat("Regions", scenario.RegionCount())

	// 4. Terrain scripts
	var terrain world.TerrainGenerator = world.FlatTerrain(world.TerrainPlains)
	if _, statErr := os.Stat(cfg.Terrain.ScriptsDir); cfg.Terrain.ScriptsDir != "" && statErr == nil {
		luaEngine, err := scripting.NewEngine(cfg.Terrain.ScriptsDir, log)
		if err != nil {
			return fmt.Errorf("lua engine: %w", err)
		}
		defer luaEngine.Close()
		terrain = luaEngine
		printOK("Lua terrain scripts loaded")
	} else {
		log.Warn("terrain scripts unavailable, using flat terrain",
			zap.String("dir", cfg.Terrain.ScriptsDir))
	}
	fmt.Println()

	// 5. Build the world
	printSection("World")
	variant, err := world.ParseRelationVariant(cfg.Simulation.Relations)
	if err != nil {
		return err
	}
	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = scenario.Seed
	}
	sys, err := scenario.Setup.Create(world.Options{
		Epoch:     cfg.Simulation.Epoch,
		Relations: variant,
		Seed:      seed,
		Log:       log,
		Terrain:   terrain,
	})
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	printStat("Stars", sys.State.Allocators.Star.Len())
	printStat("Bodies", sys.State.Allocators.Body.Len())
	printStat("Regions", sys.State.Allocators.Region.Len())
	fmt.Println()

	// 6. Report
	printSection("Catalogue")
	return report(os.Stdout, sys, cfg.Simulation.QueryAt, log)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
