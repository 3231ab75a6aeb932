package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// maxQueryDays is the longest offset a time.Duration can hold.
const maxQueryDays = math.MaxInt64 / float64(24*time.Hour)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Scenario   ScenarioConfig   `toml:"scenario"`
	Terrain    TerrainConfig    `toml:"terrain"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	Epoch     time.Time       `toml:"epoch"`
	Relations string          `toml:"relations"` // "range" or "graph"
	QueryAt   []time.Duration `toml:"-"`
	QueryDays []float64       `toml:"query_days"` // offsets from epoch reported at startup
}

type ScenarioConfig struct {
	Path string `toml:"path"`
}

type TerrainConfig struct {
	ScriptsDir string `toml:"scripts_dir"`
	Seed       uint64 `toml:"seed"` // 0 = use the scenario's seed
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.finish(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// finish validates and derives the fields that are not read from TOML.
func (c *Config) finish() error {
	switch c.Simulation.Relations {
	case "range", "graph":
	default:
		return fmt.Errorf("simulation.relations must be \"range\" or \"graph\", got %q", c.Simulation.Relations)
	}
	c.Simulation.QueryAt = c.Simulation.QueryAt[:0]
	for _, d := range c.Simulation.QueryDays {
		if d < 0 {
			return fmt.Errorf("simulation.query_days: negative offset %g", d)
		}
		if d >= maxQueryDays {
			return fmt.Errorf("simulation.query_days: offset %g out of range", d)
		}
		c.Simulation.QueryAt = append(c.Simulation.QueryAt, time.Duration(d*float64(24*time.Hour)))
	}
	if c.Scenario.Path == "" {
		return fmt.Errorf("scenario.path is empty")
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Epoch:     time.Date(2050, time.January, 1, 0, 0, 0, 0, time.UTC),
			Relations: "range",
			QueryDays: []float64{0, 30, 365},
		},
		Scenario: ScenarioConfig{
			Path: "data/yaml/scenario.yaml",
		},
		Terrain: TerrainConfig{
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
