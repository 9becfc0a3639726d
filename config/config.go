package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Engine holds simulation kernel tuning consumed at scheduler and
// collision-system construction
type Engine struct {
	// TickRate is the number of fixed simulation steps per second
	TickRate int `yaml:"tick_rate"`
	// FrameDeltaCapMs bounds a single frame's wall-clock delta in milliseconds
	FrameDeltaCapMs int `yaml:"frame_delta_cap_ms"`
	// CellSize is the broad-phase grid cell size in world units
	CellSize float64 `yaml:"cell_size"`
}

// Arena holds world bounds in world units
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Game holds wave progression tuning; these values are live-tunable via
// config hot-reload in the shell
type Game struct {
	AsteroidBaseCount int     `yaml:"asteroid_base_count"`
	AsteroidPerWave   int     `yaml:"asteroid_per_wave"`
	BossWaveInterval  int     `yaml:"boss_wave_interval"`
	PowerUpDropChance float64 `yaml:"powerup_drop_chance"`
}

// Config is the root configuration document
type Config struct {
	Engine Engine `yaml:"engine"`
	Arena  Arena  `yaml:"arena"`
	Game   Game   `yaml:"game"`
}

// Default returns the built-in configuration: 60Hz ticks, 100ms frame cap,
// grid cells sized to the largest collider diameter
func Default() Config {
	return Config{
		Engine: Engine{
			TickRate:        60,
			FrameDeltaCapMs: 100,
			CellSize:        40,
		},
		Arena: Arena{
			Width:  240,
			Height: 160,
		},
		Game: Game{
			AsteroidBaseCount: 3,
			AsteroidPerWave:   1,
			BossWaveInterval:  5,
			PowerUpDropChance: 0.15,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate fails fast on structurally invalid configuration
func (c Config) Validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tick_rate must be positive, got %d", c.Engine.TickRate)
	}
	if c.Engine.FrameDeltaCapMs <= 0 {
		return fmt.Errorf("engine.frame_delta_cap_ms must be positive, got %d", c.Engine.FrameDeltaCapMs)
	}
	if c.Engine.CellSize <= 0 {
		return fmt.Errorf("engine.cell_size must be positive, got %v", c.Engine.CellSize)
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.Game.AsteroidBaseCount < 0 || c.Game.AsteroidPerWave < 0 {
		return fmt.Errorf("wave counts must be non-negative")
	}
	if c.Game.BossWaveInterval <= 0 {
		return fmt.Errorf("game.boss_wave_interval must be positive, got %d", c.Game.BossWaveInterval)
	}
	if c.Game.PowerUpDropChance < 0 || c.Game.PowerUpDropChance > 1 {
		return fmt.Errorf("game.powerup_drop_chance must be in [0,1], got %v", c.Game.PowerUpDropChance)
	}
	return nil
}

// FixedStep returns the simulation step duration
func (c Config) FixedStep() time.Duration {
	return time.Second / time.Duration(c.Engine.TickRate)
}

// FrameDeltaCap returns the frame delta cap duration
func (c Config) FrameDeltaCap() time.Duration {
	return time.Duration(c.Engine.FrameDeltaCapMs) * time.Millisecond
}
