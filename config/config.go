// Package config loads game tuning from YAML on top of built-in defaults
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/input"
)

// EnvPath names the environment variable consulted when no path is given
const EnvPath = "NEKO_CONFIG"

// Config is the root of the configuration file
type Config struct {
	Health HealthConfig `yaml:"health"`
	Tower  TowerConfig  `yaml:"tower"`
	Game   GameConfig   `yaml:"game"`
	Audio  AudioConfig  `yaml:"audio"`

	// Keys rebinds actions, e.g. chop_left: [j, left]
	Keys map[string][]string `yaml:"keys,omitempty"`
}

type HealthConfig struct {
	Max            float64 `yaml:"max"`
	ChopGain       float64 `yaml:"chop_gain"`
	DecayPerTick   float64 `yaml:"decay_per_tick"`
	DecayMode      string  `yaml:"decay_mode"` // fixed | scaled
	DecayPerSecond float64 `yaml:"decay_per_second"`
}

type TowerConfig struct {
	SeedPieces  int     `yaml:"seed_pieces"`
	LeftChance  float64 `yaml:"left_chance"`
	RightChance float64 `yaml:"right_chance"`
	BonusChance float64 `yaml:"bonus_chance"`
}

type GameConfig struct {
	RNGSeed      int64         `yaml:"rng_seed"` // 0 = time based
	TickInterval time.Duration `yaml:"tick_interval"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Health: HealthConfig{
			Max:            constants.MaxHealth,
			ChopGain:       constants.ChopHealthGain,
			DecayPerTick:   constants.DecayPerTick,
			DecayMode:      engine.DecayFixed.String(),
			DecayPerSecond: constants.DecayPerSecond,
		},
		Tower: TowerConfig{
			SeedPieces:  constants.SeedPieces,
			LeftChance:  constants.LeftChance,
			RightChance: constants.RightChance,
			BonusChance: constants.BonusChance,
		},
		Game: GameConfig{
			TickInterval: constants.TickInterval,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.MasterVolume,
		},
	}
}

// Load reads a YAML file over the defaults.
// If path == "", it falls back to $NEKO_CONFIG, and to the defaults alone when that is unset too
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges the game relies on
func (c *Config) Validate() error {
	if c.Game.TickInterval <= 0 {
		return fmt.Errorf("game.tick_interval must be positive, got %s", c.Game.TickInterval)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	s, err := c.Settings()
	if err != nil {
		return err
	}
	return s.Validate()
}

// KeyTable applies the configured bindings over the default keys
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.ApplyBindings(input.DefaultKeyTable(), c.Keys)
}

// Settings converts the file tuning to controller settings
func (c *Config) Settings() (engine.Settings, error) {
	mode, err := parseDecayMode(c.Health.DecayMode)
	if err != nil {
		return engine.Settings{}, err
	}
	return engine.Settings{
		MaxHealth:      c.Health.Max,
		ChopGain:       c.Health.ChopGain,
		DecayPerTick:   c.Health.DecayPerTick,
		DecayPerSecond: c.Health.DecayPerSecond,
		DecayMode:      mode,
		SeedPieces:     c.Tower.SeedPieces,
		LeftChance:     c.Tower.LeftChance,
		RightChance:    c.Tower.RightChance,
		BonusChance:    c.Tower.BonusChance,
	}, nil
}

func parseDecayMode(s string) (engine.DecayMode, error) {
	switch s {
	case "", "fixed":
		return engine.DecayFixed, nil
	case "scaled":
		return engine.DecayScaled, nil
	default:
		return engine.DecayFixed, fmt.Errorf("health.decay_mode must be fixed or scaled, got %q", s)
	}
}

// Marshal renders the configuration as YAML, used by -dump-config
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
