// Package config holds tunables for the game, loaded from TOML with environment overrides
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/flappy/constants"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration document
type Config struct {
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Storage StorageConfig `toml:"storage"`

	// Debug enables file logging and the body overlay
	Debug bool `toml:"debug"`
	// Seed fixes the random source; 0 seeds from the clock
	Seed int64 `toml:"seed"`
}

// GameConfig covers world size, motion and difficulty
type GameConfig struct {
	WorldWidth    float64       `toml:"world_width"`
	WorldHeight   float64       `toml:"world_height"`
	GroundHeight  float64       `toml:"ground_height"`
	Speed         float64       `toml:"speed"`
	Gravity       float64       `toml:"gravity"`
	BirdFlap      float64       `toml:"bird_flap"`
	SpawnInterval time.Duration `toml:"spawn_interval"`
	BaseGap       float64       `toml:"base_gap"`
	ExtraRange    float64       `toml:"extra_range"`
	MaxDifficult  int           `toml:"max_difficult"`
	Rain          bool          `toml:"rain"`
	Clouds        bool          `toml:"clouds"`
}

// AudioConfig holds volumes in 0.0-1.0
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
	FlapVolume   float64 `toml:"flap_volume"`
	ScoreVolume  float64 `toml:"score_volume"`
	HurtVolume   float64 `toml:"hurt_volume"`
}

// StorageConfig locates persisted state
type StorageConfig struct {
	// HighScorePath is the TOML file holding the high score; empty keeps it in memory
	HighScorePath string `toml:"high_score_path"`
}

// Default returns the stock tuning
func Default() *Config {
	return &Config{
		Game: GameConfig{
			WorldWidth:    constants.WorldWidth,
			WorldHeight:   constants.WorldHeight,
			GroundHeight:  constants.GroundHeight,
			Speed:         constants.Speed,
			Gravity:       constants.Gravity,
			BirdFlap:      constants.BirdFlap,
			SpawnInterval: constants.TowerSpawnInterval,
			BaseGap:       constants.BaseGap,
			ExtraRange:    constants.ExtraRange,
			MaxDifficult:  constants.MaxDifficult,
			Rain:          true,
			Clouds:        true,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   48000,
			FlapVolume:   0.6,
			ScoreVolume:  0.8,
			HurtVolume:   1.0,
		},
	}
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.WorldWidth <= 0 || g.WorldHeight <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidConfig, g.WorldWidth, g.WorldHeight)
	case g.GroundHeight < 0 || g.GroundHeight >= g.WorldHeight:
		return fmt.Errorf("%w: ground height %v", ErrInvalidConfig, g.GroundHeight)
	case g.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive", ErrInvalidConfig)
	case g.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalidConfig)
	case g.BaseGap <= 0 || g.ExtraRange < 0:
		return fmt.Errorf("%w: gap %v+%v", ErrInvalidConfig, g.BaseGap, g.ExtraRange)
	case g.MaxDifficult <= 0:
		return fmt.Errorf("%w: max difficult must be positive", ErrInvalidConfig)
	case g.BaseGap+g.ExtraRange+2*constants.GapMargin > g.WorldHeight-g.GroundHeight:
		return fmt.Errorf("%w: widest gap does not fit the playfield", ErrInvalidConfig)
	}

	a := c.Audio
	if a.MasterVolume < 0 || a.MasterVolume > 1 {
		return fmt.Errorf("%w: master volume %v", ErrInvalidConfig, a.MasterVolume)
	}
	if a.Enabled && a.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, a.SampleRate)
	}
	return nil
}
