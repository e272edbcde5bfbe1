package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appDirName     = "flappy"
	configFileName = "config.toml"
	scoreFileName  = "highscore.toml"
)

// DefaultDir returns ~/.config/flappy, falling back to the working directory
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(DefaultDir(), configFileName)
}

// Load reads path over the defaults, applies environment overrides and validates
// A missing file is not an error; an empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.Storage.HighScorePath = filepath.Join(DefaultDir(), scoreFileName)

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("Config file %s not found, using defaults", path)
		case err != nil:
			return nil, fmt.Errorf("decode %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				log.Printf("Config %s: ignoring unknown keys %v", path, undecoded)
			}
		}
	}

	ApplyEnv(cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from FLAPPY_* variables
// Malformed values are logged and ignored
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("FLAPPY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		} else {
			log.Printf("FLAPPY_DEBUG: %v", err)
		}
	}

	if v := getenv("FLAPPY_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		} else {
			log.Printf("FLAPPY_AUDIO_ENABLED: %v", err)
		}
	}

	// Master volume is given as 0-100
	if v := getenv("FLAPPY_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			vol := float64(n) / 100.0
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			cfg.Audio.MasterVolume = vol
		} else {
			log.Printf("FLAPPY_MASTER_VOLUME: %v", err)
		}
	}

	if v := getenv("FLAPPY_SPAWN_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Game.SpawnInterval = d
		} else {
			log.Printf("FLAPPY_SPAWN_INTERVAL: %v", err)
		}
	}

	if v := getenv("FLAPPY_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			log.Printf("FLAPPY_SEED: %v", err)
		}
	}

	if v := getenv("FLAPPY_HIGHSCORE_PATH"); v != "" {
		cfg.Storage.HighScorePath = v
	}
}

// Save writes cfg as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
