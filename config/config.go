// Package config loads arcade settings from ARCADE_* environment variables
package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gesture-arcade/audio"
	"github.com/lixenwraith/gesture-arcade/vision"
)

// Input sources for the hand signal
const (
	SourcePointer = "pointer" // Mouse-driven synthetic hand
	SourceFeed    = "feed"    // Websocket landmark feed from a hand-tracking process
)

// ErrInvalidSource is returned when ARCADE_SOURCE names no known input source
var ErrInvalidSource = errors.New("invalid input source")

// Config is the process-level configuration
type Config struct {
	Debug      bool       `env:"DEBUG"`
	Game       Game       `env:"GAME" envDefault:"snake"`
	Difficulty Difficulty `env:"DIFFICULTY" envDefault:"normal"`
	Source     string     `env:"SOURCE" envDefault:"pointer"`
	Seed       uint64     `env:"SEED"` // 0 picks a time-based seed

	Audio audio.Config      `envPrefix:"AUDIO_"`
	Feed  vision.FeedConfig `envPrefix:"FEED_"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that tags cannot express
func (c *Config) Validate() error {
	switch c.Source {
	case SourcePointer, SourceFeed:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSource, c.Source)
	}
	if c.Source == SourceFeed && c.Feed.URL == "" {
		return fmt.Errorf("%w: feed source requires %sFEED_URL", ErrInvalidSource, EnvPrefix)
	}
	return c.Feed.Validate()
}

// Session returns the initial session configuration derived from the environment
func (c *Config) Session() Session {
	s := DefaultSession()
	s.Difficulty = c.Difficulty
	return s
}
