package audio

import "github.com/lixenwraith/gesture-arcade/parameter"

// Config controls cue playback; parsed from ARCADE_AUDIO_* by the config package
type Config struct {
	Enabled      bool    `env:"ENABLED" envDefault:"true"`
	MasterVolume float64 `env:"VOLUME" envDefault:"0.5"`
	SampleRate   int     `env:"SAMPLE_RATE" envDefault:"44100"`

	// EffectVolumes scales single effects by name, e.g. "grab:0.5,game_over:1"
	EffectVolumes map[string]float64 `env:"EFFECT_VOLUMES"`
}

// DefaultConfig returns the values the env tags default to
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// Volume returns the effective linear gain of an effect, clamped to [0, 1]
func (c *Config) Volume(s SoundType) float64 {
	vol := c.MasterVolume
	if v, ok := c.EffectVolumes[s.String()]; ok {
		vol *= v
	}
	return min(max(vol, 0), 1)
}

func (c *Config) rate() int {
	if c.SampleRate <= 0 {
		return parameter.AudioSampleRate
	}
	return c.SampleRate
}
