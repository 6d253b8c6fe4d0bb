package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gesture-arcade/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope and cuts it at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if remaining := e.totalSamples - e.position; remaining <= 0 {
		return 0, false
	} else if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain
// math.Log2(0) is -Inf, so zero gain maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped sine note; beep's sine generator is used when it accepts the frequency
func tone(freq float64, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	src, err := generators.SineTone(rate, freq)
	if err != nil {
		src = NewOscillator(freq, duration, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(duration), src), duration, attack, release, rate)
}

// CreateGrabSound generates a short square blip for picking up a block
func CreateGrabSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())

	osc := NewOscillator(660.0, parameter.GrabSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.GrabSoundDuration, parameter.GrabSoundAttack, parameter.GrabSoundRelease, rate)
	return newVolume(shaped, 0.4*cfg.Volume(SoundGrab))
}

// CreateDropSound generates a low saw thud for releasing a block off target
func CreateDropSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())

	osc := NewOscillator(140.0, parameter.DropSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DropSoundDuration, parameter.DropSoundAttack, parameter.DropSoundRelease, rate)
	return newVolume(shaped, 0.5*cfg.Volume(SoundDrop))
}

// CreateSuccessSound generates a rising two-note chime for a placement or food pickup
func CreateSuccessSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())

	// C6 then E6
	n1 := tone(1046.50, parameter.SuccessNote1Duration, parameter.SuccessAttack, parameter.SuccessNote1Release, rate)
	n2 := tone(1318.51, parameter.SuccessNote2Duration, parameter.SuccessAttack, parameter.SuccessNote2Release, rate)
	return newVolume(beep.Seq(n1, n2), cfg.Volume(SoundSuccess))
}

// CreateLevelUpSound generates a major arpeggio
func CreateLevelUpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, tone(f, parameter.LevelUpNoteDuration, parameter.LevelUpAttack, parameter.LevelUpRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.Volume(SoundLevelUp))
}

// CreateGameOverSound generates a falling rumble over noise
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.rate())
	d := parameter.GameOverSoundDuration

	low := NewEnvelope(NewOscillator(110.0, d, WaveSaw, rate), d, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	mixed := beep.Mix(newVolume(low, 0.7), newVolume(noise, 0.2))
	return newVolume(beep.Take(rate.N(d), mixed), cfg.Volume(SoundGameOver))
}

// GetSoundEffect returns a fresh streamer for the given effect, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundGrab:
		return CreateGrabSound(cfg)
	case SoundDrop:
		return CreateDropSound(cfg)
	case SoundSuccess:
		return CreateSuccessSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
