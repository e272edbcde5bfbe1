package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/flappy/config"
	"github.com/lixenwraith/flappy/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency sweep
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added over the full duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from startFreq to endFreq
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		sweep:    endFreq - startFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFlapSound generates a short rising chirp
func CreateFlapSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(300, 900, constants.FlapSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.FlapSoundDuration, constants.FlapSoundAttack, constants.FlapSoundRelease, rate)

	return newVolume(shaped, 0.4*cfg.FlapVolume*cfg.MasterVolume)
}

// CreateScoreSound generates a two-note chime
func CreateScoreSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.ScoreSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ScoreSoundNote1Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.ScoreSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ScoreSoundNote2Duration, constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.3*cfg.ScoreVolume*cfg.MasterVolume)
}

// CreateHurtSound generates a falling saw with a noise burst
func CreateHurtSound(cfg *config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	saw := NewSweep(220, 60, constants.HurtSoundDuration, WaveSaw, rate)
	sawShaped := NewEnvelope(saw, constants.HurtSoundDuration, constants.HurtSoundAttack, constants.HurtSoundRelease, rate)

	noise := NewOscillator(0, constants.HurtSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.HurtSoundDuration, constants.HurtSoundAttack, constants.HurtSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(sawShaped, 0.7),
		newVolume(noiseShaped, 0.3),
	)
	return newVolume(mixed, 0.5*cfg.HurtVolume*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *config.AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFlap:
		return CreateFlapSound(cfg)
	case SoundScore:
		return CreateScoreSound(cfg)
	case SoundHurt:
		return CreateHurtSound(cfg)
	default:
		return nil
	}
}
