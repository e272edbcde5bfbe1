package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/flappy/config"
)

// speakerBufferDuration trades latency for underrun safety
const speakerBufferDuration = 100 * time.Millisecond

// SoundManager renders effects into buffers once and plays them through the speaker mixer
// Every method is safe to call before Initialize or after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	buffers     [soundTypeCount]*beep.Buffer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{cfg: cfg}
}

// Initialize opens the speaker
// Disabled audio is not an error; the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBufferDuration)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Preload renders every effect into memory so playback does no synthesis
func (sm *SoundManager) Preload() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sm.cfg.SampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		buf := beep.NewBuffer(format)
		buf.Append(GetSoundEffect(st, &sm.cfg))
		sm.buffers[st] = buf
		log.Printf("audio: preloaded %s (%d samples)", st, buf.Len())
	}
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
// The speaker stays open for the process lifetime; clearing it leaves it silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.initialized = false
}

// Play queues a one-shot effect
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || st < 0 || st >= soundTypeCount {
		return
	}

	var s beep.Streamer
	if buf := sm.buffers[st]; buf != nil {
		s = buf.Streamer(0, buf.Len())
	} else {
		s = GetSoundEffect(st, &sm.cfg)
	}

	speaker.Play(s)
}

// PlayFlap implements engine.Sound
func (sm *SoundManager) PlayFlap() { sm.Play(SoundFlap) }

// PlayScore implements engine.Sound
func (sm *SoundManager) PlayScore() { sm.Play(SoundScore) }

// PlayHurt implements engine.Sound
func (sm *SoundManager) PlayHurt() { sm.Play(SoundHurt) }
