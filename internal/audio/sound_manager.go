package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"rayframe/internal/config"
	"rayframe/internal/game"
)

// SoundManager plays game cues through the system speaker. It implements
// game.CuePlayer; cues arriving before Initialize or after Cleanup are dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(cfg.SampleRate),
		volume:  cfg.MasterVolume,
		enabled: cfg.Enabled,
	}
}

// Initialize opens the speaker. A disabled manager stays silent and succeeds.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the sound for a cue on the mixer.
func (sm *SoundManager) Play(c game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CreateCueSound(c, sm.rate, sm.volume)
	if s == nil {
		log.Printf("audio: no sound for cue %s", c)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops every sound and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
