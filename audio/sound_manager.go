package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/crossing/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays the game's short cues through a single speaker mixer
// All Play methods are safe no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     atomic.Bool
}

// NewSoundManager creates a new sound manager with sound enabled
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
	}
	sm.enabled.Store(true)
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker; safe to call repeatedly
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

// SetEnabled turns cue playback on or off
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.enabled.Store(enabled)
}

// Enabled reports whether cues are played
func (sm *SoundManager) Enabled() bool {
	return sm.enabled.Load()
}

// PlayHit plays a short low buzz for a collision
func (sm *SoundManager) PlayHit() {
	sm.play(beep.Take(sampleRate.N(constants.HitSoundDuration), NewBuzzGenerator(sampleRate, constants.HitSoundFrequency)))
}

// PlayLevelUp plays a two-note rising chime
func (sm *SoundManager) PlayLevelUp() {
	low, err := generators.SineTone(sampleRate, constants.LevelUpLowFrequency)
	if err != nil {
		return
	}
	high, err := generators.SineTone(sampleRate, constants.LevelUpHighFreq)
	if err != nil {
		return
	}

	n := sampleRate.N(constants.LevelUpNoteDuration)
	chime := beep.Seq(beep.Take(n, low), beep.Take(n, high))

	// Pure sines are loud next to the other cues
	sm.play(&effects.Volume{Streamer: chime, Base: 2, Volume: -2})
}

// PlayGameOver plays a descending sweep
func (sm *SoundManager) PlayGameOver() {
	sm.play(NewSweepGenerator(sampleRate, constants.GameOverStartFreq, constants.GameOverEndFreq, constants.GameOverSoundDuration))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled.Load() {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
