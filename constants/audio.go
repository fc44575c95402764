package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Collision Sound
const (
	HitSoundDuration  = 150 * time.Millisecond
	HitSoundFrequency = 120.0
)

// Level-Up Sound (two-note rising chime)
const (
	LevelUpNoteDuration = 90 * time.Millisecond
	LevelUpLowFrequency = 660.0
	LevelUpHighFreq     = 990.0
)

// Game-Over Sound
const (
	GameOverSoundDuration = 700 * time.Millisecond
	GameOverStartFreq     = 440.0
	GameOverEndFreq       = 110.0
)
