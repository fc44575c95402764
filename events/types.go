package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventLevelUp signals a completed crossing
	// Trigger: Session.AdvanceLevel
	// Consumer: HUD, CueHandler, log | Payload: *LevelUpPayload
	EventLevelUp EventType = iota + 1

	// EventLifeLost signals a collision-triggered respawn
	// Trigger: Player.LoseLife via Session
	// Consumer: HUD, CueHandler, log | Payload: *LifeLostPayload
	EventLifeLost

	// EventGameEnd signals the terminal transition
	// Trigger: lives reaching zero
	// Consumer: HUD (modal), CueHandler, InputHandler (stop), log | Payload: *GameEndPayload
	EventGameEnd

	// EventPauseToggle signals the pause state changed
	// Trigger: InputHandler ('p')
	// Consumer: HUD | Payload: *PausePayload
	EventPauseToggle

	// EventSoundToggle signals the sound state changed
	// Trigger: InputHandler (Ctrl+S)
	// Consumer: CueHandler | Payload: *SoundTogglePayload
	EventSoundToggle
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
