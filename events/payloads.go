package events

// LevelUpPayload carries the new level and score
type LevelUpPayload struct {
	Level int
	Score int
}

// LifeLostPayload carries the lives left after the loss
type LifeLostPayload struct {
	LivesRemaining int
}

// GameEndPayload carries the final score
type GameEndPayload struct {
	FinalScore int
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}

// SoundTogglePayload carries the new sound state
type SoundTogglePayload struct {
	Enabled bool
}
