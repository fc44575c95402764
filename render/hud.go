package render

import (
	"github.com/lixenwraith/crossing/engine"
	"github.com/lixenwraith/crossing/events"
)

// HUD holds the score/level/lives/modal display state
// It is fed only through routed display events, never by polling the session
type HUD struct {
	Level int
	Score int
	Lives int

	Paused  bool
	SoundOn bool

	GameOver     bool
	FinalScore   int
	ModalVisible bool
}

// NewHUD creates a HUD showing the session's starting values
func NewHUD(s *engine.Session) *HUD {
	return &HUD{
		Level:   s.Level(),
		Score:   s.Score(),
		Lives:   s.Lives(),
		SoundOn: true,
	}
}

func (h *HUD) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLevelUp,
		events.EventLifeLost,
		events.EventGameEnd,
		events.EventPauseToggle,
		events.EventSoundToggle,
	}
}

func (h *HUD) HandleEvent(_ *engine.Session, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.LevelUpPayload:
		h.Level = p.Level
		h.Score = p.Score
	case *events.LifeLostPayload:
		h.Lives = p.LivesRemaining
	case *events.GameEndPayload:
		h.GameOver = true
		h.FinalScore = p.FinalScore
		h.ModalVisible = true
	case *events.PausePayload:
		h.Paused = p.Paused
	case *events.SoundTogglePayload:
		h.SoundOn = p.Enabled
	}
}

// DismissModal hides the game-over summary; the board stays frozen
func (h *HUD) DismissModal() {
	h.ModalVisible = false
}
