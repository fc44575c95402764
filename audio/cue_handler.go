package audio

import (
	"github.com/lixenwraith/crossing/engine"
	"github.com/lixenwraith/crossing/events"
)

// CuePlayer is the playback surface the cue handler drives
type CuePlayer interface {
	PlayHit()
	PlayLevelUp()
	PlayGameOver()
	SetEnabled(enabled bool)
}

// CueHandler maps routed game events to sound cues
type CueHandler struct {
	player CuePlayer
}

// NewCueHandler creates a handler playing through player
func NewCueHandler(player CuePlayer) *CueHandler {
	return &CueHandler{player: player}
}

func (h *CueHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventLevelUp,
		events.EventLifeLost,
		events.EventGameEnd,
		events.EventSoundToggle,
	}
}

func (h *CueHandler) HandleEvent(_ *engine.Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventLevelUp:
		h.player.PlayLevelUp()
	case events.EventLifeLost:
		// The final life is covered by the game-over cue
		if p, ok := ev.Payload.(*events.LifeLostPayload); ok && p.LivesRemaining == 0 {
			return
		}
		h.player.PlayHit()
	case events.EventGameEnd:
		h.player.PlayGameOver()
	case events.EventSoundToggle:
		if p, ok := ev.Payload.(*events.SoundTogglePayload); ok {
			h.player.SetEnabled(p.Enabled)
		}
	}
}
