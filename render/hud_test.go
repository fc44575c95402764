package render

import (
	"testing"

	"github.com/lixenwraith/crossing/engine"
	"github.com/lixenwraith/crossing/events"
)

func TestHUDFollowsSession(t *testing.T) {
	queue := events.NewEventQueue()
	bridge := events.NewDisplayBridge(queue)
	session := engine.NewSession(engine.SessionOptions{
		Random:  engine.NewSequenceSource(0),
		Display: bridge,
	})

	hud := NewHUD(session)
	if hud.Level != 1 || hud.Score != 0 || hud.Lives != 3 || !hud.SoundOn {
		t.Fatalf("initial HUD = %+v", hud)
	}

	router := events.NewRouter[*engine.Session](queue)
	router.Register(hud)

	session.AdvanceLevel()
	session.Player().LoseLife()
	router.DispatchAll(session)

	if hud.Level != 2 || hud.Score != 100 {
		t.Errorf("after level up: level=%d score=%d", hud.Level, hud.Score)
	}
	if hud.Lives != 2 {
		t.Errorf("lives = %d, want 2", hud.Lives)
	}
	if hud.ModalVisible {
		t.Error("modal visible before game end")
	}

	session.Player().LoseLife()
	session.Player().LoseLife()
	router.DispatchAll(session)

	if !hud.GameOver || !hud.ModalVisible || hud.FinalScore != 100 {
		t.Errorf("after game end: %+v", hud)
	}
	if hud.Lives != 0 {
		t.Errorf("lives = %d, want 0", hud.Lives)
	}
}

func TestHUDToggles(t *testing.T) {
	hud := &HUD{SoundOn: true}

	hud.HandleEvent(nil, events.GameEvent{Type: events.EventPauseToggle, Payload: &events.PausePayload{Paused: true}})
	hud.HandleEvent(nil, events.GameEvent{Type: events.EventSoundToggle, Payload: &events.SoundTogglePayload{Enabled: false}})

	if !hud.Paused || hud.SoundOn {
		t.Errorf("HUD = %+v", hud)
	}
}
