package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crossing/engine"
	"github.com/lixenwraith/crossing/events"
)

// Emitter publishes host events onto the frame's event queue
type Emitter interface {
	Emit(et events.EventType, payload any)
}

// Hooks are optional host callbacks for non-game keys
type Hooks struct {
	Resize  func()
	Dismiss func()
}

// InputHandler turns terminal events into player directions and host toggles
//
// Direction keys are latched latest-wins and applied once per frame by
// Dispatch, before the session tick
type InputHandler struct {
	session *engine.Session
	clock   *engine.PausableClock
	emitter Emitter
	hooks   Hooks

	pending engine.Direction
	soundOn bool
}

// NewInputHandler creates an input handler for the session
func NewInputHandler(session *engine.Session, clock *engine.PausableClock, emitter Emitter, soundOn bool, hooks Hooks) *InputHandler {
	return &InputHandler{
		session: session,
		clock:   clock,
		emitter: emitter,
		hooks:   hooks,
		soundOn: soundOn,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventResize:
		if h.hooks.Resize != nil {
			h.hooks.Resize()
		}
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyCtrlS:
		h.soundOn = !h.soundOn
		h.emitter.Emit(events.EventSoundToggle, &events.SoundTogglePayload{Enabled: h.soundOn})
		return true
	case tcell.KeyEnter:
		if h.session.Ended() && h.hooks.Dismiss != nil {
			h.hooks.Dismiss()
		}
		return true
	}

	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'q':
			return false
		case 'p':
			if h.session.Ended() {
				return true
			}
			paused := h.clock.Toggle()
			h.emitter.Emit(events.EventPauseToggle, &events.PausePayload{Paused: paused})
			return true
		}
	}

	if dir := keyDirection(ev); dir != engine.DirectionNone {
		if h.session.Ended() || h.clock.IsPaused() {
			return true
		}
		h.pending = dir
	}
	return true
}

// Dispatch applies the latched direction to the session and clears the latch
func (h *InputHandler) Dispatch() {
	dir := h.pending
	h.pending = engine.DirectionNone
	if dir == engine.DirectionNone || h.session.Ended() {
		return
	}
	h.session.HandleInput(dir)
}

// Pending returns the latched direction
func (h *InputHandler) Pending() engine.Direction {
	return h.pending
}

func keyDirection(ev *tcell.EventKey) engine.Direction {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.DirectionLeft
	case tcell.KeyRight:
		return engine.DirectionRight
	case tcell.KeyUp:
		return engine.DirectionUp
	case tcell.KeyDown:
		return engine.DirectionDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			return engine.DirectionLeft
		case 'l':
			return engine.DirectionRight
		case 'k':
			return engine.DirectionUp
		case 'j':
			return engine.DirectionDown
		}
	}
	return engine.DirectionNone
}
