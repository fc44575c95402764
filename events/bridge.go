package events

import (
	"sync/atomic"
	"time"
)

// DisplayBridge turns session display signals into queued events
// It satisfies engine.Display; events are delivered on the next DispatchAll
type DisplayBridge struct {
	queue *EventQueue
	frame atomic.Int64
	now   func() time.Time
}

// NewDisplayBridge creates a bridge pushing into queue
func NewDisplayBridge(queue *EventQueue) *DisplayBridge {
	return &DisplayBridge{
		queue: queue,
		now:   time.Now,
	}
}

// SetFrame stamps subsequent events with the given frame number
func (b *DisplayBridge) SetFrame(frame int64) {
	b.frame.Store(frame)
}

// Emit pushes an arbitrary event stamped with the current frame
func (b *DisplayBridge) Emit(et EventType, payload any) {
	b.queue.Push(GameEvent{
		Type:      et,
		Payload:   payload,
		Frame:     b.frame.Load(),
		Timestamp: b.now(),
	})
}

func (b *DisplayBridge) OnLevelUp(level, score int) {
	b.Emit(EventLevelUp, &LevelUpPayload{Level: level, Score: score})
}

func (b *DisplayBridge) OnLifeLost(livesRemaining int) {
	b.Emit(EventLifeLost, &LifeLostPayload{LivesRemaining: livesRemaining})
}

func (b *DisplayBridge) OnGameEnd(finalScore int) {
	b.Emit(EventGameEnd, &GameEndPayload{FinalScore: finalScore})
}
