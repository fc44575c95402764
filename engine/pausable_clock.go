package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time on top of a real time source
// Game time is frozen while paused, so a tick driver reading it yields zero deltas
type PausableClock struct {
	mu sync.RWMutex

	// Base time tracking
	realStartTime time.Time // When clock was created (real time)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration

	realTimeProvider TimeProvider
}

// NewPausableClock creates a new pausable clock driven by the given real time source
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		realStartTime:    real.Now(),
		realTimeProvider: real,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: return frozen time at pause point
		return pc.realStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Game elapsed = real elapsed - total paused time
	realElapsed := pc.realTimeProvider.Now().Sub(pc.realStartTime)
	return pc.realStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.realTimeProvider.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.realTimeProvider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips the pause state and returns true if the clock is now paused
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// GetTotalPauseDuration returns cumulative pause time
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		// Include current pause duration
		total += pc.realTimeProvider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
