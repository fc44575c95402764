package engine

import (
	"time"

	"github.com/lixenwraith/crossing/constants"
)

// TickDriver converts successive clock readings into per-frame time deltas
// The first call establishes the baseline and yields zero
type TickDriver struct {
	clock    TimeProvider
	last     time.Time
	started  bool
	maxDelta time.Duration
}

// NewTickDriver creates a driver reading the given clock
func NewTickDriver(clock TimeProvider) *TickDriver {
	return &TickDriver{
		clock:    clock,
		maxDelta: constants.MaxTickDelta,
	}
}

// Next returns the seconds elapsed since the previous call, clamped to [0, MaxTickDelta]
func (d *TickDriver) Next() float64 {
	now := d.clock.Now()
	if !d.started {
		d.last = now
		d.started = true
		return 0
	}

	delta := now.Sub(d.last)
	d.last = now

	if delta < 0 {
		return 0
	}
	if delta > d.maxDelta {
		delta = d.maxDelta
	}
	return delta.Seconds()
}
