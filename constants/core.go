package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick so a stalled terminal does not teleport obstacles
	MaxTickDelta = 250 * time.Millisecond

	// MinFPS and MaxFPS bound the configurable frame rate
	MinFPS = 10
	MaxFPS = 240
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
