package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/crossing/constants"
)

func TestTickDriverFirstCallIsZero(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	driver := NewTickDriver(mock)

	if dt := driver.Next(); dt != 0 {
		t.Errorf("Expected first delta 0, got %v", dt)
	}

	mock.Advance(16 * time.Millisecond)
	if dt := driver.Next(); math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("Expected delta 0.016, got %v", dt)
	}

	// No time passed
	if dt := driver.Next(); dt != 0 {
		t.Errorf("Expected delta 0 without elapsed time, got %v", dt)
	}
}

func TestTickDriverClampsLargeAndNegativeDeltas(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	driver := NewTickDriver(mock)
	driver.Next()

	mock.Advance(5 * time.Second)
	if dt := driver.Next(); dt != constants.MaxTickDelta.Seconds() {
		t.Errorf("Expected clamped delta %v, got %v", constants.MaxTickDelta.Seconds(), dt)
	}

	mock.SetTime(start)
	if dt := driver.Next(); dt != 0 {
		t.Errorf("Expected backward clock to yield 0, got %v", dt)
	}
}

func TestTickDriverZeroWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)
	driver := NewTickDriver(clock)
	driver.Next()

	clock.Pause()
	mock.Advance(100 * time.Millisecond)
	if dt := driver.Next(); dt != 0 {
		t.Errorf("Expected paused delta 0, got %v", dt)
	}

	clock.Resume()
	mock.Advance(20 * time.Millisecond)
	if dt := driver.Next(); math.Abs(dt-0.020) > 1e-9 {
		t.Errorf("Expected delta 0.020 after resume, got %v", dt)
	}
}
