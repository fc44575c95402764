package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(1 * time.Hour)
	if now := mock.Now(); !now.Equal(startTime.Add(time.Hour)) {
		t.Errorf("Expected time to be %v after Advance, got %v", startTime.Add(time.Hour), now)
	}

	mock.AdvanceFrames(3, 16*time.Millisecond)
	expected := startTime.Add(time.Hour + 48*time.Millisecond)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after AdvanceFrames, got %v", expected, now)
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
	var _ TimeProvider = &PausableClock{}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)
	clock := NewPausableClock(mock)

	mock.Advance(100 * time.Millisecond)
	if got := clock.Now().Sub(startTime); got != 100*time.Millisecond {
		t.Fatalf("Expected 100ms of game time, got %v", got)
	}

	if !clock.Toggle() {
		t.Fatal("Expected Toggle to report paused")
	}
	frozen := clock.Now()
	mock.Advance(time.Second)
	if !clock.Now().Equal(frozen) {
		t.Errorf("Expected game time frozen at %v, got %v", frozen, clock.Now())
	}
	if got := clock.GetTotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s pause duration, got %v", got)
	}

	if clock.Toggle() {
		t.Fatal("Expected Toggle to report resumed")
	}
	mock.Advance(50 * time.Millisecond)
	if got := clock.Now().Sub(startTime); got != 150*time.Millisecond {
		t.Errorf("Expected 150ms of game time after resume, got %v", got)
	}
}

func TestPausableClockDoublePauseIsIdempotent(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Resume()
	clock.Resume()

	if got := clock.GetTotalPauseDuration(); got != 2*time.Second {
		t.Errorf("Expected 2s total pause, got %v", got)
	}
	if clock.IsPaused() {
		t.Error("Expected clock to be running")
	}
}
