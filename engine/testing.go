package engine

// SequenceSource is a deterministic RandomSource for tests
// It cycles through values, reducing each modulo n
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource creates a source returning values in order, then repeating
func NewSequenceSource(values ...int) *SequenceSource {
	if len(values) == 0 {
		values = []int{0}
	}
	return &SequenceSource{values: values}
}

// Intn returns the next value modulo n
func (s *SequenceSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// NewTestSession creates a session with deterministic speeds and a recording display
// Obstacle i gets speed 100 + values[i % len(values)]
func NewTestSession(values ...int) (*Session, *RecordingDisplay) {
	display := &RecordingDisplay{}
	s := NewSession(SessionOptions{
		ID:      "test-session",
		Random:  NewSequenceSource(values...),
		Display: display,
	})
	return s, display
}

// RecordingDisplay records every display signal for assertions
type RecordingDisplay struct {
	LevelUps  [][2]int // {level, score}
	LivesLost []int
	GameEnds  []int
}

func (d *RecordingDisplay) OnLevelUp(level, score int) {
	d.LevelUps = append(d.LevelUps, [2]int{level, score})
}

func (d *RecordingDisplay) OnLifeLost(livesRemaining int) {
	d.LivesLost = append(d.LivesLost, livesRemaining)
}

func (d *RecordingDisplay) OnGameEnd(finalScore int) {
	d.GameEnds = append(d.GameEnds, finalScore)
}
