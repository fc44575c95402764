package engine

// Display receives the session's outward signals; calls are fire-and-forget
type Display interface {
	OnLevelUp(level, score int)
	OnLifeLost(livesRemaining int)
	OnGameEnd(finalScore int)
}

// NopDisplay discards all signals
type NopDisplay struct{}

func (NopDisplay) OnLevelUp(int, int) {}
func (NopDisplay) OnLifeLost(int)     {}
func (NopDisplay) OnGameEnd(int)      {}

// DisplayFuncs adapts plain functions to Display; nil fields are skipped
type DisplayFuncs struct {
	LevelUp  func(level, score int)
	LifeLost func(livesRemaining int)
	GameEnd  func(finalScore int)
}

func (d DisplayFuncs) OnLevelUp(level, score int) {
	if d.LevelUp != nil {
		d.LevelUp(level, score)
	}
}

func (d DisplayFuncs) OnLifeLost(livesRemaining int) {
	if d.LifeLost != nil {
		d.LifeLost(livesRemaining)
	}
}

func (d DisplayFuncs) OnGameEnd(finalScore int) {
	if d.GameEnd != nil {
		d.GameEnd(finalScore)
	}
}
