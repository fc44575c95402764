package engine

import (
	"testing"

	"github.com/lixenwraith/crossing/constants"
)

type recordingListener struct {
	goals     int
	livesLost []int
	depleted  int
}

func (l *recordingListener) GoalReached()           { l.goals++ }
func (l *recordingListener) LifeLost(remaining int) { l.livesLost = append(l.livesLost, remaining) }
func (l *recordingListener) LivesDepleted()         { l.depleted++ }

func TestPlayerCreation(t *testing.T) {
	p := NewPlayer(nil)

	if p.X() != 202 || p.Y() != 373.5 {
		t.Errorf("Expected start (202, 373.5), got (%v, %v)", p.X(), p.Y())
	}
	if p.StartX() != p.X() || p.StartY() != p.Y() {
		t.Error("Expected current position to equal start position")
	}
	if p.Lives() != constants.PlayerStartLives {
		t.Errorf("Expected %d lives, got %d", constants.PlayerStartLives, p.Lives())
	}
	if p.Collided() {
		t.Error("Expected new player to be idle")
	}
}

func TestPlayerHorizontalClamp(t *testing.T) {
	p := NewPlayer(nil)

	for i := 0; i < 10; i++ {
		p.HandleInput(DirectionLeft)
		if p.X() < 0 {
			t.Fatalf("x went below column 0: %v", p.X())
		}
	}
	if p.X() != 0 {
		t.Errorf("Expected x 0 after repeated left, got %v", p.X())
	}

	for i := 0; i < 10; i++ {
		p.HandleInput(DirectionRight)
		if p.X() > ColumnX(constants.PlayerMaxColumn) {
			t.Fatalf("x exceeded rightmost column: %v", p.X())
		}
	}
	if p.X() != 404 {
		t.Errorf("Expected x 404 after repeated right, got %v", p.X())
	}
}

func TestPlayerVerticalMoves(t *testing.T) {
	l := &recordingListener{}
	p := NewPlayer(l)

	// Down at the bottom row is clamped
	p.HandleInput(DirectionDown)
	if p.Y() != p.StartY() {
		t.Errorf("Expected down at bottom row to be a no-op, got y=%v", p.Y())
	}

	// Up elsewhere moves one cell height
	p.HandleInput(DirectionUp)
	if p.Y() != p.StartY()-constants.CellHeight {
		t.Errorf("Expected y %v, got %v", p.StartY()-constants.CellHeight, p.Y())
	}

	p.HandleInput(DirectionDown)
	if p.Y() != p.StartY() {
		t.Errorf("Expected down to return to start row, got %v", p.Y())
	}

	for i := 0; i < 4; i++ {
		p.HandleInput(DirectionUp)
	}
	if p.Y() != constants.CellHalfHeight {
		t.Fatalf("Expected top row y %v, got %v", constants.CellHalfHeight, p.Y())
	}
	if l.goals != 0 {
		t.Fatalf("Expected no goal before crossing, got %d", l.goals)
	}

	// Up at the top row signals the goal and does not move
	p.HandleInput(DirectionUp)
	if l.goals != 1 {
		t.Errorf("Expected exactly one goal signal, got %d", l.goals)
	}
	if p.Y() != constants.CellHalfHeight {
		t.Errorf("Expected y unchanged at top row, got %v", p.Y())
	}
}

func TestPlayerIgnoresUnknownDirection(t *testing.T) {
	p := NewPlayer(nil)
	x, y := p.Position()

	p.HandleInput(DirectionNone)
	p.HandleInput(Direction(42))

	if nx, ny := p.Position(); nx != x || ny != y {
		t.Errorf("Expected no movement, got (%v, %v)", nx, ny)
	}
}

func TestPlayerCollisionUpdate(t *testing.T) {
	l := &recordingListener{}
	p := NewPlayer(l)

	p.HandleInput(DirectionUp)
	p.HandleInput(DirectionLeft)

	// Multiple flags collapse into one reset
	p.FlagCollision()
	p.FlagCollision()
	if !p.Collided() {
		t.Fatal("Expected player to be collided")
	}

	p.Update()

	if p.Collided() {
		t.Error("Expected latch cleared after update")
	}
	if p.X() != p.StartX() || p.Y() != p.StartY() {
		t.Errorf("Expected reset to start, got (%v, %v)", p.X(), p.Y())
	}
	if p.Lives() != 2 {
		t.Errorf("Expected 2 lives, got %d", p.Lives())
	}
	if len(l.livesLost) != 1 || l.livesLost[0] != 2 {
		t.Errorf("Expected one LifeLost(2) signal, got %v", l.livesLost)
	}

	// Idle update changes nothing
	p.Update()
	if p.Lives() != 2 {
		t.Errorf("Expected idle update to keep lives, got %d", p.Lives())
	}
}

func TestPlayerLoseLifeGuard(t *testing.T) {
	l := &recordingListener{}
	p := NewPlayer(l)

	for i := 0; i < 5; i++ {
		p.LoseLife()
	}

	if p.Lives() != 0 {
		t.Errorf("Expected lives to stop at 0, got %d", p.Lives())
	}
	if l.depleted != 1 {
		t.Errorf("Expected exactly one depletion signal, got %d", l.depleted)
	}
	if len(l.livesLost) != 3 {
		t.Errorf("Expected three LifeLost signals, got %v", l.livesLost)
	}
}

func TestPlayerRenderable(t *testing.T) {
	var r Renderable = NewPlayer(nil)
	if r.Sprite() != constants.SpritePlayer {
		t.Errorf("Expected sprite %q, got %q", constants.SpritePlayer, r.Sprite())
	}
}
