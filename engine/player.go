package engine

import "github.com/lixenwraith/crossing/constants"

// PlayerListener receives the player's outward signals
type PlayerListener interface {
	// GoalReached fires when "up" is issued on the top row
	GoalReached()
	// LifeLost fires after each life decrement
	LifeLost(remaining int)
	// LivesDepleted fires once, when lives reach zero
	LivesDepleted()
}

type nopListener struct{}

func (nopListener) GoalReached()   {}
func (nopListener) LifeLost(int)   {}
func (nopListener) LivesDepleted() {}

// Player is the grid-snapped character driven by direction commands
//
// States: Idle and Collided. Any obstacle hit latches Collided; the next Update
// resets position and takes a life in one step
type Player struct {
	x, y           float64
	startX, startY float64
	collided       bool
	lives          int

	listener PlayerListener
}

// NewPlayer creates a player on the middle column of the bottom row
func NewPlayer(listener PlayerListener) *Player {
	if listener == nil {
		listener = nopListener{}
	}
	p := &Player{
		startX:   ColumnX(constants.PlayerStartColumn),
		startY:   RowY(constants.PlayerBottomRow),
		lives:    constants.PlayerStartLives,
		listener: listener,
	}
	p.x, p.y = p.startX, p.startY
	return p
}

// FlagCollision latches a pending reset; repeated flags in one tick collapse
func (p *Player) FlagCollision() {
	p.collided = true
}

// Update resolves a pending collision: reset first, then life bookkeeping
func (p *Player) Update() {
	if !p.collided {
		return
	}
	p.Reset()
	p.LoseLife()
}

// Reset restores the start position and clears the collision latch
func (p *Player) Reset() {
	p.x = p.startX
	p.y = p.startY
	p.collided = false
}

// LoseLife decrements lives and signals depletion at zero; no-op when already at zero
func (p *Player) LoseLife() {
	if p.lives <= 0 {
		return
	}

	p.lives--
	p.listener.LifeLost(p.lives)

	if p.lives == 0 {
		p.listener.LivesDepleted()
	}
}

// HandleInput applies one movement command
// Horizontal and downward moves clamp at the board edge; "up" on the top row
// completes the level instead of moving
func (p *Player) HandleInput(dir Direction) {
	switch dir {
	case DirectionLeft:
		if p.x > playerMinX {
			p.x -= constants.CellWidth
		}

	case DirectionUp:
		if p.y == RowY(constants.PlayerTopRow) {
			p.listener.GoalReached()
		} else {
			p.y -= constants.CellHeight
		}

	case DirectionRight:
		if p.x < playerMaxX {
			p.x += constants.CellWidth
		}

	case DirectionDown:
		if p.y != p.startY {
			p.y += constants.CellHeight
		}
	}
}

func (p *Player) X() float64      { return p.x }
func (p *Player) Y() float64      { return p.y }
func (p *Player) StartX() float64 { return p.startX }
func (p *Player) StartY() float64 { return p.startY }
func (p *Player) Lives() int      { return p.lives }
func (p *Player) Collided() bool  { return p.collided }

func (p *Player) Sprite() string { return constants.SpritePlayer }

func (p *Player) Position() (x, y float64) { return p.x, p.y }
