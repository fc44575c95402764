package engine

import (
	"math"

	"github.com/lixenwraith/crossing/constants"
)

// Obstacle moves right along a fixed lane and wraps back to its start once off screen
type Obstacle struct {
	laneY  float64
	x      float64
	speed  float64
	startX float64
}

// NewObstacle creates an obstacle on laneY with a speed drawn from rng
func NewObstacle(laneY float64, rng RandomSource) *Obstacle {
	return &Obstacle{
		laneY:  laneY,
		x:      ObstacleStartX,
		speed:  drawSpeed(rng),
		startX: ObstacleStartX,
	}
}

// Advance moves the obstacle by speed*dt, wrapping to startX past the right boundary
func (o *Obstacle) Advance(dt float64) {
	o.x += o.speed * dt

	if o.x > ObstacleRightBoundary {
		o.x = o.startX
	}
}

// CheckCollision flags p and returns true when the obstacle overlaps its lane position
func (o *Obstacle) CheckCollision(p *Player) bool {
	if math.Abs(o.x-p.x) < constants.CollisionDistance && o.laneY == p.y {
		p.FlagCollision()
		return true
	}
	return false
}

// IncreaseSpeed applies the per-level speed increment
func (o *Obstacle) IncreaseSpeed() {
	o.speed += constants.ObstacleSpeedIncrement
}

func (o *Obstacle) X() float64      { return o.x }
func (o *Obstacle) LaneY() float64  { return o.laneY }
func (o *Obstacle) Speed() float64  { return o.speed }
func (o *Obstacle) StartX() float64 { return o.startX }

func (o *Obstacle) Sprite() string { return constants.SpriteObstacle }

func (o *Obstacle) Position() (x, y float64) { return o.x, o.laneY }
