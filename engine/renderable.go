package engine

// Renderable is the capability consumed by the render collaborator
// Obstacle and Player satisfy it independently
type Renderable interface {
	Sprite() string
	Position() (x, y float64)
}
