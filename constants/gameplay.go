package constants

// Obstacle Mechanics
const (
	// ObstacleMinSpeed is the inclusive lower bound of a freshly drawn speed (pixels/second)
	ObstacleMinSpeed = 100

	// ObstacleMaxSpeed is the exclusive upper bound of a freshly drawn speed
	ObstacleMaxSpeed = 500

	// ObstacleSpeedIncrement is added to every obstacle on level-up
	ObstacleSpeedIncrement = 50

	// ObstacleDefaultCount places two obstacles on each lane
	ObstacleDefaultCount = 6

	// CollisionDistance is the horizontal proximity that counts as a hit.
	// Smaller than CellWidth so only near-exact overlap collides
	CollisionDistance = 75.0
)

// Player & Session
const (
	// PlayerStartLives is the number of lives at session start
	PlayerStartLives = 3

	// ScorePerLevel is awarded for each crossing
	ScorePerLevel = 100

	// StartLevel is the level a new session begins on
	StartLevel = 1
)

// Sprite identifiers consumed by the render collaborator
const (
	SpriteObstacle = "enemy-bug"
	SpritePlayer   = "char-boy"
)
