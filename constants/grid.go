package constants

// Grid Geometry
// Entities live in a pixel-like coordinate space laid over a 5x6 cell grid.
// Row 0 is the goal row, rows 1-3 are obstacle lanes, rows 4-5 are safe ground
const (
	// CellWidth is the horizontal size of one grid column
	CellWidth = 101.0

	// CellHeight is the vertical size of one grid row
	CellHeight = 83.0

	// CellHalfHeight centers entities vertically inside a row
	CellHalfHeight = CellHeight / 2

	// GridColumns is the number of playfield columns
	GridColumns = 5

	// GridRows is the number of playfield rows, goal row included
	GridRows = 6
)

// Player Bounds (grid units)
const (
	PlayerMinColumn   = 0
	PlayerMaxColumn   = GridColumns - 1
	PlayerStartColumn = 2

	// PlayerTopRow is the last row before the goal row
	PlayerTopRow    = 1
	PlayerBottomRow = GridRows - 1
)

// Obstacle Lanes (grid units)
const (
	// ObstacleFirstLane is the row of the first obstacle lane
	ObstacleFirstLane = 1

	// ObstacleLaneCount is the number of rows obstacles travel on
	ObstacleLaneCount = 3

	// ObstacleOffscreenCells is how many columns obstacles travel beyond each edge
	ObstacleOffscreenCells = 3
)
