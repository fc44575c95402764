package engine

import (
	"math"

	"github.com/lixenwraith/crossing/constants"
)

// Derived grid boundaries in pixel space
const (
	// ObstacleStartX is where obstacles enter, three columns left of the visible origin
	ObstacleStartX = -constants.CellWidth * constants.ObstacleOffscreenCells

	// ObstacleRightBoundary is the x past which obstacles wrap back to ObstacleStartX
	ObstacleRightBoundary = constants.CellWidth*constants.GridColumns + constants.CellWidth*constants.ObstacleOffscreenCells

	playerMinX = constants.CellWidth * constants.PlayerMinColumn
	playerMaxX = constants.CellWidth * constants.PlayerMaxColumn
)

// ColumnX returns the x coordinate of a grid column
func ColumnX(col int) float64 {
	return float64(col) * constants.CellWidth
}

// RowY returns the vertically centered y coordinate of a grid row
func RowY(row int) float64 {
	return float64(row)*constants.CellHeight - constants.CellHalfHeight
}

// RowOf returns the grid row containing y
func RowOf(y float64) int {
	return int(math.Round((y + constants.CellHalfHeight) / constants.CellHeight))
}

// LaneY returns the lane y coordinate for the i-th obstacle, cycling through the lanes
func LaneY(i int) float64 {
	return RowY(i%constants.ObstacleLaneCount + constants.ObstacleFirstLane)
}
