package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crossing/constants"
)

// Lane and entity colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbWaterFg = tcell.NewRGBColor(120, 170, 255)
	RgbWaterBg = tcell.NewRGBColor(20, 60, 140)
	RgbStoneFg = tcell.NewRGBColor(110, 110, 110)
	RgbStoneBg = tcell.NewRGBColor(60, 60, 64)
	RgbGrassFg = tcell.NewRGBColor(120, 220, 120)
	RgbGrassBg = tcell.NewRGBColor(30, 100, 40)

	RgbObstacle = tcell.NewRGBColor(255, 80, 80)  // Normal Red
	RgbPlayer   = tcell.NewRGBColor(255, 255, 0)  // Bright Yellow
	RgbLife     = tcell.NewRGBColor(255, 60, 120) // Hot pink

	// Status bar
	RgbStatusText   = tcell.NewRGBColor(0, 0, 0)
	RgbLevelBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbScoreBg      = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbPausedBg     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbAudioMutedBg = tcell.NewRGBColor(200, 50, 50)
	RgbHelpText     = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	// Game-over modal
	RgbModalBg     = tcell.NewRGBColor(128, 0, 128) // Dark purple
	RgbModalText   = tcell.NewRGBColor(255, 255, 255)
	RgbModalScore  = tcell.NewRGBColor(255, 255, 0)
	RgbModalBorder = tcell.NewRGBColor(200, 150, 255)
)

// laneStyle returns the glyph and style for a board row
func laneStyle(row int) (rune, tcell.Style) {
	switch {
	case row < constants.ObstacleFirstLane:
		return constants.GlyphWater, tcell.StyleDefault.Foreground(RgbWaterFg).Background(RgbWaterBg)
	case row < constants.ObstacleFirstLane+constants.ObstacleLaneCount:
		return constants.GlyphStone, tcell.StyleDefault.Foreground(RgbStoneFg).Background(RgbStoneBg)
	default:
		return constants.GlyphGrass, tcell.StyleDefault.Foreground(RgbGrassFg).Background(RgbGrassBg)
	}
}
