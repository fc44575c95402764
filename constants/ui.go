package constants

// Terminal Layout
// One grid column is drawn CellChars wide and one grid row RowLines tall
const (
	CellChars = 8
	RowLines  = 2

	// BoardWidth and BoardHeight are the playfield size in terminal cells
	BoardWidth  = GridColumns * CellChars
	BoardHeight = GridRows * RowLines

	// BoardTop leaves one line above the board for the status bar
	BoardTop = 1

	// ScreenMinWidth and ScreenMinHeight are required to draw the board and help line
	ScreenMinWidth  = BoardWidth
	ScreenMinHeight = BoardTop + BoardHeight + 1
)

// Glyphs
const (
	GlyphObstacle = "<@@>"
	GlyphPlayer   = "o"
	GlyphLife     = '♥'
	GlyphWater    = '~'
	GlyphStone    = '.'
	GlyphGrass    = '"'
)

// Status Text
const (
	TextPaused   = " PAUSED "
	TextHelp     = "arrows/hjkl move p pause ^S sound q quit"
	TextGameOver = "Game Over"
)
