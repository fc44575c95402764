package render

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crossing/constants"
	"github.com/lixenwraith/crossing/engine"
)

// TerminalRenderer draws the board, entities and HUD onto a tcell screen
// Pixel coordinates map to cells at CellChars columns per grid column and
// RowLines lines per grid row
type TerminalRenderer struct {
	screen  tcell.Screen
	width   int
	height  int
	originX int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size and recenters the board
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.originX = (r.width - constants.BoardWidth) / 2
	if r.originX < 0 {
		r.originX = 0
	}
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(entities []engine.Renderable, hud *HUD) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	if r.width < constants.ScreenMinWidth || r.height < constants.ScreenMinHeight {
		r.drawText(0, 0, fmt.Sprintf("need %dx%d", constants.ScreenMinWidth, constants.ScreenMinHeight), defaultStyle)
		r.screen.Show()
		return
	}

	r.drawBoard()
	r.drawEntities(entities)
	r.drawStatusBar(hud, defaultStyle)
	r.drawText(r.originX, constants.BoardTop+constants.BoardHeight, constants.TextHelp, defaultStyle.Foreground(RgbHelpText))

	if hud.ModalVisible {
		r.drawModal(hud)
	}

	r.screen.Show()
}

// CellFor maps a pixel-space position to the screen cell of its sprite origin
func (r *TerminalRenderer) CellFor(x, y float64) (col, line int) {
	col = r.originX + int(math.Floor(x/constants.CellWidth*constants.CellChars))
	line = constants.BoardTop + engine.RowOf(y)*constants.RowLines + constants.RowLines/2
	return col, line
}

func (r *TerminalRenderer) drawBoard() {
	for row := 0; row < constants.GridRows; row++ {
		glyph, style := laneStyle(row)
		for dy := 0; dy < constants.RowLines; dy++ {
			y := constants.BoardTop + row*constants.RowLines + dy
			for dx := 0; dx < constants.BoardWidth; dx++ {
				r.screen.SetContent(r.originX+dx, y, glyph, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawEntities(entities []engine.Renderable) {
	for _, e := range entities {
		glyph, fg := spriteGlyph(e.Sprite())
		x, y := e.Position()
		col, line := r.CellFor(x, y)
		col += (constants.CellChars - utf8.RuneCountInString(glyph)) / 2

		row := engine.RowOf(y)
		_, lane := laneStyle(row)
		_, bg, _ := lane.Decompose()
		style := tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true)

		for _, ch := range glyph {
			// Clip to the board; obstacles spend part of each pass off screen
			if col >= r.originX && col < r.originX+constants.BoardWidth {
				r.screen.SetContent(col, line, ch, nil, style)
			}
			col++
		}
	}
}

func spriteGlyph(sprite string) (string, tcell.Color) {
	switch sprite {
	case constants.SpriteObstacle:
		return constants.GlyphObstacle, RgbObstacle
	case constants.SpritePlayer:
		return constants.GlyphPlayer, RgbPlayer
	}
	return "?", tcell.ColorWhite
}

func (r *TerminalRenderer) drawStatusBar(hud *HUD, defaultStyle tcell.Style) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, defaultStyle)
	}

	x := r.originX
	x = r.drawText(x, 0, fmt.Sprintf(" LEVEL %d ", hud.Level), defaultStyle.Foreground(RgbStatusText).Background(RgbLevelBg))
	x = r.drawText(x, 0, fmt.Sprintf(" SCORE %d ", hud.Score), defaultStyle.Foreground(RgbStatusText).Background(RgbScoreBg))
	x++

	lifeStyle := defaultStyle.Foreground(RgbLife)
	for i := 0; i < hud.Lives; i++ {
		r.screen.SetContent(x, 0, constants.GlyphLife, nil, lifeStyle)
		x++
	}
	x++

	if hud.Paused {
		x = r.drawText(x, 0, constants.TextPaused, defaultStyle.Foreground(RgbStatusText).Background(RgbPausedBg))
	}
	if !hud.SoundOn {
		r.drawText(x, 0, " MUTE ", defaultStyle.Foreground(RgbStatusText).Background(RgbAudioMutedBg))
	}
}

func (r *TerminalRenderer) drawModal(hud *HUD) {
	lines := []string{
		constants.TextGameOver,
		"",
		"Your score is",
		fmt.Sprintf("%d", hud.FinalScore),
		"",
		"enter: close  q: quit",
	}

	boxWidth := constants.BoardWidth - 4
	boxHeight := len(lines) + 2
	left := r.originX + 2
	top := constants.BoardTop + (constants.BoardHeight-boxHeight)/2

	border := tcell.StyleDefault.Foreground(RgbModalBorder).Background(RgbModalBg)
	for y := top; y < top+boxHeight; y++ {
		for x := left; x < left+boxWidth; x++ {
			ch := ' '
			switch {
			case y == top || y == top+boxHeight-1:
				ch = '─'
			case x == left || x == left+boxWidth-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, border)
		}
	}
	r.screen.SetContent(left, top, '┌', nil, border)
	r.screen.SetContent(left+boxWidth-1, top, '┐', nil, border)
	r.screen.SetContent(left, top+boxHeight-1, '└', nil, border)
	r.screen.SetContent(left+boxWidth-1, top+boxHeight-1, '┘', nil, border)

	text := tcell.StyleDefault.Foreground(RgbModalText).Background(RgbModalBg)
	for i, line := range lines {
		style := text
		if i == 0 || i == 3 {
			style = style.Bold(true)
		}
		if i == 3 {
			style = style.Foreground(RgbModalScore)
		}
		x := left + (boxWidth-utf8.RuneCountInString(line))/2
		r.drawText(x, top+1+i, line, style)
	}
}

// drawText writes s starting at x and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
