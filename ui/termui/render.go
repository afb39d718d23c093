package termui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/they4kman/minefield/game"
)

const (
	// Terminal columns per board cell, so cells come out roughly square
	cellCols = 2
	// Header line plus a blank line above the board
	headerRows = 2
)

type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type glyph struct {
	r     rune
	style tcell.Style
}

var (
	closedStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorGray)
	exposedStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
)

var glyphs = map[game.Symbol]glyph{
	game.Closed:   {'#', closedStyle},
	game.Exposed0: {'.', exposedStyle.Foreground(tcell.ColorDimGray)},
	game.Digit1:   {'1', exposedStyle.Foreground(tcell.ColorBlue)},
	game.Digit2:   {'2', exposedStyle.Foreground(tcell.ColorGreen)},
	game.Digit3:   {'3', exposedStyle.Foreground(tcell.ColorRed)},
	game.Digit4:   {'4', exposedStyle.Foreground(tcell.ColorNavy)},
	game.Digit5:   {'5', exposedStyle.Foreground(tcell.ColorMaroon)},
	game.Digit6:   {'6', exposedStyle.Foreground(tcell.ColorTeal)},
	game.Digit7:   {'7', exposedStyle.Foreground(tcell.ColorWhite)},
	game.Digit8:   {'8', exposedStyle.Foreground(tcell.ColorGray)},
	game.Flagged:  {'F', closedStyle.Foreground(tcell.ColorRed).Bold(true)},
	game.Mine:     {'*', exposedStyle.Foreground(tcell.ColorRed).Bold(true)},
}

var bannerStyles = map[game.Symbol]tcell.Style{
	game.BannerWon:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen).Bold(true),
	game.BannerLost: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
}

var bannerText = map[game.Symbol]string{
	game.BannerWon:  " YOU WIN! ",
	game.BannerLost: " GAME OVER ",
}

// layout places the board on the screen: centred horizontally, below the
// header.
type layout struct {
	originX, originY int
	cols, rows       int
}

func newLayout(screenWidth, cols, rows int) layout {
	x := (screenWidth - cols*cellCols) / 2
	if x < 0 {
		x = 0
	}
	return layout{originX: x, originY: headerRows, cols: cols, rows: rows}
}

// PixelToGrid maps a terminal cell to a board cell.
func (l layout) PixelToGrid(px, py float64) (gx, gy int, ok bool) {
	col := int(math.Floor(px)) - l.originX
	row := int(math.Floor(py)) - l.originY
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	gx, gy = col/cellCols, row
	if gx >= l.cols || gy >= l.rows {
		return 0, 0, false
	}
	return gx, gy, true
}

func (l layout) width() int {
	return l.cols * cellCols
}

type sink struct {
	canvas canvas
	layout layout
}

func (s *sink) DrawCell(gx, gy int, symbol game.Symbol, _ game.Rect) {
	g, ok := glyphs[symbol]
	if !ok {
		return
	}
	x := s.layout.originX + gx*cellCols
	y := s.layout.originY + gy
	s.canvas.SetContent(x, y, g.r, nil, g.style)
	for i := 1; i < cellCols; i++ {
		s.canvas.SetContent(x+i, y, ' ', nil, g.style)
	}
}

// DrawOverlay writes the banner text across the board, on the row at the
// middle of the banner bounds.
func (s *sink) DrawOverlay(symbol game.Symbol, bounds game.Rect) {
	text, ok := bannerText[symbol]
	if !ok {
		return
	}
	row := int(math.Floor((bounds.Y + bounds.H/2) * float64(s.layout.rows)))
	if row >= s.layout.rows {
		row = s.layout.rows - 1
	}
	x := s.layout.originX + (s.layout.width()-len(text))/2
	if x < 0 {
		x = 0
	}
	drawString(s.canvas, x, s.layout.originY+row, text, bannerStyles[symbol])
}

func drawString(c canvas, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawHeader writes the mine counter and the game status above the board.
func drawHeader(c canvas, l layout, session *game.Session, paused bool) {
	x := drawString(c, l.originX, 0, fmt.Sprintf("%03d", session.MinesLeft()), tcell.StyleDefault.Bold(true))

	switch session.Status() {
	case game.Won:
		drawString(c, x, 0, "   WIN!", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	case game.Lost:
		drawString(c, x, 0, "   LOSE :(", tcell.StyleDefault.Foreground(tcell.ColorRed))
	default:
		if paused {
			drawString(c, x, 0, "   PAUSED", tcell.StyleDefault)
		}
	}
}

// render draws one frame. The caller clears and shows the screen.
func render(c canvas, l layout, session *game.Session, paused bool) {
	drawHeader(c, l, session, paused)
	session.Draw(&sink{canvas: c, layout: l})
}
