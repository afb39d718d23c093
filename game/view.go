package game

// Banner textures are 298x72 pixels.
const bannerAspect = 72.0 / 298.0

// Rect is an axis-aligned rectangle. Draw bounds are normalized to the unit
// square of the board area, with the origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// DrawSink receives one frame of the board.
type DrawSink interface {
	DrawCell(gx, gy int, symbol Symbol, bounds Rect)
	DrawOverlay(symbol Symbol, bounds Rect)
}

// VisualOf returns the symbol a player sees for a cell. A flag hides
// everything under it; an exposed cell shows its mine or number.
func VisualOf(cell Cell) Symbol {
	switch {
	case cell.IsFlagged():
		return Flagged
	case cell.IsExposed():
		if cell.IsMine() {
			return Mine
		}
		return Symbol(cell.AdjacentMines())
	default:
		return Closed
	}
}

// OverlayOf returns the banner shown for a session status.
func OverlayOf(status Status) Symbol {
	switch status {
	case Won:
		return BannerWon
	case Lost:
		return BannerLost
	default:
		return NoOverlay
	}
}

// CellBounds returns the normalized bounds of cell (gx, gy) on a board with
// the given dimensions.
func CellBounds(gx, gy, width, height int) Rect {
	w, h := 1/float64(width), 1/float64(height)
	return Rect{X: float64(gx) * w, Y: float64(gy) * h, W: w, H: h}
}

// BannerBounds returns the normalized bounds of the overlay banner.
func BannerBounds() Rect {
	w := 0.9
	h := w * bannerAspect
	return Rect{X: (1 - w) / 2, Y: (1 - h) / 2, W: w, H: h}
}

// Visual returns the symbol of cell (x, y).
func (session *Session) Visual(x, y int) Symbol {
	return VisualOf(session.board.CellAt(x, y))
}

func (session *Session) Overlay() Symbol {
	return OverlayOf(session.status)
}

// Draw sends every cell to the sink in row-major order, then the banner if
// the game is over.
func (session *Session) Draw(sink DrawSink) {
	board := session.board
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			sink.DrawCell(x, y, VisualOf(board.cells[x+y*board.width]), CellBounds(x, y, board.width, board.height))
		}
	}

	if overlay := session.Overlay(); overlay != NoOverlay {
		sink.DrawOverlay(overlay, BannerBounds())
	}
}
