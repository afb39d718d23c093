package game

import "math"

// Viewport maps between window pixels (origin top-left, y down) and the board.
// The board fills the largest square centred in the window, so it keeps its
// shape when the window is stretched.
type Viewport struct {
	// Window size in pixels
	Width, Height float64
	// Board size in cells
	Cols, Rows int
}

// Square returns the pixel rectangle the board is drawn in.
func (viewport Viewport) Square() Rect {
	side := math.Min(viewport.Width, viewport.Height)
	return Rect{
		X: (viewport.Width - side) / 2,
		Y: (viewport.Height - side) / 2,
		W: side,
		H: side,
	}
}

// PixelToGrid returns the cell under pixel (px, py), or ok == false if the
// pixel is outside the board.
func (viewport Viewport) PixelToGrid(px, py float64) (gx, gy int, ok bool) {
	square := viewport.Square()
	if square.W <= 0 || viewport.Cols <= 0 || viewport.Rows <= 0 {
		return 0, 0, false
	}

	nx := (px - square.X) / square.W
	ny := (py - square.Y) / square.H
	if nx < 0 || ny < 0 || nx >= 1 || ny >= 1 {
		return 0, 0, false
	}

	gx = int(math.Floor(nx * float64(viewport.Cols)))
	gy = int(math.Floor(ny * float64(viewport.Rows)))
	if gx >= viewport.Cols || gy >= viewport.Rows {
		return 0, 0, false
	}
	return gx, gy, true
}

// Project converts normalized board bounds to window pixels.
func (viewport Viewport) Project(bounds Rect) Rect {
	square := viewport.Square()
	return Rect{
		X: square.X + bounds.X*square.W,
		Y: square.Y + bounds.Y*square.H,
		W: bounds.W * square.W,
		H: bounds.H * square.H,
	}
}
