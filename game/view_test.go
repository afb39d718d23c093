package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisualOf(t *testing.T) {
	cell := func(mine, exposed, flagged bool, count int) Cell {
		var c Cell
		c.setMine(mine)
		c.setExposed(exposed)
		c.setFlagged(flagged)
		c.setAdjacentMines(count)
		return c
	}

	tests := []struct {
		name   string
		cell   Cell
		symbol Symbol
	}{
		{"closed", cell(false, false, false, 0), Closed},
		{"closed number", cell(false, false, false, 4), Closed},
		{"closed mine", cell(true, false, false, 0), Closed},
		{"flagged", cell(false, false, true, 2), Flagged},
		{"flagged mine", cell(true, false, true, 0), Flagged},
		{"flag wins over exposed", cell(true, true, true, 0), Flagged},
		{"exposed mine", cell(true, true, false, 3), Mine},
		{"exposed empty", cell(false, true, false, 0), Exposed0},
		{"exposed one", cell(false, true, false, 1), Digit1},
		{"exposed five", cell(false, true, false, 5), Digit5},
		{"exposed eight", cell(false, true, false, 8), Digit8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.symbol, VisualOf(test.cell))
		})
	}
}

func TestOverlayOf(t *testing.T) {
	require.Equal(t, NoOverlay, OverlayOf(Playing))
	require.Equal(t, BannerWon, OverlayOf(Won))
	require.Equal(t, BannerLost, OverlayOf(Lost))
}

func TestSymbolDigits(t *testing.T) {
	for n := 1; n <= 8; n++ {
		require.True(t, Symbol(n).IsDigit())
	}
	require.False(t, Exposed0.IsDigit())
	require.False(t, Flagged.IsDigit())
	require.Len(t, Symbols, 14)
	require.Equal(t, "three", Digit3.String())
}

type drawCall struct {
	x, y    int
	symbol  Symbol
	bounds  Rect
	overlay bool
}

type recordingSink struct {
	calls []drawCall
}

func (sink *recordingSink) DrawCell(gx, gy int, symbol Symbol, bounds Rect) {
	sink.calls = append(sink.calls, drawCall{x: gx, y: gy, symbol: symbol, bounds: bounds})
}

func (sink *recordingSink) DrawOverlay(symbol Symbol, bounds Rect) {
	sink.calls = append(sink.calls, drawCall{symbol: symbol, bounds: bounds, overlay: true})
}

func TestDrawRowMajor(t *testing.T) {
	session := mustSession(t, fixedConfig(3, 2, 5))
	session.RightClick(1, 0)

	sink := &recordingSink{}
	session.Draw(sink)

	require.Len(t, sink.calls, 6)
	for i, call := range sink.calls {
		require.False(t, call.overlay)
		require.Equal(t, i%3, call.x)
		require.Equal(t, i/3, call.y)
	}
	require.Equal(t, Flagged, sink.calls[1].symbol)
	require.Equal(t, Closed, sink.calls[0].symbol)
	require.Equal(t, Rect{X: 1.0 / 3, Y: 0.5, W: 1.0 / 3, H: 0.5}, sink.calls[4].bounds)
}

func TestDrawOverlayWhenOver(t *testing.T) {
	session := mustSession(t, fixedConfig(3, 3, 8))
	session.LeftClick(0, 0)

	sink := &recordingSink{}
	session.Draw(sink)

	require.Len(t, sink.calls, 10)
	last := sink.calls[9]
	require.True(t, last.overlay)
	require.Equal(t, BannerWon, last.symbol)
	require.Equal(t, BannerBounds(), last.bounds)
	require.Equal(t, Digit1, sink.calls[4].symbol)
	require.Equal(t, Closed, sink.calls[8].symbol)
}

func TestBannerBounds(t *testing.T) {
	bounds := BannerBounds()
	require.InDelta(t, 0.05, bounds.X, 1e-9)
	require.InDelta(t, 0.9, bounds.W, 1e-9)
	require.InDelta(t, 0.9*72/298, bounds.H, 1e-9)
	require.InDelta(t, 0.5, bounds.Y+bounds.H/2, 1e-9)
}
