package constraint

import (
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// Director plays from what is visible on the board. Around every exposed
// number it counts flagged and closed neighbors: when the flags already
// account for the number, the closed cells are safe; when flags plus closed
// cells equal the number, the closed cells are mines. With nothing to deduce
// it guesses like the random director.
type Director struct {
	session  *game.Session
	fallback random.Director
	pending  []game.Action
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.pending = nil
	director.fallback.Init(session)
}

func (director *Director) Act() (game.Action, bool) {
	if director.session == nil {
		return game.Action{}, false
	}

	if action, ok := director.popPending(); ok {
		return action, true
	}

	director.deduce()
	if action, ok := director.popPending(); ok {
		return action, true
	}

	return director.fallback.Act()
}

// popPending returns the next queued action that still applies to a closed
// cell.
func (director *Director) popPending() (game.Action, bool) {
	for len(director.pending) > 0 {
		action := director.pending[0]
		director.pending = director.pending[1:]
		if director.session.Visual(action.X, action.Y) == game.Closed {
			return action, true
		}
	}
	return game.Action{}, false
}

func (director *Director) deduce() {
	board := director.session.Board()
	safe := collections.NewSet[int]()
	mines := collections.NewSet[int]()

	for index := 0; index < board.NumCells(); index++ {
		x, y := board.Coords(index)
		symbol := director.session.Visual(x, y)
		if !symbol.IsDigit() {
			continue
		}

		var closed []int
		numFlagged := 0
		for _, neighbor := range board.NeighborsOf(index) {
			nx, ny := board.Coords(neighbor)
			switch director.session.Visual(nx, ny) {
			case game.Closed:
				closed = append(closed, neighbor)
			case game.Flagged:
				numFlagged++
			}
		}
		if len(closed) == 0 {
			continue
		}

		switch int(symbol) {
		case numFlagged:
			for _, neighbor := range closed {
				safe.Add(neighbor)
			}
		case numFlagged + len(closed):
			for _, neighbor := range closed {
				mines.Add(neighbor)
			}
		}
	}

	for _, index := range collections.Sorted(safe) {
		x, y := board.Coords(index)
		director.pending = append(director.pending, game.Action{Button: game.LeftButton, X: x, Y: y})
	}
	for _, index := range collections.Sorted(mines.Difference(safe)) {
		x, y := board.Coords(index)
		director.pending = append(director.pending, game.Action{Button: game.RightButton, X: x, Y: y})
	}
}
