package random

import (
	"math/rand/v2"

	"github.com/they4kman/minefield/game"
)

// Director reveals closed cells in a random order fixed at Init.
type Director struct {
	session *game.Session
	order   []int
	next    int

	// Seed for the visiting order; zero reuses the session's seed
	Seed uint64
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.next = 0

	board := session.Board()
	director.order = make([]int, board.NumCells())
	for i := range director.order {
		director.order[i] = i
	}

	seed := director.Seed
	if seed == 0 {
		seed = uint64(session.Seed())
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.Action, bool) {
	if director.session == nil {
		return game.Action{}, false
	}

	board := director.session.Board()
	for ; director.next < len(director.order); director.next++ {
		x, y := board.Coords(director.order[director.next])
		if director.session.Visual(x, y) == game.Closed {
			director.next++
			return game.Action{Button: game.LeftButton, X: x, Y: y}, true
		}
	}
	return game.Action{}, false
}
