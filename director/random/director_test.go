package random

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/they4kman/minefield/game"
)

func TestDirectorOnlyClicksClosedCells(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		config := game.NewGameConfig()
		config.Width, config.Height, config.NumMines = 6, 6, 5
		config.Seed = int64(seed)

		session, err := game.NewSession(config)
		require.NoError(t, err)

		director := &Director{Seed: seed}
		director.Init(session)

		steps := 0
		for !session.Over() {
			action, ok := director.Act()
			require.True(t, ok, "director gave up on a running game")
			require.Equal(t, game.LeftButton, action.Button)
			require.Equal(t, game.Closed, session.Visual(action.X, action.Y))
			session.Apply(action)

			steps++
			require.LessOrEqual(t, steps, 36)
		}
	}
}

func TestDirectorSameSeedSameOrder(t *testing.T) {
	session, err := game.NewSession(game.NewGameConfig())
	require.NoError(t, err)

	first, second := &Director{Seed: 5}, &Director{Seed: 5}
	first.Init(session)
	second.Init(session)
	require.Equal(t, first.order, second.order)

	uninitialised := &Director{}
	_, ok := uninitialised.Act()
	require.False(t, ok)
}
