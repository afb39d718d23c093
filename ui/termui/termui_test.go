package termui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minefield/game"
)

func smallConfig() game.GameConfig {
	config := game.NewGameConfig()
	config.Width, config.Height, config.NumMines = 3, 3, 1
	config.Layout = []int{8}
	config.Seed = 3
	return config
}

func newTestUI(t *testing.T, options Options) *ui {
	t.Helper()
	u, err := newUI(smallConfig(), options)
	require.NoError(t, err)
	u.resize(20)
	return u
}

// countingDirector reveals cells left to right along the top row.
type countingDirector struct {
	next int
}

func (director *countingDirector) Init(*game.Session) {
	director.next = 0
}

func (director *countingDirector) Act() (game.Action, bool) {
	action := game.Action{Button: game.LeftButton, X: director.next, Y: 0}
	director.next++
	return action, true
}

func TestNewUIRejectsInvalidConfig(t *testing.T) {
	config := smallConfig()
	config.NumMines = 9
	_, err := newUI(config, Options{})
	require.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestMouseClicksOnPress(t *testing.T) {
	u := newTestUI(t, Options{})

	u.mouse(9, 3, tcell.ButtonSecondary)
	require.Equal(t, game.Flagged, u.session.Visual(1, 1))

	// still held down
	u.mouse(9, 3, tcell.ButtonSecondary)
	require.Equal(t, game.Flagged, u.session.Visual(1, 1))

	u.mouse(9, 3, tcell.ButtonNone)
	u.mouse(9, 3, tcell.ButtonSecondary)
	require.Equal(t, game.Closed, u.session.Visual(1, 1))

	u.mouse(0, 0, tcell.ButtonPrimary)
	require.False(t, u.session.MinesGenerated())

	u.mouse(0, 0, tcell.ButtonNone)
	u.mouse(7, 2, tcell.ButtonPrimary)
	require.Equal(t, game.Won, u.session.Status())
}

func TestQuitKeys(t *testing.T) {
	u := newTestUI(t, Options{})
	require.False(t, u.key(tcell.KeyEscape, 0))
	require.False(t, u.key(tcell.KeyCtrlC, 0))
	require.False(t, u.key(tcell.KeyRune, 'q'))
	require.True(t, u.key(tcell.KeyRune, 'x'))
}

func TestEnterStartsNewGameOnlyWhenOver(t *testing.T) {
	u := newTestUI(t, Options{})
	first := u.session

	require.True(t, u.key(tcell.KeyEnter, 0))
	require.Same(t, first, u.session)

	u.session.LeftClick(0, 0)
	require.True(t, u.session.Over())

	require.True(t, u.key(tcell.KeyEnter, 0))
	require.NotSame(t, first, u.session)
	require.Equal(t, game.Playing, u.session.Status())
	require.False(t, u.session.MinesGenerated())
	require.Equal(t, u.config.Seed, u.session.Seed())
}

func TestDirectorTicksUnlessPaused(t *testing.T) {
	config := smallConfig()
	config.Layout = []int{4}
	u, err := newUI(config, Options{NewDirector: func() game.Director { return &countingDirector{} }})
	require.NoError(t, err)

	u.tick()
	require.True(t, u.session.MinesGenerated())
	require.Equal(t, game.Digit1, u.session.Visual(0, 0))

	require.True(t, u.key(tcell.KeyRune, ' '))
	require.True(t, u.paused)
	u.tick()
	require.Equal(t, game.Closed, u.session.Visual(1, 0))

	u.key(tcell.KeyRight, 0)
	require.Equal(t, game.Digit1, u.session.Visual(1, 0))

	u.key(tcell.KeyRune, ' ')
	u.tick()
	require.Equal(t, game.Digit1, u.session.Visual(2, 0))
}

func TestSpaceWithoutDirectorDoesNotPause(t *testing.T) {
	u := newTestUI(t, Options{})
	u.key(tcell.KeyRune, ' ')
	require.False(t, u.paused)
}

func TestDrawShowsBoard(t *testing.T) {
	screen := newScreen(t, 20, 10)
	u := newTestUI(t, Options{})

	u.draw(screen)
	require.Equal(t, '#', runeAt(screen, 7, 2))
}
