package game

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Session is one game from the first click to a win or a loss. It owns its
// Board; callers only get a read-only view of it. A finished session accepts
// no more clicks, so a new game needs a new Session.
type Session struct {
	board *Board

	mode   GameMode
	layout []int
	seed   int64
	rand   *rand.Rand

	minesGenerated bool
	status         Status
}

// InputEvent is a click at a position in frontend coordinates.
type InputEvent struct {
	Button Button
	X, Y   float64
}

// Action is a click at a grid cell.
type Action struct {
	Button Button
	X, Y   int
}

// CoordinateMapper converts frontend coordinates to a grid cell.
type CoordinateMapper interface {
	PixelToGrid(px, py float64) (gx, gy int, ok bool)
}

func NewSession(config GameConfig) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(config.Width, config.Height, config.NumMines)
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var layout []int
	if config.Layout != nil {
		layout = append(layout, config.Layout...)
	}

	return &Session{
		board:  board,
		mode:   config.Mode,
		layout: layout,
		seed:   seed,
		rand:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1)),
		status: Playing,
	}, nil
}

func (session *Session) Board() BoardReader {
	return session.board
}

func (session *Session) Status() Status {
	return session.status
}

// Over reports whether the session has been won or lost.
func (session *Session) Over() bool {
	return session.status != Playing
}

func (session *Session) MinesGenerated() bool {
	return session.minesGenerated
}

// Seed is the seed the session's mine placement was drawn from.
func (session *Session) Seed() int64 {
	return session.seed
}

// NextSeed draws a seed for the next game from this session's generator, so a
// run of games started from one seed can be replayed.
func (session *Session) NextSeed() int64 {
	for {
		if seed := session.rand.Int64(); seed != 0 {
			return seed
		}
	}
}

// MinesLeft is the mine count minus the number of flags placed. It goes
// negative when more cells are flagged than there are mines.
func (session *Session) MinesLeft() int {
	return session.board.numMines - session.board.numFlags
}

// Click dispatches a click on grid cell (x, y).
func (session *Session) Click(button Button, x, y int) {
	switch button {
	case LeftButton:
		session.LeftClick(x, y)
	case RightButton:
		session.RightClick(x, y)
	}
}

func (session *Session) Apply(action Action) {
	session.Click(action.Button, action.X, action.Y)
}

// HandleInput maps a frontend click to the grid and applies it. Clicks that
// land outside the grid are ignored.
func (session *Session) HandleInput(mapper CoordinateMapper, event InputEvent) {
	if session.Over() {
		return
	}
	x, y, ok := mapper.PixelToGrid(event.X, event.Y)
	if !ok {
		return
	}
	session.Click(event.Button, x, y)
}

// LeftClick reveals cell (x, y). The first reveal of a session places the
// mines, keeping the revealed cell clear.
func (session *Session) LeftClick(x, y int) {
	if session.Over() || !session.board.InBounds(x, y) {
		return
	}

	index := session.board.Index(x, y)
	if !session.minesGenerated {
		session.generateMines(index)
		session.minesGenerated = true
	}

	if session.board.Expose(index) == Detonated {
		session.board.ExposeAll()
		session.end(Lost, x, y)
		return
	}

	if session.board.TilesRemaining() <= 0 {
		session.end(Won, x, y)
	}
}

// RightClick toggles the flag on cell (x, y).
func (session *Session) RightClick(x, y int) {
	if session.Over() || !session.board.InBounds(x, y) {
		return
	}
	session.board.ToggleFlag(session.board.Index(x, y))
}

func (session *Session) generateMines(index int) {
	excluded := session.board.firstClickExclusion(session.mode, index)

	if session.layout != nil {
		session.board.PlaceMines(relocateLayout(session.layout, excluded, session.board.NumCells()))
	} else {
		session.board.generateExcluding(session.rand, excluded)
	}

	Log.WithFields(logrus.Fields{
		"exclude": index,
		"mode":    session.mode.String(),
		"mines":   session.board.numMines,
		"fixed":   session.layout != nil,
		"seed":    session.seed,
	}).Debug("generated mines")
}

func (session *Session) end(status Status, x, y int) {
	session.status = status

	Log.WithFields(logrus.Fields{
		"status":         status.String(),
		"x":              x,
		"y":              y,
		"tilesRemaining": session.board.tilesRemaining,
	}).Info("game over")
	Log.Debugf("final board:\n%s", session.board)
}
