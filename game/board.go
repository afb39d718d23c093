package game

import (
	"fmt"
	"strings"
)

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         []Cell

	numFlags       int
	tilesRemaining int
	generated      bool
}

// BoardReader is the read-only view of a Board handed out by a Session.
type BoardReader interface {
	Width() int
	Height() int
	NumCells() int
	NumMines() int
	NumFlags() int
	TilesRemaining() int
	Generated() bool
	InBounds(x, y int) bool
	Index(x, y int) int
	Coords(index int) (int, int)
	Cell(index int) Cell
	CellAt(x, y int) Cell
	NeighborsOf(index int) []int
}

// NewBoard returns an empty board. Every cell starts closed, unflagged and
// without a mine; mines are placed later by GenerateMines or PlaceMines.
func NewBoard(width, height, numMines int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidConfig("board dimensions %dx%d must be positive", width, height)
	}
	numCells := width * height
	if numMines <= 0 || numMines >= numCells {
		return nil, invalidConfig("mine count %d must be between 1 and %d for a %dx%d board",
			numMines, numCells-1, width, height)
	}

	return &Board{
		width:          width,
		height:         height,
		numMines:       numMines,
		cells:          make([]Cell, numCells),
		tilesRemaining: numCells - numMines,
	}, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// TilesRemaining is the number of cells without a mine that are not yet
// exposed.
func (board *Board) TilesRemaining() int {
	return board.tilesRemaining
}

// Generated reports whether mines have been placed.
func (board *Board) Generated() bool {
	return board.generated
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.width && y < board.height
}

func (board *Board) Index(x, y int) int {
	if !board.InBounds(x, y) {
		panic(AssertionError{fmt.Sprintf("cell (%d, %d) outside %dx%d board", x, y, board.width, board.height)})
	}
	return x + y*board.width
}

func (board *Board) Coords(index int) (int, int) {
	board.checkIndex(index)
	return index % board.width, index / board.width
}

func (board *Board) Cell(index int) Cell {
	board.checkIndex(index)
	return board.cells[index]
}

func (board *Board) CellAt(x, y int) Cell {
	return board.cells[board.Index(x, y)]
}

func (board *Board) checkIndex(index int) {
	if index < 0 || index >= len(board.cells) {
		panic(AssertionError{fmt.Sprintf("cell index %d outside board of %d cells", index, len(board.cells))})
	}
}

// NeighborsOf returns the indexes of the cells surrounding index, clipped at
// the edges of the board. The order is row by row, left to right.
func (board *Board) NeighborsOf(index int) []int {
	var buf [8]int
	return board.appendNeighbors(buf[:0], index)
}

func (board *Board) appendNeighbors(out []int, index int) []int {
	x, y := board.Coords(index)

	isAtTopBorder := y < 1
	isAtBottomBorder := y >= board.height-1
	isAtLeftBorder := x < 1
	isAtRightBorder := x >= board.width-1

	for dy := -1; dy <= 1; dy++ {
		if (dy < 0 && isAtTopBorder) || (dy > 0 && isAtBottomBorder) {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if (dx < 0 && isAtLeftBorder) || (dx > 0 && isAtRightBorder) {
				continue
			}
			out = append(out, index+dx+dy*board.width)
		}
	}
	return out
}

// Expose opens the cell at index. Flagged and already exposed cells are left
// alone. Opening a cell with no adjacent mines opens its neighbors as well.
func (board *Board) Expose(index int) Outcome {
	board.checkIndex(index)

	if !board.exposeOne(index) {
		return Safe
	}

	cell := board.cells[index]
	if cell.IsMine() {
		return Detonated
	}
	if cell.AdjacentMines() == 0 {
		board.flood(index)
	}
	return Safe
}

// exposeOne marks a single cell exposed and reports whether it changed.
func (board *Board) exposeOne(index int) bool {
	cell := &board.cells[index]
	if cell.IsFlagged() || cell.IsExposed() {
		return false
	}

	cell.setExposed(true)
	if !cell.IsMine() {
		board.tilesRemaining--
	}
	return true
}

// ExposeAll opens every cell, mines included.
func (board *Board) ExposeAll() {
	for i := range board.cells {
		board.cells[i].setExposed(true)
	}
}

// ToggleFlag flips the flag on a closed cell. Exposed cells cannot be flagged.
func (board *Board) ToggleFlag(index int) {
	board.checkIndex(index)

	cell := &board.cells[index]
	if cell.IsExposed() {
		return
	}

	cell.setFlagged(!cell.IsFlagged())
	if cell.IsFlagged() {
		board.numFlags++
	} else {
		board.numFlags--
	}
}

// String dumps the board one row per line: '#' closed, 'f' flagged, 'F'
// flagged mine, 'O' hidden mine, '*' exposed mine, '.' exposed empty cell and
// '1'-'8' exposed numbers.
func (board *Board) String() string {
	var builder strings.Builder
	for y := 0; y < board.height; y++ {
		if y > 0 {
			builder.WriteByte('\n')
		}
		for x := 0; x < board.width; x++ {
			builder.WriteByte(serializeCell(board.cells[x+y*board.width]))
		}
	}
	return builder.String()
}

func serializeCell(cell Cell) byte {
	switch {
	case cell.IsMine():
		switch {
		case cell.IsFlagged():
			return 'F'
		case cell.IsExposed():
			return '*'
		default:
			return 'O'
		}
	case cell.IsFlagged():
		return 'f'
	case cell.IsExposed():
		if n := cell.AdjacentMines(); n > 0 {
			return byte('0' + n)
		}
		return '.'
	default:
		return '#'
	}
}
