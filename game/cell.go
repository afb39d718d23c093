package game

import "fmt"

// Cell is the packed state of a single grid position.
//
// Bit 0 marks a mine, bit 1 an exposed cell, bit 2 a flagged cell. Bits 8-15
// hold the number of adjacent mines, which is only meaningful once mines have
// been generated.
type Cell uint32

const (
	cellMine Cell = 1 << iota
	cellExposed
	cellFlagged
)

const (
	countShift      = 8
	countMask  Cell = 0xff << countShift
)

func (cell Cell) IsMine() bool {
	return cell&cellMine != 0
}

func (cell Cell) IsExposed() bool {
	return cell&cellExposed != 0
}

func (cell Cell) IsFlagged() bool {
	return cell&cellFlagged != 0
}

// AdjacentMines returns the number of mines in the cell's Moore neighborhood.
func (cell Cell) AdjacentMines() int {
	return int((cell & countMask) >> countShift)
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(mine=%t, exposed=%t, flagged=%t, adjacent=%d)",
		cell.IsMine(), cell.IsExposed(), cell.IsFlagged(), cell.AdjacentMines())
}

func (cell *Cell) setBit(bit Cell, value bool) {
	*cell &^= bit
	if value {
		*cell |= bit
	}
}

func (cell *Cell) setMine(isMine bool) {
	cell.setBit(cellMine, isMine)
}

func (cell *Cell) setExposed(isExposed bool) {
	cell.setBit(cellExposed, isExposed)
}

func (cell *Cell) setFlagged(isFlagged bool) {
	cell.setBit(cellFlagged, isFlagged)
}

func (cell *Cell) setAdjacentMines(count int) {
	if count < 0 || count > 8 {
		panic(AssertionError{fmt.Sprintf("adjacent mine count %d out of range", count)})
	}
	*cell &^= countMask
	*cell |= Cell(count) << countShift
}
