package game

import "github.com/gammazero/deque"

// flood exposes the region around a cell with no adjacent mines. Cells are
// visited from a worklist instead of recursively, so the stack stays flat on
// large boards. A cell is enqueued again only if it is still closed, and
// exposing is one-way, so the walk ends after at most NumCells steps.
func (board *Board) flood(origin int) {
	var queue deque.Deque
	var neighbors [8]int

	for _, neighbor := range board.appendNeighbors(neighbors[:0], origin) {
		queue.PushBack(neighbor)
	}

	for queue.Len() > 0 {
		index := queue.PopFront().(int)
		if !board.exposeOne(index) {
			continue
		}

		cell := board.cells[index]
		if cell.IsMine() || cell.AdjacentMines() != 0 {
			continue
		}

		for _, neighbor := range board.appendNeighbors(neighbors[:0], index) {
			if next := board.cells[neighbor]; !next.IsExposed() && !next.IsFlagged() {
				queue.PushBack(neighbor)
			}
		}
	}
}
