package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// GenerateMines places the board's mines uniformly at random on every cell
// except exclude, then counts adjacent mines for the rest of the board.
// It may be called only once per board.
func (board *Board) GenerateMines(r *rand.Rand, exclude int) {
	board.checkIndex(exclude)
	board.generateExcluding(r, []int{exclude})
}

// generateExcluding shuffles the candidate cells and takes the first numMines,
// so it terminates no matter how dense the board is.
func (board *Board) generateExcluding(r *rand.Rand, excluded []int) {
	board.checkNotGenerated()

	isExcluded := make(map[int]struct{}, len(excluded))
	for _, index := range excluded {
		isExcluded[index] = struct{}{}
	}

	// Store cell indexes, to shuffle later and fill mines
	cellIndexes := make([]int, 0, len(board.cells))
	for i := range board.cells {
		if _, skip := isExcluded[i]; !skip {
			cellIndexes = append(cellIndexes, i)
		}
	}
	if len(cellIndexes) < board.numMines {
		panic(AssertionError{fmt.Sprintf("cannot place %d mines in %d free cells", board.numMines, len(cellIndexes))})
	}

	r.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	board.fillMines(cellIndexes[:board.numMines])
}

// PlaceMines puts mines exactly at the given indexes. The number of indexes
// must match the board's mine count. It may be called only once per board,
// and not after GenerateMines.
func (board *Board) PlaceMines(indices []int) {
	board.checkNotGenerated()
	if len(indices) != board.numMines {
		panic(AssertionError{fmt.Sprintf("got %d mine positions for a board with %d mines", len(indices), board.numMines)})
	}

	seen := make(map[int]struct{}, len(indices))
	for _, index := range indices {
		board.checkIndex(index)
		if _, dup := seen[index]; dup {
			panic(AssertionError{fmt.Sprintf("mine position %d given twice", index)})
		}
		seen[index] = struct{}{}
	}

	board.fillMines(indices)
}

func (board *Board) checkNotGenerated() {
	if board.generated {
		panic(AssertionError{"mines already generated"})
	}
}

func (board *Board) fillMines(indices []int) {
	for _, index := range indices {
		board.cells[index].setMine(true)
	}

	var neighbors [8]int
	for i := range board.cells {
		cell := &board.cells[i]
		if cell.IsMine() {
			continue
		}

		count := 0
		for _, neighbor := range board.appendNeighbors(neighbors[:0], i) {
			if board.cells[neighbor].IsMine() {
				count++
			}
		}
		cell.setAdjacentMines(count)
	}

	board.generated = true
}

// firstClickExclusion returns the cells that must stay free of mines when
// index is the first cell revealed.
func (board *Board) firstClickExclusion(mode GameMode, index int) []int {
	excluded := []int{index}
	if mode == Win7 {
		surrounding := board.appendNeighbors(excluded, index)
		if board.NumCells()-len(surrounding) >= board.numMines {
			excluded = surrounding
		}
	}
	return excluded
}

// relocateLayout moves every layout mine that sits on an excluded cell to the
// first free cell in row-major order. The input slice is not modified.
func relocateLayout(layout []int, excluded []int, numCells int) []int {
	taken := make(map[int]struct{}, len(layout)+len(excluded))
	for _, index := range excluded {
		taken[index] = struct{}{}
	}

	placed := make([]int, 0, len(layout))
	var displaced int
	for _, index := range layout {
		if _, isExcluded := taken[index]; isExcluded {
			displaced++
			continue
		}
		placed = append(placed, index)
	}
	for _, index := range placed {
		taken[index] = struct{}{}
	}

	for i := 0; i < numCells && displaced > 0; i++ {
		if _, isTaken := taken[i]; isTaken {
			continue
		}
		taken[i] = struct{}{}
		placed = append(placed, i)
		displaced--
	}

	sort.Ints(placed)
	return placed
}
