package knowledge

import (
	"fmt"
	"slices"
)

// Cell identifies a board square by zero-indexed row and column. It is a
// plain value type, safe to copy and to use as a map key.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

func cellCmp(a, b Cell) int {
	if a.Row != b.Row {
		if a.Row < b.Row {
			return -1
		}
		return 1
	}
	if a.Col != b.Col {
		if a.Col < b.Col {
			return -1
		}
		return 1
	}
	return 0
}

type cellSet map[Cell]struct{}

func (s cellSet) contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// sorted returns the set's cells in row-major order, so that anything
// iterating over knowledge produces reproducible traces.
func (s cellSet) sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

func sortCells(cells []Cell) {
	slices.SortFunc(cells, cellCmp)
}
