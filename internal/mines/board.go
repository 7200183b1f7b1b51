package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

var Log = logrus.New()

/*
Board holds the ground truth for one game: the grid dimensions and the
mine positions. It answers the three questions the driver needs — is
this cell a mine, how many mines neighbor it, and have all mines been
flagged — and nothing else; the reasoning core never touches it
directly.
*/
type Board struct {
	height, width int
	mines         map[knowledge.Cell]struct{}
}

// NewBoard places mineCount mines uniformly at random on a
// height×width grid.
func NewBoard(height, width, mineCount int, r *rand.Rand) (*Board, error) {
	b, err := newEmptyBoard(height, width)
	if err != nil {
		return nil, err
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, fmt.Errorf(
			"cannot place %d mines on a %dx%d board",
			mineCount, height, width,
		)
	}
	for len(b.mines) < mineCount {
		c := knowledge.Cell{Row: r.IntN(height), Col: r.IntN(width)}
		b.mines[c] = struct{}{}
	}
	return b, nil
}

// NewBoardWithMines places mines at the given cells, for deterministic
// scenarios. Duplicate cells collapse; out-of-bounds cells are
// rejected.
func NewBoardWithMines(height, width int, mines []knowledge.Cell) (*Board, error) {
	b, err := newEmptyBoard(height, width)
	if err != nil {
		return nil, err
	}
	for _, c := range mines {
		if !b.inBounds(c) {
			return nil, fmt.Errorf(
				"mine %s outside %dx%d board", c, height, width,
			)
		}
		b.mines[c] = struct{}{}
	}
	return b, nil
}

func newEmptyBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", height, width)
	}
	return &Board{
		height: height,
		width:  width,
		mines:  make(map[knowledge.Cell]struct{}),
	}, nil
}

func (b *Board) Height() int    { return b.height }
func (b *Board) Width() int     { return b.width }
func (b *Board) MineCount() int { return len(b.mines) }

func (b *Board) inBounds(c knowledge.Cell) bool {
	return 0 <= c.Row && c.Row < b.height && 0 <= c.Col && c.Col < b.width
}

// IsMine reports the ground truth for one cell.
func (b *Board) IsMine(c knowledge.Cell) bool {
	_, ok := b.mines[c]
	return ok
}

// NearbyMines returns the number of mines within one row and column of
// the cell, the cell itself excluded.
func (b *Board) NearbyMines(c knowledge.Cell) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbor := knowledge.Cell{Row: c.Row + dr, Col: c.Col + dc}
			if b.inBounds(neighbor) && b.IsMine(neighbor) {
				n++
			}
		}
	}
	return n
}

// MineCells returns every mine position in row-major order.
func (b *Board) MineCells() []knowledge.Cell {
	cells := make([]knowledge.Cell, 0, len(b.mines))
	for row := range b.height {
		for col := range b.width {
			c := knowledge.Cell{Row: row, Col: col}
			if b.IsMine(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// AllFlagged reports whether the flagged cells are exactly the board's
// mines — the win condition when the agent has proven every mine.
func (b *Board) AllFlagged(flagged []knowledge.Cell) bool {
	if len(flagged) != len(b.mines) {
		return false
	}
	for _, c := range flagged {
		if !b.IsMine(c) {
			return false
		}
	}
	return true
}

// SafeCellCount returns the number of non-mine cells on the board.
func (b *Board) SafeCellCount() int {
	return b.height*b.width - len(b.mines)
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.height {
		for col := range b.width {
			if b.IsMine(knowledge.Cell{Row: row, Col: col}) {
				fmt.Fprint(&sb, "* ")
			} else {
				fmt.Fprint(&sb, "- ")
			}
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
