package knowledge

import (
	"fmt"
	"strings"
)

/*
A Sentence is a logical statement about the board: exactly `count' of
the cells in its set are mines. Each sentence owns its cell set; when a
cell's status becomes known the owning Base shrinks every sentence via
DiscardSafe/DiscardMine, so no two sentences ever alias storage.
*/
type Sentence struct {
	cells cellSet
	count int
}

// NewSentence builds a sentence over the given cells. Duplicate cells
// collapse. A count outside [0, len(cells)] means whoever produced the
// constraint was already inconsistent.
func NewSentence(cells []Cell, count int) (*Sentence, error) {
	s := &Sentence{cells: make(cellSet, len(cells)), count: count}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	if count < 0 || count > len(s.cells) {
		return nil, fmt.Errorf(
			"%w: sentence %s is unsatisfiable", ErrContradiction, s,
		)
	}
	return s, nil
}

func (s *Sentence) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, c := range s.cells.sorted() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "}=%d", s.count)
	return b.String()
}

// Equal reports whether two sentences carry the same constraint: same
// cell set, same count, regardless of insertion order.
func (s *Sentence) Equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.cells.contains(c) {
			return false
		}
	}
	return true
}

// Empty reports whether the sentence has no cells left and therefore
// carries no information.
func (s *Sentence) Empty() bool {
	return len(s.cells) == 0
}

// KnownMines returns every cell of the sentence when the count equals
// the cardinality, i.e. all of them must be mines. The count != 0 guard
// keeps a vacuous {}=0 sentence from claiming anything.
func (s *Sentence) KnownMines() []Cell {
	if s.count != 0 && s.count == len(s.cells) {
		return s.cells.sorted()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when the count is zero,
// i.e. none of them can be a mine.
func (s *Sentence) KnownSafes() []Cell {
	if s.count == 0 {
		return s.cells.sorted()
	}
	return nil
}

// DiscardMine removes a cell known to be a mine, decrementing the
// count. No-op when the cell is not referenced.
func (s *Sentence) DiscardMine(c Cell) {
	if s.cells.contains(c) {
		delete(s.cells, c)
		s.count--
	}
}

// DiscardSafe removes a cell known to be safe. The count is unchanged.
// No-op when the cell is not referenced.
func (s *Sentence) DiscardSafe(c Cell) {
	if s.cells.contains(c) {
		delete(s.cells, c)
	}
}

// check verifies the count invariant after a discard. A violation means
// the facts fed to the knowledge base contradict each other.
func (s *Sentence) check() error {
	if s.count < 0 || s.count > len(s.cells) {
		return fmt.Errorf(
			"%w: sentence %s is unsatisfiable", ErrContradiction, s,
		)
	}
	return nil
}

// subsetOf reports whether every cell of s also appears in other. An
// empty sentence is not considered a subset of anything; subtracting it
// would derive nothing new.
func (s *Sentence) subsetOf(other *Sentence) bool {
	if len(s.cells) == 0 || len(s.cells) > len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.cells.contains(c) {
			return false
		}
	}
	return true
}

// minus derives the sentence (other − s): the cells exclusive to other
// carry the leftover mine count. Only valid when s is a subset of
// other.
func (s *Sentence) minus(other *Sentence) (*Sentence, error) {
	cells := make([]Cell, 0, len(other.cells)-len(s.cells))
	for c := range other.cells {
		if !s.cells.contains(c) {
			cells = append(cells, c)
		}
	}
	return NewSentence(cells, other.count-s.count)
}
