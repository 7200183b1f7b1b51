package knowledge

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

/*
Base is the agent's knowledge about one game: which cells have been
revealed, which are proven safe or mine, and the set of sentences not
yet resolved either way. It lives for exactly one game and is owned by
a single agent; there is no locking.

Facts only accumulate. A cell added to `safes' or `mines' is never
removed or moved to the other set; an input that would require that is
a contradiction and surfaces as [ErrContradiction].
*/
type Base struct {
	height, width int

	movesMade cellSet
	safes     cellSet
	mines     cellSet
	sentences []*Sentence
}

func NewBase(height, width int) *Base {
	return &Base{
		height:    height,
		width:     width,
		movesMade: make(cellSet),
		safes:     make(cellSet),
		mines:     make(cellSet),
	}
}

func (kb *Base) Height() int { return kb.height }
func (kb *Base) Width() int  { return kb.width }

// Safes returns the proven-safe cells in row-major order.
func (kb *Base) Safes() []Cell { return kb.safes.sorted() }

// Mines returns the proven-mine cells in row-major order.
func (kb *Base) Mines() []Cell { return kb.mines.sorted() }

// MovesMade returns the revealed cells in row-major order.
func (kb *Base) MovesMade() []Cell { return kb.movesMade.sorted() }

// MoveCount returns the number of moves made so far.
func (kb *Base) MoveCount() int { return len(kb.movesMade) }

// SentenceCount returns the number of unresolved sentences held.
func (kb *Base) SentenceCount() int { return len(kb.sentences) }

// IsSafe reports whether the cell is proven safe.
func (kb *Base) IsSafe(c Cell) bool { return kb.safes.contains(c) }

// IsMine reports whether the cell is proven to be a mine.
func (kb *Base) IsMine(c Cell) bool { return kb.mines.contains(c) }

func (kb *Base) inBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < kb.height && 0 <= c.Col && c.Col < kb.width
}

// DeclareSafe records that a cell is proven safe and shrinks every
// sentence that references it. Declaring an established safe cell again
// is a no-op; declaring a known mine safe is a contradiction.
func (kb *Base) DeclareSafe(c Cell) error {
	if kb.mines.contains(c) {
		return fmt.Errorf(
			"%w: cell %s declared safe but known to be a mine",
			ErrContradiction, c,
		)
	}
	if kb.safes.contains(c) {
		return nil
	}
	kb.safes[c] = struct{}{}
	for _, s := range kb.sentences {
		s.DiscardSafe(c)
		if err := s.check(); err != nil {
			return err
		}
	}
	return nil
}

// DeclareMine records that a cell is proven to be a mine and shrinks
// every sentence that references it. Declaring an established mine
// again is a no-op; declaring a known safe cell a mine is a
// contradiction.
func (kb *Base) DeclareMine(c Cell) error {
	if kb.safes.contains(c) {
		return fmt.Errorf(
			"%w: cell %s declared mine but known to be safe",
			ErrContradiction, c,
		)
	}
	if kb.mines.contains(c) {
		return nil
	}
	kb.mines[c] = struct{}{}
	for _, s := range kb.sentences {
		s.DiscardMine(c)
		if err := s.check(); err != nil {
			return err
		}
	}
	return nil
}

/*
Observe folds one oracle report — a freshly revealed cell and its
adjacent mine count — into the knowledge base, then runs deduction to
a fixpoint.

The revealed cell is recorded as a made move and declared safe. Its
in-bounds neighbors, minus cells already proven either way, become a
new sentence; proven mines among the neighbors are subtracted from the
count first. A count the remaining neighbors cannot satisfy means the
oracle lied and surfaces as [ErrContradiction].

Out-of-bounds cells and repeat observations are rejected up front with
[ErrInvalidMove], leaving the knowledge base untouched.
*/
func (kb *Base) Observe(cell Cell, count int) error {
	if !kb.inBounds(cell) {
		return fmt.Errorf(
			"%w: cell %s outside %dx%d board",
			ErrInvalidMove, cell, kb.height, kb.width,
		)
	}
	if kb.movesMade.contains(cell) {
		return fmt.Errorf(
			"%w: cell %s already revealed", ErrInvalidMove, cell,
		)
	}
	if kb.mines.contains(cell) {
		return fmt.Errorf(
			"%w: revealed cell %s is a known mine", ErrContradiction, cell,
		)
	}

	kb.movesMade[cell] = struct{}{}
	if err := kb.DeclareSafe(cell); err != nil {
		return err
	}

	candidates := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if !kb.inBounds(n) {
				continue
			}
			if kb.safes.contains(n) {
				continue
			}
			if kb.mines.contains(n) {
				count--
				continue
			}
			candidates = append(candidates, n)
		}
	}

	if len(candidates) > 0 {
		s, err := NewSentence(candidates, count)
		if err != nil {
			return err
		}
		kb.sentences = append(kb.sentences, s)
		Log.WithFields(logrus.Fields{
			"cell":     cell,
			"sentence": s,
		}).Debug("observed")
	} else if count != 0 {
		return fmt.Errorf(
			"%w: cell %s reported %d mines among resolved neighbors",
			ErrContradiction, cell, count,
		)
	}

	return kb.close()
}

/*
close runs the deductive loop until a full pass derives nothing new.

Each pass first harvests trivially known cells from every sentence and
declares them, then applies the subset rule to every ordered pair of
distinct sentences: if A ⊂ B then exactly B.count−A.count mines sit in
B−A. Sentences derived in a pass join the collection after the pass
and are reconsidered on the next one, not within the same pass.

Termination: `safes', `mines' and the information carried by sentences
only grow, and both are bounded by the finite board, so the loop
reaches a fixpoint without any artificial iteration cap.
*/
func (kb *Base) close() error {
	for pass := 1; ; pass++ {
		changed := false

		pendingSafes := make(cellSet)
		pendingMines := make(cellSet)
		for _, s := range kb.sentences {
			for _, c := range s.KnownSafes() {
				pendingSafes[c] = struct{}{}
			}
			for _, c := range s.KnownMines() {
				pendingMines[c] = struct{}{}
			}
		}
		for _, c := range pendingSafes.sorted() {
			if pendingMines.contains(c) {
				return fmt.Errorf(
					"%w: cell %s deduced both safe and mine",
					ErrContradiction, c,
				)
			}
			if !kb.safes.contains(c) {
				if err := kb.DeclareSafe(c); err != nil {
					return err
				}
				changed = true
			}
		}
		for _, c := range pendingMines.sorted() {
			if !kb.mines.contains(c) {
				if err := kb.DeclareMine(c); err != nil {
					return err
				}
				changed = true
			}
		}

		var derived []*Sentence
		for _, a := range kb.sentences {
			for _, b := range kb.sentences {
				if a == b || a.Equal(b) || !a.subsetOf(b) {
					continue
				}
				cand, err := a.minus(b)
				if err != nil {
					return err
				}
				if cand.Empty() {
					continue
				}
				if containsSentence(kb.sentences, cand) ||
					containsSentence(derived, cand) {
					continue
				}
				derived = append(derived, cand)
			}
		}
		if len(derived) > 0 {
			kb.sentences = append(kb.sentences, derived...)
			changed = true
		}

		kept := kb.sentences[:0]
		for _, s := range kb.sentences {
			if !s.Empty() {
				kept = append(kept, s)
			}
		}
		kb.sentences = kept

		Log.WithFields(logrus.Fields{
			"pass":      pass,
			"safes":     len(kb.safes),
			"mines":     len(kb.mines),
			"sentences": len(kb.sentences),
		}).Debug("closure pass")

		if !changed {
			return nil
		}
	}
}

func containsSentence(list []*Sentence, s *Sentence) bool {
	for _, have := range list {
		if have.Equal(s) {
			return true
		}
	}
	return false
}
