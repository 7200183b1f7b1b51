package knowledge

import "math/rand/v2"

// Move is one cell the agent wants revealed. Guess is set when the
// move was picked at random rather than proven safe.
type Move struct {
	Cell  Cell
	Guess bool
}

/*
Agent is the move policy on top of a knowledge base. It prefers a
proven-safe unrevealed cell and falls back to a uniformly random cell
that is neither revealed nor a proven mine. Randomness comes from the
injected source only, so games are reproducible from a seed.
*/
type Agent struct {
	*Base
	r *rand.Rand
}

func NewAgent(height, width int, r *rand.Rand) *Agent {
	return &Agent{Base: NewBase(height, width), r: r}
}

// SafeMove returns the lexicographically smallest proven-safe cell
// that has not been revealed yet, or false when no such cell exists.
func (a *Agent) SafeMove() (Cell, bool) {
	var (
		best  Cell
		found bool
	)
	for c := range a.safes {
		if a.movesMade.contains(c) {
			continue
		}
		if !found || cellCmp(c, best) < 0 {
			best = c
			found = true
		}
	}
	return best, found
}

// RandomMove returns a uniformly random cell that has not been
// revealed and is not a proven mine, or false when no such cell is
// left.
func (a *Agent) RandomMove() (Cell, bool) {
	candidates := make([]Cell, 0, a.height*a.width)
	for row := range a.height {
		for col := range a.width {
			c := Cell{Row: row, Col: col}
			if a.movesMade.contains(c) || a.mines.contains(c) {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[a.r.IntN(len(candidates))], true
}

// NextMove picks the agent's move for this turn: a safe move when one
// is known, a random one otherwise. It returns false when no legal
// cell remains, which the caller must treat as the game being over.
func (a *Agent) NextMove() (Move, bool) {
	if c, ok := a.SafeMove(); ok {
		return Move{Cell: c}, true
	}
	if c, ok := a.RandomMove(); ok {
		return Move{Cell: c, Guess: true}, true
	}
	return Move{}, false
}
