package knowledge

import "errors"

var (
	// ErrContradiction indicates the knowledge base was fed inconsistent
	// facts: a cell declared both safe and mine, or a sentence count
	// pushed outside [0, len(cells)]. It is fatal for the game; the
	// inference engine never coerces its way past it.
	ErrContradiction = errors.New("contradiction in knowledge base")

	// ErrInvalidMove indicates a caller error such as observing an
	// out-of-bounds cell or one already revealed. The knowledge base is
	// left unchanged.
	ErrInvalidMove = errors.New("invalid move")
)
