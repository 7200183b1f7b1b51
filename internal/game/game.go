package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var Log = logrus.New()

type Outcome int

const (
	Won Outcome = iota
	Lost
	Stuck
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Result summarizes one finished game.
type Result struct {
	Outcome Outcome
	Moves   int
	Guesses int
	HitMine *knowledge.Cell // set when Outcome is Lost
}

/*
Play runs the strict board/agent alternation until the game ends: the
agent picks a cell, the board reveals it, and for a safe cell the
adjacent mine count is fed back into the agent's knowledge base. The
game is won when every safe cell has been revealed or every mine has
been flagged, lost when a guess lands on a mine, and stuck when no
legal cell remains.

Errors out of the knowledge base (contradictions) are driver-fatal;
the partial Result accompanies them for diagnostics.
*/
func Play(board *mines.Board, agent *knowledge.Agent) (Result, error) {
	var res Result
	for {
		if agent.MoveCount() == board.SafeCellCount() ||
			board.AllFlagged(agent.Mines()) {
			res.Outcome = Won
			return res, nil
		}

		move, ok := agent.NextMove()
		if !ok {
			res.Outcome = Stuck
			return res, nil
		}
		res.Moves++
		if move.Guess {
			res.Guesses++
		}

		if board.IsMine(move.Cell) {
			hit := move.Cell
			res.Outcome = Lost
			res.HitMine = &hit
			Log.WithFields(logrus.Fields{
				"cell":  move.Cell,
				"moves": res.Moves,
			}).Debug("stepped on a mine")
			return res, nil
		}

		count := board.NearbyMines(move.Cell)
		if err := agent.Observe(move.Cell, count); err != nil {
			return res, fmt.Errorf(
				"observing cell %s: %w", move.Cell, err,
			)
		}
		Log.WithFields(logrus.Fields{
			"cell":  move.Cell,
			"count": count,
			"guess": move.Guess,
			"safes": len(agent.Safes()),
			"mines": len(agent.Mines()),
		}).Debug("revealed")
	}
}
