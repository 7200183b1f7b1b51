package knowledge

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestObserveRejectsInvalidMoves(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)

	err := kb.Observe(Cell{3, 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidMove)
	err = kb.Observe(Cell{0, -1}, 0)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, 0, kb.MoveCount())
	assert.Empty(t, kb.Safes())

	require.NoError(t, kb.Observe(Cell{0, 0}, 0))
	moves := kb.MoveCount()
	safes := kb.Safes()

	err = kb.Observe(Cell{0, 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, moves, kb.MoveCount())
	assert.Equal(t, safes, kb.Safes())
}

func TestObserveZeroCountClearsNeighbors(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)
	require.NoError(t, kb.Observe(Cell{0, 0}, 0))

	assert.ElementsMatch(t,
		[]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		kb.Safes(),
	)
	assert.Empty(t, kb.Mines())
	// an all-safe sentence resolves immediately and is dropped
	assert.Equal(t, 0, kb.SentenceCount())
}

func TestObserveFullCountFlagsNeighbors(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)
	require.NoError(t, kb.Observe(Cell{1, 1}, 8))

	assert.Len(t, kb.Mines(), 8)
	assert.Equal(t, []Cell{{1, 1}}, kb.Safes())
	assert.Equal(t, 0, kb.SentenceCount())
}

func TestObserveAdjustsCountForKnownMines(t *testing.T) {
	t.Parallel()

	kb := NewBase(1, 3)
	// flag 0:2 first, then observe its neighbor: the reported count
	// includes the flagged mine, the stored sentence must not
	require.NoError(t, kb.DeclareMine(Cell{0, 2}))
	require.NoError(t, kb.Observe(Cell{0, 0}, 0))
	require.NoError(t, kb.Observe(Cell{0, 1}, 1))

	assert.Equal(t, []Cell{{0, 2}}, kb.Mines())
	assert.Equal(t, 0, kb.SentenceCount())
}

func TestObserveContradictoryCount(t *testing.T) {
	t.Parallel()

	kb := NewBase(1, 3)
	require.NoError(t, kb.Observe(Cell{0, 0}, 0))

	// 0:1 has a single unresolved neighbor left, a count of 5 cannot
	// be satisfied
	err := kb.Observe(Cell{0, 1}, 5)
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestDeclareContradiction(t *testing.T) {
	t.Parallel()

	kb := NewBase(2, 2)
	require.NoError(t, kb.DeclareSafe(Cell{0, 0}))
	assert.ErrorIs(t, kb.DeclareMine(Cell{0, 0}), ErrContradiction)

	require.NoError(t, kb.DeclareMine(Cell{1, 1}))
	assert.ErrorIs(t, kb.DeclareSafe(Cell{1, 1}), ErrContradiction)
}

func TestDeclareSafeBreaksSentenceInvariant(t *testing.T) {
	t.Parallel()

	kb := NewBase(2, 2)
	kb.sentences = []*Sentence{
		mustSentence(t, []Cell{{0, 0}, {0, 1}}, 2),
	}
	// removing a cell without decrementing leaves {0:1}=2
	assert.ErrorIs(t, kb.DeclareSafe(Cell{0, 0}), ErrContradiction)
}

func TestSubsetRuleDerivesMine(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)
	kb.sentences = []*Sentence{
		mustSentence(t, []Cell{{0, 0}, {0, 1}}, 1),
		mustSentence(t, []Cell{{0, 0}, {0, 1}, {0, 2}}, 2),
	}
	require.NoError(t, kb.close())

	assert.True(t, kb.IsMine(Cell{0, 2}))
	assert.False(t, kb.IsSafe(Cell{0, 2}))
}

func TestSubsetRuleDerivesSafe(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)
	kb.sentences = []*Sentence{
		mustSentence(t, []Cell{{0, 0}, {0, 1}, {0, 2}}, 1),
		mustSentence(t, []Cell{{0, 0}, {0, 1}}, 1),
	}
	require.NoError(t, kb.close())

	assert.True(t, kb.IsSafe(Cell{0, 2}))
	assert.False(t, kb.IsMine(Cell{0, 2}))
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)
	kb.sentences = []*Sentence{
		mustSentence(t, []Cell{{0, 0}, {0, 1}}, 1),
		mustSentence(t, []Cell{{0, 0}, {0, 1}, {0, 2}}, 2),
	}
	require.NoError(t, kb.close())

	safes := kb.Safes()
	mines := kb.Mines()
	sentences := kb.SentenceCount()

	require.NoError(t, kb.close())
	assert.Equal(t, safes, kb.Safes())
	assert.Equal(t, mines, kb.Mines())
	assert.Equal(t, sentences, kb.SentenceCount())
}

// Observations from a 1x3 board with its only mine at 0:2: two
// observations suffice to flag it.
func TestFlagsMineOnShortBoard(t *testing.T) {
	t.Parallel()

	kb := NewBase(1, 3)
	require.NoError(t, kb.Observe(Cell{0, 0}, 0))
	require.NoError(t, kb.Observe(Cell{0, 1}, 1))

	assert.Equal(t, []Cell{{0, 2}}, kb.Mines())
	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 1}}, kb.Safes())
}

// Observations from a 3x3 board with mines at 0:2 and 2:0, counts
// computed per its geometry. Facts must only accumulate and the
// proven sets must stay disjoint throughout.
func TestKnowledgeGrowsMonotonically(t *testing.T) {
	t.Parallel()

	kb := NewBase(3, 3)
	observations := []struct {
		cell  Cell
		count int
	}{
		{Cell{0, 0}, 0},
		{Cell{1, 1}, 2},
		{Cell{0, 1}, 1},
		{Cell{1, 0}, 1},
	}

	var prevSafes, prevMines []Cell
	for _, o := range observations {
		require.NoError(t, kb.Observe(o.cell, o.count))

		safes := kb.Safes()
		mines := kb.Mines()
		assert.Subset(t, safes, prevSafes)
		assert.Subset(t, mines, prevMines)
		for _, c := range mines {
			assert.NotContains(t, safes, c)
		}
		for _, s := range kb.sentences {
			assert.GreaterOrEqual(t, s.count, 0)
			assert.LessOrEqual(t, s.count, len(s.cells))
		}
		prevSafes, prevMines = safes, mines
	}
}

func TestEmptySentencesAreDropped(t *testing.T) {
	t.Parallel()

	kb := NewBase(1, 3)
	require.NoError(t, kb.Observe(Cell{0, 1}, 2))

	// both neighbors resolved to mines, nothing unresolved remains
	assert.ElementsMatch(t, []Cell{{0, 0}, {0, 2}}, kb.Mines())
	assert.Equal(t, 0, kb.SentenceCount())
}
