package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilewave/wavegrid/grid"
	"github.com/tilewave/wavegrid/search"
)

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

func TestSearch_InputErrors(t *testing.T) {
	cat := singleTileCatalog(t)
	g := mustGrid(t, 4, 4)

	_, err := search.Search(nil, g)
	assert.ErrorIs(t, err, search.ErrNilCatalog)

	_, err = search.Search(cat, nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestSearch_OptionPanics(t *testing.T) {
	cat := singleTileCatalog(t)
	g := mustGrid(t, 4, 4)

	assert.Panics(t, func() { _, _ = search.Search(cat, g, search.WithFrequencyAdjust(1.5)) })
	assert.Panics(t, func() { _, _ = search.Search(cat, g, search.WithPlateauInterval(-2)) })
	assert.Panics(t, func() {
		_, _ = search.Search(cat, g, search.WithTemperature(search.Temperature{Start: 100}))
	})
	assert.Panics(t, func() {
		_, _ = search.Search(cat, g, search.WithWeights(search.Weights{Depth: -1}))
	})
}

//----------------------------------------------------------------------------//
// Terminal outcomes
//----------------------------------------------------------------------------//

// TestSearch_PreFilledGrid verifies that a grid with nothing to fill
// completes immediately at depth 0 without touching any cell.
func TestSearch_PreFilledGrid(t *testing.T) {
	cat := singleTileCatalog(t)
	h := cat.Tiles()[0].Hash

	g := mustGrid(t, 3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, h)
		}
	}

	res, err := search.Search(cat, g)
	require.NoError(t, err)
	assert.Equal(t, search.OutcomeComplete, res.Outcome)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 1, res.Expanded, "only the root is expanded")
	assert.True(t, g.Equal(res.Grid))
}

// TestSearch_SingleTileCompletes verifies a full fill when every cell has
// exactly one candidate.
func TestSearch_SingleTileCompletes(t *testing.T) {
	cat := singleTileCatalog(t)
	h := cat.Tiles()[0].Hash

	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		t.Run(conn.String(), func(t *testing.T) {
			res, err := search.Search(cat, mustGrid(t, 4, 4), search.WithConnectivity(conn))
			require.NoError(t, err)

			assert.Equal(t, search.OutcomeComplete, res.Outcome)
			assert.Equal(t, 16, res.Depth)
			assert.Equal(t, 0, res.Grid.Undecided())
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					assert.Equal(t, h, res.Grid.At(x, y))
				}
			}
		})
	}
}

// TestSearch_PlateauOnImpossibleGrid verifies the plateau stop when no cell
// ever has a candidate: the result keeps every cell undecided.
func TestSearch_PlateauOnImpossibleGrid(t *testing.T) {
	cat := patternlessCatalog(t)

	res, err := search.Search(cat, mustGrid(t, 4, 4), search.WithPlateauInterval(1))
	require.NoError(t, err)

	assert.Equal(t, search.OutcomePlateau, res.Outcome)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 16, res.Grid.Undecided())
}

// TestSearch_ExhaustedWithoutPlateau verifies that with plateau detection
// off, the same impossible grid drains the open list instead.
func TestSearch_ExhaustedWithoutPlateau(t *testing.T) {
	cat := patternlessCatalog(t)

	res, err := search.Search(cat, mustGrid(t, 4, 4), search.WithPlateauInterval(0))
	require.NoError(t, err)

	assert.Equal(t, search.OutcomeExhausted, res.Outcome)
	assert.Equal(t, 16, res.Grid.Undecided())
}

// TestSearch_CancelledBeforeFirstExpansion verifies that a pre-set stop flag
// aborts before any assignment.
func TestSearch_CancelledBeforeFirstExpansion(t *testing.T) {
	cat := singleTileCatalog(t)
	ctrl := search.NewControl()
	ctrl.Cancel()

	res, err := search.Search(cat, mustGrid(t, 4, 4), search.WithControl(ctrl))
	require.NoError(t, err)

	assert.Equal(t, search.OutcomeCancelled, res.Outcome)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 0, res.Expanded)
	assert.Equal(t, 16, res.Grid.Undecided())
}

//----------------------------------------------------------------------------//
// Steering and determinism
//----------------------------------------------------------------------------//

// TestSearch_RespectsPreDecidedCells verifies that pre-set cells are fixed
// and propagate their constraints: one seeded checker cell forces the whole
// alternation.
func TestSearch_RespectsPreDecidedCells(t *testing.T) {
	cat := checkerCatalog(t)
	tiles := cat.Tiles()
	a, b := tiles[0].Hash, tiles[1].Hash

	g := mustGrid(t, 6, 6)
	g.Set(0, 0, a)

	res, err := search.Search(cat, g, search.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, search.OutcomeComplete, res.Outcome)
	assert.Equal(t, 35, res.Depth)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := a
			if (x+y)%2 == 1 {
				want = b
			}
			assert.Equal(t, want, res.Grid.At(x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, a, g.At(0, 0))
	assert.Equal(t, 35, g.Undecided(), "the input grid is never mutated")
}

// TestSearch_SeedDeterminism verifies byte-identical grids for equal seeds
// and the seed-0 → default-stream mapping.
func TestSearch_SeedDeterminism(t *testing.T) {
	cat := checkerCatalog(t)

	run := func(opts ...search.Option) *search.Result {
		res, err := search.Search(cat, mustGrid(t, 6, 6), opts...)
		require.NoError(t, err)
		require.Equal(t, search.OutcomeComplete, res.Outcome)

		return res
	}

	first := run(search.WithSeed(99))
	second := run(search.WithSeed(99))
	assert.True(t, first.Grid.Equal(second.Grid))
	assert.Equal(t, first.Expanded, second.Expanded)

	zero := run(search.WithSeed(0))
	one := run(search.WithSeed(1))
	assert.True(t, zero.Grid.Equal(one.Grid), "seed 0 maps to the default stream")
}

// TestSearch_ProgressCounter verifies that a completed run pushes the shared
// counter to the cell total.
func TestSearch_ProgressCounter(t *testing.T) {
	cat := singleTileCatalog(t)
	ctrl := search.NewControl()

	res, err := search.Search(cat, mustGrid(t, 4, 4), search.WithControl(ctrl))
	require.NoError(t, err)
	require.Equal(t, search.OutcomeComplete, res.Outcome)
	assert.Equal(t, int64(16), ctrl.Progress())
}

// TestSearch_PlateauPadsProgress verifies that a plateau stop pushes the
// counter to this run's total so shared reporters do not stall.
func TestSearch_PlateauPadsProgress(t *testing.T) {
	cat := patternlessCatalog(t)
	ctrl := search.NewControl()

	res, err := search.Search(cat, mustGrid(t, 4, 4),
		search.WithPlateauInterval(1), search.WithControl(ctrl))
	require.NoError(t, err)
	require.Equal(t, search.OutcomePlateau, res.Outcome)
	assert.Equal(t, int64(16), ctrl.Progress())
}

// TestSearch_ExhaustionPadsProgress verifies the same padding when the open
// list drains: reporters converge on done == total for failed runs too.
func TestSearch_ExhaustionPadsProgress(t *testing.T) {
	cat := patternlessCatalog(t)
	ctrl := search.NewControl()

	res, err := search.Search(cat, mustGrid(t, 4, 4),
		search.WithPlateauInterval(0), search.WithControl(ctrl))
	require.NoError(t, err)
	require.Equal(t, search.OutcomeExhausted, res.Outcome)
	assert.Equal(t, int64(16), ctrl.Progress())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "complete", search.OutcomeComplete.String())
	assert.Equal(t, "plateau", search.OutcomePlateau.String())
	assert.Equal(t, "exhausted", search.OutcomeExhausted.String())
	assert.Equal(t, "cancelled", search.OutcomeCancelled.String())
	assert.Equal(t, "unknown", search.Outcome(42).String())
}
