package catalog_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilewave/wavegrid/grid"
)

// TestEncode_RoundTripsSample verifies that encoding the very sample the
// catalog was built from yields a fully decided grid of known tiles.
func TestEncode_RoundTripsSample(t *testing.T) {
	cat := checkerCatalog(t)

	g, err := cat.Encode(checkerImage(4, 4, 4, red, blue))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 0, g.Undecided())

	// Alternation survives the trip.
	assert.NotEqual(t, g.At(0, 0), g.At(1, 0))
	assert.Equal(t, g.At(0, 0), g.At(1, 1))
}

// TestEncode_UnknownTilesBecomeUndecided verifies that tiles absent from the
// catalog encode as the reserved undecided hash.
func TestEncode_UnknownTilesBecomeUndecided(t *testing.T) {
	cat := checkerCatalog(t)

	green := uniformImage(16, 16, color.NRGBA{G: 255, A: 255})
	g, err := cat.Encode(green)
	require.NoError(t, err)
	assert.Equal(t, 16, g.Undecided())

	_, err = cat.Encode(nil)
	assert.Error(t, err)
}

// TestRender_PixelsAndMask verifies that decided cells render their block
// and clear the mask, while undecided cells stay blank and masked.
func TestRender_PixelsAndMask(t *testing.T) {
	cat := checkerCatalog(t)
	g, err := cat.Encode(checkerImage(4, 4, 4, red, blue))
	require.NoError(t, err)

	g.Set(2, 2, grid.Undecided)

	img, mask, err := cat.Render(g)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	// Corner cell is decided: pixels restored, mask cleared.
	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, uint8(0), mask.GrayAt(0, 0).Y)

	// The blanked cell: zero pixels, mask set.
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(9, 9))
	assert.Equal(t, uint8(255), mask.GrayAt(9, 9).Y)

	_, _, err = cat.Render(nil)
	assert.Error(t, err)
}

// TestFilter keeps or drops cells by tile membership.
func TestFilter(t *testing.T) {
	cat := checkerCatalog(t)
	g, err := cat.Encode(checkerImage(4, 4, 4, red, blue))
	require.NoError(t, err)

	a := g.At(0, 0)

	kept, err := cat.Filter(g, []grid.TileHash{a}, false)
	require.NoError(t, err)
	assert.Equal(t, 8, kept.Undecided(), "half the checkerboard is dropped")
	assert.Equal(t, a, kept.At(0, 0))
	assert.Equal(t, grid.Undecided, kept.At(1, 0))

	dropped, err := cat.Filter(g, []grid.TileHash{a}, true)
	require.NoError(t, err)
	assert.Equal(t, grid.Undecided, dropped.At(0, 0))
	assert.Equal(t, g.At(1, 0), dropped.At(1, 0))

	// Original is untouched.
	assert.Equal(t, 0, g.Undecided())

	_, err = cat.Filter(nil, nil, false)
	assert.Error(t, err)
}

func TestBlank(t *testing.T) {
	cat := checkerCatalog(t)
	assert.True(t, cat.Blank(grid.Undecided))
	assert.True(t, cat.Blank(12345))
	assert.False(t, cat.Blank(cat.Tiles()[0].Hash))
}
