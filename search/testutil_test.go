// Package search_test provides image fixtures shared across the *_test.go
// files exercising the public Search API.
package search_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tilewave/wavegrid/catalog"
	"github.com/tilewave/wavegrid/grid"
)

var (
	tstRed  = color.NRGBA{R: 255, A: 255}
	tstBlue = color.NRGBA{B: 255, A: 255}
)

// solid returns a w×h single-color image.
func solid(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

// checker returns a tiles×tiles checkerboard of solid blocks of the given
// pixel size.
func checker(tiles, tile int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, tiles*tile, tiles*tile))
	for y := 0; y < tiles*tile; y++ {
		for x := 0; x < tiles*tile; x++ {
			c := tstRed
			if (x/tile+y/tile)%2 == 1 {
				c = tstBlue
			}
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

// singleTileCatalog builds a one-tile catalog whose only pattern is the
// all-same 3×3 neighborhood: every cell has exactly one valid candidate.
func singleTileCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build([]image.Image{solid(12, 12, tstRed)}, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	return cat
}

// checkerCatalog builds the two-tile alternating catalog.
func checkerCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build([]image.Image{checker(4, 4)}, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	return cat
}

// patternlessCatalog builds a catalog whose sample is too small for any 3×3
// window: tiles exist but every cell is impossible.
func patternlessCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build([]image.Image{solid(8, 8, tstRed)}, 4, 4)
	require.NoError(t, err)
	require.Empty(t, cat.Patterns())

	return cat
}

// mustGrid builds an empty w×h grid.
func mustGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)

	return g
}
