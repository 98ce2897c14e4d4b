package catalog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilewave/wavegrid/catalog"
)

// TestExportImport_RoundTrip verifies that a catalog reimported from its
// JSON export behaves identically and re-exports byte-for-byte.
func TestExportImport_RoundTrip(t *testing.T) {
	cat := checkerCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, cat.ExportJSON(&buf))
	first := buf.String()

	back, err := catalog.ImportJSON(strings.NewReader(first))
	require.NoError(t, err)

	assert.Equal(t, cat.TileWidth(), back.TileWidth())
	assert.Equal(t, cat.TileHeight(), back.TileHeight())
	assert.Equal(t, cat.Len(), back.Len())
	assert.Equal(t, cat.Patterns(), back.Patterns())
	for _, tile := range cat.Tiles() {
		got := back.Tile(tile.Hash)
		require.NotNil(t, got)
		assert.InDelta(t, tile.Frequency, got.Frequency, 1e-9)
		assert.Equal(t, tile.Block.Pix, got.Block.Pix, "pixel blocks survive the PNG trip")
	}

	// Queries agree after the round trip.
	h1, c1 := cat.Query(catalog.Pattern{})
	h2, c2 := back.Query(catalog.Pattern{})
	assert.Equal(t, h1, h2)
	assert.Equal(t, c1, c2)

	var again bytes.Buffer
	require.NoError(t, back.ExportJSON(&again))
	assert.Equal(t, first, again.String(), "exports are deterministic")
}

// TestImportJSON_BadPayloads verifies structural validation on import.
func TestImportJSON_BadPayloads(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"ZeroTileSize", `{"tile_width":0,"tile_height":4,"tiles":[],"patterns":[]}`},
		{"ReservedHash", `{"tile_width":4,"tile_height":4,"tiles":[{"hash":0,"frequency":1,"block":""}],"patterns":[]}`},
		{"BadBlock", `{"tile_width":4,"tile_height":4,"tiles":[{"hash":7,"frequency":1,"block":"bm90IGEgcG5n"}],"patterns":[]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.ImportJSON(strings.NewReader(tc.data))
			assert.ErrorIs(t, err, catalog.ErrBadExport)
		})
	}
}

// TestImportJSON_WrongBlockSize verifies the tile-dimension check on blocks.
func TestImportJSON_WrongBlockSize(t *testing.T) {
	// Export with 4px tiles, then claim 8px tiles in the payload header.
	cat := checkerCatalog(t)
	var buf bytes.Buffer
	require.NoError(t, cat.ExportJSON(&buf))

	tampered := strings.Replace(buf.String(), `"tile_width":4`, `"tile_width":8`, 1)
	_, err := catalog.ImportJSON(strings.NewReader(tampered))
	assert.ErrorIs(t, err, catalog.ErrBadExport)
}
