// Package catalog builds tile catalogs from sample images: each sample is
// resized to the nearest tile-size multiple, partitioned into non-overlapping
// tiles, hashed and deduplicated, and every 3x3 window of the resulting
// tile-hash grid is recorded as a neighborhood pattern with its count.
package catalog

import (
	"encoding/binary"
	"image"
	"math"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/draw"

	"github.com/tilewave/wavegrid/grid"
)

// Build constructs a Catalog from one or more sample images sliced into
// tileW×tileH blocks.
//
// Per sample: the image is rescaled to the nearest multiple of the tile size
// (a mismatch logs a warning, never an error), partitioned, hashed with
// 4-byte BLAKE2b, and deduplicated. A tile's per-sample frequency is
// count / total tiles in that sample; across samples frequencies under the
// same hash are summed, not recomputed from raw counts. The 3x3 neighborhood
// table is built over the tile-hash grid and merged additively across
// samples and identical patterns.
//
// Returns ErrNoSamples or ErrBadTileSize on invalid input.
// Complexity: O(total pixels + samples × tiles × patterns).
func Build(samples []image.Image, tileW, tileH int) (*Catalog, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if tileW < 1 || tileH < 1 {
		return nil, ErrBadTileSize
	}

	c := &Catalog{
		tileW: tileW,
		tileH: tileH,
		tiles: make(map[grid.TileHash]*Tile),
	}
	patterns := make(map[Pattern]int64)
	for i, img := range samples {
		if img == nil {
			return nil, ErrNilImage
		}
		c.addSample(img, i, patterns)
	}
	c.patterns = flattenPatterns(patterns)

	return c, nil
}

// addSample slices one sample into tiles, merges its tile frequencies into
// the catalog, and accumulates its 3x3 neighborhood counts.
func (c *Catalog) addSample(img image.Image, index int, patterns map[Pattern]int64) {
	nrgba, tilesX, tilesY := c.adjustToTileSize(img, index)

	// Hash every tile; keep the first-seen pixel block per unique hash.
	hashes := make([][]grid.TileHash, tilesY)
	counts := make(map[grid.TileHash]int, tilesX*tilesY)
	blocks := make(map[grid.TileHash]*image.NRGBA)
	for ty := 0; ty < tilesY; ty++ {
		hashes[ty] = make([]grid.TileHash, tilesX)
		for tx := 0; tx < tilesX; tx++ {
			block := copyBlock(nrgba, tx*c.tileW, ty*c.tileH, c.tileW, c.tileH)
			h := HashTile(block)
			hashes[ty][tx] = h
			counts[h]++
			if _, seen := blocks[h]; !seen {
				blocks[h] = block
			}
		}
	}

	// Per-sample frequency merge: sum frequencies under matching hashes.
	total := float64(tilesX * tilesY)
	for h, n := range counts {
		freq := float64(n) / total
		if t, ok := c.tiles[h]; ok {
			t.Frequency += freq
			continue
		}
		c.tiles[h] = &Tile{Hash: h, Block: blocks[h], Frequency: freq}
	}

	// Slide the 3x3 window over the tile-hash grid, not the pixels.
	for y := 0; y+PatternSize <= tilesY; y++ {
		for x := 0; x+PatternSize <= tilesX; x++ {
			var p Pattern
			for dy := 0; dy < PatternSize; dy++ {
				for dx := 0; dx < PatternSize; dx++ {
					p[dy*PatternSize+dx] = hashes[y+dy][x+dx]
				}
			}
			patterns[p]++
		}
	}
}

// adjustToTileSize converts img to NRGBA and rescales it to the nearest
// tile-size multiple (at least one tile per axis). Misalignment is a
// warning, never an error.
func (c *Catalog) adjustToTileSize(img image.Image, index int) (nrgba *image.NRGBA, tilesX, tilesY int) {
	b := img.Bounds()
	tilesX = nearestTiles(b.Dx(), c.tileW)
	tilesY = nearestTiles(b.Dy(), c.tileH)
	w, h := tilesX*c.tileW, tilesY*c.tileH

	nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
	if w != b.Dx() || h != b.Dy() {
		catLog.Warn().
			Int("sample", index).
			Int("width", b.Dx()).Int("height", b.Dy()).
			Int("tile_width", c.tileW).Int("tile_height", c.tileH).
			Msg("sample size is not a tile multiple; rescaling")
		draw.NearestNeighbor.Scale(nrgba, nrgba.Bounds(), img, b, draw.Src, nil)

		return nrgba, tilesX, tilesY
	}
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	return nrgba, tilesX, tilesY
}

// nearestTiles rounds length/tile to the nearest whole tile count, never
// below one.
func nearestTiles(length, tile int) int {
	n := int(math.Round(float64(length) / float64(tile)))
	if n < 1 {
		n = 1
	}

	return n
}

// copyBlock extracts a tight w×h NRGBA block starting at (x0,y0).
func copyBlock(src *image.NRGBA, x0, y0, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		srcOff := (y0+row)*src.Stride + x0*4
		copy(dst.Pix[row*dst.Stride:row*dst.Stride+w*4], src.Pix[srcOff:srcOff+w*4])
	}

	return dst
}

// HashTile returns the 4-byte BLAKE2b digest of a tight NRGBA pixel block,
// interpreted as a big-endian uint32. This is the tile's identity everywhere
// in wavegrid.
func HashTile(block *image.NRGBA) grid.TileHash {
	h, err := blake2b.New(grid.HashSize, nil)
	if err != nil {
		panic(err)
	}
	h.Write(block.Pix)

	return grid.TileHash(binary.BigEndian.Uint32(h.Sum(nil)))
}

// flattenPatterns converts the merge map into a deterministically ordered
// slice (lexicographic by cells).
func flattenPatterns(m map[Pattern]int64) []PatternCount {
	out := make([]PatternCount, 0, len(m))
	for p, n := range m {
		out = append(out, PatternCount{Cells: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return lessPattern(out[i].Cells, out[j].Cells) })

	return out
}

// lessPattern orders patterns lexicographically by their cells.
func lessPattern(a, b Pattern) bool {
	for i := 0; i < PatternCells; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// sortTiles orders tiles by ascending hash.
func sortTiles(ts []*Tile) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Hash < ts[j].Hash })
}
