package catalog

import (
	"image"

	"github.com/tilewave/wavegrid/grid"
)

// Encode converts an image into a tile-hash grid using the catalog's tile
// size. The image is first rescaled to the nearest tile multiple (warning
// on mismatch, as in Build); tiles whose hash is not in the catalog encode
// as grid.Undecided.
// Complexity: O(pixels).
func (c *Catalog) Encode(img image.Image) (*grid.Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	nrgba, tilesX, tilesY := c.adjustToTileSize(img, 0)
	g, err := grid.New(tilesX, tilesY)
	if err != nil {
		return nil, err
	}
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			h := HashTile(copyBlock(nrgba, tx*c.tileW, ty*c.tileH, c.tileW, c.tileH))
			if c.tiles[h] == nil {
				h = grid.Undecided
			}
			g.Set(tx, ty, h)
		}
	}

	return g, nil
}

// Render materializes a tile-hash grid back into pixels. Decided cells are
// replaced by their tile block; undecided or unknown cells stay blank and
// are marked opaque white (255) in the returned mask, so callers can
// composit or inpaint them.
// Complexity: O(pixels).
func (c *Catalog) Render(g *grid.Grid) (*image.NRGBA, *image.Gray, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	w, h := g.Width()*c.tileW, g.Height()*c.tileH
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := c.tiles[g.At(x, y)]
			if t == nil {
				continue
			}
			c.blit(img, mask, t.Block, x*c.tileW, y*c.tileH)
		}
	}

	return img, mask, nil
}

// blit copies a tile block into img at (x0,y0) and clears the matching mask
// region to 0 (decided).
func (c *Catalog) blit(img *image.NRGBA, mask *image.Gray, block *image.NRGBA, x0, y0 int) {
	for row := 0; row < c.tileH; row++ {
		dstOff := (y0+row)*img.Stride + x0*4
		copy(img.Pix[dstOff:dstOff+c.tileW*4], block.Pix[row*block.Stride:row*block.Stride+c.tileW*4])
		maskOff := (y0+row)*mask.Stride + x0
		for i := 0; i < c.tileW; i++ {
			mask.Pix[maskOff+i] = 0
		}
	}
}

// Filter returns a copy of g keeping only cells whose tile is in keep
// (or, with invert, only cells whose tile is NOT in keep); all other cells
// become undecided. Useful to blank out regions before re-generation.
// Complexity: O(W×H).
func (c *Catalog) Filter(g *grid.Grid, keep []grid.TileHash, invert bool) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	set := make(map[grid.TileHash]struct{}, len(keep))
	for _, h := range keep {
		set[h] = struct{}{}
	}
	out := g.Clone()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			_, in := set[out.At(x, y)]
			if in != invert {
				continue
			}
			out.Set(x, y, grid.Undecided)
		}
	}

	return out, nil
}

// Blank reports whether the catalog would render the given hash as a blank
// cell (undecided or unknown tile).
func (c *Catalog) Blank(h grid.TileHash) bool {
	return c.tiles[h] == nil
}
