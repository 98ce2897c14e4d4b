package catalog

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/bytedance/sonic"
	"golang.org/x/image/draw"

	"github.com/tilewave/wavegrid/grid"
)

// exportJSON is the wire form of a Catalog: the hash→(block, frequency)
// mapping plus the neighborhood table. Blocks travel as base64 PNG so the
// payload stays self-contained and diff-friendly.
type exportJSON struct {
	TileWidth  int           `json:"tile_width"`
	TileHeight int           `json:"tile_height"`
	Tiles      []tileJSON    `json:"tiles"`
	Patterns   []patternJSON `json:"patterns"`
}

type tileJSON struct {
	Hash      grid.TileHash `json:"hash"`
	Frequency float64       `json:"frequency"`
	Block     string        `json:"block"`
}

type patternJSON struct {
	Cells [PatternCells]grid.TileHash `json:"cells"`
	Count int64                       `json:"count"`
}

// ExportJSON writes the catalog as JSON. Tiles are sorted by hash and
// patterns keep their deterministic build order, so exports of the same
// catalog are byte-identical.
func (c *Catalog) ExportJSON(w io.Writer) error {
	out := exportJSON{
		TileWidth:  c.tileW,
		TileHeight: c.tileH,
		Tiles:      make([]tileJSON, 0, len(c.tiles)),
		Patterns:   make([]patternJSON, 0, len(c.patterns)),
	}
	for _, t := range c.Tiles() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, t.Block); err != nil {
			return fmt.Errorf("catalog: encoding tile %d: %w", t.Hash, err)
		}
		out.Tiles = append(out.Tiles, tileJSON{
			Hash:      t.Hash,
			Frequency: t.Frequency,
			Block:     base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
	}
	for _, p := range c.patterns {
		out.Patterns = append(out.Patterns, patternJSON{Cells: p.Cells, Count: p.Count})
	}

	data, err := sonic.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// ImportJSON reconstructs a catalog previously written by ExportJSON.
// Returns ErrBadExport (wrapped with context) when the payload is
// structurally valid JSON but not a usable catalog.
func ImportJSON(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var in exportJSON
	if err = sonic.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	if in.TileWidth < 1 || in.TileHeight < 1 {
		return nil, fmt.Errorf("%w: tile size %dx%d", ErrBadExport, in.TileWidth, in.TileHeight)
	}

	c := &Catalog{
		tileW: in.TileWidth,
		tileH: in.TileHeight,
		tiles: make(map[grid.TileHash]*Tile, len(in.Tiles)),
	}
	for _, tj := range in.Tiles {
		if tj.Hash == grid.Undecided {
			return nil, fmt.Errorf("%w: tile with reserved zero hash", ErrBadExport)
		}
		block, decErr := decodeBlock(tj.Block, in.TileWidth, in.TileHeight)
		if decErr != nil {
			return nil, fmt.Errorf("%w: tile %d: %v", ErrBadExport, tj.Hash, decErr)
		}
		c.tiles[tj.Hash] = &Tile{Hash: tj.Hash, Block: block, Frequency: tj.Frequency}
	}
	c.patterns = make([]PatternCount, 0, len(in.Patterns))
	for _, pj := range in.Patterns {
		c.patterns = append(c.patterns, PatternCount{Cells: pj.Cells, Count: pj.Count})
	}

	return c, nil
}

// decodeBlock turns a base64 PNG back into a tight NRGBA block and checks
// its dimensions against the catalog tile size.
func decodeBlock(enc string, w, h int) (*image.NRGBA, error) {
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return nil, fmt.Errorf("block is %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	return nrgba, nil
}
