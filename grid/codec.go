package grid

import "github.com/bytedance/sonic"

// snapshot is the JSON wire form of a Grid.
type snapshot struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []TileHash `json:"cells"`
}

// MarshalJSON encodes the grid as {"width","height","cells"} with cells in
// row-major order.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(snapshot{Width: g.width, Height: g.height, Cells: g.cells})
}

// UnmarshalJSON decodes a snapshot produced by MarshalJSON. Returns
// ErrEmptyGrid for non-positive dimensions and ErrBadEncoding when the cell
// payload length disagrees with the declared dimensions.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := sonic.Unmarshal(data, &s); err != nil {
		return err
	}
	if s.Width < 1 || s.Height < 1 {
		return ErrEmptyGrid
	}
	if len(s.Cells) != s.Width*s.Height {
		return ErrBadEncoding
	}
	g.width, g.height = s.Width, s.Height
	g.cells = make([]TileHash, len(s.Cells))
	copy(g.cells, s.Cells)

	return nil
}
