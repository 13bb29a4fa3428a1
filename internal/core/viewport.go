package core

import "math"

// Viewport maps the y-up play plane onto a y-down grid of screen cells.
type Viewport struct {
	Cols, Rows   int
	CellW, CellH float64 // Plane units per cell
}

// NewViewport creates a viewport. Negative sizes are treated as zero.
func NewViewport(cols, rows int, cellW, cellH float64) Viewport {
	return Viewport{
		Cols:  max(cols, 0),
		Rows:  max(rows, 0),
		CellW: cellW,
		CellH: cellH,
	}
}

// Arena returns the plane area covered by the viewport.
func (v Viewport) Arena() Arena {
	return Arena{W: float64(v.Cols) * v.CellW, H: float64(v.Rows) * v.CellH}
}

// Cell returns the column and row containing p.
func (v Viewport) Cell(p Vec2) (col, row int) {
	h := float64(v.Rows) * v.CellH
	return int(math.Floor(p.X / v.CellW)), int(math.Floor((h - p.Y) / v.CellH))
}

// CellCenter returns the plane position of a cell's center.
func (v Viewport) CellCenter(col, row int) Vec2 {
	h := float64(v.Rows) * v.CellH
	return Vec2{
		X: (float64(col) + 0.5) * v.CellW,
		Y: h - (float64(row)+0.5)*v.CellH,
	}
}
