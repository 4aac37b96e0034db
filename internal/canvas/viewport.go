package canvas

import "math"

// Viewport maps world coordinates (origin bottom-left, y up) onto a grid of
// cols x rows cells (origin top-left, y down).
type Viewport struct {
	W, H       float64
	Cols, Rows int
}

// Cell returns the cell holding world point (x, y). Points on the far edges
// land on the last column or row.
func (v Viewport) Cell(x, y float64) (int, int) {
	cx, cy := v.Point(x, y)
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// Point returns fractional cell coordinates of world point (x, y).
func (v Viewport) Point(x, y float64) (float64, float64) {
	if v.W <= 0 || v.H <= 0 || v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	cx := x / v.W * float64(v.Cols)
	cy := (v.H - y) / v.H * float64(v.Rows)
	if cx >= float64(v.Cols) {
		cx = float64(v.Cols) - 0.5
	}
	if cy >= float64(v.Rows) {
		cy = float64(v.Rows) - 0.5
	}
	return cx, cy
}

// Scale returns world length d in columns and rows.
func (v Viewport) Scale(d float64) (float64, float64) {
	if v.W <= 0 || v.H <= 0 {
		return 0, 0
	}
	return d / v.W * float64(v.Cols), d / v.H * float64(v.Rows)
}
