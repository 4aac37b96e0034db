// Package canvas provides a colored character buffer that the terminal
// front end draws scenes into. It has no terminal dependencies so drawing
// stays testable.
package canvas

import (
	"math"
	"strings"
)

// Cell is one character position on the canvas.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Canvas is a 2D grid of cells. Row 0 is the top line of the terminal.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a canvas of the given size filled with spaces.
func New(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	c.Clear()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}

	old := c.cells
	oldW, oldH := c.width, c.height

	c.width = width
	c.height = height
	c.allocate()
	c.Clear()

	for y := 0; y < min(oldH, height); y++ {
		copy(c.cells[y], old[y][:min(oldW, width)])
	}
}

// Clear fills the canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if !c.in(x, y) {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the rune at the given position, or a space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (c *Canvas) GetCell(x, y int) Cell {
	if !c.in(x, y) {
		return blank
	}
	return c.cells[y][x]
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// DrawText writes a string horizontally starting at (x, y), clipped at the
// edges.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawTextRight writes text so that it ends at the right edge of row y.
func (c *Canvas) DrawTextRight(y int, text string, color Color) {
	c.DrawText(c.width-len([]rune(text)), y, text, color)
}

// DrawTextCentered draws text centered horizontally on row y.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	c.DrawText((c.width-len([]rune(text)))/2, y, text, color)
}

// DrawLine draws a straight line between two cells (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, r rune, color Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawEllipse traces an axis-aligned ellipse outline centered on (cx, cy)
// with radii rx and ry, all in fractional cell units. Cells already holding
// a non-space rune are left alone so outlines never overwrite bodies.
func (c *Canvas) DrawEllipse(cx, cy, rx, ry float64, r rune, color Color) {
	steps := int(4*(rx+ry)) + 8
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Floor(cx + rx*math.Cos(a)))
		y := int(math.Floor(cy + ry*math.Sin(a)))
		if c.Get(x, y) == ' ' {
			c.Set(x, y, r, color)
		}
	}
}

// DrawDisc fills every cell whose center lies within the ellipse of radii rx
// and ry around (cx, cy). The cell containing (cx, cy) is always drawn.
func (c *Canvas) DrawDisc(cx, cy, rx, ry float64, r rune, color Color) {
	c.Set(int(math.Floor(cx)), int(math.Floor(cy)), r, color)
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny <= 1 {
				c.Set(x, y, r, color)
			}
		}
	}
}

// String converts the canvas to plain text, rows joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	runes := make([]rune, c.width)
	for x, cell := range c.cells[y] {
		runes[x] = cell.Rune
	}
	return string(runes)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
