package canvas

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(80, 24)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y) != ' ' {
				t.Fatalf("New canvas should be filled with spaces, got %q at (%d, %d)", c.Get(x, y), x, y)
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	c := New(10, 10)

	c.Set(5, 5, 'X', ColorBad)
	if cell := c.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorBad {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", cell)
	}

	// Out of bounds is silent
	c.Set(-1, 0, 'A', ColorDefault)
	c.Set(100, 0, 'A', ColorDefault)
	c.Set(0, -1, 'A', ColorDefault)
	c.Set(0, 100, 'A', ColorDefault)

	if c.Get(-1, 0) != ' ' || c.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestClear(t *testing.T) {
	c := New(4, 4)
	c.DrawText(0, 0, "abcd", ColorGood)
	c.Clear()

	if cell := c.GetCell(1, 0); cell != blank {
		t.Errorf("After Clear, expected blank cell, got %+v", cell)
	}
}

func TestDrawText(t *testing.T) {
	c := New(20, 5)
	c.DrawText(2, 1, "Hello", ColorDefault)

	for i, ch := range "Hello" {
		if c.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Get(2+i, 1))
		}
	}

	c.DrawText(18, 0, "Hello", ColorDefault) // Only "He" fits
	if c.Get(18, 0) != 'H' || c.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}

	c.DrawTextRight(3, "end", ColorDefault)
	if !strings.HasSuffix(c.Row(3), "end") {
		t.Errorf("DrawTextRight: row 3 = %q", c.Row(3))
	}

	c.DrawTextCentered(4, "Hi", ColorDefault)
	if c.Get(9, 4) != 'H' || c.Get(10, 4) != 'i' {
		t.Errorf("DrawTextCentered: row 4 = %q", c.Row(4))
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 1, 2, 5, 2, [][2]int{{1, 2}, {3, 2}, {5, 2}}},
		{"vertical", 3, 4, 3, 0, [][2]int{{3, 0}, {3, 2}, {3, 4}}},
		{"diagonal", 0, 0, 4, 4, [][2]int{{0, 0}, {2, 2}, {4, 4}}},
		{"single", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(8, 8)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, '#', ColorTarget)
			for _, p := range tt.cells {
				if c.Get(p[0], p[1]) != '#' {
					t.Errorf("expected '#' at %v\n%s", p, c.String())
				}
			}
		})
	}
}

func TestDrawDisc(t *testing.T) {
	c := New(11, 11)
	c.DrawDisc(5.5, 5.5, 3, 3, 'O', ColorPlanet)

	if c.Get(5, 5) != 'O' {
		t.Error("disc center not drawn")
	}
	if c.Get(5, 3) != 'O' || c.Get(7, 5) != 'O' {
		t.Error("disc interior not filled")
	}
	if c.Get(0, 0) != ' ' || c.Get(9, 9) != ' ' {
		t.Error("disc leaked outside its radius")
	}

	tiny := New(5, 5)
	tiny.DrawDisc(2.2, 1.7, 0.1, 0.1, '.', ColorDefault)
	if tiny.Get(2, 1) != '.' {
		t.Error("sub-cell disc should still mark its cell")
	}
}

func TestDrawEllipseKeepsBodies(t *testing.T) {
	c := New(21, 11)
	c.Set(15, 5, 'O', ColorPlanet)
	c.DrawEllipse(10.5, 5.5, 5, 3, '.', ColorOrbit)

	if c.Get(15, 5) != 'O' {
		t.Error("ellipse overwrote an existing body")
	}
	if c.Get(10, 2) != '.' && c.Get(10, 8) != '.' {
		t.Errorf("ellipse outline missing\n%s", c.String())
	}
	if c.Get(10, 5) != ' ' {
		t.Error("ellipse should be an outline only")
	}
}

func TestString(t *testing.T) {
	c := New(5, 3)
	c.DrawText(0, 0, "AAAAA", ColorDefault)
	c.DrawText(0, 1, "BBBBB", ColorDefault)
	c.DrawText(0, 2, "CCCCC", ColorDefault)

	if got, want := c.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestResize(t *testing.T) {
	c := New(10, 10)
	c.DrawText(0, 0, "Hello", ColorDefault)

	c.Resize(8, 4)
	if c.Width() != 8 || c.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", c.Width(), c.Height())
	}
	if !strings.HasPrefix(c.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", c.Row(0))
	}

	c.Resize(15, 8)
	if !strings.HasPrefix(c.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", c.Row(0))
	}
	if len(c.Row(7)) != 15 {
		t.Errorf("Row length should be 15, got %d", len(c.Row(7)))
	}

	c.Resize(-3, -3)
	if c.Width() != 0 || c.Height() != 0 || c.String() != "" {
		t.Error("negative resize should produce an empty canvas")
	}
}

func TestViewport(t *testing.T) {
	v := Viewport{W: 800, H: 600, Cols: 80, Rows: 30}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"bottom-left", 0, 0, 0, 29},
		{"top-left", 0, 600, 0, 0},
		{"top-right", 800, 600, 79, 0},
		{"center", 400, 300, 40, 15},
		{"left of screen", -20, 300, -2, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := v.Cell(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}

	sx, sy := v.Scale(100)
	if sx != 10 || sy != 5 {
		t.Errorf("Scale(100) = (%v, %v), expected (10, 5)", sx, sy)
	}

	if c, r := (Viewport{}).Cell(1, 1); c != 0 || r != 0 {
		t.Error("zero viewport should map everything to the origin")
	}
}
