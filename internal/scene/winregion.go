package scene

import (
	"fmt"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/physics"
)

// Side identifies an edge of the world.
type Side int

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// Sides lists every edge in weight order: left, top, right, bottom.
var Sides = []Side{SideLeft, SideTop, SideRight, SideBottom}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Vertical reports whether the side is the left or right edge.
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

// WinRegion is a segment on one world edge. P1 is the endpoint with the
// smaller coordinate along the edge.
type WinRegion struct {
	P1, P2 physics.Vec2
}

// NewWinRegion orders the endpoints along their shared edge.
func NewWinRegion(a, b physics.Vec2) WinRegion {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return WinRegion{P1: a, P2: b}
}

// Side returns the edge of a w x h world the region lies on. Both endpoints
// must sit on the same edge.
func (r WinRegion) Side(w, h float64) (Side, error) {
	switch {
	case r.P1.X == r.P2.X && r.P1.X == 0:
		return SideLeft, nil
	case r.P1.X == r.P2.X && r.P1.X == w:
		return SideRight, nil
	case r.P1.Y == r.P2.Y && r.P1.Y == h:
		return SideTop, nil
	case r.P1.Y == r.P2.Y && r.P1.Y == 0:
		return SideBottom, nil
	}
	return 0, fmt.Errorf("%w: win region %v-%v is not on a single edge of %vx%v",
		config.ErrInvalidConfig, r.P1, r.P2, w, h)
}

// Span returns the region's extent along its edge, lo <= hi.
func (r WinRegion) Span(side Side) (lo, hi float64) {
	lo, hi = r.P1.X, r.P2.X
	if side.Vertical() {
		lo, hi = r.P1.Y, r.P2.Y
	}
	return min(lo, hi), max(lo, hi)
}

// Reached reports whether pos is on or beyond the region's edge and within
// its span. Speed is not considered.
func (r WinRegion) Reached(pos physics.Vec2, w, h float64) bool {
	side, err := r.Side(w, h)
	if err != nil {
		return false
	}

	var beyond bool
	var along float64
	switch side {
	case SideLeft:
		beyond, along = pos.X <= 0, pos.Y
	case SideRight:
		beyond, along = pos.X >= w, pos.Y
	case SideTop:
		beyond, along = pos.Y >= h, pos.X
	case SideBottom:
		beyond, along = pos.Y <= 0, pos.X
	}
	lo, hi := r.Span(side)
	return beyond && along >= lo && along <= hi
}
