package config

import (
	"fmt"
	"math"
)

// Basis names the screen measure a Range is expressed in.
type Basis string

const (
	BasisAbsolute Basis = ""       // Plain values
	BasisWidth    Basis = "width"  // Fraction of screen width
	BasisHeight   Basis = "height" // Fraction of screen height
	BasisMin      Basis = "min"    // Fraction of the shorter screen side
	BasisMax      Basis = "max"    // Fraction of the longer screen side
	BasisDiagonal Basis = "diag"   // Fraction of the screen diagonal
	BasisSide     Basis = "side"   // Fraction of the edge the value is placed on
)

func (b Basis) valid() bool {
	switch b {
	case BasisAbsolute, BasisWidth, BasisHeight, BasisMin, BasisMax, BasisDiagonal, BasisSide:
		return true
	}
	return false
}

// Range is an inclusive float interval, optionally relative to the screen.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	Of  Basis   `yaml:"of,omitempty"`
}

// Fixed returns a range containing the single value v.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Resolve converts the range to absolute bounds for a w x h screen.
// BasisSide cannot be resolved from the screen alone; use Scale instead.
func (r Range) Resolve(w, h float64) (lo, hi float64) {
	var base float64
	switch r.Of {
	case BasisWidth:
		base = w
	case BasisHeight:
		base = h
	case BasisMin:
		base = math.Min(w, h)
	case BasisMax:
		base = math.Max(w, h)
	case BasisDiagonal:
		base = math.Hypot(w, h)
	default:
		return r.Min, r.Max
	}
	return r.Scale(base)
}

// Scale multiplies both bounds by base.
func (r Range) Scale(base float64) (lo, hi float64) {
	return r.Min * base, r.Max * base
}

func (r Range) validate(field string) error {
	if !r.Of.valid() {
		return ValidationError{Field: field, Message: fmt.Sprintf("unknown basis %q", r.Of)}
	}
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
		return ValidationError{Field: field, Message: fmt.Sprintf("min %v > max %v", r.Min, r.Max)}
	}
	return nil
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) validate(field string) error {
	if r.Min > r.Max {
		return ValidationError{Field: field, Message: fmt.Sprintf("min %d > max %d", r.Min, r.Max)}
	}
	return nil
}
