// Package layout provides the primitives an external layout engine sizes elements with:
// dimension values that resolve against a parent size or the viewport, a three-slot layout
// cache, and text measurement for content sizing.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnresolvableDimension is returned when a content-sizing dimension is resolved directly
var ErrUnresolvableDimension = errors.New("dimension requires a layout pass")

// Unit is the length unit of a fixed dimension
type Unit uint8

const (
	Pixel          Unit = iota // one 2x1 character cell, absolute
	Char                       // one character cell, absolute
	Percent                    // percentage of the parent
	ViewportWidth              // percentage of the terminal width
	ViewportHeight             // percentage of the terminal height
)

var unitSuffix = [...]string{
	Pixel:          "px",
	Char:           "ch",
	Percent:        "%",
	ViewportWidth:  "vw",
	ViewportHeight: "vh",
}

func (u Unit) String() string {
	if int(u) < len(unitSuffix) {
		return unitSuffix[u]
	}
	return fmt.Sprintf("unit(%d)", u)
}

// Kind selects the active variant of a Dimension
type Kind uint8

const (
	KindUnit Kind = iota
	KindAuto
	KindMinContent
	KindMaxContent
	KindExpr
)

// Viewport reports the live terminal size in cells
type Viewport interface {
	Size() (width, height int)
}

// Dimension is a length: a fixed unit value, a sum of unit values, or a content-sizing sentinel
// The zero value is 0ch
type Dimension struct {
	kind  Kind
	value int
	unit  Unit
	terms []Dimension // KindExpr operands, each KindUnit
}

var (
	Auto       = Dimension{kind: KindAuto}
	MinContent = Dimension{kind: KindMinContent}
	MaxContent = Dimension{kind: KindMaxContent}
	Zero       = Dimension{}
)

// Of returns a fixed dimension
func Of(v int, u Unit) Dimension {
	return Dimension{kind: KindUnit, value: v, unit: u}
}

func Chars(v int) Dimension  { return Of(v, Char) }
func Pixels(v int) Dimension { return Of(v, Pixel) }
func Pct(v int) Dimension    { return Of(v, Percent) }
func VW(v int) Dimension     { return Of(v, ViewportWidth) }
func VH(v int) Dimension     { return Of(v, ViewportHeight) }

// Sum returns the expression d1 + d2 + ...; only arithmetic operands are accepted
func Sum(ds ...Dimension) (Dimension, error) {
	e := Dimension{kind: KindExpr}
	for _, d := range ds {
		switch d.kind {
		case KindUnit:
			e.terms = append(e.terms, d)
		case KindExpr:
			e.terms = append(e.terms, d.terms...)
		default:
			return Dimension{}, fmt.Errorf("layout: cannot add %s: %w", d, ErrUnresolvableDimension)
		}
	}
	return e, nil
}

// Neg returns d with every operand negated; sentinels are returned unchanged
func (d Dimension) Neg() Dimension {
	switch d.kind {
	case KindUnit:
		d.value = -d.value
	case KindExpr:
		terms := make([]Dimension, len(d.terms))
		for i, t := range d.terms {
			terms[i] = t.Neg()
		}
		d.terms = terms
	}
	return d
}

func (d Dimension) Kind() Kind         { return d.kind }
func (d Dimension) Value() int         { return d.value }
func (d Dimension) Unit() Unit         { return d.unit }
func (d Dimension) IsNumber() bool     { return d.kind == KindUnit }
func (d Dimension) IsAuto() bool       { return d.kind == KindAuto }
func (d Dimension) IsMinContent() bool { return d.kind == KindMinContent }
func (d Dimension) IsMaxContent() bool { return d.kind == KindMaxContent }
func (d Dimension) IsExpr() bool       { return d.kind == KindExpr }

// Resolvable reports whether Resolve can produce a scalar
func (d Dimension) Resolvable() bool {
	return d.kind == KindUnit || d.kind == KindExpr
}

// Terms returns a copy of the expression operands
func (d Dimension) Terms() []Dimension {
	out := make([]Dimension, len(d.terms))
	copy(out, d.terms)
	return out
}

// Equal compares variant, value, unit and operands
func (d Dimension) Equal(o Dimension) bool {
	if d.kind != o.kind || d.value != o.value || d.unit != o.unit || len(d.terms) != len(o.terms) {
		return false
	}
	for i := range d.terms {
		if !d.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// Resolve converts d to a cell count against a parent length and the viewport
// Percent and viewport units round to the nearest cell, halves away from zero
// Viewport units need a non-nil vp; Auto, MinContent and MaxContent always fail
func (d Dimension) Resolve(parent int, vp Viewport) (int, error) {
	switch d.kind {
	case KindUnit:
		return d.resolveUnit(parent, vp)
	case KindExpr:
		total := 0
		for _, t := range d.terms {
			v, err := t.resolveUnit(parent, vp)
			if err != nil {
				return 0, err
			}
			total += v
		}
		return total, nil
	default:
		return 0, fmt.Errorf("layout: resolve %s: %w", d, ErrUnresolvableDimension)
	}
}

func (d Dimension) resolveUnit(parent int, vp Viewport) (int, error) {
	switch d.unit {
	case Pixel, Char:
		return d.value, nil
	case Percent:
		return percentOf(parent, d.value), nil
	case ViewportWidth, ViewportHeight:
		if vp == nil {
			return 0, fmt.Errorf("layout: resolve %s without viewport: %w", d, ErrUnresolvableDimension)
		}
		w, h := vp.Size()
		if d.unit == ViewportWidth {
			return percentOf(w, d.value), nil
		}
		return percentOf(h, d.value), nil
	default:
		return 0, fmt.Errorf("layout: unknown unit %d", d.unit)
	}
}

func percentOf(total, pct int) int {
	return int(math.Round(float64(total) * float64(pct) / 100))
}

// MustResolve is Resolve for dimensions known to be arithmetic; it panics otherwise
func (d Dimension) MustResolve(parent int, vp Viewport) int {
	v, err := d.Resolve(parent, vp)
	if err != nil {
		panic(err)
	}
	return v
}
