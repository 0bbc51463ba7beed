// Package geom holds the integer cell-space primitives shared by canvas, render and layout.
package geom

// Point is a cell coordinate, column X and row Y
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair in cells
type Size struct {
	W, H int
}

// Sz is shorthand for Size{w, h}
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Empty reports whether the size covers no cells
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Area returns W*H, zero for empty sizes
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Rect is an axis-aligned rectangle; X,Y is the top-left corner
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for Rect{x, y, w, h}
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectOf builds a rectangle from an origin and a size
func RectOf(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the exclusive bottom-right corner
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Size returns the rectangle dimensions
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of r and o, zero-sized when disjoint
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Sub returns a nested rectangle with coordinates relative to r, clipped to r
func (r Rect) Sub(x, y, w, h int) Rect {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns r shrunk by n cells on all sides
func (r Rect) Inset(n int) Rect {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Translate returns r moved by p
func (r Rect) Translate(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}
