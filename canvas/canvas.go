// Package canvas implements the layered character grid UI elements draw into.
//
// A Canvas is a flat row-major []terminal.Cell plus a side list of raster image
// placements. Every write is gated on z-index: a destination cell accepts an incoming
// write when its own z is not greater than the incoming z, and takes on the incoming z.
// Writes outside the grid are clipped, or grow the grid in auto-expand mode.
package canvas

import (
	"github.com/lixenwraith/termcanvas/geom"
	"github.com/lixenwraith/termcanvas/sixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

// ImagePlacement is a raster image anchored to a cell rectangle
type ImagePlacement struct {
	Image sixel.Bitmap
	Pos   geom.Point
	Size  geom.Size // in cells
	Z     int32
}

// Canvas is a 2-D grid of cells with dirty tracking and z-index arbitration
// Not safe for concurrent mutation
type Canvas struct {
	cells      []terminal.Cell
	width      int
	height     int
	autoExpand bool
	images     []ImagePlacement
}

// New creates a fixed-size canvas; writes outside it are clipped
func New(width, height int) *Canvas {
	c := &Canvas{}
	c.alloc(max(width, 0), max(height, 0))
	return c
}

// NewAutoExpand creates a canvas that grows to fit placements extending past its bounds
func NewAutoExpand(width, height int) *Canvas {
	c := New(width, height)
	c.autoExpand = true
	return c
}

// alloc sets dimensions, reusing capacity, and blanks every cell
func (c *Canvas) alloc(width, height int) {
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]terminal.Cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.width = width
	c.height = height
	c.fillBlank()
}

// fillBlank resets all cells using exponential copy
func (c *Canvas) fillBlank() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = terminal.BlankCell
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

func (c *Canvas) Width() int        { return c.width }
func (c *Canvas) Height() int       { return c.height }
func (c *Canvas) Size() geom.Size   { return geom.Sz(c.width, c.height) }
func (c *Canvas) Bounds() geom.Rect { return geom.R(0, 0, c.width, c.height) }
func (c *Canvas) AutoExpand() bool  { return c.autoExpand }

// inBounds returns true if x,y addresses a cell
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns a copy of the cell at x,y; out-of-range reads return a blank cell
func (c *Canvas) At(x, y int) terminal.Cell {
	if !c.inBounds(x, y) {
		return terminal.Cell{}
	}
	return c.cells[y*c.width+x]
}

// Set stores a cell unconditionally, bypassing z arbitration, and marks it dirty
func (c *Canvas) Set(x, y int, cell terminal.Cell) {
	if !c.inBounds(x, y) {
		return
	}
	cell.Dirty = true
	c.cells[y*c.width+x] = cell
}

// Cells exposes the row-major backing slice; index is y*Width()+x
// The slice is invalidated by Resize and auto-expansion
func (c *Canvas) Cells() []terminal.Cell {
	return c.cells
}

// Row returns the cells of row y, nil when out of range
func (c *Canvas) Row(y int) []terminal.Cell {
	if y < 0 || y >= c.height {
		return nil
	}
	return c.cells[y*c.width : (y+1)*c.width]
}

// Resize changes dimensions preserving the overlapping region; new cells are blank and dirty
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}

	old, oldW, oldH := c.cells, c.width, c.height
	c.cells = make([]terminal.Cell, width*height)
	c.width, c.height = width, height
	c.fillBlank()

	copyW, copyH := min(width, oldW), min(height, oldH)
	for y := 0; y < copyH; y++ {
		copy(c.cells[y*width:y*width+copyW], old[y*oldW:y*oldW+copyW])
	}
}

// grow expands the grid to cover x1,y1 (exclusive) in auto-expand mode
func (c *Canvas) grow(x1, y1 int) {
	if !c.autoExpand || (x1 <= c.width && y1 <= c.height) {
		return
	}
	c.Resize(max(x1, c.width), max(y1, c.height))
}

// Clear resets every cell to the default blank state and drops pending images
func (c *Canvas) Clear() {
	c.fillBlank()
	c.images = c.images[:0]
}

// MarkDirty flags every cell for repaint
func (c *Canvas) MarkDirty() {
	for i := range c.cells {
		c.cells[i].Dirty = true
	}
}

// ClearDirty consumes every dirty flag
func (c *Canvas) ClearDirty() {
	for i := range c.cells {
		c.cells[i].Dirty = false
	}
}

// DirtyCount returns the number of cells pending paint
func (c *Canvas) DirtyCount() int {
	n := 0
	for i := range c.cells {
		if c.cells[i].Dirty {
			n++
		}
	}
	return n
}

// PlaceSixel queues a raster image; the character grid is not touched
func (c *Canvas) PlaceSixel(img sixel.Bitmap, off geom.Point, size geom.Size, z int32) {
	if img == nil || size.Empty() {
		return
	}
	c.images = append(c.images, ImagePlacement{Image: img, Pos: off, Size: size, Z: z})
}

// Images returns a copy of the pending image placements in placement order
func (c *Canvas) Images() []ImagePlacement {
	out := make([]ImagePlacement, len(c.images))
	copy(out, c.images)
	return out
}

// TakeImages returns the pending placements and empties the list
func (c *Canvas) TakeImages() []ImagePlacement {
	out := c.images
	c.images = nil
	return out
}
