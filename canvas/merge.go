package canvas

import (
	"slices"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termcanvas/geom"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Policy selects which parts of an incoming cell a merge writes
type Policy uint8

const (
	MergeChar    Policy = 1 << iota // copy the glyph
	MergeStyle                      // replace the style
	MergeOverlay                    // merge the style with Override, inherit channels keep what is underneath
	MergeBackground                 // set only the background, unless it is inherit
	MergeForce                      // skip z arbitration and keep the destination z

	MergeBoth = MergeChar | MergeStyle
)

// source yields the cell at source coordinate x,y; false means transparent
type source func(x, y int) (terminal.Cell, bool)

// merge composites a w x h source region at off; every placement path ends here
// A write happens iff dst.Z <= src.Z (or MergeForce), sets Dirty and takes the source z
// Writing over the continuation of a wide rune dirties its owner; a new glyph there erases the owner to a space
func (c *Canvas) merge(w, h int, off geom.Point, policy Policy, src source) {
	if w <= 0 || h <= 0 {
		return
	}
	c.grow(off.X+w, off.Y+h)

	// Clip the source region to the grid before iterating
	x0, y0 := max(0, -off.X), max(0, -off.Y)
	x1, y1 := min(w, c.width-off.X), min(h, c.height-off.Y)

	for sy := y0; sy < y1; sy++ {
		row := (sy + off.Y) * c.width
		for sx := x0; sx < x1; sx++ {
			in, ok := src(sx, sy)
			if !ok {
				continue
			}
			dst := &c.cells[row+sx+off.X]
			if policy&MergeForce == 0 {
				if dst.Z > in.Z {
					continue
				}
				dst.Z = in.Z
			}
			if policy&MergeChar != 0 {
				dst.Rune = in.Rune
			}
			switch {
			case policy&MergeStyle != 0:
				dst.Style = in.Style
			case policy&MergeOverlay != 0:
				dst.Style = dst.Style.Override(in.Style)
			case policy&MergeBackground != 0:
				dst.Style.Bg = in.Style.Bg.Or(dst.Style.Bg)
			}
			dst.Dirty = true

			if dx := sx + off.X; dx > 0 {
				c.breakWide(&c.cells[row+dx-1], dst.Rune)
			}
		}
	}
}

// breakWide updates the wide rune owning a continuation cell that was just written
// The terminal drops a wide glyph whose second column is overdrawn, so a glyph in the
// continuation leaves a space behind; a style-only write repaints the owner over it
func (c *Canvas) breakWide(owner *terminal.Cell, cont rune) {
	if runewidth.RuneWidth(owner.Rune) != 2 {
		return
	}
	if cont != 0 {
		owner.Rune = ' '
	}
	owner.Dirty = true
}

// Place composites other onto c at off
// Blank source cells (no glyph, default style) are transparent; pending images of other
// are carried over shifted by off. Placing c onto itself reads a snapshot.
func (c *Canvas) Place(other *Canvas, off geom.Point) {
	if other == nil {
		return
	}
	w, h := other.width, other.height
	cells, images := other.cells, other.images
	if other == c {
		cells, images = slices.Clone(cells), slices.Clone(images)
	}
	c.merge(w, h, off, MergeBoth, func(x, y int) (terminal.Cell, bool) {
		cell := cells[y*w+x]
		return cell, !cell.IsBlank()
	})
	for _, img := range images {
		img.Pos = img.Pos.Add(off)
		c.images = append(c.images, img)
	}
}

// PlaceCells composites rows of cells at off, each carrying its own z
// Ragged rows are allowed; blank cells are transparent
func (c *Canvas) PlaceCells(cells [][]terminal.Cell, off geom.Point) {
	c.merge(widest(cells), len(cells), off, MergeBoth, func(x, y int) (terminal.Cell, bool) {
		if x >= len(cells[y]) {
			return terminal.Cell{}, false
		}
		cell := cells[y][x]
		return cell, !cell.IsBlank()
	})
}

// PlaceChars writes glyphs at off with z, keeping existing styles; 0 entries are skipped
func (c *Canvas) PlaceChars(chars [][]rune, off geom.Point, z int32) {
	c.merge(widest(chars), len(chars), off, MergeChar, func(x, y int) (terminal.Cell, bool) {
		if x >= len(chars[y]) || chars[y][x] == 0 {
			return terminal.Cell{}, false
		}
		return terminal.Cell{Rune: chars[y][x], Z: z}, true
	})
}

// Restyle replaces styles at off with z, leaving glyphs untouched
func (c *Canvas) Restyle(styles [][]terminal.Style, off geom.Point, z int32) {
	c.merge(widest(styles), len(styles), off, MergeStyle, func(x, y int) (terminal.Cell, bool) {
		if x >= len(styles[y]) {
			return terminal.Cell{}, false
		}
		return terminal.Cell{Style: styles[y][x], Z: z}, true
	})
}

// fillRect runs merge over r with one cell value
func (c *Canvas) fillRect(r geom.Rect, policy Policy, cell terminal.Cell) {
	c.merge(r.W, r.H, r.Min(), policy, func(int, int) (terminal.Cell, bool) {
		return cell, true
	})
}

func widest[T any](rows [][]T) int {
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	return w
}
