package canvas

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termcanvas/geom"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Align positions text inside a window
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// textRow lays s out as one row of cells; wide runes are followed by an empty continuation cell
// Control runes keep a cell of their own and render as a space; other zero-width runes are dropped
func textRow(s string, style terminal.Style, z int32) []terminal.Cell {
	row := make([]terminal.Cell, 0, len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			row = append(row, terminal.Cell{Rune: r, Style: style, Z: z})
			continue
		}
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			row = append(row, terminal.Cell{Rune: r, Style: style, Z: z}, terminal.Cell{Style: style, Z: z})
		default:
			row = append(row, terminal.Cell{Rune: r, Style: style, Z: z})
		}
	}
	return row
}

// resolveRow maps a row offset to an absolute row; negative rows count from the bottom
func (c *Canvas) resolveRow(y int) (int, bool) {
	if y < 0 {
		y += c.height
	}
	return y, y >= 0 && y < c.height
}

// placeRow merges a single row of cells at x,y
func (c *Canvas) placeRow(row []terminal.Cell, x, y int, policy Policy) {
	c.merge(len(row), 1, geom.Pt(x, y), policy, func(sx, _ int) (terminal.Cell, bool) {
		return row[sx], true
	})
}

// PlaceString writes s along row off.Y starting at column off.X, keeping existing styles
// A negative off.Y counts from the bottom (-1 is the last row); rows outside the canvas are a
// no-op and columns outside are clipped. The canvas never grows for strings.
func (c *Canvas) PlaceString(s string, off geom.Point, z int32) {
	y, ok := c.resolveRow(off.Y)
	if !ok {
		return
	}
	c.placeRow(c.clipRow(textRow(s, terminal.StyleDefault, z), off.X), off.X, y, MergeChar)
}

// PlaceText is PlaceString with an explicit style written alongside the glyphs
func (c *Canvas) PlaceText(s string, off geom.Point, style terminal.Style, z int32) {
	y, ok := c.resolveRow(off.Y)
	if !ok {
		return
	}
	c.placeRow(c.clipRow(textRow(s, style, z), off.X), off.X, y, MergeBoth)
}

// PlaceAligned writes s within a window of the given width starting at off
// Text wider than the window is positioned by the same rule and clipped by the canvas only
func (c *Canvas) PlaceAligned(s string, off geom.Point, window int, align Align, z int32) {
	y, ok := c.resolveRow(off.Y)
	if !ok {
		return
	}
	row := textRow(s, terminal.StyleDefault, z)
	x := off.X
	switch align {
	case AlignCenter:
		x += (window - len(row)) / 2
	case AlignRight:
		x += window - len(row)
	}
	c.placeRow(c.clipRow(row, x), x, y, MergeChar)
}

// clipRow truncates a row so string writes never trigger auto-expansion
func (c *Canvas) clipRow(row []terminal.Cell, x int) []terminal.Cell {
	if limit := c.width - x; len(row) > limit {
		return row[:max(limit, 0)]
	}
	return row
}

// Fill writes ch into every cell of r with z, keeping existing styles
// Like every fill and style helper, r is clipped on a fixed canvas and grows an auto-expand one
func (c *Canvas) Fill(r geom.Rect, ch rune, z int32) {
	c.fillRect(r, MergeChar, terminal.Cell{Rune: ch, Z: z})
}

// FillStyled writes ch and style into every cell of r with z
func (c *Canvas) FillStyled(r geom.Rect, ch rune, style terminal.Style, z int32) {
	c.fillRect(r, MergeBoth, terminal.Cell{Rune: ch, Style: style, Z: z})
}

// StyleRect overlays style onto every cell of r; inherit channels keep the existing colors
func (c *Canvas) StyleRect(r geom.Rect, style terminal.Style) {
	c.fillRect(r, MergeOverlay|MergeForce, terminal.Cell{Style: style})
}

// ForceStyle replaces the style of every cell of r
func (c *Canvas) ForceStyle(r geom.Rect, style terminal.Style) {
	c.fillRect(r, MergeStyle|MergeForce, terminal.Cell{Style: style})
}

// StyleBackground sets the background of every cell of r; an inherit color changes nothing
func (c *Canvas) StyleBackground(r geom.Rect, bg terminal.Color) {
	c.fillRect(r, MergeBackground|MergeForce, terminal.Cell{Style: terminal.Style{Bg: bg}})
}

// BoxStyle is a set of border glyphs
type BoxStyle struct {
	Horizontal, Vertical    rune
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
}

var (
	BoxSingle  = BoxStyle{'─', '│', '┌', '┐', '└', '┘'}
	BoxDouble  = BoxStyle{'═', '║', '╔', '╗', '╚', '╝'}
	BoxRounded = BoxStyle{'─', '│', '╭', '╮', '╰', '╯'}
	BoxHeavy   = BoxStyle{'━', '┃', '┏', '┓', '┗', '┛'}
)

// DrawBox draws the border of r; the style is overlaid so inherit channels keep what is underneath
// Rectangles narrower or shorter than 2 cells are drawn as a line of the matching edge glyph
func (c *Canvas) DrawBox(r geom.Rect, box BoxStyle, style terminal.Style, z int32) {
	if r.Empty() {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	policy := MergeChar | MergeOverlay

	put := func(x, y int, ch rune) {
		c.fillRect(geom.R(x, y, 1, 1), policy, terminal.Cell{Rune: ch, Style: style, Z: z})
	}
	hline := func(y int) {
		c.fillRect(geom.R(r.X+1, y, r.W-2, 1), policy, terminal.Cell{Rune: box.Horizontal, Style: style, Z: z})
	}
	vline := func(x int) {
		c.fillRect(geom.R(x, r.Y+1, 1, r.H-2), policy, terminal.Cell{Rune: box.Vertical, Style: style, Z: z})
	}

	switch {
	case r.H == 1:
		c.fillRect(r, policy, terminal.Cell{Rune: box.Horizontal, Style: style, Z: z})
		return
	case r.W == 1:
		c.fillRect(r, policy, terminal.Cell{Rune: box.Vertical, Style: style, Z: z})
		return
	}

	hline(r.Y)
	hline(y1)
	vline(r.X)
	vline(x1)
	put(r.X, r.Y, box.TopLeft)
	put(x1, r.Y, box.TopRight)
	put(r.X, y1, box.BottomLeft)
	put(x1, y1, box.BottomRight)
}
