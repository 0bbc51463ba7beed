package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termcanvas/canvas"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Blit copies the dirty cells of c into a tcell screen and consumes their dirty flags
// Returns the number of cells written; the caller decides when to Show
// Raster images have no tcell representation and stay queued on c
func Blit(c *canvas.Canvas, scr tcell.Screen) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		row := c.Row(y)
		for x := 0; x < len(row); x++ {
			cell := &row[x]
			if !cell.Dirty {
				continue
			}
			cell.Dirty = false

			r, w := glyph(cell.Rune)
			scr.SetContent(x, y, r, nil, terminal.TcellStyle(cell.Style))
			n++
			if w == 2 && x+1 < len(row) {
				row[x+1].Dirty = false
				x++
			}
		}
	}
	return n
}

// Blit copies the screen's dirty cells into scr, see Blit
func (s *Screen) Blit(scr tcell.Screen) int {
	return Blit(s.Canvas, scr)
}
