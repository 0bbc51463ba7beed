package canvas

import (
	"strings"
	"testing"

	"github.com/lixenwraith/termcanvas/geom"
	"github.com/lixenwraith/termcanvas/sixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

// rowText renders row y as a string, unset cells as spaces
func rowText(c *Canvas, y int) string {
	var sb strings.Builder
	for _, cell := range c.Row(y) {
		if cell.Rune == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

func filled(w, h int, ch rune, style terminal.Style, z int32) *Canvas {
	c := New(w, h)
	c.FillStyled(c.Bounds(), ch, style, z)
	return c
}

func TestNewCanvasIsBlankAndDirty(t *testing.T) {
	c := New(4, 3)
	if c.Width() != 4 || c.Height() != 3 {
		t.Fatalf("size %v", c.Size())
	}
	for i, cell := range c.Cells() {
		if cell.Rune != 0 || !cell.Dirty || cell.Z != 0 || cell.Style.Pack() != 0 {
			t.Fatalf("cell %d not blank: %+v", i, cell)
		}
	}
	if c.DirtyCount() != 12 {
		t.Errorf("dirty count %d", c.DirtyCount())
	}
}

func TestPlaceZIndex(t *testing.T) {
	tests := []struct {
		name     string
		existing int32
		incoming int32
		wantRune rune
	}{
		{"higher wins", 1, 2, 'B'},
		{"equal last write wins", 1, 1, 'B'},
		{"lower rejected", 2, 1, 'A'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := New(3, 1)
			dst.Place(filled(3, 1, 'A', terminal.StyleDefault, tt.existing), geom.Pt(0, 0))
			dst.ClearDirty()

			dst.Place(filled(1, 1, 'B', terminal.StyleDefault, tt.incoming), geom.Pt(1, 0))

			got := dst.At(1, 0)
			if got.Rune != tt.wantRune {
				t.Errorf("rune %q, want %q", got.Rune, tt.wantRune)
			}
			if wrote := tt.wantRune == 'B'; got.Dirty != wrote {
				t.Errorf("dirty %v, want %v", got.Dirty, wrote)
			}
			if dst.At(0, 0).Dirty || dst.At(2, 0).Dirty {
				t.Error("untouched neighbours marked dirty")
			}
		})
	}
}

func TestPlaceCommutes(t *testing.T) {
	red := terminal.NewStyle(terminal.PaletteColor(1), terminal.ColorDefault, terminal.AttrNone)
	blue := terminal.NewStyle(terminal.PaletteColor(4), terminal.ColorDefault, terminal.AttrBold)
	a := filled(4, 3, 'a', red, 1)
	b := filled(3, 2, 'b', blue, 2)

	ab := New(8, 5)
	ab.Place(a, geom.Pt(1, 1))
	ab.Place(b, geom.Pt(3, 2))

	ba := New(8, 5)
	ba.Place(b, geom.Pt(3, 2))
	ba.Place(a, geom.Pt(1, 1))

	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			if ab.At(x, y) != ba.At(x, y) {
				t.Fatalf("cell %d,%d differs: %+v vs %+v", x, y, ab.At(x, y), ba.At(x, y))
			}
		}
	}
	if got := ab.At(3, 2); got.Rune != 'b' || got.Z != 2 {
		t.Errorf("overlap cell %+v, want b at z 2", got)
	}
	if got := ab.At(1, 1); got.Rune != 'a' {
		t.Errorf("a-only cell %+v", got)
	}
}

func TestPlaceBlankSourceIsTransparent(t *testing.T) {
	dst := filled(3, 1, 'x', terminal.StyleDefault, 0)
	src := New(3, 1)
	src.Set(1, 0, terminal.Cell{Rune: 'y'})

	dst.Place(src, geom.Pt(0, 0))
	if got := rowText(dst, 0); got != "xyx" {
		t.Errorf("row %q, want %q", got, "xyx")
	}
}

func TestPlaceClips(t *testing.T) {
	dst := New(3, 3)
	src := filled(3, 3, '#', terminal.StyleDefault, 0)

	// Must not panic for any offset
	for _, off := range []geom.Point{{X: -5, Y: -5}, {X: -1, Y: -1}, {X: 2, Y: 2}, {X: 10, Y: 0}, {X: 0, Y: 10}} {
		dst.Place(src, off)
	}
	if dst.Width() != 3 || dst.Height() != 3 {
		t.Errorf("fixed canvas resized to %v", dst.Size())
	}

	dst = New(3, 3)
	dst.Place(src, geom.Pt(-1, 2))
	want := []string{"   ", "   ", "## "}
	for y, w := range want {
		if got := rowText(dst, y); got != w {
			t.Errorf("row %d: %q, want %q", y, got, w)
		}
	}
}

func TestAutoExpand(t *testing.T) {
	c := NewAutoExpand(2, 2)
	c.Fill(c.Bounds(), '.', 0)
	c.ClearDirty()

	c.Place(filled(2, 2, '#', terminal.StyleDefault, 0), geom.Pt(3, 1))
	if c.Width() != 5 || c.Height() != 3 {
		t.Fatalf("size %v, want 5x3", c.Size())
	}
	if got := rowText(c, 0); got != "..   " {
		t.Errorf("row 0 %q", got)
	}
	if got := rowText(c, 1); got != ".. ##" {
		t.Errorf("row 1 %q", got)
	}
	if c.At(0, 0).Dirty {
		t.Error("preserved cell became dirty")
	}
	if !c.At(2, 0).Dirty {
		t.Error("grown cell not dirty")
	}

	// Strings never grow the grid
	c.PlaceString("longer than the canvas", geom.Pt(0, 0), 0)
	if c.Width() != 5 {
		t.Errorf("string grew canvas to %d", c.Width())
	}
}

func TestPlaceChars(t *testing.T) {
	c := filled(4, 2, '.', terminal.StyleDefault, 0)
	c.PlaceChars([][]rune{
		{'a', 0, 'c'},
		{0, 'e'},
	}, geom.Pt(1, 0), 0)

	if got := rowText(c, 0); got != ".a.c" {
		t.Errorf("row 0 %q", got)
	}
	if got := rowText(c, 1); got != "..e." {
		t.Errorf("row 1 %q", got)
	}
}

func TestPlaceString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		off  geom.Point
		row  int
		want string
	}{
		{"plain", "hi", geom.Pt(1, 0), 0, " hi  "},
		{"clip right", "abcdef", geom.Pt(3, 1), 1, "   ab"},
		{"clip left", "abcdef", geom.Pt(-4, 0), 0, "ef   "},
		{"from bottom", "z", geom.Pt(0, -1), 2, "z    "},
		{"second from bottom", "y", geom.Pt(4, -2), 1, "    y"},
		{"row below", "no", geom.Pt(0, 3), 2, "     "},
		{"row above bottom", "no", geom.Pt(0, -4), 0, "     "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(5, 3)
			c.PlaceString(tt.s, tt.off, 0)
			if got := rowText(c, tt.row); got != tt.want {
				t.Errorf("row %d %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestPlaceStringWide(t *testing.T) {
	c := New(6, 1)
	c.PlaceString("a世b", geom.Pt(0, 0), 0)
	if c.At(1, 0).Rune != '世' || c.At(2, 0).Rune != 0 || c.At(3, 0).Rune != 'b' {
		t.Errorf("wide layout %q", rowText(c, 0))
	}
}

func TestPlaceStringKeepsStyle(t *testing.T) {
	st := terminal.NewStyle(terminal.PaletteColor(2), terminal.PaletteColor(0), terminal.AttrItalic)
	c := New(3, 1)
	c.ForceStyle(c.Bounds(), st)
	c.PlaceString("abc", geom.Pt(0, 0), 0)
	if got := c.At(1, 0).Style; got != st {
		t.Errorf("style %v replaced", got)
	}

	c.PlaceText("x", geom.Pt(1, 0), terminal.StyleDefault, 0)
	if got := c.At(1, 0).Style; got != terminal.StyleDefault {
		t.Errorf("PlaceText style %v", got)
	}
}

func TestEndToEndScenario(t *testing.T) {
	c := New(10, 3)
	c.PlaceString("test", geom.Pt(2, 1), 0)
	c.PlaceChars([][]rune{{'X'}}, geom.Pt(4, 1), 1)

	want := []string{"          ", "  teXt    ", "          "}
	for y, w := range want {
		if got := rowText(c, y); got != w {
			t.Errorf("row %d %q, want %q", y, got, w)
		}
	}

	// A lower z write afterwards cannot displace it
	c.PlaceString("s", geom.Pt(4, 1), 0)
	if c.At(4, 1).Rune != 'X' {
		t.Error("lower z overwrote X")
	}
}

func TestRestyle(t *testing.T) {
	c := New(3, 1)
	c.PlaceString("abc", geom.Pt(0, 0), 1)
	hi := terminal.NewStyle(terminal.ColorDefault, terminal.PaletteColor(3), terminal.AttrNone)

	c.Restyle([][]terminal.Style{{hi, hi, hi}}, geom.Pt(0, 0), 0)
	if c.At(0, 0).Style == hi {
		t.Error("lower z restyle applied")
	}

	c.Restyle([][]terminal.Style{{hi, hi}}, geom.Pt(1, 0), 1)
	if got := rowText(c, 0); got != "abc" {
		t.Errorf("restyle touched glyphs: %q", got)
	}
	if c.At(0, 0).Style == hi || c.At(1, 0).Style != hi || c.At(2, 0).Style != hi {
		t.Error("restyle region wrong")
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	c := New(3, 2)
	c.PlaceString("abc", geom.Pt(0, 0), 0)
	c.PlaceString("def", geom.Pt(0, 1), 0)
	c.ClearDirty()

	c.Resize(2, 3)
	if got := rowText(c, 0) + "|" + rowText(c, 1) + "|" + rowText(c, 2); got != "ab|de|  " {
		t.Errorf("resized rows %q", got)
	}
	if c.At(0, 0).Dirty {
		t.Error("preserved cell dirty")
	}
	if !c.At(0, 2).Dirty {
		t.Error("new cell clean")
	}

	c.Resize(-1, 4)
	if c.Width() != 0 || len(c.Cells()) != 0 {
		t.Errorf("negative width gave %v", c.Size())
	}
}

func TestClear(t *testing.T) {
	c := New(2, 2)
	c.PlaceString("ab", geom.Pt(0, 0), 5)
	c.PlaceSixel(sixel.NewBuffer(1, 1), geom.Pt(0, 0), geom.Sz(1, 1), 0)
	c.ClearDirty()

	c.Clear()
	for i, cell := range c.Cells() {
		if cell != terminal.BlankCell {
			t.Errorf("cell %d %+v after clear", i, cell)
		}
	}
	if len(c.Images()) != 0 {
		t.Error("images survived clear")
	}
}

func TestPlaceSixel(t *testing.T) {
	c := New(4, 4)
	c.ClearDirty()
	img := sixel.NewBuffer(8, 8)

	c.PlaceSixel(img, geom.Pt(1, 1), geom.Sz(2, 2), 3)
	if c.DirtyCount() != 0 {
		t.Error("image placement touched the grid")
	}

	imgs := c.Images()
	if len(imgs) != 1 || imgs[0].Pos != geom.Pt(1, 1) || imgs[0].Z != 3 {
		t.Fatalf("images %+v", imgs)
	}
	imgs[0].Z = 99
	if c.Images()[0].Z != 3 {
		t.Error("Images returned shared storage")
	}

	parent := New(10, 10)
	parent.Place(c, geom.Pt(4, 2))
	if got := parent.Images(); len(got) != 1 || got[0].Pos != geom.Pt(5, 3) {
		t.Errorf("rebased images %+v", got)
	}

	if taken := c.TakeImages(); len(taken) != 1 || len(c.Images()) != 0 {
		t.Error("TakeImages did not consume the list")
	}
}

func TestStyleHelpers(t *testing.T) {
	base := terminal.NewStyle(terminal.PaletteColor(7), terminal.PaletteColor(0), terminal.AttrBold)

	t.Run("StyleRect keeps inherit channels", func(t *testing.T) {
		c := filled(3, 1, 'x', base, 4)
		c.StyleRect(geom.R(0, 0, 2, 1), terminal.NewStyle(terminal.ColorInherit, terminal.PaletteColor(5), terminal.AttrNone))
		got := c.At(0, 0)
		if got.Style.Fg != base.Fg || got.Style.Bg != terminal.PaletteColor(5) || got.Style.Attrs != terminal.AttrNone {
			t.Errorf("style %+v", got.Style)
		}
		if got.Z != 4 {
			t.Errorf("style helper changed z to %d", got.Z)
		}
		if c.At(2, 0).Style != base {
			t.Error("outside region restyled")
		}
	})

	t.Run("StyleBackground keeps attributes", func(t *testing.T) {
		c := filled(2, 1, 'x', base, 0)
		c.StyleBackground(c.Bounds(), terminal.RGBColor(1, 2, 3))
		if got := c.At(1, 0).Style; got.Bg != terminal.RGBColor(1, 2, 3) || got.Attrs != terminal.AttrBold || got.Fg != base.Fg {
			t.Errorf("style %+v", got)
		}
		c.StyleBackground(c.Bounds(), terminal.ColorInherit)
		if c.At(1, 0).Style.Bg != terminal.RGBColor(1, 2, 3) {
			t.Error("inherit background overwrote color")
		}
	})

	t.Run("ForceStyle replaces", func(t *testing.T) {
		c := filled(2, 1, 'x', base, 0)
		c.ForceStyle(geom.R(-3, -3, 10, 10), terminal.StyleDefault)
		if c.At(0, 0).Style != terminal.StyleDefault || c.At(0, 0).Rune != 'x' {
			t.Errorf("cell %+v", c.At(0, 0))
		}
	})
}

func TestDrawBox(t *testing.T) {
	c := New(5, 4)
	c.DrawBox(geom.R(0, 0, 5, 4), BoxSingle, terminal.StyleInherit, 0)
	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, w := range want {
		if got := rowText(c, y); got != w {
			t.Errorf("row %d %q, want %q", y, got, w)
		}
	}

	c = New(4, 2)
	c.DrawBox(geom.R(1, 0, 6, 3), BoxRounded, terminal.StyleInherit, 0)
	if got := rowText(c, 0); got != " ╭──" {
		t.Errorf("clipped box top %q", got)
	}

	c = New(3, 1)
	c.DrawBox(c.Bounds(), BoxDouble, terminal.StyleInherit, 0)
	if got := rowText(c, 0); got != "═══" {
		t.Errorf("flat box %q", got)
	}
}

func TestPlaceAligned(t *testing.T) {
	tests := []struct {
		align Align
		want  string
	}{
		{AlignLeft, " ab     "},
		{AlignCenter, "   ab   "},
		{AlignRight, "     ab "},
	}
	for _, tt := range tests {
		c := New(8, 1)
		c.PlaceAligned("ab", geom.Pt(1, 0), 6, tt.align, 0)
		if got := rowText(c, 0); got != tt.want {
			t.Errorf("align %d: %q, want %q", tt.align, got, tt.want)
		}
	}
}

func TestPlaceCellsRagged(t *testing.T) {
	c := New(3, 2)
	c.PlaceCells([][]terminal.Cell{
		{{Rune: 'a', Z: 1}, {Rune: 'b', Z: 1}, {Rune: 'c', Z: 1}},
		{{Rune: 'd', Z: 2}},
	}, geom.Pt(0, 0))
	if rowText(c, 0) != "abc" || rowText(c, 1) != "d  " {
		t.Errorf("rows %q %q", rowText(c, 0), rowText(c, 1))
	}
	if c.At(0, 1).Z != 2 {
		t.Errorf("z %d", c.At(0, 1).Z)
	}
}

func TestPlaceStringControlRunes(t *testing.T) {
	c := New(6, 1)
	c.PlaceString("a\tb", geom.Pt(0, 0), 0)
	if c.At(1, 0).Rune != '\t' || c.At(2, 0).Rune != 'b' {
		t.Errorf("control rune layout %q", rowText(c, 0))
	}

	// Combining marks have no cell of their own
	c = New(6, 1)
	c.PlaceString("e\u0301x", geom.Pt(0, 0), 0)
	if got := rowText(c, 0); got != "ex    " {
		t.Errorf("combining mark layout %q", got)
	}
}

func TestOverwriteWideContinuation(t *testing.T) {
	t.Run("glyph erases owner", func(t *testing.T) {
		c := New(4, 1)
		c.PlaceString("世", geom.Pt(0, 0), 0)
		c.ClearDirty()

		c.PlaceChars([][]rune{{'b'}}, geom.Pt(1, 0), 0)
		if got := rowText(c, 0); got != " b  " {
			t.Errorf("row %q, want %q", got, " b  ")
		}
		if !c.At(0, 0).Dirty {
			t.Error("erased owner not dirty")
		}
	})

	t.Run("style repaints owner", func(t *testing.T) {
		c := New(4, 1)
		c.PlaceString("世", geom.Pt(0, 0), 0)
		c.ClearDirty()

		c.ForceStyle(geom.R(1, 0, 1, 1), terminal.StyleDefault.Background(terminal.PaletteColor(1)))
		if got := c.At(0, 0); got.Rune != '世' || !got.Dirty {
			t.Errorf("owner %+v, want dirty wide rune", got)
		}
	})

	t.Run("lower z keeps owner", func(t *testing.T) {
		c := New(4, 1)
		c.PlaceString("世", geom.Pt(0, 0), 5)
		c.ClearDirty()

		c.PlaceChars([][]rune{{'b'}}, geom.Pt(1, 0), 1)
		if got := c.At(0, 0); got.Rune != '世' || got.Dirty {
			t.Errorf("owner %+v changed by rejected write", got)
		}
	})
}

func TestPlaceSelf(t *testing.T) {
	c := New(4, 1)
	c.PlaceString("abcd", geom.Pt(0, 0), 0)
	c.Place(c, geom.Pt(1, 0))
	if got := rowText(c, 0); got != "aabc" {
		t.Errorf("row %q, want %q", got, "aabc")
	}

	c = NewAutoExpand(2, 1)
	c.PlaceString("xy", geom.Pt(0, 0), 0)
	c.PlaceSixel(sixel.NewBuffer(1, 1), geom.Pt(0, 0), geom.Sz(1, 1), 0)
	c.Place(c, geom.Pt(2, 0))
	if got := rowText(c, 0); got != "xyxy" {
		t.Errorf("row %q, want %q", got, "xyxy")
	}
	if got := len(c.Images()); got != 2 {
		t.Errorf("images %d, want 2", got)
	}
}

func TestHelpersGrowAutoExpand(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"Fill", func(c *Canvas) { c.Fill(geom.R(0, 0, 5, 5), '#', 0) }},
		{"FillStyled", func(c *Canvas) { c.FillStyled(geom.R(0, 0, 5, 5), '#', terminal.StyleDefault, 0) }},
		{"StyleRect", func(c *Canvas) { c.StyleRect(geom.R(0, 0, 5, 5), terminal.StyleInherit) }},
		{"ForceStyle", func(c *Canvas) { c.ForceStyle(geom.R(0, 0, 5, 5), terminal.StyleDefault) }},
		{"StyleBackground", func(c *Canvas) { c.StyleBackground(geom.R(0, 0, 5, 5), terminal.PaletteColor(1)) }},
		{"DrawBox", func(c *Canvas) { c.DrawBox(geom.R(0, 0, 5, 5), BoxSingle, terminal.StyleInherit, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAutoExpand(2, 2)
			tt.draw(c)
			if c.Width() != 5 || c.Height() != 5 {
				t.Errorf("auto-expand size %v, want 5x5", c.Size())
			}

			c = New(2, 2)
			tt.draw(c)
			if c.Width() != 2 || c.Height() != 2 {
				t.Errorf("fixed size %v, want 2x2", c.Size())
			}
		})
	}

	c := NewAutoExpand(2, 2)
	c.Fill(geom.R(0, 0, 5, 5), '#', 0)
	if got := rowText(c, 4); got != "#####" {
		t.Errorf("grown row %q", got)
	}
}
