package terminal

import "github.com/gdamore/tcell/v2"

// Conversions between the packed Style model and tcell, used by the tcell blit backend

var tcellAttrPairs = [...]struct {
	attr  Attr
	tcell tcell.AttrMask
}{
	{AttrBold, tcell.AttrBold},
	{AttrItalic, tcell.AttrItalic},
	{AttrFaint, tcell.AttrDim},
	{AttrNegative, tcell.AttrReverse},
	{AttrStrikethrough, tcell.AttrStrikeThrough},
}

// TcellColor converts a Color; Inherit maps to the tcell default
func TcellColor(c Color) tcell.Color {
	switch c.Kind() {
	case KindPalette:
		return tcell.PaletteColor(int(c.Index()))
	case KindRGB:
		rgb := c.RGB()
		return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
	default:
		return tcell.ColorDefault
	}
}

// ColorFromTcell converts a tcell color back to a Color
func ColorFromTcell(c tcell.Color) Color {
	switch {
	case c == tcell.ColorDefault || !c.Valid():
		return ColorDefault
	case c.IsRGB():
		r, g, b := c.RGB()
		return RGBColor(uint8(r), uint8(g), uint8(b))
	default:
		return PaletteColor(uint8(c - tcell.ColorValid))
	}
}

// TcellStyle converts a Style to tcell.Style
func TcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(TcellColor(s.Fg)).
		Background(TcellColor(s.Bg))
	var mask tcell.AttrMask
	for _, p := range tcellAttrPairs {
		if s.Attrs&p.attr != 0 {
			mask |= p.tcell
		}
	}
	st = st.Attributes(mask)
	if s.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	return st
}

// StyleFromTcell converts a tcell.Style to Style
func StyleFromTcell(st tcell.Style) Style {
	fg, bg, mask := st.Decompose()
	var a Attr
	for _, p := range tcellAttrPairs {
		if mask&p.tcell != 0 {
			a |= p.attr
		}
	}
	if st.GetUnderlineStyle() != tcell.UnderlineStyleNone {
		a |= AttrUnderline
	}
	return Style{Fg: ColorFromTcell(fg), Bg: ColorFromTcell(bg), Attrs: a}
}
