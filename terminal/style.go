package terminal

import (
	"strconv"
	"strings"
)

// ColorKind selects which variant of Color is active
type ColorKind uint8

const (
	KindDefault ColorKind = iota // Terminal default color
	KindInherit                  // Keep whatever is underneath on merge
	KindPalette                  // 256-color palette index
	KindRGB                      // 24-bit custom color
)

// Color is a tagged union over default, inherit, palette index and 24-bit RGB
// Exactly one variant is active; the zero value is the terminal default
type Color struct {
	kind  ColorKind
	value uint32 // palette index or 0xRRGGBB, zero for default/inherit
}

var (
	ColorDefault = Color{kind: KindDefault}
	ColorInherit = Color{kind: KindInherit}
)

// PaletteColor returns a 256-color palette entry
func PaletteColor(index uint8) Color {
	return Color{kind: KindPalette, value: uint32(index)}
}

// RGBColor returns a 24-bit custom color
func RGBColor(r, g, b uint8) Color {
	return Color{kind: KindRGB, value: RGB{R: r, G: g, B: b}.Hex()}
}

// HexColor returns a 24-bit custom color from 0xRRGGBB
func HexColor(v uint32) Color {
	return Color{kind: KindRGB, value: v & 0xFFFFFF}
}

// FromRGB wraps an RGB triple
func FromRGB(c RGB) Color {
	return Color{kind: KindRGB, value: c.Hex()}
}

func (c Color) Kind() ColorKind { return c.kind }
func (c Color) IsDefault() bool { return c.kind == KindDefault }
func (c Color) IsInherit() bool { return c.kind == KindInherit }
func (c Color) IsPalette() bool { return c.kind == KindPalette }
func (c Color) IsRGB() bool     { return c.kind == KindRGB }
func (c Color) Index() uint8    { return uint8(c.value) }
func (c Color) RGB() RGB        { return RGBFromHex(c.value) }
func (c Color) payload() uint64 { return uint64(c.value & 0xFFFFFF) }

// Or returns c unless it is Inherit, in which case base is returned
func (c Color) Or(base Color) Color {
	if c.kind == KindInherit {
		return base
	}
	return c
}

// Foreground returns the activation sequence for c as text color
// Inherit has nothing to activate and renders like Default
func (c Color) Foreground() string {
	return "\x1b[" + c.params(true, ColorModeTrueColor) + "m"
}

// Background returns the activation sequence for c as background color
func (c Color) Background() string {
	return "\x1b[" + c.params(false, ColorModeTrueColor) + "m"
}

// params returns the SGR parameters without CSI prefix and 'm' suffix
func (c Color) params(fg bool, mode ColorMode) string {
	var sb strings.Builder
	c.writeParams(&sb, fg, mode)
	return sb.String()
}

func (c Color) writeParams(w Writer, fg bool, mode ColorMode) {
	base := 38
	if !fg {
		base = 48
	}
	switch c.kind {
	case KindPalette:
		WriteInt(w, base)
		w.WriteString(";5;")
		WriteInt(w, int(c.Index()))
	case KindRGB:
		rgb := c.RGB()
		if mode != ColorModeTrueColor {
			WriteInt(w, base)
			w.WriteString(";5;")
			WriteInt(w, int(RGBTo256(rgb)))
			return
		}
		WriteInt(w, base)
		w.WriteString(";2;")
		WriteInt(w, int(rgb.R))
		w.WriteByte(';')
		WriteInt(w, int(rgb.G))
		w.WriteByte(';')
		WriteInt(w, int(rgb.B))
	default:
		WriteInt(w, base+1) // 39 / 49
	}
}

// String is a debugging representation
func (c Color) String() string {
	switch c.kind {
	case KindInherit:
		return "inherit"
	case KindPalette:
		return "palette(" + strconv.Itoa(int(c.Index())) + ")"
	case KindRGB:
		return "#" + strconv.FormatUint(uint64(c.value)|1<<24, 16)[1:]
	default:
		return "default"
	}
}

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrItalic        Attr = 1 << 1
	AttrUnderline     Attr = 1 << 2
	AttrFaint         Attr = 1 << 3
	AttrNegative      Attr = 1 << 4
	AttrStrikethrough Attr = 1 << 5
)

// AttrMask covers every defined attribute bit
const AttrMask Attr = AttrBold | AttrItalic | AttrUnderline | AttrFaint | AttrNegative | AttrStrikethrough

// attrCodes pairs each attribute with its SGR on-code, in emission order
var attrCodes = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrFaint, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrNegative, '7'},
	{AttrStrikethrough, '9'},
}

// Style holds foreground, background and attributes of a cell
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// StyleDefault is terminal default colors with no attributes
var StyleDefault = Style{}

// StyleInherit overrides nothing when merged
var StyleInherit = Style{Fg: ColorInherit, Bg: ColorInherit}

// NewStyle builds a style from colors and attributes
func NewStyle(fg, bg Color, attrs Attr) Style {
	return Style{Fg: fg, Bg: bg, Attrs: attrs & AttrMask}
}

// Packed word layout (bit 0 least significant):
//
//	| 0-23    | 24-47   | 48-53 | 54-55   | 56-57   |
//	| fg data | bg data | attrs | fg kind | bg kind |
const (
	packBgShift     = 24
	packAttrShift   = 48
	packFgKindShift = 54
	packBgKindShift = 56
)

// Pack encodes the style into a single comparable word
func (s Style) Pack() uint64 {
	return s.Fg.payload() |
		s.Bg.payload()<<packBgShift |
		uint64(s.Attrs&AttrMask)<<packAttrShift |
		uint64(s.Fg.kind&3)<<packFgKindShift |
		uint64(s.Bg.kind&3)<<packBgKindShift
}

// UnpackStyle decodes a word produced by Pack
func UnpackStyle(raw uint64) Style {
	return Style{
		Fg:    unpackColor(ColorKind(raw>>packFgKindShift&3), uint32(raw&0xFFFFFF)),
		Bg:    unpackColor(ColorKind(raw>>packBgKindShift&3), uint32(raw>>packBgShift&0xFFFFFF)),
		Attrs: Attr(raw>>packAttrShift) & AttrMask,
	}
}

func unpackColor(kind ColorKind, v uint32) Color {
	switch kind {
	case KindPalette:
		return PaletteColor(uint8(v))
	case KindRGB:
		return HexColor(v)
	case KindInherit:
		return ColorInherit
	default:
		return ColorDefault
	}
}

// Equal compares packed words
func (s Style) Equal(o Style) bool {
	return s.Pack() == o.Pack()
}

// Foreground returns a copy with the text color replaced
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background color replaced
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// WithAttrs returns a copy with the attribute set replaced
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs = a & AttrMask
	return s
}

// Override merges o onto s: non-inherit channels of o win, attributes are replaced
func (s Style) Override(o Style) Style {
	s.Fg = o.Fg.Or(s.Fg)
	s.Bg = o.Bg.Or(s.Bg)
	s.Attrs = o.Attrs & AttrMask
	return s
}

// Resolved replaces inherit channels with default, the state a terminal actually shows
func (s Style) Resolved() Style {
	s.Fg = s.Fg.Or(ColorDefault)
	s.Bg = s.Bg.Or(ColorDefault)
	return s
}

// Activation returns the complete sequence that switches the terminal to s from any state
func (s Style) Activation(mode ColorMode) string {
	var sb strings.Builder
	writeFullSGR(&sb, s.Resolved(), mode)
	return sb.String()
}

// ResetText restores default colors and attributes
const ResetText = "\x1b[0m"
