package terminal

// Cell represents a single terminal cell and its compositing state
// Rune 0 means transparent/unwritten
type Cell struct {
	Rune  rune
	Style Style
	Dirty bool
	Z     int32
}

// BlankCell is the state every canvas cell starts in: unwritten and pending paint
var BlankCell = Cell{Dirty: true}

// IsBlank reports whether the cell carries neither a glyph nor a non-default style
func (c Cell) IsBlank() bool {
	return c.Rune == 0 && c.Style.Pack() == 0
}
