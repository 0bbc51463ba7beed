package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// MaxContentWidth is the widest line of s in cells, the width s needs to never wrap
func MaxContentWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// MinContentWidth is the widest single word of s in cells, the narrowest width that
// wraps s without splitting words
func MinContentWidth(s string) int {
	w := 0
	for _, word := range strings.Fields(s) {
		w = max(w, runewidth.StringWidth(word))
	}
	return w
}

// TextHeight is the number of rows s occupies when wrapped at width cells
// Words longer than width are broken; width <= 0 counts hard lines only
func TextHeight(s string, width int) int {
	if s == "" {
		return 0
	}
	lines := strings.Split(s, "\n")
	if width <= 0 {
		return len(lines)
	}
	rows := 0
	for _, line := range lines {
		rows += wrappedRows(line, width)
	}
	return rows
}

// wrappedRows greedily packs the words of one hard line into rows of width cells
func wrappedRows(line string, width int) int {
	words := strings.Fields(line)
	if len(words) == 0 {
		return 1
	}
	rows, col := 1, 0
	for _, word := range words {
		ww := runewidth.StringWidth(word)
		switch {
		case col == 0:
		case col+1+ww <= width:
			col++
		default:
			rows++
			col = 0
		}
		for ww > width-col {
			// Break an overlong word at the row boundary
			ww -= width - col
			rows++
			col = 0
		}
		col += ww
	}
	return rows
}
