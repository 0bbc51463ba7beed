package terminal

import (
	"strings"
	"testing"
)

func TestSGRStateEmit(t *testing.T) {
	red := RGBColor(255, 0, 0)
	blue := PaletteColor(21)

	steps := []struct {
		name  string
		style Style
		want  string
	}{
		{"Default from fresh state", StyleDefault, ""},
		{"Fg change", Style{Fg: red}, "\x1b[38;2;255;0;0m"},
		{"Same style again", Style{Fg: red}, ""},
		{"Bg change", Style{Fg: red, Bg: blue}, "\x1b[48;5;21m"},
		{"Both colors", Style{Fg: blue, Bg: red}, "\x1b[38;5;21;48;2;255;0;0m"},
		{"Attr change rebuilds", Style{Fg: blue, Bg: red, Attrs: AttrBold}, "\x1b[0;1;38;5;21;48;2;255;0;0m"},
		{"Attr removal rebuilds", Style{Fg: blue, Bg: red}, "\x1b[0;38;5;21;48;2;255;0;0m"},
		{"Back to default colors", StyleDefault, "\x1b[39;49m"},
		{"Inherit treated as default", StyleInherit, ""},
	}

	var state SGRState
	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			var sb strings.Builder
			wrote := state.Emit(&sb, st.style, ColorModeTrueColor)
			if sb.String() != st.want {
				t.Errorf("Emit = %q, want %q", sb.String(), st.want)
			}
			if wrote != (st.want != "") {
				t.Errorf("Emit returned %v", wrote)
			}
		})
	}
}

func TestSGRStateDownconverts256(t *testing.T) {
	var state SGRState
	var sb strings.Builder
	state.Emit(&sb, Style{Fg: RGBColor(255, 0, 0)}, ColorMode256)
	if got, want := sb.String(), "\x1b[38;5;196m"; got != want {
		t.Errorf("Emit = %q, want %q", got, want)
	}
}
