package terminal

import (
	"strings"
	"testing"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Pure red", RGB{255, 0, 0}, 196},
		{"Pure green", RGB{0, 255, 0}, 46},
		{"Pure blue", RGB{0, 0, 255}, 21},
		{"Mid gray uses ramp", RGB{128, 128, 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("256 should parse to ColorMode256")
	}
	if ParseColorMode("TrueColor") != ColorModeTrueColor {
		t.Error("TrueColor should parse to ColorModeTrueColor")
	}
	t.Setenv("COLORTERM", "truecolor")
	if ParseColorMode("auto") != ColorModeTrueColor {
		t.Error("auto should detect COLORTERM=truecolor")
	}
}

func TestPaletteHelpers(t *testing.T) {
	if got := Cube(5, 0, 0).Index(); got != 196 {
		t.Errorf("Cube(5,0,0) = %d, want 196", got)
	}
	if got := Cube(9, 9, 9).Index(); got != 231 {
		t.Errorf("Cube clamps, got %d", got)
	}
	if got := Gray(30).Index(); got != 255 {
		t.Errorf("Gray clamps, got %d", got)
	}
	r, g, b, ok := CubeCoords(196)
	if !ok || r != 5 || g != 0 || b != 0 {
		t.Errorf("CubeCoords(196) = %d,%d,%d,%v", r, g, b, ok)
	}
	if _, _, _, ok := CubeCoords(240); ok {
		t.Error("CubeCoords(240) should be outside the cube")
	}
}

func TestWriteIntAndCursor(t *testing.T) {
	var sb strings.Builder
	for _, n := range []int{-4, 0, 7, 42, 999, 1000, 123456} {
		WriteInt(&sb, n)
		sb.WriteByte(' ')
	}
	if got, want := sb.String(), "0 0 7 42 999 1000 123456 "; got != want {
		t.Errorf("WriteInt = %q, want %q", got, want)
	}

	sb.Reset()
	WriteCursorPos(&sb, 0, 0)
	WriteCursorPos(&sb, 9, 2)
	if got, want := sb.String(), "\x1b[1;1H\x1b[3;10H"; got != want {
		t.Errorf("WriteCursorPos = %q, want %q", got, want)
	}
}

func TestWinsizeCellPixels(t *testing.T) {
	ws := Winsize{Cols: 80, Rows: 24, XPixel: 800, YPixel: 480}
	if w, h := ws.CellPixels(); w != 10 || h != 20 {
		t.Errorf("CellPixels = %d,%d", w, h)
	}
	if w, h := (Winsize{Cols: 80, Rows: 24}).CellPixels(); w != 0 || h != 0 {
		t.Errorf("CellPixels without pixels = %d,%d", w, h)
	}
}
