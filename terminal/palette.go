package terminal

// xterm 256-color layout:
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

// Cube returns the palette color for an RGB cube coordinate, components clamped to [0,5]
func Cube(r, g, b uint8) Color {
	return PaletteColor(16 + 36*min(r, 5) + 6*min(g, 5) + min(b, 5))
}

// Gray returns the palette color for a grayscale step, clamped to [0,23]
func Gray(step uint8) Color {
	return PaletteColor(232 + min(step, 23))
}

// CubeCoords returns the cube coordinates of a palette index in [16,231]
// Returns ok=false for indices outside the cube
func CubeCoords(index uint8) (r, g, b uint8, ok bool) {
	if index < 16 || index > 231 {
		return 0, 0, 0, false
	}
	n := index - 16
	return n / 36, (n % 36) / 6, n % 6, true
}

// Named 24-bit colors used by the demo scenes and tests
var (
	Black     = RGBColor(0, 0, 0)
	White     = RGBColor(255, 255, 255)
	DarkSlate = RGBColor(35, 36, 48)
	Gunmetal  = RGBColor(26, 27, 38)
	Silver    = RGBColor(180, 180, 180)
	SteelBlue = RGBColor(70, 130, 180)
	Amber     = RGBColor(255, 191, 0)
	Crimson   = RGBColor(220, 20, 60)
	Teal      = RGBColor(0, 128, 128)
	Orchid    = RGBColor(218, 112, 214)
)
