package sixel

// MaxColors is the largest palette a sixel image may define here
const MaxColors = 256

// transparent marks a pixel that is never drawn
const transparent = -1

// RGB is an opaque palette entry
type RGB struct {
	R, G, B uint8
}

// Palette is an ordered, index-addressable set of distinct colors
type Palette struct {
	colors []RGB
	index  map[RGB]int
}

// newPalette returns an empty palette
func newPalette() *Palette {
	return &Palette{index: make(map[RGB]int)}
}

// Len returns the number of entries
func (p *Palette) Len() int {
	return len(p.colors)
}

// At returns entry i
func (p *Palette) At(i int) RGB {
	return p.colors[i]
}

// Colors returns a copy of the entries in index order
func (p *Palette) Colors() []RGB {
	out := make([]RGB, len(p.colors))
	copy(out, p.colors)
	return out
}

// lookup returns the index of c, inserting it when absent
// Returns false without inserting when the palette is full
func (p *Palette) lookup(c RGB) (int, bool) {
	if i, ok := p.index[c]; ok {
		return i, true
	}
	if len(p.colors) >= MaxColors {
		return 0, false
	}
	i := len(p.colors)
	p.colors = append(p.colors, c)
	p.index[c] = i
	return i, true
}

// quantizedPalette builds the fixed 3-3-2 palette: 8 red x 8 green x 4 blue levels
func quantizedPalette() *Palette {
	p := &Palette{colors: make([]RGB, MaxColors), index: make(map[RGB]int, MaxColors)}
	for i := 0; i < MaxColors; i++ {
		r := (i & 0xE0) >> 5
		g := (i & 0x1C) >> 2
		b := i & 0x03
		c := RGB{R: uint8(r * 255 / 7), G: uint8(g * 255 / 7), B: uint8(b * 255 / 3)}
		p.colors[i] = c
		p.index[c] = i
	}
	return p
}

// quantize332 maps a color to its 3-3-2 palette slot
func quantize332(r, g, b uint8) int {
	return int(r>>5)<<5 | int(g>>5)<<2 | int(b>>6)
}

// Indexed is a bitmap reduced to palette indices; -1 marks transparent pixels
type Indexed struct {
	W, H      int
	Palette   *Palette
	Pixels    []int
	Quantized bool // true when the 3-3-2 fallback was applied
}

// At returns the palette index at x,y or -1
func (ix *Indexed) At(x, y int) int {
	return ix.Pixels[y*ix.W+x]
}

// BuildPalette maps every pixel of src to a palette index
// Up to MaxColors distinct opaque colors are kept exactly; beyond that the whole image is
// remapped onto the fixed 3-3-2 palette. Pixels with alpha below threshold are transparent.
func BuildPalette(src Bitmap, alphaThreshold uint8) *Indexed {
	if isEmpty(src) {
		return &Indexed{Palette: newPalette()}
	}

	w, h := src.Width(), src.Height()
	ix := &Indexed{W: w, H: h, Palette: newPalette(), Pixels: make([]int, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := src.Pixel(x, y)
			if a < alphaThreshold {
				ix.Pixels[y*w+x] = transparent
				continue
			}
			i, ok := ix.Palette.lookup(RGB{R: r, G: g, B: b})
			if !ok {
				requantize(src, alphaThreshold, ix)
				return ix
			}
			ix.Pixels[y*w+x] = i
		}
	}
	return ix
}

// requantize discards the exact palette and remaps every pixel onto 3-3-2
func requantize(src Bitmap, alphaThreshold uint8, ix *Indexed) {
	ix.Palette = quantizedPalette()
	ix.Quantized = true
	for y := 0; y < ix.H; y++ {
		for x := 0; x < ix.W; x++ {
			r, g, b, a := src.Pixel(x, y)
			if a < alphaThreshold {
				ix.Pixels[y*ix.W+x] = transparent
				continue
			}
			ix.Pixels[y*ix.W+x] = quantize332(r, g, b)
		}
	}
}
