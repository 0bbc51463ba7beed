package sixel

import (
	"image"
	"image/color"
)

// Bitmap is a source of RGBA pixels of known size
type Bitmap interface {
	Width() int
	Height() int
	Pixel(x, y int) (r, g, b, a uint8)
}

// Buffer is an in-memory RGBA bitmap, 4 bytes per pixel, row-major
type Buffer struct {
	W, H int
	Pix  []uint8
}

// NewBuffer allocates a fully transparent buffer
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

func (b *Buffer) Width() int  { return b.W }
func (b *Buffer) Height() int { return b.H }

// Pixel implements Bitmap; out-of-range reads are transparent
func (b *Buffer) Pixel(x, y int) (r, g, bl, a uint8) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0, 0, 0, 0
	}
	i := (y*b.W + x) * 4
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Set writes one pixel; out-of-range writes are dropped
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return
	}
	i := (y*b.W + x) * 4
	b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
}

// Fill paints every pixel with one color
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for i := 0; i+3 < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = r, g, bl, a
	}
}

// imageBitmap adapts image.Image; pixels are un-premultiplied
type imageBitmap struct {
	img    image.Image
	bounds image.Rectangle
}

// FromImage adapts a decoded image; a nil image yields an empty bitmap
func FromImage(img image.Image) Bitmap {
	if img == nil {
		return NewBuffer(0, 0)
	}
	return imageBitmap{img: img, bounds: img.Bounds()}
}

func (m imageBitmap) Width() int  { return m.bounds.Dx() }
func (m imageBitmap) Height() int { return m.bounds.Dy() }

func (m imageBitmap) Pixel(x, y int) (r, g, b, a uint8) {
	c := color.NRGBAModel.Convert(m.img.At(m.bounds.Min.X+x, m.bounds.Min.Y+y)).(color.NRGBA)
	return c.R, c.G, c.B, c.A
}

// isEmpty reports whether there is nothing to encode
func isEmpty(src Bitmap) bool {
	return src == nil || src.Width() <= 0 || src.Height() <= 0
}
