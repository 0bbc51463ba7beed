package render

import (
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/termcanvas/canvas"
	"github.com/lixenwraith/termcanvas/sixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

// flushImages emits pending image placements after the cells, lowest z first, and
// empties the list. Placements anchored outside the screen are dropped.
func (s *Screen) flushImages(f *frame) {
	imgs := s.TakeImages()
	if len(imgs) == 0 {
		return
	}
	sort.SliceStable(imgs, func(i, j int) bool { return imgs[i].Z < imgs[j].Z })

	for _, p := range imgs {
		if p.Pos.X < 0 || p.Pos.Y < 0 || p.Pos.X >= s.Width() || p.Pos.Y >= s.Height() {
			s.log.Debug("render: image outside screen", "x", p.Pos.X, "y", p.Pos.Y)
			continue
		}
		enc := sixel.Encode(s.scale(p), s.alpha)
		if len(enc) == 0 {
			continue
		}
		terminal.WriteCursorPos(&s.run, p.Pos.X, p.Pos.Y)
		f.stats.CursorMoves++
		s.run.Write(enc)
		s.flushRun(f)
		f.stats.Images++
	}
}

// scale resamples a placement to its cell rectangle in pixels
func (s *Screen) scale(p canvas.ImagePlacement) sixel.Bitmap {
	return Scale(p.Image, p.Size.W*s.cellW, p.Size.H*s.cellH)
}

// Scale resamples src to w x h pixels with bilinear filtering
// src is returned as is when it already has that size; non-positive sizes give an empty bitmap
func Scale(src sixel.Bitmap, w, h int) sixel.Bitmap {
	if src.Width() == w && src.Height() == h {
		return src
	}
	if src.Width() <= 0 || src.Height() <= 0 || w <= 0 || h <= 0 {
		return sixel.NewBuffer(0, 0)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), bitmapImage{src}, image.Rect(0, 0, src.Width(), src.Height()), draw.Src, nil)
	return &sixel.Buffer{W: w, H: h, Pix: dst.Pix}
}

// bitmapImage exposes a sixel.Bitmap as an image.Image for resampling
type bitmapImage struct {
	b sixel.Bitmap
}

func (m bitmapImage) ColorModel() color.Model { return color.NRGBAModel }
func (m bitmapImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.b.Width(), m.b.Height()) }

func (m bitmapImage) At(x, y int) color.Color {
	r, g, b, a := m.b.Pixel(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
