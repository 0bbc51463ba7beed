package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/termcanvas/sixel"
)

// loadImage decodes a png, jpeg, gif, bmp, tiff or webp file
func loadImage(path string) (sixel.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode %s: empty %s image", path, format)
	}
	return sixel.FromImage(img), nil
}

// gradient builds a w x h test bitmap: hue across, fading to transparent at the bottom
func gradient(w, h int) *sixel.Buffer {
	buf := sixel.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		alpha := uint8(255 - y*255/max(h, 1))
		for x := 0; x < w; x++ {
			r, g, b := hue(x * 360 / max(w, 1))
			buf.Set(x, y, r, g, b, alpha)
		}
	}
	return buf
}

// hue maps degrees to a fully saturated color
func hue(deg int) (r, g, b uint8) {
	deg %= 360
	f := uint8(deg % 60 * 255 / 60)
	switch deg / 60 {
	case 0:
		return 255, f, 0
	case 1:
		return 255 - f, 255, 0
	case 2:
		return 0, 255, f
	case 3:
		return 0, 255 - f, 255
	case 4:
		return f, 0, 255
	default:
		return 255, 0, 255 - f
	}
}
