package geom

// Center returns a rectangle of the given size centered within outer
func Center(outer Rect, w, h int) Rect {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitH splits r into columns by ratios; ratios are normalized
// The last column takes the remainder to avoid rounding gaps
func SplitH(r Rect, ratios ...float64) []Rect {
	widths := distribute(r.W, ratios)
	if widths == nil {
		return nil
	}
	out := make([]Rect, len(widths))
	x := 0
	for i, w := range widths {
		out[i] = r.Sub(x, 0, w, r.H)
		x += w
	}
	return out
}

// SplitV splits r into rows by ratios; ratios are normalized
func SplitV(r Rect, ratios ...float64) []Rect {
	heights := distribute(r.H, ratios)
	if heights == nil {
		return nil
	}
	out := make([]Rect, len(heights))
	y := 0
	for i, h := range heights {
		out[i] = r.Sub(0, y, r.W, h)
		y += h
	}
	return out
}

// SplitHFixed splits with a fixed left width, rest to the right
func SplitHFixed(r Rect, leftW int) (left, right Rect) {
	leftW = min(max(leftW, 0), r.W)
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}

// SplitVFixed splits with a fixed top height, rest to the bottom
func SplitVFixed(r Rect, topH int) (top, bottom Rect) {
	topH = min(max(topH, 0), r.H)
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}

func distribute(total int, ratios []float64) []int {
	if len(ratios) == 0 {
		return nil
	}
	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	out := make([]int, len(ratios))
	remaining := total
	for i, ratio := range ratios {
		if i == len(ratios)-1 {
			out[i] = remaining
			break
		}
		n := int(float64(total)*ratio/sum + 0.5) // Round to nearest cell
		if n > remaining {
			n = remaining
		}
		out[i] = n
		remaining -= n
	}
	return out
}
