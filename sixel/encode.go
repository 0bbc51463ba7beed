package sixel

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// DefaultAlphaThreshold treats pixels at least half opaque as drawn
const DefaultAlphaThreshold uint8 = 128

// bandHeight is the number of pixel rows one sixel character covers
const bandHeight = 6

// sixelBase is the character for an empty column mask ('?')
const sixelBase = 63

// rleMin is the shortest run written as a repeat introducer
const rleMin = 4

// Protocol framing
const (
	introducer = "\x1bP0;1;q" // P2=1 keeps unpainted pixels transparent
	terminator = "\x1b\\"
)

// writer is the byte sink the encoder needs
type writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Encode returns the sixel stream for src; empty or nil bitmaps produce no output
func Encode(src Bitmap, alphaThreshold uint8) []byte {
	if isEmpty(src) {
		return nil
	}
	var buf bytes.Buffer
	encode(&buf, BuildPalette(src, alphaThreshold))
	return buf.Bytes()
}

// EncodeTo streams the sixel encoding of src into w
func EncodeTo(w io.Writer, src Bitmap, alphaThreshold uint8) error {
	if isEmpty(src) {
		return nil
	}
	if bw, ok := w.(writer); ok {
		encode(bw, BuildPalette(src, alphaThreshold))
		return nil
	}
	bw := bufio.NewWriter(w)
	encode(bw, BuildPalette(src, alphaThreshold))
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sixel: flush: %w", err)
	}
	return nil
}

// encode writes header, palette and bands for an indexed image
func encode(w writer, ix *Indexed) {
	w.WriteString(introducer)
	w.WriteString("\"1;1;")
	writeInt(w, ix.W)
	w.WriteByte(';')
	writeInt(w, ix.H)

	for i := 0; i < ix.Palette.Len(); i++ {
		c := ix.Palette.At(i)
		w.WriteByte('#')
		writeInt(w, i)
		w.WriteString(";2;")
		writeInt(w, percent(c.R))
		w.WriteByte(';')
		writeInt(w, percent(c.G))
		w.WriteByte(';')
		writeInt(w, percent(c.B))
	}

	var active [MaxColors]bool
	for y := 0; y < ix.H; y += bandHeight {
		rows := min(bandHeight, ix.H-y)

		clear(active[:])
		for r := 0; r < rows; r++ {
			for _, idx := range ix.Pixels[(y+r)*ix.W : (y+r+1)*ix.W] {
				if idx != transparent {
					active[idx] = true
				}
			}
		}

		for idx := range active {
			if !active[idx] {
				continue
			}
			w.WriteByte('#')
			writeInt(w, idx)
			encodeLine(w, ix, y, rows, idx)
			w.WriteByte('$')
		}
		w.WriteByte('-')
	}

	w.WriteString(terminator)
}

// encodeLine writes one color's columns for the band starting at y
func encodeLine(w writer, ix *Indexed, y, rows, idx int) {
	var last byte
	run := 0
	for x := 0; x < ix.W; x++ {
		mask := 0
		for r := 0; r < rows; r++ {
			if ix.Pixels[(y+r)*ix.W+x] == idx {
				mask |= 1 << r
			}
		}
		c := byte(sixelBase + mask)
		if run > 0 && c == last {
			run++
			continue
		}
		writeRun(w, run, last)
		last, run = c, 1
	}
	writeRun(w, run, last)
}

// writeRun emits count repetitions of c, compressed when long enough
func writeRun(w writer, count int, c byte) {
	if count >= rleMin {
		w.WriteByte('!')
		writeInt(w, count)
		w.WriteByte(c)
		return
	}
	for ; count > 0; count-- {
		w.WriteByte(c)
	}
}

// percent scales an 8-bit channel to the 0-100 range sixel color definitions use
func percent(v uint8) int {
	return int(v) * 100 / 255
}

func writeInt(w io.StringWriter, n int) {
	w.WriteString(strconv.Itoa(n))
}
