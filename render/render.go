package render

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termcanvas/terminal"
)

// FrameStats describes the output of one Render call
type FrameStats struct {
	Cells        int // glyphs written
	Runs         int // contiguous dirty runs
	CursorMoves  int // absolute positioning sequences
	StyleChanges int // SGR sequences
	Images       int // sixel images emitted
	Bytes        int // total bytes handed to the sink
}

func (f FrameStats) String() string {
	return fmt.Sprintf("cells=%d runs=%d moves=%d styles=%d images=%d bytes=%d",
		f.Cells, f.Runs, f.CursorMoves, f.StyleChanges, f.Images, f.Bytes)
}

// frame carries the state of one Render call
type frame struct {
	stats FrameStats
	err   error
}

// Render writes every dirty cell and pending image to the sink, then consumes the dirty flags
//
// Rows are scanned top to bottom. Contiguous dirty cells form a run that starts with one
// absolute cursor move; a clean cell ends the run. Style sequences are emitted only when a
// cell's style differs from the last one written anywhere in the frame. Images follow the
// cells in ascending z order. A frame with nothing dirty writes nothing.
//
// Write failures are logged and the frame continues; the first one is returned.
func (s *Screen) Render() (FrameStats, error) {
	var f frame
	sgr := terminal.NewSGRState(terminal.StyleDefault)

	if s.clearScreen {
		s.clearScreen = false
		terminal.WriteReset(&s.run)
		terminal.WriteClear(&s.run)
		s.flushRun(&f)
	}

	width := s.Width()
	for y := 0; y < s.Height(); y++ {
		row := s.Row(y)
		behind := true

		for x := 0; x < width; x++ {
			cell := &row[x]
			if !cell.Dirty {
				s.flushRun(&f)
				behind = true
				continue
			}
			cell.Dirty = false

			if behind {
				terminal.WriteCursorPos(&s.run, x, y)
				f.stats.CursorMoves++
				f.stats.Runs++
				behind = false
			}

			if sgr.Emit(&s.run, cell.Style, s.mode) {
				f.stats.StyleChanges++
			}

			r, w := glyph(cell.Rune)
			if w == 2 && x+1 >= width {
				// No room for the second column
				r = ' '
			}
			s.run.WriteRune(r)
			f.stats.Cells++

			if w == 2 && x+1 < width {
				// The glyph covers the next cell
				row[x+1].Dirty = false
				x++
			}
		}
		s.flushRun(&f)
	}

	s.flushImages(&f)

	if f.stats.Bytes > 0 {
		s.write(&f, []byte(terminal.ResetText))
	}

	if err := s.out.Flush(); err != nil {
		s.fail(&f, "flush", err)
	}

	if f.stats.Bytes > 0 {
		s.log.Debug("render: frame", slog.Any("stats", f.stats))
	}
	return f.stats, f.err
}

// glyph maps a cell rune to what is written and the columns it covers
// Unset, control and zero-width runes are written as a space
func glyph(r rune) (rune, int) {
	if r == 0 || unicode.IsControl(r) {
		return ' ', 1
	}
	switch runewidth.RuneWidth(r) {
	case 0:
		return ' ', 1
	case 2:
		return r, 2
	default:
		return r, 1
	}
}

// flushRun hands the pending run to the sink
func (s *Screen) flushRun(f *frame) {
	if s.run.Len() == 0 {
		return
	}
	s.write(f, s.run.Bytes())
	s.run.Reset()
}

// write sends p to the sink, recording failures without stopping the frame
func (s *Screen) write(f *frame, p []byte) {
	n, err := s.out.Write(p)
	f.stats.Bytes += n
	if err != nil {
		s.fail(f, "write", err)
	}
}

func (s *Screen) fail(f *frame, op string, err error) {
	s.log.Error("render: output failed", "op", op, "error", err)
	if f.err == nil {
		f.err = fmt.Errorf("render: %s: %w", op, err)
	}
}
