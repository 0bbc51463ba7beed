// Package render flushes a canvas to a terminal stream, writing only what changed.
package render

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/lixenwraith/termcanvas/canvas"
	"github.com/lixenwraith/termcanvas/sixel"
	"github.com/lixenwraith/termcanvas/terminal"
)

// Default cell size in pixels when the terminal does not report one
const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// Screen is a canvas bound to a terminal output stream
// Only one goroutine may draw into or render a Screen at a time
type Screen struct {
	*canvas.Canvas

	out   terminal.Sink
	mode  terminal.ColorMode
	log   *slog.Logger
	cellW int
	cellH int
	alpha uint8

	run         bytes.Buffer // pending run of the current row
	clearScreen bool         // erase the terminal before the next frame
}

// Option configures a Screen
type Option func(*Screen)

// WithColorMode selects 256-color or true color output
func WithColorMode(m terminal.ColorMode) Option {
	return func(s *Screen) {
		s.mode = m
	}
}

// WithLogger routes write failures and image diagnostics to l
func WithLogger(l *slog.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCellPixels sets the pixel size of one cell, used to scale sixel images
func WithCellPixels(w, h int) Option {
	return func(s *Screen) {
		if w > 0 && h > 0 {
			s.cellW, s.cellH = w, h
		}
	}
}

// WithAlphaThreshold sets the alpha below which image pixels stay transparent
func WithAlphaThreshold(a uint8) Option {
	return func(s *Screen) {
		s.alpha = a
	}
}

// NewScreen creates a width x height screen writing to out
// out is wrapped in a buffered Sink unless it already is one
func NewScreen(width, height int, out io.Writer, opts ...Option) *Screen {
	s := &Screen{
		Canvas: canvas.New(width, height),
		out:    terminal.NewSink(out),
		mode:   terminal.ColorModeTrueColor,
		log:    slog.New(slog.DiscardHandler),
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
		alpha:  sixel.DefaultAlphaThreshold,
	}
	s.run.Grow(4096)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ColorMode returns the active color mode
func (s *Screen) ColorMode() terminal.ColorMode {
	return s.mode
}

// SetColorMode switches color output and repaints everything on the next frame
func (s *Screen) SetColorMode(m terminal.ColorMode) {
	if m == s.mode {
		return
	}
	s.mode = m
	s.MarkDirty()
}

// SetCellPixels updates the cell pixel size, typically after a resize event
func (s *Screen) SetCellPixels(w, h int) {
	if w > 0 && h > 0 {
		s.cellW, s.cellH = w, h
	}
}

// Resize changes the screen dimensions; the next frame erases the terminal and repaints every cell
func (s *Screen) Resize(width, height int) {
	s.Canvas.Resize(width, height)
	s.Sync()
}

// Sync forces the next frame to erase the terminal and repaint every cell
func (s *Screen) Sync() {
	s.MarkDirty()
	s.clearScreen = true
}
