package terminal

import (
	"os"

	"golang.org/x/term"
)

// Winsize is the terminal geometry in cells and, when the terminal reports it, pixels
type Winsize struct {
	Cols, Rows     int
	XPixel, YPixel int
}

// CellPixels returns the pixel size of one cell, zero when the terminal does not report pixels
func (w Winsize) CellPixels() (int, int) {
	if w.Cols <= 0 || w.Rows <= 0 || w.XPixel <= 0 || w.YPixel <= 0 {
		return 0, 0
	}
	return w.XPixel / w.Cols, w.YPixel / w.Rows
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// IsTerminal reports whether fd refers to a terminal
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Viewport reports the current terminal dimensions in cells
type Viewport interface {
	Size() (width, height int)
}

// FixedViewport is a Viewport of constant size
type FixedViewport struct {
	Width, Height int
}

// Size implements Viewport
func (v FixedViewport) Size() (int, int) {
	return v.Width, v.Height
}

// FdViewport queries the terminal behind a file descriptor on every call
// Falls back to 80x24 when the descriptor is not a terminal
type FdViewport struct {
	Fd int
}

// StdoutViewport queries the terminal attached to stdout
func StdoutViewport() FdViewport {
	return FdViewport{Fd: int(os.Stdout.Fd())}
}

// Size implements Viewport
func (v FdViewport) Size() (int, int) {
	ws, err := WindowSize(v.Fd)
	if err != nil || ws.Cols <= 0 || ws.Rows <= 0 {
		return 80, 24 // Fallback
	}
	return ws.Cols, ws.Rows
}
