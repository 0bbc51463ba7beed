package terminal

import (
	"context"
	"os"
	"sync"

	"golang.org/x/term"
)

// Session owns the terminal for a fullscreen program
// Init enters raw mode (when the input is a terminal) and the alternate screen; Fini undoes both
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	oldTerm *term.State

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewSession binds a session to the given input and output files
func NewSession(in, out *os.File) *Session {
	return &Session{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// Init enters raw mode and the alternate screen
// Raw mode is skipped when the input is not a terminal so output-only use keeps working
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if term.IsTerminal(s.inFd) {
		old, err := term.MakeRaw(s.inFd)
		if err != nil {
			return err
		}
		s.oldTerm = old
	}

	EnterFullscreen(s.out)
	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (s *Session) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	ExitFullscreen(s.out)

	if s.oldTerm != nil {
		term.Restore(s.inFd, s.oldTerm)
	}
	s.finalized = true
}

// Out returns the output file the session draws to
func (s *Session) Out() *os.File {
	return s.out
}

// Size returns the current output geometry, falling back to 80x24
func (s *Session) Size() Winsize {
	ws, err := WindowSize(s.outFd)
	if err != nil || ws.Cols <= 0 || ws.Rows <= 0 {
		return Winsize{Cols: 80, Rows: 24}
	}
	return ws
}

// Viewport returns a Viewport tracking the session output
func (s *Session) Viewport() Viewport {
	return FdViewport{Fd: s.outFd}
}

// ResizeChan delivers output size changes until ctx is done
func (s *Session) ResizeChan(ctx context.Context) <-chan ResizeEvent {
	return WatchResize(ctx, s.outFd)
}
