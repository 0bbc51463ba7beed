//go:build !unix

package terminal

import (
	"context"

	"golang.org/x/term"
)

// WindowSize returns the terminal geometry for fd; pixel sizes are not available
func WindowSize(fd int) (Winsize, error) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Winsize{}, err
	}
	return Winsize{Cols: w, Rows: h}, nil
}

// WatchResize has no signal source on this platform; the channel closes with ctx
func WatchResize(ctx context.Context, fd int) <-chan ResizeEvent {
	eventCh := make(chan ResizeEvent)
	go func() {
		<-ctx.Done()
		close(eventCh)
	}()
	return eventCh
}
