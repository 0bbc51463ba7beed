//go:build unix

package terminal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// WindowSize returns the terminal geometry for fd, including pixel dimensions
func WindowSize(fd int) (Winsize, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return Winsize{}, err
	}
	return Winsize{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		XPixel: int(ws.Xpixel),
		YPixel: int(ws.Ypixel),
	}, nil
}

// WatchResize delivers the new size of fd on every SIGWINCH until ctx is done
// Only the latest pending size is kept; the channel is closed on return
func WatchResize(ctx context.Context, fd int) <-chan ResizeEvent {
	eventCh := make(chan ResizeEvent, 1)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer close(eventCh)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				ws, err := WindowSize(fd)
				if err != nil || ws.Cols <= 0 || ws.Rows <= 0 {
					continue
				}
				ev := ResizeEvent{Width: ws.Cols, Height: ws.Rows}
				// Non-blocking send, drop old event if not consumed
				select {
				case eventCh <- ev:
				default:
					select {
					case <-eventCh:
					default:
					}
					eventCh <- ev
				}
			}
		}
	}()

	return eventCh
}
