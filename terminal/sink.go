package terminal

import (
	"bufio"
	"io"
)

// Sink is the terminal output stream the renderer writes to
// Bytes written must eventually be delivered in order; Flush pushes them out
type Sink interface {
	io.Writer
	Flush() error
}

// outputSink buffers writes to an io.Writer
type outputSink struct {
	*bufio.Writer
}

// NewSink wraps w in a 128KB buffer
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return outputSink{bufio.NewWriterSize(w, 131072)}
}
