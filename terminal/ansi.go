package terminal

import "io"

// Writer is the sink shape the emitters need; bufio.Writer, bytes.Buffer and strings.Builder satisfy it
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// ?7l disables wrapping, preventing scroll when writing to the bottom-right corner
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// WriteInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w io.ByteWriter, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	for _, b := range buf[i:] {
		w.WriteByte(b)
	}
}

// WriteCursorPos writes an absolute cursor positioning sequence (0-indexed input)
func WriteCursorPos(w Writer, x, y int) {
	w.Write(csi)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}

// WriteReset writes the global SGR reset
func WriteReset(w io.Writer) {
	w.Write(csiSGR0)
}

// WriteClear clears the screen and homes the cursor
func WriteClear(w io.Writer) {
	w.Write(csiClear)
}

// WriteCursorVisible shows or hides the cursor
func WriteCursorVisible(w io.Writer, visible bool) {
	if visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
}

// EnterFullscreen switches to the alternate screen, hides the cursor and disables auto-wrap
func EnterFullscreen(w io.Writer) {
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	w.Write(csiAutoWrapOff)
	w.Write(csiClear)
}

// ExitFullscreen undoes EnterFullscreen
func ExitFullscreen(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
}

// EmergencyReset restores the terminal after a crash; best-effort, errors ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiRIS)
	resetTerminalMode()
}
