//go:build !linux

package terminal

// resetTerminalMode is a no-op where TCGETS/TCSETS are unavailable
func resetTerminalMode() {}
