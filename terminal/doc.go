// Package terminal provides the cell and style model plus direct ANSI output primitives.
//
// Features:
//   - Cell: glyph, packed style, dirty flag and z-index for layered composition
//   - Style: tagged-union colors (default, inherit, palette, 24-bit) packed into one word
//   - Coalesced SGR emission that only writes the channels that changed
//   - True color (24-bit) and 256-color palette output with nearest-match downconversion
//   - Window size and SIGWINCH watching for viewport-relative units
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
