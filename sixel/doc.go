// Package sixel encodes RGBA bitmaps into the DEC sixel raster protocol.
//
// Encoding is two-pass: the first pass builds an ordered palette of at most 256 opaque
// colors (falling back to a fixed 3-3-2 palette on overflow), the second emits palette
// definitions followed by 6-row bands, one run-length encoded line per active color.
// Output is deterministic for a given input.
package sixel
