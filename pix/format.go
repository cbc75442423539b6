// Package pix converts source colors into device-native pixel encodings.
//
// Each format is stateless: the stored value depends only on the screen
// position and the source sample, never on history. Dithering formats use
// the position to index a fixed ordered-dither matrix.
package pix

import "lumen/scene"

// Format encodes pixels into a scanline payload buffer.
type Format interface {
	// LineBytes returns the payload size of one scanline of the given width.
	LineBytes(width int) int

	// SetRGB stores an opaque color at x.
	SetRGB(line []byte, x, y int, c scene.RGB)

	// SetSample stores an RGBA sample at x, applying the format's alpha
	// policy against the declared background. It reports whether a pixel
	// was stored; false means the sample is invisible here and the caller
	// must fall through to whatever lies beneath.
	SetSample(line []byte, x, y int, r, g, b, a uint8, bg scene.Background) bool
}

// Available formats. All are safe for concurrent use.
var (
	// RGB565 packs R5G6B5, big-endian on the wire.
	RGB565 Format = rgb565Format{}
	// RGB888 carries the same 565 quantization re-expanded to 3 bytes per
	// pixel, for panels that only accept 18/24-bit transfers.
	RGB888 Format = rgb888Format{}
	// Mono1 is ordered-dithered 1-bit, packed 8 pixels per byte LSB-first,
	// 1 = white (polarity is panel-dependent and handled at bring-up).
	Mono1 Format = monoFormat{}
	// ACeP7 is the 7-color e-paper palette, ordered-dithered, packed two
	// 4-bit indexes per byte with the even pixel in the high nibble.
	ACeP7 Format = acep7Format{}
)
