package scene

// Font is a fixed-cell bitmap font. Every glyph occupies the same
// Width x Height cell; each glyph row is one byte with the MSB as the
// leftmost pixel. Glyphs are stored back to back, Height bytes each,
// starting at rune First.
//
// Text items reference a Font but never own one; fonts are resolved by the
// caller and typically live for the whole program.
type Font struct {
	Width  int // glyph cell width in pixels, at most 8
	Height int // glyph cell height in pixels
	First  byte
	Glyphs []byte // len(Glyphs) = glyph count * Height
}

// Covers reports whether the font has a glyph for b.
func (f *Font) Covers(b byte) bool {
	if f == nil || f.Height <= 0 {
		return false
	}
	count := len(f.Glyphs) / f.Height
	return b >= f.First && int(b-f.First) < count
}

// Opaque reports whether the glyph for b has a set pixel at (col, row).
// Out-of-coverage bytes read as fully transparent cells.
func (f *Font) Opaque(b byte, col, row int) bool {
	if !f.Covers(b) || col < 0 || col >= f.Width || row < 0 || row >= f.Height {
		return false
	}
	g := f.Glyphs[int(b-f.First)*f.Height+row]
	return g&(1<<(7-col)) != 0
}
