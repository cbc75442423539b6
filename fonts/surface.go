// Package fonts bridges tinyfont fonts into the scene model: fixed-cell
// bitmap fonts for Text items and pre-rendered glyph surfaces for
// everything a fixed cell cannot express.
package fonts

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Surface is a transient RGBA8888 pixel buffer that implements
// drivers.Displayer, so tinyfont can rasterize straight into it. Pixels
// start fully transparent; glyph pixels land with the alpha tinyfont
// passes in.
type Surface struct {
	w, h int
	pix  []byte
}

var _ drivers.Displayer = (*Surface)(nil)

func NewSurface(w, h int) *Surface {
	return &Surface{w: w, h: h, pix: make([]byte, w*h*4)}
}

func (s *Surface) Size() (int16, int16) { return int16(s.w), int16(s.h) }

func (s *Surface) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= s.w || iy >= s.h {
		return
	}
	off := (iy*s.w + ix) * 4
	s.pix[off] = c.R
	s.pix[off+1] = c.G
	s.pix[off+2] = c.B
	s.pix[off+3] = c.A
}

func (s *Surface) Display() error { return nil }

// Pix returns the backing RGBA bytes, pixel order R, G, B, A.
func (s *Surface) Pix() []byte { return s.pix }

// opaqueAt reports whether the pixel at (x, y) has any alpha.
func (s *Surface) opaqueAt(x, y int) bool {
	return s.pix[(y*s.w+x)*4+3] != 0
}
