package fonts

import (
	"errors"
	"image/color"

	"tinygo.org/x/tinyfont"

	"lumen/scene"
)

var errNoFont = errors.New("fonts: nil or empty font")

// metrics returns the ascent/descent of a string's glyphs relative to the
// baseline tinyfont draws against.
func metrics(f tinyfont.Fonter, s string) (ascent, descent int) {
	for _, r := range s {
		info := f.GetGlyph(r).Info()
		if a := -int(info.YOffset); a > ascent {
			ascent = a
		}
		if d := int(info.YOffset) + int(info.Height) - 1; d > descent {
			descent = d
		}
	}
	return ascent, descent
}

// Render pre-renders a string with an arbitrary tinyfont font into an
// owned RGBA surface and wraps it as an Image item at (x, y). The surface
// carries per-pixel alpha and a transparent background, so uncovered cell
// pixels fall through to whatever is beneath; it lives only as long as the
// display list that references it.
//
// Text items with a fixed-cell Font skip all this and rasterize glyph rows
// directly; Render is the path for proportional or oversized fonts.
func Render(s string, f tinyfont.Fonter, fg scene.RGB, x, y int) (*scene.Image, error) {
	if f == nil || s == "" {
		return nil, errNoFont
	}

	ascent, descent := metrics(f, s)
	_, outbox := tinyfont.LineWidth(f, s)
	w := int(outbox)
	h := ascent + descent + 1
	if w <= 0 || h <= 0 {
		return nil, errNoFont
	}

	surf := NewSurface(w, h)
	tinyfont.WriteLine(surf, f, 0, int16(ascent), s, color.RGBA{R: fg.R(), G: fg.G(), B: fg.B(), A: 0xFF})
	return scene.NewImage(x, y, scene.Transparent, w, h, surf.Pix())
}

// Fixed converts a monospaced tinyfont font into a fixed-cell scene.Font
// covering the bytes [first, last]. Every glyph is rasterized once into
// its cell and thresholded on alpha; the result is self-contained and can
// outlive the source font.
//
// The cell width comes from the font's x-advance and must fit the 8-bit
// glyph rows of scene.Font.
func Fixed(f tinyfont.Fonter, first, last byte) (*scene.Font, error) {
	if f == nil || first > last {
		return nil, errNoFont
	}

	cellH := int(f.GetYAdvance())
	cellW := 0
	ascent := 0
	for b := first; ; b++ {
		info := f.GetGlyph(rune(b)).Info()
		if adv := int(info.XAdvance); adv > cellW {
			cellW = adv
		}
		if a := -int(info.YOffset); a > ascent {
			ascent = a
		}
		if b == last {
			break
		}
	}
	if cellW <= 0 || cellW > 8 || cellH <= 0 {
		return nil, errors.New("fonts: font does not fit a fixed 8-bit cell")
	}

	glyphs := make([]byte, (int(last-first)+1)*cellH)
	for b := first; ; b++ {
		surf := NewSurface(cellW, cellH)
		g := f.GetGlyph(rune(b))
		g.Draw(surf, 0, int16(ascent), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})

		base := int(b-first) * cellH
		for row := 0; row < cellH; row++ {
			var bits byte
			for col := 0; col < cellW; col++ {
				if surf.opaqueAt(col, row) {
					bits |= 1 << (7 - col)
				}
			}
			glyphs[base+row] = bits
		}
		if b == last {
			break
		}
	}

	return &scene.Font{Width: cellW, Height: cellH, First: first, Glyphs: glyphs}, nil
}
