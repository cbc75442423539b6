package raster

import (
	"lumen/pix"
	"lumen/scene"
)

// fillLine composites scanline y of the list into the payload buffer.
// Pixels are produced strictly left to right; drawRun reports how far each
// topmost-item search carried.
func fillLine(f pix.Format, width int, list scene.List, y int, line []byte) {
	for x := 0; x < width; {
		x += drawRun(f, width, list, x, y, line)
	}
}

// drawRun finds the topmost item covering (x, y), draws as many consecutive
// pixels of it as the run bound allows and reports how many pixels were
// produced. When no item covers the pixel, one pixel is skipped and keeps
// the buffer's cleared value.
func drawRun(f pix.Format, width int, list scene.List, x, y int, line []byte) int {
	below := false

	for i, it := range list {
		ix, iy, iw, ih := it.Bounds()
		if x < ix || x >= ix+iw || y < iy || y >= iy+ih {
			continue
		}

		run := 1
		if !below {
			run = maxRun(list[:i], width, x, y)
		}

		var drawn int
		switch v := it.(type) {
		case *scene.Rect:
			drawn = drawRect(f, line, x, y, run, v)
		case *scene.Text:
			drawn = drawText(f, line, x, y, run, v)
		case *scene.Image:
			drawn = drawImage(f, line, x, y, run, v)
		case *scene.ScaledImage:
			drawn = drawScaled(f, line, x, y, run, v)
		default:
			// Inert or unknown: draws nothing, behaves like a fully
			// transparent layer.
		}

		if drawn != 0 {
			return drawn
		}

		// The item on top drew nothing here. Its transparency can change
		// pixel to pixel, so no run computed above it is trustworthy for
		// anything beneath; deeper candidates advance one pixel at a time.
		below = true
	}

	return 1
}

// maxRun bounds how many pixels from x the caller may hand to one item:
// the distance to the nearest strictly-on-top item whose box starts later
// on this row, capped by the scanline horizon.
func maxRun(front scene.List, width, x, y int) int {
	run := width - x
	for _, it := range front {
		ix, iy, _, ih := it.Bounds()
		if x < ix && y >= iy && y < iy+ih {
			if d := ix - x; d < run {
				run = d
			}
		}
	}
	return run
}

func drawRect(f pix.Format, line []byte, x, y, run int, r *scene.Rect) int {
	w := r.W
	if w > x-r.X+run {
		w = x - r.X + run
	}

	drawn := 0
	for j := x - r.X; j < w; j++ {
		f.SetRGB(line, x+drawn, y, r.Color)
		drawn++
	}
	return drawn
}

func drawText(f pix.Format, line []byte, x, y, run int, t *scene.Text) int {
	font := t.Font
	bx, by, w, _ := t.Bounds()
	if w > x-bx+run {
		w = x - bx + run
	}
	bgc, bgVisible := t.Background.Color()

	drawn := 0
	for j := x - bx; j < w; j++ {
		ch := t.Text[j/font.Width]
		switch {
		case font.Opaque(ch, j%font.Width, y-by):
			f.SetRGB(line, x+drawn, y, t.Color)
		case bgVisible:
			f.SetRGB(line, x+drawn, y, bgc)
		default:
			return drawn
		}
		drawn++
	}
	return drawn
}

func drawImage(f pix.Format, line []byte, x, y, run int, im *scene.Image) int {
	ix, iy, w, _ := im.Bounds()
	pixels := im.Pix()
	off := ((y-iy)*w + (x - ix)) * 4

	if w > x-ix+run {
		w = x - ix + run
	}

	drawn := 0
	for j := x - ix; j < w; j++ {
		if !f.SetSample(line, x+drawn, y, pixels[off], pixels[off+1], pixels[off+2], pixels[off+3], im.Background) {
			return drawn
		}
		drawn++
		off += 4
	}
	return drawn
}

func drawScaled(f pix.Format, line []byte, x, y, run int, s *scene.ScaledImage) int {
	pixels := s.Pix()
	srcW := s.SourceWidth()
	row := (s.SourceY + (y-s.Y)/s.YScale) * srcW

	w := s.W
	if s.SourceX+w/s.XScale > srcW {
		w = (srcW - s.SourceX) * s.XScale
	}
	if w > x-s.X+run {
		w = x - s.X + run
	}

	drawn := 0
	for j := x - s.X; j < w; j++ {
		off := (row + s.SourceX + j/s.XScale) * 4
		if !f.SetSample(line, x+drawn, y, pixels[off], pixels[off+1], pixels[off+2], pixels[off+3], s.Background) {
			return drawn
		}
		drawn++
	}
	return drawn
}
