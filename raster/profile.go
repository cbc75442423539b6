package raster

import (
	"errors"

	"lumen/pix"
)

// Framer adds literal per-scanline bytes some panel protocols require
// around the pixel payload (a mode/polarity byte, a line index, trailer
// padding). The bytes live inside the same transmitted buffer; framing is
// packing, not a pipeline stage.
type Framer interface {
	// Overhead returns the header and trailer byte counts per line.
	Overhead() (header, trailer int)
	// EncodeLine fills the header and trailer of a fully framed line.
	EncodeLine(line []byte, y int)
	// EndFrame marks one completed full-frame refresh. Panels with a
	// polarity bit alternate it here, once per refresh.
	EndFrame()
}

// Profile is the static description of one panel: geometry, the pixel
// format resolved once at construction, and optional line framing.
type Profile struct {
	Width  int
	Height int
	Format pix.Format

	// Clear fills the payload before compositing. Pixels no primitive
	// covers keep it: 0x00 on LCDs, 0xFF on memory panels that idle white.
	Clear byte

	Framer Framer
}

func (p Profile) validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return errors.New("raster: profile has no geometry")
	case p.Format == nil:
		return errors.New("raster: profile has no pixel format")
	}
	return nil
}

// lineBytes is the full transmitted size of one scanline, framing included.
func (p Profile) lineBytes() int {
	n := p.Format.LineBytes(p.Width)
	if p.Framer != nil {
		h, t := p.Framer.Overhead()
		n += h + t
	}
	return n
}
