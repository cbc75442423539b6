package pix

import "lumen/scene"

// Expand565 re-expands a 565 value to 8-bit channels by bit replication.
func Expand565(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// rgb888Format goes through the 565 quantization on purpose: panels driven
// in 18-bit mode must show the same colors as their 16-bit siblings.
type rgb888Format struct{}

func (rgb888Format) LineBytes(width int) int { return width * 3 }

func store888(line []byte, x int, p uint16) {
	r, g, b := Expand565(p)
	line[3*x] = r
	line[3*x+1] = g
	line[3*x+2] = b
}

func (rgb888Format) SetRGB(line []byte, x, y int, c scene.RGB) {
	store888(line, x, Pack565(c.R(), c.G(), c.B()))
}

func (rgb888Format) SetSample(line []byte, x, y int, r, g, b, a uint8, bg scene.Background) bool {
	if a == 0xFF {
		store888(line, x, Pack565(r, g, b))
		return true
	}
	bgc, visible := bg.Color()
	if !visible {
		return false
	}
	fg := Pack565(r, g, b)
	back := Pack565(bgc.R(), bgc.G(), bgc.B())
	store888(line, x, Blend565(fg, back, a))
	return true
}
