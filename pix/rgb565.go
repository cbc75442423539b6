package pix

import "lumen/scene"

// Pack565 packs 8-bit channels into R5G6B5.
func Pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Blend565 blends fg over bg with 5-bit granularity. R and B are packed
// into one 32-bit word and blended together, G rides along in the same
// arithmetic. This is a fixed-point approximation, kept bit-for-bit
// compatible with existing panel output; do not replace it with a
// gamma-correct blend.
func Blend565(fg, bg uint16, alpha uint8) uint16 {
	a := (uint32(alpha) + 4) >> 3
	b := (uint32(bg) | uint32(bg)<<16) & 0x07E0F81F
	f := (uint32(fg) | uint32(fg)<<16) & 0x07E0F81F
	result := ((((f - b) * a) >> 5) + b) & 0x07E0F81F
	return uint16(result>>16 | result)
}

// store565 writes the wire (big-endian) byte order. This is the single
// point where the in-memory 16-bit value meets the bus byte order.
func store565(line []byte, x int, p uint16) {
	line[2*x] = byte(p >> 8)
	line[2*x+1] = byte(p)
}

type rgb565Format struct{}

func (rgb565Format) LineBytes(width int) int { return width * 2 }

func (rgb565Format) SetRGB(line []byte, x, y int, c scene.RGB) {
	store565(line, x, Pack565(c.R(), c.G(), c.B()))
}

func (rgb565Format) SetSample(line []byte, x, y int, r, g, b, a uint8, bg scene.Background) bool {
	if a == 0xFF {
		store565(line, x, Pack565(r, g, b))
		return true
	}
	bgc, visible := bg.Color()
	if !visible {
		return false
	}
	fg := Pack565(r, g, b)
	back := Pack565(bgc.R(), bgc.G(), bgc.B())
	store565(line, x, Blend565(fg, back, a))
	return true
}
