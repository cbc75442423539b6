package pix

import "lumen/scene"

// bayerOffset is a 4x4 Bayer matrix rescaled to a signed luma offset,
// roughly [-32, +28]. Derived from the classic matrix
//
//	{ 0, 8, 2, 10 }
//	{ 12, 4, 14, 6 }
//	{ 3, 11, 1, 9 }
//	{ 15, 7, 13, 5 }
//
// via round(63.75 * (m/16 - 0.5)).
var bayerOffset = [4][4]int{
	{-32, 0, -24, 8},
	{16, -16, 24, -8},
	{-20, 12, -28, 4},
	{28, -4, 20, -12},
}

// monoPixel dithers an RGB sample down to one bit. The offset is added to
// every channel before the fast integer luma (3R + 4G + B) >> 3; the bit is
// the 128 threshold.
func monoPixel(x, y int, r, g, b uint8) bool {
	v := bayerOffset[x%4][y%4]
	rr := int(r) + v
	gg := int(g) + v
	bb := int(b) + v
	luma := (3*rr + 4*gg + bb) >> 3
	return luma >= 128
}

type monoFormat struct{}

func (monoFormat) LineBytes(width int) int { return (width + 7) / 8 }

func setMonoBit(line []byte, x int, on bool) {
	bit := byte(0)
	if on {
		bit = 1
	}
	pos := uint(x % 8)
	line[x/8] = line[x/8]&^(1<<pos) | bit<<pos
}

func (monoFormat) SetRGB(line []byte, x, y int, c scene.RGB) {
	setMonoBit(line, x, monoPixel(x, y, c.R(), c.G(), c.B()))
}

// SetSample treats any nonzero alpha as opaque: there is nothing sensible
// to blend toward on a 1-bit panel.
func (monoFormat) SetSample(line []byte, x, y int, r, g, b, a uint8, bg scene.Background) bool {
	if a != 0 {
		setMonoBit(line, x, monoPixel(x, y, r, g, b))
		return true
	}
	bgc, visible := bg.Color()
	if !visible {
		return false
	}
	setMonoBit(line, x, monoPixel(x, y, bgc.R(), bgc.G(), bgc.B()))
	return true
}
