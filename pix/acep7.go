package pix

import (
	"math"

	"lumen/scene"
)

// bayer4 is the classic 4x4 Bayer matrix, indexed [x%4][y%4].
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Per-channel dither magnitudes. Found by looking at the standard deviation
// of each channel across the palette; they track how much dynamic range a
// channel actually has on the panel (R ±92, G ±85, B ±65).
var acepOffsetR, acepOffsetG, acepOffsetB [16]int

func init() {
	for i := 0; i < 16; i++ {
		f := float64(i)*0.0625 - 0.5
		acepOffsetR[i] = int(math.Round(92.0 * f))
		acepOffsetG[i] = int(math.Round(85.0 * f))
		acepOffsetB[i] = int(math.Round(65.0 * f))
	}
}

// acepPalette holds the seven panel colors: black, white, green, blue, red,
// yellow, orange. The green and orange entries are tuned toward what the
// panel really shows rather than saturated RGB.
var acepPalette = [7][3]int{
	{0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF},
	{0x00, 0x80, 0x00},
	{0x00, 0x00, 0xFF},
	{0xFF, 0x00, 0x00},
	{0xFF, 0xFF, 0x00},
	{0xFF, 0xAA, 0x00},
}

// Palette7 returns the canonical palette colors by index.
func Palette7() [7]scene.RGB {
	var p [7]scene.RGB
	for i, c := range acepPalette {
		p[i] = scene.RGB(uint32(c[0])<<16 | uint32(c[1])<<8 | uint32(c[2]))
	}
	return p
}

// nearest7 returns the palette index closest to the (possibly out-of-range)
// dithered channels, using luma-weighted squared distance.
func nearest7(r, g, b int) uint8 {
	min := math.MaxFloat64
	idx := 0
	for i, c := range acepPalette {
		dr := float64(c[0]-r) * 0.30
		dg := float64(c[1]-g) * 0.59
		db := float64(c[2]-b) * 0.11
		d := dr*dr + dg*dg + db*db
		if d < min {
			min = d
			idx = i
		}
	}
	return uint8(idx)
}

func acepIndex(x, y int, r, g, b uint8) uint8 {
	m := bayer4[x%4][y%4]
	return nearest7(int(r)+acepOffsetR[m], int(g)+acepOffsetG[m], int(b)+acepOffsetB[m])
}

type acep7Format struct{}

func (acep7Format) LineBytes(width int) int { return (width + 1) / 2 }

func setNibble(line []byte, x int, c uint8) {
	if x&1 == 0 {
		line[x/2] = line[x/2]&0x0F | c<<4
	} else {
		line[x/2] = line[x/2]&0xF0 | c
	}
}

func (acep7Format) SetRGB(line []byte, x, y int, c scene.RGB) {
	setNibble(line, x, acepIndex(x, y, c.R(), c.G(), c.B()))
}

// SetSample treats any nonzero alpha as opaque, like the mono format.
func (acep7Format) SetSample(line []byte, x, y int, r, g, b, a uint8, bg scene.Background) bool {
	if a != 0 {
		setNibble(line, x, acepIndex(x, y, r, g, b))
		return true
	}
	bgc, visible := bg.Color()
	if !visible {
		return false
	}
	setNibble(line, x, acepIndex(x, y, bgc.R(), bgc.G(), bgc.B()))
	return true
}
