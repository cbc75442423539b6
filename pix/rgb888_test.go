package pix

import (
	"testing"

	"lumen/scene"
)

func TestExpand565(t *testing.T) {
	tests := []struct {
		name    string
		p       uint16
		r, g, b uint8
	}{
		{"black", 0x0000, 0x00, 0x00, 0x00},
		{"white", 0xFFFF, 0xFF, 0xFF, 0xFF},
		{"red", 0xF800, 0xFF, 0x00, 0x00},
		{"green", 0x07E0, 0x00, 0xFF, 0x00},
		{"blue", 0x001F, 0x00, 0x00, 0xFF},
	}
	for _, tt := range tests {
		r, g, b := Expand565(tt.p)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%s: Expand565(%#04x) = %02x %02x %02x, want %02x %02x %02x",
				tt.name, tt.p, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

// An 18-bit panel must show the same color as a 16-bit one, so the 888
// format carries the 565 quantization error with it.
func TestRGB888MatchesQuantized565(t *testing.T) {
	line565 := make([]byte, 2)
	line888 := make([]byte, 3)

	c := scene.RGB(0x123456)
	RGB565.SetRGB(line565, 0, 0, c)
	RGB888.SetRGB(line888, 0, 0, c)

	v := uint16(line565[0])<<8 | uint16(line565[1])
	r, g, b := Expand565(v)
	if line888[0] != r || line888[1] != g || line888[2] != b {
		t.Fatalf("888 bytes = %02x %02x %02x, want expanded 565 %02x %02x %02x",
			line888[0], line888[1], line888[2], r, g, b)
	}
}
