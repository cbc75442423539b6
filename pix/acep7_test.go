package pix

import (
	"testing"

	"lumen/scene"
)

func TestACeP7LineBytes(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{1, 1}, {2, 1}, {3, 2}, {600, 300},
	}
	for _, tt := range tests {
		if got := ACeP7.LineBytes(tt.width); got != tt.want {
			t.Errorf("LineBytes(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

// Exact palette colors must map to their own index when the dither offset
// is zero (Bayer cell value 8).
func TestNearest7PaletteIdentity(t *testing.T) {
	pal := Palette7()
	for i, c := range pal {
		got := nearest7(int(c.R()), int(c.G()), int(c.B()))
		if int(got) != i {
			t.Errorf("palette %d (%06X): nearest7() = %d", i, uint32(c), got)
		}
	}
}

func TestACeP7Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if a, b := acepIndex(5, 9, 0x77, 0x33, 0xCC), acepIndex(5, 9, 0x77, 0x33, 0xCC); a != b {
			t.Fatalf("acepIndex not deterministic: %d vs %d", a, b)
		}
	}
}

func TestACeP7NibblePacking(t *testing.T) {
	line := make([]byte, 2)

	// White is palette index 1; even x lands in the high nibble.
	ACeP7.SetRGB(line, 0, 0, 0xFFFFFF)
	if line[0]>>4 != 1 {
		t.Fatalf("pixel 0: high nibble = %d, want 1", line[0]>>4)
	}
	ACeP7.SetRGB(line, 1, 0, 0xFFFFFF)
	if line[0] != 0x11 {
		t.Fatalf("pixels 0,1: line[0] = %#02x, want 0x11", line[0])
	}
	ACeP7.SetRGB(line, 2, 0, 0x000000)
	if line[1]>>4 != 0 {
		t.Fatalf("pixel 2: high nibble = %d, want 0", line[1]>>4)
	}

	// Overwriting one pixel leaves its neighbor alone.
	ACeP7.SetRGB(line, 0, 0, 0x000000)
	if line[0] != 0x01 {
		t.Fatalf("after overwrite: line[0] = %#02x, want 0x01", line[0])
	}
}

func TestACeP7AlphaPolicy(t *testing.T) {
	line := make([]byte, 1)

	if !ACeP7.SetSample(line, 0, 0, 0xFF, 0xFF, 0xFF, 0x01, scene.Transparent) {
		t.Fatal("nonzero alpha not stored")
	}
	if ACeP7.SetSample(line, 0, 0, 0xFF, 0xFF, 0xFF, 0x00, scene.Transparent) {
		t.Fatal("zero alpha over transparent background was stored")
	}
	if !ACeP7.SetSample(line, 0, 0, 0xFF, 0xFF, 0xFF, 0x00, scene.Bg(0xFFFFFF)) {
		t.Fatal("zero alpha over declared background not stored")
	}
}
