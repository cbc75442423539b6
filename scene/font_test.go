package scene

import "testing"

// A two-glyph 4x3 font: '0' is a solid block, '1' is empty.
func testFont() *Font {
	return &Font{
		Width:  4,
		Height: 3,
		First:  '0',
		Glyphs: []byte{
			0xF0, 0xF0, 0xF0,
			0x00, 0x00, 0x00,
		},
	}
}

func TestFontCovers(t *testing.T) {
	f := testFont()
	tests := []struct {
		b    byte
		want bool
	}{
		{'0', true},
		{'1', true},
		{'2', false},
		{'/', false},
	}
	for _, tt := range tests {
		if got := f.Covers(tt.b); got != tt.want {
			t.Errorf("Covers(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestFontOpaque(t *testing.T) {
	f := testFont()

	if !f.Opaque('0', 0, 0) || !f.Opaque('0', 3, 2) {
		t.Error("solid glyph reads transparent inside the cell")
	}
	if f.Opaque('1', 0, 0) {
		t.Error("empty glyph reads opaque")
	}

	// Out of coverage or out of cell is transparent, never a panic.
	if f.Opaque('2', 0, 0) || f.Opaque('0', 4, 0) || f.Opaque('0', 0, 3) || f.Opaque('0', -1, 0) {
		t.Error("out-of-range lookup reads opaque")
	}

	var nilFont *Font
	if nilFont.Opaque('0', 0, 0) {
		t.Error("nil font reads opaque")
	}
}
