package proto

import (
	"encoding/binary"
	"errors"
	"testing"

	"lumen/scene"
)

var testFont = &scene.Font{Width: 4, Height: 2, First: 'A', Glyphs: []byte{0xF0, 0xF0}}

func resolveTestFont(id uint8) *scene.Font {
	if id == 1 {
		return testFont
	}
	return nil
}

func idTestFont(f *scene.Font) (uint8, bool) {
	if f == testFont {
		return 1, true
	}
	return 0, false
}

func sampleList(t *testing.T) scene.List {
	t.Helper()

	imgPix := make([]byte, 2*2*4)
	for i := range imgPix {
		imgPix[i] = byte(i)
	}
	img, err := scene.NewImage(-3, 7, scene.Bg(0x102030), 2, 2, imgPix)
	if err != nil {
		t.Fatal(err)
	}

	srcPix := make([]byte, 3*2*4)
	scaled, err := scene.NewScaledImage(5, 6, 6, 4, scene.Transparent, 1, 0, 2, 2, 3, 2, srcPix)
	if err != nil {
		t.Fatal(err)
	}

	return scene.List{
		&scene.Text{X: 0, Y: 1, Color: 0xFFFFFF, Background: scene.Bg(0x000040), Font: testFont, Text: "AA"},
		img,
		scaled,
		&scene.Rect{X: -1, Y: 2, W: 10, H: 20, Color: 0xA0B0C0},
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	list := sampleList(t)
	msg := EncodeUpdate(list, idTestFont)

	got, degraded, err := DecodeUpdate(msg, resolveTestFont)
	if err != nil {
		t.Fatalf("DecodeUpdate: %v", err)
	}
	if degraded != 0 {
		t.Fatalf("degraded = %d, want 0", degraded)
	}
	if len(got) != len(list) {
		t.Fatalf("decoded %d items, want %d", len(got), len(list))
	}

	for i := range list {
		wx, wy, ww, wh := list[i].Bounds()
		gx, gy, gw, gh := got[i].Bounds()
		if wx != gx || wy != gy || ww != gw || wh != gh {
			t.Errorf("item %d bounds = %d,%d %dx%d, want %d,%d %dx%d", i, gx, gy, gw, gh, wx, wy, ww, wh)
		}
	}

	txt, ok := got[0].(*scene.Text)
	if !ok || txt.Text != "AA" || txt.Font != testFont {
		t.Fatalf("item 0 = %#v, want text AA with resolved font", got[0])
	}
	if c, visible := txt.Background.Color(); !visible || c != 0x000040 {
		t.Fatalf("text background = %06X,%v", uint32(c), visible)
	}

	img, ok := got[1].(*scene.Image)
	if !ok {
		t.Fatalf("item 1 is %T, want *scene.Image", got[1])
	}
	for i, b := range img.Pix() {
		if b != byte(i) {
			t.Fatalf("image byte %d = %#02x, want %#02x", i, b, byte(i))
		}
	}

	sc, ok := got[2].(*scene.ScaledImage)
	if !ok {
		t.Fatalf("item 2 is %T, want *scene.ScaledImage", got[2])
	}
	if sc.SourceX != 1 || sc.XScale != 2 || sc.YScale != 2 || sc.SourceWidth() != 3 {
		t.Fatalf("scaled crop = srcX %d scale %d,%d srcW %d", sc.SourceX, sc.XScale, sc.YScale, sc.SourceWidth())
	}

	r, ok := got[3].(*scene.Rect)
	if !ok || r.Color != 0xA0B0C0 {
		t.Fatalf("item 3 = %#v, want rect A0B0C0", got[3])
	}
}

func TestDecodeDegradesUnknownKind(t *testing.T) {
	msg := EncodeUpdate(scene.List{
		&scene.Rect{W: 1, H: 1},
		&scene.Rect{W: 2, H: 2, Color: 0x00FF00},
	}, nil)

	// Corrupt the first record's kind byte; its length framing still holds.
	msg[3] = 0x7F

	list, degraded, err := DecodeUpdate(msg, nil)
	if err != nil {
		t.Fatalf("DecodeUpdate: %v", err)
	}
	if degraded != 1 {
		t.Fatalf("degraded = %d, want 1", degraded)
	}
	if len(list) != 2 {
		t.Fatalf("decoded %d items, want 2", len(list))
	}
	if _, ok := list[1].(*scene.Rect); !ok {
		t.Fatalf("item after degraded record is %T, want *scene.Rect", list[1])
	}
	// The degraded record decodes to the off-screen unit box.
	if x, y, w, h := list[0].Bounds(); x != -1 || y != -1 || w != 1 || h != 1 {
		t.Fatalf("degraded bounds = %d,%d %dx%d, want -1,-1 1x1", x, y, w, h)
	}
}

func TestDecodeDegradesUnresolvedFont(t *testing.T) {
	msg := EncodeUpdate(scene.List{
		&scene.Text{X: 1, Y: 1, Font: testFont, Text: "A"},
	}, idTestFont)

	list, degraded, err := DecodeUpdate(msg, func(uint8) *scene.Font { return nil })
	if err != nil {
		t.Fatalf("DecodeUpdate: %v", err)
	}
	if degraded != 1 || len(list) != 1 {
		t.Fatalf("degraded = %d, items = %d, want 1 and 1", degraded, len(list))
	}
}

func TestDecodeDegradesBadPixelPayload(t *testing.T) {
	img, err := scene.NewImage(0, 0, scene.Transparent, 2, 2, make([]byte, 2*2*4))
	if err != nil {
		t.Fatal(err)
	}
	msg := EncodeUpdate(scene.List{img}, nil)

	// Claim a larger geometry than the payload carries.
	binary.LittleEndian.PutUint32(msg[3+5+13:], 3)

	list, degraded, err := DecodeUpdate(msg, nil)
	if err != nil {
		t.Fatalf("DecodeUpdate: %v", err)
	}
	if degraded != 1 || len(list) != 1 {
		t.Fatalf("degraded = %d, items = %d, want 1 and 1", degraded, len(list))
	}
}

func TestDecodeTruncated(t *testing.T) {
	msg := EncodeUpdate(scene.List{&scene.Rect{W: 4, H: 4}}, nil)

	for _, n := range []int{0, 2, 4, len(msg) - 1} {
		if _, _, err := DecodeUpdate(msg[:n], nil); !errors.Is(err, ErrTruncated) {
			t.Fatalf("DecodeUpdate(%d bytes) err = %v, want ErrTruncated", n, err)
		}
	}
}

func TestEncodeSkipsInertItems(t *testing.T) {
	msg := EncodeUpdate(scene.List{scene.Inert(), &scene.Rect{W: 1, H: 1}}, nil)

	list, degraded, err := DecodeUpdate(msg, nil)
	if err != nil {
		t.Fatalf("DecodeUpdate: %v", err)
	}
	if degraded != 0 || len(list) != 1 {
		t.Fatalf("degraded = %d, items = %d, want 0 and 1", degraded, len(list))
	}
}
