package scene

// RGB is a 24-bit color, 0xRRGGBB.
type RGB uint32

func (c RGB) R() uint8 { return uint8(c >> 16) }
func (c RGB) G() uint8 { return uint8(c >> 8) }
func (c RGB) B() uint8 { return uint8(c) }

// Background is the declared fill for the parts of a primitive that the
// primitive itself does not draw. The zero value is transparent: covered
// pixels fall through to items further back in the list.
//
// Transparency is a sentinel, not an alpha channel. Per-pixel alpha only
// exists in image payloads.
type Background struct {
	color  RGB
	opaque bool
}

// Transparent is the no-background sentinel.
var Transparent = Background{}

// Bg declares an opaque background color.
func Bg(c RGB) Background {
	return Background{color: c, opaque: true}
}

// Color reports the background color and whether it is visible at all.
func (b Background) Color() (RGB, bool) {
	return b.color, b.opaque
}
