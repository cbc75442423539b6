package scene

import "errors"

// ErrBufferSize is returned when an image's declared geometry disagrees with
// the length of its pixel payload. Validation happens once, at construction;
// the rasterizer trusts items it is handed.
var ErrBufferSize = errors.New("scene: pixel buffer does not match declared size")

// Item is one drawing primitive. The set of implementations is closed:
// Rect, Text, Image and ScaledImage.
//
// An item whose width or height is not positive is inert: it is never
// hit-tested and never draws.
type Item interface {
	// Bounds returns the hit-test box (x, y, width, height).
	Bounds() (int, int, int, int)

	sealed()
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y  int
	W, H  int
	Color RGB
}

func (r *Rect) Bounds() (int, int, int, int) { return r.X, r.Y, r.W, r.H }
func (r *Rect) sealed()                      {}

// Text is a run of fixed-width glyphs. Width and height derive from the
// font: len(Text) * Font.Width by Font.Height.
type Text struct {
	X, Y       int
	Color      RGB
	Background Background
	Font       *Font
	Text       string
}

func (t *Text) Bounds() (int, int, int, int) {
	if t.Font == nil {
		return t.X, t.Y, 0, 0
	}
	return t.X, t.Y, len(t.Text) * t.Font.Width, t.Font.Height
}

func (t *Text) sealed() {}

// Image is an RGBA8888 pixel rectangle. Pixel bytes are R, G, B, A per
// pixel, rows top to bottom with no padding. Alpha 0xFF is opaque, 0x00
// fully transparent, anything between blends with the declared background
// on formats that blend.
type Image struct {
	X, Y       int
	Background Background

	w, h int
	pix  []byte
}

// NewImage validates that pix holds exactly w*h RGBA pixels.
func NewImage(x, y int, bg Background, w, h int, pix []byte) (*Image, error) {
	if w > 0 && h > 0 && len(pix) != w*h*4 {
		return nil, ErrBufferSize
	}
	return &Image{X: x, Y: y, Background: bg, w: w, h: h, pix: pix}, nil
}

func (im *Image) Bounds() (int, int, int, int) { return im.X, im.Y, im.w, im.h }
func (im *Image) sealed()                      {}

// Pix returns the backing RGBA bytes. Callers must not modify them during a
// render pass.
func (im *Image) Pix() []byte { return im.pix }

// ScaledImage draws a cropped region of a source RGBA8888 buffer magnified
// by integer factors. Sampling is nearest neighbor: destination offset d
// reads source index origin + d/scale.
type ScaledImage struct {
	X, Y       int
	W, H       int
	Background Background
	SourceX    int
	SourceY    int
	XScale     int // >= 1
	YScale     int // >= 1

	srcW, srcH int
	pix        []byte
}

// NewScaledImage validates that pix holds exactly srcW*srcH RGBA pixels.
// Scale factors below 1 are clamped to 1.
func NewScaledImage(x, y, w, h int, bg Background, srcX, srcY, xScale, yScale, srcW, srcH int, pix []byte) (*ScaledImage, error) {
	if srcW > 0 && srcH > 0 && len(pix) != srcW*srcH*4 {
		return nil, ErrBufferSize
	}
	if xScale < 1 {
		xScale = 1
	}
	if yScale < 1 {
		yScale = 1
	}
	return &ScaledImage{
		X: x, Y: y, W: w, H: h,
		Background: bg,
		SourceX:    srcX, SourceY: srcY,
		XScale: xScale, YScale: yScale,
		srcW: srcW, srcH: srcH,
		pix: pix,
	}, nil
}

func (s *ScaledImage) Bounds() (int, int, int, int) { return s.X, s.Y, s.W, s.H }
func (s *ScaledImage) sealed()                      {}

// SourceWidth returns the source buffer width in pixels.
func (s *ScaledImage) SourceWidth() int { return s.srcW }

// SourceHeight returns the source buffer height in pixels.
func (s *ScaledImage) SourceHeight() int { return s.srcH }

// Pix returns the backing RGBA bytes. Callers must not modify them during a
// render pass.
func (s *ScaledImage) Pix() []byte { return s.pix }

type inert struct{}

// Inert returns an item that never matches any pixel. Decoders substitute
// it for primitives they cannot represent so one bad item degrades instead
// of failing the whole frame.
func Inert() Item { return inert{} }

func (inert) Bounds() (int, int, int, int) { return -1, -1, 1, 1 }
func (inert) sealed()                      {}
