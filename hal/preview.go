//go:build !tinygo

package hal

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"lumen/internal/buildinfo"
	"lumen/pix"
	"lumen/raster"
)

// Preview is a desktop stand-in for a panel. It exposes a 565 profile and
// acts as the transport: scanline writes land in an RGBA frame that an
// ebiten window shows. Frames are always re-rendered whole, like the real
// panels; there is no dirty-rectangle tracking here.
type Preview struct {
	width  int
	height int

	mu    sync.Mutex
	frame []byte // RGBA, width*height*4
	row   int
	seq   raster.Handle
}

func NewPreview(width, height int) *Preview {
	return &Preview{
		width:  width,
		height: height,
		frame:  make([]byte, width*height*4),
	}
}

func (p *Preview) Profile() raster.Profile {
	return raster.Profile{Width: p.width, Height: p.height, Format: pix.RGB565}
}

// WriteAsync implements raster.Transport. Lines arrive in increasing y
// order; the row counter wraps per frame.
func (p *Preview) WriteAsync(line []byte) (raster.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	row := p.row * p.width * 4
	for x := 0; x < p.width && 2*x+1 < len(line); x++ {
		v := uint16(line[2*x])<<8 | uint16(line[2*x+1])
		r, g, b := pix.Expand565(v)
		off := row + x*4
		p.frame[off] = r
		p.frame[off+1] = g
		p.frame[off+2] = b
		p.frame[off+3] = 0xFF
	}
	p.row++
	if p.row >= p.height {
		p.row = 0
	}
	p.seq++
	return p.seq, nil
}

func (p *Preview) Wait(h raster.Handle) error { return nil }

func (p *Preview) snapshot(dst []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(dst, p.frame)
}

// Run opens the preview window and calls step once per tick until it
// returns an error or the window closes. Render passes typically happen
// inside step.
func (p *Preview) Run(step func() error) error {
	g := &previewGame{p: p}
	g.step = step
	ebiten.SetWindowTitle("lumen preview (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(p.width*2, p.height*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type previewGame struct {
	p       *Preview
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *previewGame) Update() error {
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	p := g.p
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
		g.scratch = make([]byte, len(p.frame))
		g.fbImg = ebiten.NewImage(p.width, p.height)
	}

	p.snapshot(g.scratch)
	copy(g.img.Pix, g.scratch)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.p.width, g.p.height
}
