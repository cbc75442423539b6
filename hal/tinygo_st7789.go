//go:build tinygo

package hal

import (
	"machine"
	"time"

	"lumen/pix"
	"lumen/raster"
	"lumen/scene"
)

// ST7789Config describes the wiring and geometry of an ST7789 panel.
type ST7789Config struct {
	Width   int // defaults to 240
	Height  int // defaults to 320
	XOffset int
	YOffset int
	CS      machine.Pin
	DC      machine.Pin
	Reset   machine.Pin // machine.NoPin falls back to a software reset

	// Invert enables display inversion; many ST7789 modules need it.
	Invert bool
}

// ST7789 drives a 16-bit truecolor ST7789 panel over SPI.
type ST7789 struct {
	spiPanel
	cfg ST7789Config
	pl  *raster.Pipeline
}

func NewST7789(bus machine.SPI, cfg ST7789Config) *ST7789 {
	if cfg.Width <= 0 {
		cfg.Width = 240
	}
	if cfg.Height <= 0 {
		cfg.Height = 320
	}
	return &ST7789{
		spiPanel: spiPanel{bus: bus, cs: cfg.CS, dc: cfg.DC, rst: cfg.Reset},
		cfg:      cfg,
	}
}

// Configure resets the panel, runs the power-on register sequence and
// builds the scanline pipeline.
func (d *ST7789) Configure() error {
	d.configurePins()
	if d.rst != machine.NoPin {
		d.reset(50*time.Millisecond, 50*time.Millisecond)
	} else {
		d.cmd(0x01) // SWRESET
		time.Sleep(100 * time.Millisecond)
	}

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x13)       // NORON
	d.cmd(0x36, 0x00) // MADCTL, RGB order
	d.cmd(0xB6, 0x0A, 0x82)
	d.cmd(0xB0, 0x00, 0xE0) // RAMCTRL
	d.cmd(0x3A, 0x55)       // COLMOD: 16bpp
	time.Sleep(10 * time.Millisecond)

	// Frame rate and power.
	d.cmd(0xB2, 0x0C, 0x0C, 0x00, 0x33, 0x33) // PORCTRL
	d.cmd(0xB7, 0x35)                         // GCTRL
	d.cmd(0xBB, 0x28)                         // VCOMS
	d.cmd(0xC0, 0x0C)                         // LCMCTRL
	d.cmd(0xC2, 0x01, 0xFF)                   // VDVVRHEN
	d.cmd(0xC3, 0x10)                         // VRHS
	d.cmd(0xC4, 0x20)                         // VDVSET
	d.cmd(0xC6, 0x0F)                         // FRCTR2
	d.cmd(0xD0, 0xA4, 0xA1)                   // PWCTRL1

	// Gamma.
	d.cmd(0xE0, 0xD0, 0x00, 0x02, 0x07, 0x0A, 0x28, 0x32, 0x44,
		0x42, 0x06, 0x0E, 0x12, 0x14, 0x17)
	d.cmd(0xE1, 0xD0, 0x00, 0x02, 0x07, 0x0A, 0x28, 0x31, 0x54,
		0x47, 0x0E, 0x1C, 0x17, 0x1B, 0x1E)

	if d.cfg.Invert {
		d.cmd(0x21) // INVON
	}
	d.cmd(0x29) // DISPON
	time.Sleep(120 * time.Millisecond)

	pl, err := raster.NewPipeline(d.Profile(), NewAsync(func(p []byte) error {
		return d.bus.Tx(p, nil)
	}))
	if err != nil {
		return err
	}
	d.pl = pl
	return nil
}

func (d *ST7789) Profile() raster.Profile {
	return raster.Profile{Width: d.cfg.Width, Height: d.cfg.Height, Format: pix.RGB565}
}

func (d *ST7789) setWindow(x, y, w, h int) {
	x += d.cfg.XOffset
	y += d.cfg.YOffset
	x1 := x + w - 1
	y1 := y + h - 1
	d.cmd(0x2A, byte(x>>8), byte(x), byte(x1>>8), byte(x1)) // CASET
	d.cmd(0x2B, byte(y>>8), byte(y), byte(y1>>8), byte(y1)) // RASET
}

// Render scans the display list out to the panel, one full frame.
func (d *ST7789) Render(list scene.List) error {
	d.setWindow(0, 0, d.cfg.Width, d.cfg.Height)
	d.cmd(0x2C) // RAMWR

	d.cs.Low()
	d.dc.High()
	err := d.pl.Render(list)
	d.cs.High()
	return err
}
