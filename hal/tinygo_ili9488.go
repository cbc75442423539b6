//go:build tinygo

package hal

import (
	"machine"
	"time"

	"lumen/pix"
	"lumen/raster"
	"lumen/scene"
)

// ILI9488Config describes the wiring and geometry of an ILI9488 panel.
// The controller only accepts 18-bit pixels over SPI, so the pipeline runs
// the 888 format: 565 quantization re-expanded to three wire bytes.
type ILI9488Config struct {
	Width  int // defaults to 320
	Height int // defaults to 480
	CS     machine.Pin
	DC     machine.Pin
	Reset  machine.Pin
}

// ILI9488 drives an ILI9486/9488 panel over SPI, 3 bytes per pixel.
type ILI9488 struct {
	spiPanel
	cfg ILI9488Config
	pl  *raster.Pipeline
}

func NewILI9488(bus machine.SPI, cfg ILI9488Config) *ILI9488 {
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	return &ILI9488{
		spiPanel: spiPanel{bus: bus, cs: cfg.CS, dc: cfg.DC, rst: cfg.Reset},
		cfg:      cfg,
	}
}

func (d *ILI9488) Configure() error {
	d.configurePins()
	d.reset(64*time.Millisecond, 140*time.Millisecond)

	d.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	d.cmd(0xC1, 0x41)                   // PWCTRL2
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL
	d.cmd(0x3A, 0x66)                   // COLMOD: 18bpp, 3 bytes on the wire
	d.cmd(0xB1, 0xA0, 0x11)             // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27)       // DISCTRL
	d.cmd(0x36, 0x48)                   // MADCTL: MX|BGR
	d.cmd(0x21)                         // INVON

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON

	pl, err := raster.NewPipeline(d.Profile(), NewAsync(func(p []byte) error {
		return d.bus.Tx(p, nil)
	}))
	if err != nil {
		return err
	}
	d.pl = pl
	return nil
}

func (d *ILI9488) Profile() raster.Profile {
	return raster.Profile{Width: d.cfg.Width, Height: d.cfg.Height, Format: pix.RGB888}
}

func (d *ILI9488) setWindow(x, y, w, h int) {
	x1 := x + w - 1
	y1 := y + h - 1
	d.cmd(0x2A, byte(x>>8), byte(x), byte(x1>>8), byte(x1))
	d.cmd(0x2B, byte(y>>8), byte(y), byte(y1>>8), byte(y1))
}

// Render scans the display list out to the panel, one full frame.
func (d *ILI9488) Render(list scene.List) error {
	d.setWindow(0, 0, d.cfg.Width, d.cfg.Height)
	d.cmd(0x2C)

	d.cs.Low()
	d.dc.High()
	err := d.pl.Render(list)
	d.cs.High()
	return err
}
