//go:build tinygo

package hal

import (
	"machine"
	"time"

	"lumen/pix"
	"lumen/raster"
	"lumen/scene"
)

// ACeP7Config describes a 5.65" 7-color ACeP e-paper panel.
type ACeP7Config struct {
	Width  int // defaults to 600
	Height int // defaults to 448
	CS     machine.Pin
	DC     machine.Pin
	Reset  machine.Pin
	Busy   machine.Pin
}

// ACeP7 drives the 7-color electrophoretic panel. A refresh streams the
// whole dithered frame (two palette indexes per byte) and then lets the
// panel run its multi-second waveform; Render returns after the panel
// drops busy.
type ACeP7 struct {
	spiPanel
	busy machine.Pin
	cfg  ACeP7Config
	pl   *raster.Pipeline
}

func NewACeP7(bus machine.SPI, cfg ACeP7Config) *ACeP7 {
	if cfg.Width <= 0 {
		cfg.Width = 600
	}
	if cfg.Height <= 0 {
		cfg.Height = 448
	}
	return &ACeP7{
		spiPanel: spiPanel{bus: bus, cs: cfg.CS, dc: cfg.DC, rst: cfg.Reset},
		busy:     cfg.Busy,
		cfg:      cfg,
	}
}

func (d *ACeP7) Configure() error {
	d.configurePins()
	d.busy.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	d.reset(100*time.Millisecond, 100*time.Millisecond)
	d.waitBusy(true)

	d.cmd(0x00, 0xEF, 0x08)             // panel setting
	d.cmd(0x01, 0x37, 0x00, 0x23, 0x23) // power setting
	d.cmd(0x03, 0x00)                   // power off sequence
	d.cmd(0x06, 0xC7, 0xC7, 0x1D)       // booster soft start
	d.cmd(0x30, 0x3C)                   // PLL
	d.cmd(0x40, 0x00)                   // temperature sensor
	d.cmd(0x50, 0x3F)                   // VCOM and data interval
	d.cmd(0x60, 0x22)                   // TCON
	d.cmd(0x61, d.resolution()...)      // resolution
	d.cmd(0xE3, 0xAA)
	d.cmd(0x82, 0x80) // VCOM DC
	time.Sleep(100 * time.Millisecond)
	d.cmd(0x50, 0x37)

	pl, err := raster.NewPipeline(d.Profile(), NewAsync(func(p []byte) error {
		return d.bus.Tx(p, nil)
	}))
	if err != nil {
		return err
	}
	d.pl = pl
	return nil
}

func (d *ACeP7) resolution() []byte {
	return []byte{
		byte(d.cfg.Width >> 8), byte(d.cfg.Width),
		byte(d.cfg.Height >> 8), byte(d.cfg.Height),
	}
}

func (d *ACeP7) Profile() raster.Profile {
	return raster.Profile{
		Width:  d.cfg.Width,
		Height: d.cfg.Height,
		Format: pix.ACeP7,
		Clear:  0x11, // white nibbles
	}
}

func (d *ACeP7) waitBusy(high bool) {
	for d.busy.Get() != high {
		time.Sleep(10 * time.Millisecond)
	}
}

// Render streams one full frame and triggers the panel refresh waveform.
func (d *ACeP7) Render(list scene.List) error {
	d.cmd(0x61, d.resolution()...)
	d.cmd(0x10) // data start

	d.cs.Low()
	d.dc.High()
	err := d.pl.Render(list)
	d.cs.High()
	if err != nil {
		return err
	}

	d.cmd(0x04) // power on
	d.waitBusy(true)
	d.cmd(0x12) // display refresh
	d.waitBusy(true)
	d.cmd(0x02) // power off
	d.waitBusy(false)
	return nil
}
