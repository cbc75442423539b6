//go:build tinygo

package hal

import (
	"machine"

	"lumen/pix"
	"lumen/raster"
	"lumen/scene"
)

// SharpMemConfig describes a Sharp memory-in-pixel LCD (LS027B7DH01 and
// friends). CS is active high on these panels, and bytes go out LSB first;
// configure the SPI bus accordingly.
type SharpMemConfig struct {
	Width  int // defaults to 400
	Height int // defaults to 240
	CS     machine.Pin
}

// SharpMem drives a monochrome Sharp memory LCD. Each scanline goes out as
// its own transaction: mode/VCOM byte, line address, dithered 1-bit
// payload, two trailer bytes.
type SharpMem struct {
	bus machine.SPI
	cs  machine.Pin
	cfg SharpMemConfig
	pl  *raster.Pipeline
}

func NewSharpMem(bus machine.SPI, cfg SharpMemConfig) *SharpMem {
	if cfg.Width <= 0 {
		cfg.Width = 400
	}
	if cfg.Height <= 0 {
		cfg.Height = 240
	}
	return &SharpMem{bus: bus, cs: cfg.CS, cfg: cfg}
}

func (d *SharpMem) Configure() error {
	d.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.cs.Low()

	pl, err := raster.NewPipeline(d.Profile(), NewAsync(d.writeLine))
	if err != nil {
		return err
	}
	d.pl = pl
	return nil
}

func (d *SharpMem) Profile() raster.Profile {
	return raster.Profile{
		Width:  d.cfg.Width,
		Height: d.cfg.Height,
		Format: pix.Mono1,
		Clear:  0xFF, // the panel idles white
		Framer: &MemoryLCDFramer{},
	}
}

func (d *SharpMem) writeLine(p []byte) error {
	d.cs.High()
	err := d.bus.Tx(p, nil)
	d.cs.Low()
	return err
}

// Render scans the display list out to the panel, one full frame.
func (d *SharpMem) Render(list scene.List) error {
	return d.pl.Render(list)
}
