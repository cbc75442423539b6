//go:build tinygo

package hal

import (
	"machine"

	"lumen/pix"
	"lumen/raster"
	"lumen/scene"
)

const (
	ssd1306Addr       = 0x3C
	ssd1306CtrlCmd    = 0x00
	ssd1306CtrlData   = 0x40
	ssd1306PageHeight = 8
)

// SSD1306Config describes a 128x64 OLED on I2C.
type SSD1306Config struct {
	Width   int    // defaults to 128
	Height  int    // defaults to 64
	Address uint16 // defaults to 0x3C
}

// SSD1306 drives the monochrome OLED. The controller wants page-mapped
// data (one byte = 8 vertical pixels), so the transport accumulates eight
// dithered scanlines and flushes them as one page write.
type SSD1306 struct {
	bus *machine.I2C
	cfg SSD1306Config
	pl  *raster.Pipeline

	page []byte
	y    int
	seq  raster.Handle
	err  error
}

func NewSSD1306(bus *machine.I2C, cfg SSD1306Config) *SSD1306 {
	if cfg.Width <= 0 {
		cfg.Width = 128
	}
	if cfg.Height <= 0 {
		cfg.Height = 64
	}
	if cfg.Address == 0 {
		cfg.Address = ssd1306Addr
	}
	return &SSD1306{bus: bus, cfg: cfg, page: make([]byte, cfg.Width)}
}

func (d *SSD1306) Configure() error {
	powerOn := []byte{
		0xAE,       // display off
		0xD5, 0x80, // clock divide
		0xA8, byte(d.cfg.Height - 1), // multiplex
		0xD3, 0x00, // display offset
		0x40,       // start line 0
		0x8D, 0x14, // charge pump on
		0x20, 0x02, // page addressing mode
		0xA1, // segment remap
		0xC8, // COM scan direction
		0xDA, 0x12, // COM pins
		0x81, 0xCF, // contrast
		0xD9, 0xF1, // precharge
		0xDB, 0x40, // VCOM deselect
		0xA4, // resume from RAM
		0xA6, // normal polarity
		0xAF, // display on
	}
	for _, c := range powerOn {
		if err := d.command(c); err != nil {
			return err
		}
	}

	pl, err := raster.NewPipeline(d.Profile(), d)
	if err != nil {
		return err
	}
	d.pl = pl
	return nil
}

func (d *SSD1306) Profile() raster.Profile {
	return raster.Profile{Width: d.cfg.Width, Height: d.cfg.Height, Format: pix.Mono1}
}

func (d *SSD1306) command(c byte) error {
	return d.bus.Tx(d.cfg.Address, []byte{ssd1306CtrlCmd, c}, nil)
}

// WriteAsync implements raster.Transport. The bus write itself is short,
// so lines are merged synchronously and the handle completes immediately.
func (d *SSD1306) WriteAsync(p []byte) (raster.Handle, error) {
	d.seq++
	for x := 0; x < d.cfg.Width; x++ {
		if p[x/8]>>(x%8)&1 != 0 {
			d.page[x] |= 1 << (d.y % ssd1306PageHeight)
		}
	}
	d.y++
	if d.y%ssd1306PageHeight == 0 {
		d.err = d.flushPage(d.y/ssd1306PageHeight - 1)
		for i := range d.page {
			d.page[i] = 0
		}
		if d.y >= d.cfg.Height {
			d.y = 0
		}
	}
	return d.seq, nil
}

func (d *SSD1306) Wait(h raster.Handle) error {
	err := d.err
	d.err = nil
	return err
}

func (d *SSD1306) flushPage(page int) error {
	if err := d.command(0xB0 | byte(page)); err != nil {
		return err
	}
	if err := d.command(0x00); err != nil { // low column 0
		return err
	}
	if err := d.command(0x10); err != nil { // high column 0
		return err
	}
	buf := make([]byte, 1, 1+len(d.page))
	buf[0] = ssd1306CtrlData
	buf = append(buf, d.page...)
	return d.bus.Tx(d.cfg.Address, buf, nil)
}

// Render scans the display list out to the panel, one full frame.
func (d *SSD1306) Render(list scene.List) error {
	d.y = 0
	for i := range d.page {
		d.page[i] = 0
	}
	return d.pl.Render(list)
}
