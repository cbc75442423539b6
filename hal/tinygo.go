//go:build tinygo

package hal

import (
	"machine"
	"time"
)

// spiPanel bundles the control pins shared by the SPI panels.
type spiPanel struct {
	bus machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin
}

func (p *spiPanel) configurePins() {
	p.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	if p.rst != machine.NoPin {
		p.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.rst.High()
	}
	p.cs.High()
	p.dc.High()
}

func (p *spiPanel) reset(low, settle time.Duration) {
	if p.rst == machine.NoPin {
		return
	}
	p.rst.Low()
	time.Sleep(low)
	p.rst.High()
	time.Sleep(settle)
}

// cmd sends a command byte followed by optional parameter bytes.
func (p *spiPanel) cmd(c byte, data ...byte) {
	p.cs.Low()
	p.dc.Low()
	p.bus.Tx([]byte{c}, nil)
	p.dc.High()
	if len(data) > 0 {
		p.bus.Tx(data, nil)
	}
	p.cs.High()
}
