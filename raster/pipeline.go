// Package raster turns a display list into device-ready scanlines.
//
// It never materializes a full frame at source depth: every output line is
// recomputed from the primitive list, quantized to the panel's pixel format
// and handed to the transport while the next line is being computed.
package raster

import (
	"errors"
	"sync"

	"lumen/scene"
)

var errNilTransport = errors.New("raster: nil transport")

// Pipeline owns the two scanline buffers for one panel and is the only
// component that talks to its transport. One Pipeline per device; distinct
// devices are fully independent.
type Pipeline struct {
	prof Profile
	tr   Transport
	log  Logger

	mu    sync.Mutex
	front []byte
	back  []byte
}

// NewPipeline builds a pipeline for a panel profile over a transport.
func NewPipeline(prof Profile, tr Transport) (*Pipeline, error) {
	if err := prof.validate(); err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, errNilTransport
	}
	n := prof.lineBytes()
	return &Pipeline{
		prof:  prof,
		tr:    tr,
		front: make([]byte, n),
		back:  make([]byte, n),
	}, nil
}

// SetLogger attaches an optional logger for failure reporting.
func (p *Pipeline) SetLogger(l Logger) { p.log = l }

// Render is the single per-frame entry point. It composites every scanline
// of the list in increasing y, transmitting line y-1 while computing line
// y, and returns once the last write has completed. A concurrent call on
// the same pipeline fails immediately with ErrPassInProgress.
//
// On a transport failure the remaining scanlines are abandoned and the
// error is surfaced; the panel may be left partially updated and the caller
// may retry with a full render.
func (p *Pipeline) Render(list scene.List) error {
	if !p.mu.TryLock() {
		return ErrPassInProgress
	}
	defer p.mu.Unlock()

	header := 0
	if p.prof.Framer != nil {
		header, _ = p.prof.Framer.Overhead()
	}
	payload := p.prof.Format.LineBytes(p.prof.Width)

	var pending Handle
	outstanding := false
	wait := func(y int) error {
		if !outstanding {
			return nil
		}
		outstanding = false
		if err := p.tr.Wait(pending); err != nil {
			return &TransportError{Y: y, Err: err}
		}
		return nil
	}

	for y := 0; y < p.prof.Height; y++ {
		buf := p.back[header : header+payload]
		for i := range buf {
			buf[i] = p.prof.Clear
		}
		fillLine(p.prof.Format, p.prof.Width, list, y, buf)
		if p.prof.Framer != nil {
			p.prof.Framer.EncodeLine(p.back, y)
		}

		// Back-pressure: the front buffer may still be on the bus.
		if err := wait(y - 1); err != nil {
			return p.fail(err)
		}

		p.front, p.back = p.back, p.front
		h, err := p.tr.WriteAsync(p.front)
		if err != nil {
			return p.fail(&TransportError{Y: y, Err: err})
		}
		pending = h
		outstanding = true
	}

	// Drain: the final write must not outlive the render call.
	if err := wait(p.prof.Height - 1); err != nil {
		return p.fail(err)
	}

	if p.prof.Framer != nil {
		p.prof.Framer.EndFrame()
	}
	return nil
}

func (p *Pipeline) fail(err error) error {
	if p.log != nil {
		p.log.WriteLineString(err.Error())
	}
	return err
}
