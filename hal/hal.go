// Package hal contains the device-facing side of lumen: transports over
// physical buses, panel bring-up sequences and a desktop preview backend.
//
// Baremetal device drivers build under the tinygo tag; everything else is
// host-safe. All of it is plumbing around the raster pipeline, which is
// where the actual rendering lives.
package hal

import (
	"errors"
	"sync"

	"lumen/raster"
)

// Async adapts a blocking bus write into the raster.Transport contract by
// running it on its own goroutine. At most one write may be in flight,
// which is exactly the discipline the scanline pipeline guarantees.
type Async struct {
	write func(p []byte) error

	mu       sync.Mutex
	seq      raster.Handle
	inflight bool
	done     chan error
}

// NewAsync wraps a blocking write function.
func NewAsync(write func(p []byte) error) *Async {
	return &Async{write: write, done: make(chan error, 1)}
}

func (a *Async) WriteAsync(p []byte) (raster.Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inflight {
		return 0, errors.New("hal: write already in flight")
	}
	a.seq++
	a.inflight = true
	go func() {
		a.done <- a.write(p)
	}()
	return a.seq, nil
}

func (a *Async) Wait(h raster.Handle) error {
	a.mu.Lock()
	if !a.inflight || h != a.seq {
		a.mu.Unlock()
		return errors.New("hal: wait on unknown handle")
	}
	a.mu.Unlock()

	err := <-a.done

	a.mu.Lock()
	a.inflight = false
	a.mu.Unlock()
	return err
}
