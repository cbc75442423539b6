package raster

import (
	"errors"
	"strconv"
)

// ErrPassInProgress is returned when Render is called while another pass
// for the same pipeline is still running. Overlapping passes on one device
// are rejected synchronously, before any scanline work.
var ErrPassInProgress = errors.New("raster: render pass already in progress")

// TransportError reports a failed scanline write. The pass is aborted and
// the panel may be left partially updated; the caller can retry with a full
// render.
type TransportError struct {
	Y   int
	Err error
}

func (e *TransportError) Error() string {
	return "raster: transport write failed at line " + strconv.Itoa(e.Y) + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }
