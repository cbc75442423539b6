package raster

// Handle identifies one asynchronous transport write.
type Handle uint64

// Transport is the physical bus behind a panel. WriteAsync queues bytes for
// transmission and returns without blocking; Wait blocks until that
// specific write has completed.
//
// The pipeline never has more than one write outstanding per transport, and
// it does not touch a buffer again before the write that borrowed it has
// been waited on.
type Transport interface {
	WriteAsync(p []byte) (Handle, error)
	Wait(h Handle) error
}

// Logger writes newline-delimited log lines. Kept to one method so
// baremetal targets can provide an implementation trivially.
type Logger interface {
	WriteLineString(s string)
}
