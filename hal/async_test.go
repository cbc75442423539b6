package hal

import (
	"errors"
	"testing"
)

func TestAsyncSingleFlight(t *testing.T) {
	release := make(chan error, 1)
	a := NewAsync(func(p []byte) error { return <-release })

	h1, err := a.WriteAsync([]byte{1})
	if err != nil {
		t.Fatalf("WriteAsync: %v", err)
	}

	if _, err := a.WriteAsync([]byte{2}); err == nil {
		t.Fatal("second WriteAsync accepted while one is in flight")
	}

	release <- nil
	if err := a.Wait(h1); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	// A new write is accepted once the previous one drained.
	release <- nil
	h2, err := a.WriteAsync([]byte{3})
	if err != nil {
		t.Fatalf("WriteAsync after drain: %v", err)
	}
	if h2 == h1 {
		t.Fatal("handle reused")
	}
	if err := a.Wait(h2); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestAsyncSurfacesWriteError(t *testing.T) {
	boom := errors.New("spi timeout")
	a := NewAsync(func(p []byte) error { return boom })

	h, err := a.WriteAsync(nil)
	if err != nil {
		t.Fatalf("WriteAsync: %v", err)
	}
	if err := a.Wait(h); !errors.Is(err, boom) {
		t.Fatalf("Wait err = %v, want %v", err, boom)
	}
}

func TestAsyncWaitUnknownHandle(t *testing.T) {
	a := NewAsync(func(p []byte) error { return nil })
	if err := a.Wait(7); err == nil {
		t.Fatal("Wait on unknown handle succeeded")
	}
}
