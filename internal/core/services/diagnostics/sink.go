package diagnostics

import (
	"io"
	"os"
	"sync"

	"github.com/iamNilotpal/zlib-accel/pkg/errors"
	"github.com/iamNilotpal/zlib-accel/pkg/fs"
)

// Sink owns the diagnostic output stream. At most one file is open at a
// time; while none is, output goes to the console. Open, Close and writes
// may race from multiple goroutines: a write in flight when Close executes
// lands in the old stream or on the console, never crashes.
type Sink struct {
	mu      sync.Mutex
	file    *os.File
	console io.Writer
}

// NewSink returns a sink that falls back to stdout.
func NewSink() *Sink {
	return &Sink{console: os.Stdout}
}

// NewSinkWithConsole returns a sink with a caller-supplied console
// destination, used by tests and hosts that capture diagnostics.
func NewSinkWithConsole(console io.Writer) *Sink {
	return &Sink{console: console}
}

// Open redirects diagnostics to the file at path, opened in append mode so
// pre-existing content is preserved. Repeated calls are idempotent in
// effect: the last call wins and replaces the active stream. On failure the
// previous stream is still released and diagnostics degrade to the console;
// the returned error is informational for the host.
func (s *Sink) Open(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		s.file.Close()
		s.file = nil
	}

	file, err := fs.OpenAppend(path)
	if err != nil {
		return errors.NewShimError(errors.ErrorSink, "open log file", err)
	}

	s.file = file
	return nil
}

// Close releases the active file stream. Subsequent writers observe the
// console destination.
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
}

// ActiveStream returns the current destination: the open file if one
// exists, otherwise the console. The decision is re-evaluated on every
// call, so a closed or failed file transparently falls back.
func (s *Sink) ActiveStream() io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked()
}

// Console returns the fallback destination.
func (s *Sink) Console() io.Writer { return s.console }

// Write sends one formatted message to the active destination as a single
// contiguous unit. Serializing under the sink mutex keeps concurrent
// callers' bytes from interleaving mid-message.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.activeLocked().Write(p)
	if err != nil && s.file != nil {
		// The file stream went bad; drop it and retry once on the console
		// rather than losing the message.
		s.file.Close()
		s.file = nil
		return s.console.Write(p)
	}
	return n, err
}

func (s *Sink) activeLocked() io.Writer {
	if s.file != nil {
		return s.file
	}
	return s.console
}
