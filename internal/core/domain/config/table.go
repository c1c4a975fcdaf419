package config

import (
	"sync"
	"sync/atomic"
)

// Table is the shared configuration store. One atomic word per option makes
// every read and write tear-free without locking; readers racing a
// reconfiguration may observe old and new values across two related options,
// and callers must not assume cross-option consistency.
//
// Table performs no bounds checking: Set stores verbatim so tests and tools
// can probe edge values. Bounds are enforced by the loader.
type Table struct {
	values [OptionMax]atomic.Uint32

	mu      sync.RWMutex
	logFile string
}

// NewTable returns a table seeded with every option's documented default.
func NewTable() *Table {
	var t Table
	for o := Option(0); o < OptionMax; o++ {
		t.values[o].Store(bounds[o].Default)
	}
	return &t
}

// Get returns the current value of an option. It never fails: every option
// has a default, and out-of-range options read as zero.
func (t *Table) Get(o Option) uint32 {
	if !o.Valid() {
		return 0
	}
	return t.values[o].Load()
}

// Set stores a value verbatim. Out-of-range options are ignored.
func (t *Table) Set(o Option, value uint32) {
	if !o.Valid() {
		return
	}
	t.values[o].Store(value)
}

// LogFile returns the configured dedicated diagnostic log path. Empty means
// no dedicated file.
func (t *Table) LogFile() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.logFile
}

// SetLogFile records the dedicated diagnostic log path.
func (t *Table) SetLogFile(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logFile = path
}
