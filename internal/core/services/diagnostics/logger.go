package diagnostics

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/iamNilotpal/zlib-accel/internal/core/domain/config"
	"github.com/iamNilotpal/zlib-accel/pkg/pool"
)

// formatBufferSize covers typical diagnostic lines without reallocation.
const formatBufferSize = 256

// Options selects which channels a Logger actually emits. The upstream
// shim compiled these in or out per build; here both behaviors live in one
// binary as construction-time flags, and a disabled channel is a cheap
// no-op with an identical call signature.
type Options struct {
	// Debug enables Log and LogDeflateBlockHeader.
	Debug bool

	// Stats enables LogStats.
	Stats bool
}

// Logger formats level-filtered diagnostic messages into the shared sink.
// The verbosity threshold is read from the configuration table on every
// call, so a live reconfiguration takes effect immediately.
type Logger struct {
	table *config.Table
	sink  *Sink
	pool  *pool.BufferPool
	debug bool
	stats bool
}

// New creates a logger over a shared table and sink.
func New(table *config.Table, sink *Sink, opts Options) *Logger {
	return &Logger{
		table: table,
		sink:  sink,
		pool:  pool.NewBufferPool(formatBufferSize),
		debug: opts.Debug,
		stats: opts.Stats,
	}
}

// Sink exposes the logger's sink for lifecycle control (Open/Close).
func (l *Logger) Sink() *Sink { return l.sink }

// Log formats the parts into one newline-terminated message and appends it
// to the active stream, prefixed "Info: " or "Error: " by level.
//
// The message is suppressed entirely, before any formatting work, when its
// level is below the configured threshold. A LogNone-tagged message is
// always suppressed regardless of threshold.
func (l *Logger) Log(level LogLevel, parts ...any) {
	if !l.debug || l.suppressed(level) {
		return
	}

	buf := l.pool.Get()
	defer l.pool.Put(buf)

	switch level {
	case LogInfo:
		buf.WriteString("Info: ")
	case LogError:
		buf.WriteString("Error: ")
	}
	for _, part := range parts {
		appendValue(buf, part)
	}
	buf.WriteByte('\n')

	l.sink.Write(buf.Bytes())
}

// LogStats appends a "Stats:" record to the active stream. The statistics
// channel is unconditionally tagged and never level-filtered; its sampling
// cadence belongs to the dispatcher, driven by the log_stats_samples
// tunable.
func (l *Logger) LogStats(parts ...any) {
	if !l.stats {
		return
	}

	buf := l.pool.Get()
	defer l.pool.Put(buf)

	buf.WriteString("Stats:\n")
	for _, part := range parts {
		appendValue(buf, part)
	}
	buf.WriteByte('\n')

	l.sink.Write(buf.Bytes())
}

func (l *Logger) suppressed(level LogLevel) bool {
	if level == LogNone {
		return true
	}
	return uint32(level) < l.table.Get(config.LogLevelOption)
}

// appendValue folds one loggable part into the buffer. The closed set of
// variants mirrors what diagnostic call sites actually pass: text, signed
// and unsigned integers, floats and raw bytes; anything else goes through
// fmt.
func appendValue(buf *bytes.Buffer, part any) {
	switch v := part.(type) {
	case string:
		buf.WriteString(v)
	case []byte:
		buf.Write(v)
	case int:
		buf.WriteString(strconv.Itoa(v))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(v, 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(v, 10))
	case float32:
		buf.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case error:
		buf.WriteString(v.Error())
	default:
		fmt.Fprintf(buf, "%v", v)
	}
}
