package diagnostics

import (
	"github.com/iamNilotpal/zlib-accel/internal/core/domain"
)

// LogDeflateBlockHeader decodes the first deflate block sub-header of a
// compressed buffer and logs its bfinal and btype fields, subject to the
// same level filtering as Log. windowBits fixes the wrapper (raw, zlib or
// gzip) and with it how many header bytes precede the deflate payload.
//
// A buffer too short to hold the wrapper header plus one payload byte is a
// normal, silent no-op: partial buffers show up routinely at trace sites
// and are not an error. Extra parts are appended after the decoded fields.
func (l *Logger) LogDeflateBlockHeader(level LogLevel, data []byte, windowBits int, parts ...any) {
	if !l.debug || l.suppressed(level) {
		return
	}

	format, ok := domain.FormatFromWindowBits(windowBits)
	if !ok {
		return
	}

	headerLength := domain.HeaderLength(format)
	if uint32(len(data)) < headerLength+1 {
		return
	}

	bfinal, btype := domain.DecodeBlockHeader(data[headerLength])
	args := append([]any{
		"Deflate block header bfinal=", bfinal,
		", btype=", btype,
		"\n",
	}, parts...)
	l.Log(level, args...)
}
