// Package diagnostics is the shim's level-filtered diagnostic logging
// facility: an optionally file-backed sink shared by all call sites, a
// variadic message formatter, an unconditional statistics channel and a
// deflate-header introspection helper for trace-level diagnosis.
package diagnostics

// LogLevel orders message severities for threshold filtering: a message is
// suppressed when its numeric level is below the configured one. LogNone is
// strictly least verbose and doubles as a sentinel callers pass to mean
// "never emit".
type LogLevel uint32

const (
	LogNone LogLevel = iota
	LogInfo
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogInfo:
		return "info"
	case LogError:
		return "error"
	default:
		return "none"
	}
}
