// Package dispatch is the surface the (external) backend dispatcher
// consumes: the public ABI tag vocabulary for single-tunable updates, its
// mapping onto the internal option table, and per-stream execution-path
// reporting.
package dispatch

import (
	"fmt"
	"sync"

	"github.com/iamNilotpal/zlib-accel/internal/core/domain"
	"github.com/iamNilotpal/zlib-accel/internal/core/domain/config"
)

// Tag is the ABI-facing tunable identifier. Its numbering is a distinct
// namespace from config.Option and is ordered for the public header, not
// the internal table; the two are related only through the explicit map
// below. Never assume index compatibility.
type Tag int

const (
	TagUseIAACompress Tag = iota
	TagUseIAAUncompress
	TagUseQATCompress
	TagUseQATUncompress
	TagUseZlibCompress
	TagUseZlibUncompress
	TagIAAPrependEmptyBlock
	TagLogLevel
)

// tagToOption is the bidirectional contract between the two numbering
// schemes. Completeness is enforced by test: every tag maps to exactly one
// option and no two tags share one.
var tagToOption = map[Tag]config.Option{
	TagUseIAACompress:       config.UseIAACompress,
	TagUseIAAUncompress:     config.UseIAAUncompress,
	TagUseQATCompress:       config.UseQATCompress,
	TagUseQATUncompress:     config.UseQATUncompress,
	TagUseZlibCompress:      config.UseZlibCompress,
	TagUseZlibUncompress:    config.UseZlibUncompress,
	TagIAAPrependEmptyBlock: config.IAAPrependEmptyBlock,
	TagLogLevel:             config.LogLevelOption,
}

var optionToTag = func() map[config.Option]Tag {
	m := make(map[config.Option]Tag, len(tagToOption))
	for tag, option := range tagToOption {
		m[option] = tag
	}
	return m
}()

// Option resolves a public tag to its internal option.
func (t Tag) Option() (config.Option, bool) {
	option, ok := tagToOption[t]
	return option, ok
}

// TagFor resolves an internal option to its public tag. Not every option
// is exposed publicly.
func TagFor(option config.Option) (Tag, bool) {
	tag, ok := optionToTag[option]
	return tag, ok
}

// Registry exposes the configuration table to the dispatch layer and
// records which backend serviced each stream.
type Registry struct {
	table   *config.Table
	deflate sync.Map // stream handle -> domain.ExecutionPath
	inflate sync.Map // stream handle -> domain.ExecutionPath
}

// New creates a registry over a shared table.
func New(table *config.Table) *Registry {
	return &Registry{table: table}
}

// SetConfig writes a single tunable through its public tag. The value is
// stored verbatim, matching the ABI contract that callers setting tunables
// directly take responsibility for their ranges.
func (r *Registry) SetConfig(tag Tag, value uint32) error {
	option, ok := tag.Option()
	if !ok {
		return fmt.Errorf("unknown config tag %d", tag)
	}
	r.table.Set(option, value)
	return nil
}

// GetConfig reads a single tunable through its public tag.
func (r *Registry) GetConfig(tag Tag) (uint32, error) {
	option, ok := tag.Option()
	if !ok {
		return 0, fmt.Errorf("unknown config tag %d", tag)
	}
	return r.table.Get(option), nil
}

// RecordPath notes which backend serviced the most recent operation of a
// stream in the given direction. handle is any comparable key the
// dispatcher uses to identify the stream.
func (r *Registry) RecordPath(handle any, dir domain.Direction, path domain.ExecutionPath) {
	if dir == domain.Uncompress {
		r.inflate.Store(handle, path)
		return
	}
	r.deflate.Store(handle, path)
}

// DeflatePath returns the execution path of the stream's most recent
// deflate operation, PathUndefined when none was recorded.
func (r *Registry) DeflatePath(handle any) domain.ExecutionPath {
	if path, ok := r.deflate.Load(handle); ok {
		return path.(domain.ExecutionPath)
	}
	return domain.PathUndefined
}

// InflatePath returns the execution path of the stream's most recent
// inflate operation, PathUndefined when none was recorded.
func (r *Registry) InflatePath(handle any) domain.ExecutionPath {
	if path, ok := r.inflate.Load(handle); ok {
		return path.(domain.ExecutionPath)
	}
	return domain.PathUndefined
}

// Forget drops both directions' records for a stream. Dispatchers call it
// when the stream ends to keep the registry from growing unbounded.
func (r *Registry) Forget(handle any) {
	r.deflate.Delete(handle)
	r.inflate.Delete(handle)
}
