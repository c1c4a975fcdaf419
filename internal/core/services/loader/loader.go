// Package loader populates the configuration table from the shim's config
// file. Loading clamps every value into its declared bounds and falls back
// to documented defaults for absent or malformed entries; a misconfigured
// single field must never abort the host process. The only refusals are a
// missing file and a symbolic link on the configured path.
package loader

import (
	"strconv"
	"strings"

	"github.com/iamNilotpal/zlib-accel/internal/core/domain/config"
	"github.com/iamNilotpal/zlib-accel/internal/core/ports"
	"github.com/iamNilotpal/zlib-accel/pkg/errors"
	"github.com/iamNilotpal/zlib-accel/pkg/fs"
)

// Loader resolves a config file into a shared table.
type Loader struct {
	table  *config.Table
	reader ports.ConfigReader
}

// New creates a loader writing into table through reader.
func New(table *config.Table, reader ports.ConfigReader) *Loader {
	return &Loader{table: table, reader: reader}
}

// Load reads the file at path and stores every option's resolved, clamped
// value into the table. It returns a human-readable dump of the resolved
// values for startup diagnostics.
//
// Load refuses (typed *errors.LoadError, table untouched) when the path
// does not exist or is a symbolic link; the symlink check defends against
// link swaps on the well-known system path. Every other malformed input is
// absorbed: an unreadable or garbled file resolves to defaults, an
// out-of-range value to the nearest bound.
func (l *Loader) Load(path string) (string, error) {
	exists, err := fs.Exists(path)
	if err != nil {
		return "", errors.NewLoadError(path, err)
	}
	if !exists {
		return "", errors.NewLoadError(path, errors.ErrConfigNotFound)
	}

	symlink, err := fs.IsSymlink(path)
	if err != nil {
		return "", errors.NewLoadError(path, err)
	}
	if symlink {
		return "", errors.NewLoadError(path, errors.ErrConfigSymlink)
	}

	// Parse failures are not refusals: the reader simply has nothing
	// parsed and every option resolves to its default below.
	_ = l.reader.ParseFile(path)

	var dump strings.Builder
	for option := config.Option(0); option < config.OptionMax; option++ {
		bound := config.BoundFor(option)
		value := l.reader.GetValue(option.Name(), bound.Default, bound.Max, bound.Min)
		l.table.Set(option, value)

		dump.WriteString(option.Name())
		dump.WriteString(" = ")
		dump.WriteString(strconv.FormatUint(uint64(value), 10))
		dump.WriteByte('\n')
	}

	if logFile, ok := l.reader.GetString(config.LogFileKey); ok {
		l.table.SetLogFile(logFile)
		dump.WriteString(config.LogFileKey)
		dump.WriteString(" = ")
		dump.WriteString(logFile)
		dump.WriteByte('\n')
	}

	return dump.String(), nil
}
