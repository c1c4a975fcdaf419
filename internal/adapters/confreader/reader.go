// Package confreader parses the shim's plain-text configuration files.
// The format is one "key = value" pair per line; comment lines start with
// '#', unparseable lines are ignored and the last duplicate of a key wins.
package confreader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Reader implements ports.ConfigReader over a local file.
type Reader struct {
	values map[string]string
	order  []string
}

func New() *Reader {
	return &Reader{values: make(map[string]string)}
}

// ParseFile tokenizes the file at path. Previously parsed state is
// discarded first, so a Reader can be reused across loads.
func (r *Reader) ParseFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	r.values = make(map[string]string)
	r.order = r.order[:0]

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}

		if _, seen := r.values[key]; !seen {
			r.order = append(r.order, key)
		}
		r.values[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

// GetValue resolves a numeric key. Absent or non-numeric entries yield def;
// numeric entries are clamped into [min,max], so a negative value lands on
// min and an oversized one on max.
func (r *Reader) GetValue(key string, def, max, min uint32) uint32 {
	raw, ok := r.values[key]
	if !ok {
		return def
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}

	if parsed < int64(min) {
		return min
	}
	if parsed > int64(max) {
		return max
	}
	return uint32(parsed)
}

// GetString resolves a free-form string key.
func (r *Reader) GetString(key string) (string, bool) {
	value, ok := r.values[key]
	return value, ok
}

// DumpValues renders the parsed pairs in file order.
func (r *Reader) DumpValues() string {
	var sb strings.Builder
	for _, key := range r.order {
		sb.WriteString(key)
		sb.WriteString(" = ")
		sb.WriteString(r.values[key])
		sb.WriteByte('\n')
	}
	return sb.String()
}
