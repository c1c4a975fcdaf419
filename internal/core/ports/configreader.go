package ports

// ConfigReader is the raw key=value file-parsing collaborator the loader
// consumes. Implementations own the file format; the loader owns which keys
// exist and what bounds apply.
type ConfigReader interface {
	// ParseFile reads and tokenizes the file at path, replacing any
	// previously parsed state.
	ParseFile(path string) error

	// GetValue resolves a numeric key: absent or malformed entries yield
	// def, everything else is clamped into [min,max].
	GetValue(key string, def, max, min uint32) uint32

	// GetString resolves a free-form string key. ok is false when the key
	// is absent.
	GetString(key string) (value string, ok bool)

	// DumpValues renders every parsed pair as "key = value" lines for
	// startup diagnostics.
	DumpValues() string
}
