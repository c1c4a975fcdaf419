// Package config holds the shim's tunable table: a fixed set of options
// with documented defaults and hard bounds, safe for concurrent word-level
// access from every compression call site.
package config

// Option identifies a single tunable. An Option's numeric value is its slot
// in the Table and is part of the shim's external ABI: the order below is
// stable and must never change once published. New options go immediately
// before OptionMax.
type Option int

const (
	// UseQATCompress enables the QAT backend for the compress direction.
	UseQATCompress Option = iota

	// UseQATUncompress enables the QAT backend for the uncompress direction.
	UseQATUncompress

	// UseIAACompress enables the IAA backend for the compress direction.
	UseIAACompress

	// UseIAAUncompress enables the IAA backend for the uncompress direction.
	UseIAAUncompress

	// UseZlibCompress enables the software zlib backend for compress.
	UseZlibCompress

	// UseZlibUncompress enables the software zlib backend for uncompress.
	UseZlibUncompress

	// IAACompressPercentage is the routing weight [0,100] of compress
	// traffic sent to IAA when more than one backend is eligible.
	IAACompressPercentage

	// IAAUncompressPercentage is the routing weight [0,100] of uncompress
	// traffic sent to IAA.
	IAAUncompressPercentage

	// IAAPrependEmptyBlock works around the IAA decompressor's handling of
	// streams that start with a stored block.
	IAAPrependEmptyBlock

	// QATPeriodicalPolling switches the QAT device from busy polling to
	// periodical polling.
	QATPeriodicalPolling

	// QATCompressionLevel is the deflate level [1,9] handed to QAT.
	QATCompressionLevel

	// LogLevelOption is the diagnostic verbosity threshold; messages below
	// it are suppressed.
	LogLevelOption

	// LogStatsSamples is the sampling interval for the statistics channel:
	// one stats record per this many streams. Zero disables sampling.
	LogStatsSamples

	// OptionMax is the table size, not a valid option.
	OptionMax
)

// names maps each option to its config-file key.
var names = [OptionMax]string{
	UseQATCompress:          "use_qat_compress",
	UseQATUncompress:        "use_qat_uncompress",
	UseIAACompress:          "use_iaa_compress",
	UseIAAUncompress:        "use_iaa_uncompress",
	UseZlibCompress:         "use_zlib_compress",
	UseZlibUncompress:       "use_zlib_uncompress",
	IAACompressPercentage:   "iaa_compress_percentage",
	IAAUncompressPercentage: "iaa_uncompress_percentage",
	IAAPrependEmptyBlock:    "iaa_prepend_empty_block",
	QATPeriodicalPolling:    "qat_periodical_polling",
	QATCompressionLevel:     "qat_compression_level",
	LogLevelOption:          "log_level",
	LogStatsSamples:         "log_stats_samples",
}

// Name returns the option's config-file key, or "" for an out-of-range
// option.
func (o Option) Name() string {
	if !o.Valid() {
		return ""
	}
	return names[o]
}

func (o Option) String() string { return o.Name() }

// Valid reports whether o addresses a table slot.
func (o Option) Valid() bool { return o >= 0 && o < OptionMax }

const (
	// LogFileKey is the config-file key naming a dedicated diagnostic log
	// file. It is a free-form string, not a table option; empty means the
	// diagnostics fall back to the console.
	LogFileKey = "log_file"

	// DefaultConfigPath is the well-known system path the host loads from
	// when no override is given.
	DefaultConfigPath = "/etc/zlib-accel.conf"
)

// Bound is the (default, max, min) triple governing one option. Loading
// clamps into [Min,Max] and falls back to Default for absent or malformed
// entries; it never rejects.
type Bound struct {
	Default uint32
	Max     uint32
	Min     uint32
}

// BoundFor returns the bound triple for an option. Out-of-range options get
// a zero triple.
func BoundFor(o Option) Bound {
	if !o.Valid() {
		return Bound{}
	}
	return bounds[o]
}
