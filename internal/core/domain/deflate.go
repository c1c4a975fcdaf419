package domain

// Format is the wrapper around a raw deflate stream.
type Format int

const (
	FormatRaw Format = iota
	FormatZlib
	FormatGzip
)

func (f Format) String() string {
	switch f {
	case FormatZlib:
		return "zlib"
	case FormatGzip:
		return "gzip"
	default:
		return "raw"
	}
}

const (
	// gzipWindowFlag is the zlib-family windowBits offset selecting a gzip
	// wrapper.
	gzipWindowFlag = 16

	minWindowBits = 8
	maxWindowBits = 15
)

// FormatFromWindowBits maps a zlib-family windowBits parameter to the
// wrapper it selects: negative 8..15 is raw deflate, positive 8..15 is a
// zlib wrapper, 8..15 plus the gzip flag (24..31) is a gzip wrapper.
// ok is false for values outside those ranges.
func FormatFromWindowBits(windowBits int) (format Format, ok bool) {
	switch {
	case windowBits >= -maxWindowBits && windowBits <= -minWindowBits:
		return FormatRaw, true
	case windowBits >= minWindowBits && windowBits <= maxWindowBits:
		return FormatZlib, true
	case windowBits >= minWindowBits+gzipWindowFlag && windowBits <= maxWindowBits+gzipWindowFlag:
		return FormatGzip, true
	default:
		return FormatRaw, false
	}
}

// HeaderLength returns the wrapper header size in bytes: raw deflate has
// none, zlib carries CMF+FLG, gzip a fixed 10-byte header (assuming no
// optional fields, which is what the shim's backends emit).
func HeaderLength(f Format) uint32 {
	switch f {
	case FormatZlib:
		return 2
	case FormatGzip:
		return 10
	default:
		return 0
	}
}

// DecodeBlockHeader splits the low three bits of the first payload byte of
// a deflate stream: bit 0 is bfinal (last-block flag), bits 1-2 are btype
// (0 stored, 1 fixed Huffman, 2 dynamic Huffman, 3 reserved).
func DecodeBlockHeader(b byte) (bfinal, btype uint32) {
	return uint32(b & 0x01), uint32(b&0x06) >> 1
}
