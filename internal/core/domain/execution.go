// Package domain defines the shared vocabulary of the acceleration shim:
// execution paths, stream directions and deflate wrapper formats.
package domain

// ExecutionPath reports which backend actually serviced a compression
// stream. It is output-only state: the dispatcher produces it, callers
// consume it for observability and testing.
type ExecutionPath int

const (
	// PathUndefined means no backend has serviced the stream yet.
	PathUndefined ExecutionPath = iota

	// PathZlib is the software zlib fallback.
	PathZlib

	// PathQAT is the QAT hardware accelerator.
	PathQAT

	// PathIAA is the IAA hardware accelerator.
	PathIAA
)

func (p ExecutionPath) String() string {
	switch p {
	case PathZlib:
		return "zlib"
	case PathQAT:
		return "qat"
	case PathIAA:
		return "iaa"
	default:
		return "undefined"
	}
}

// Valid reports whether p is a known execution path.
func (p ExecutionPath) Valid() bool {
	switch p {
	case PathUndefined, PathZlib, PathQAT, PathIAA:
		return true
	}
	return false
}

// Direction distinguishes the two halves of a stream's life the shim
// configures independently.
type Direction int

const (
	Compress Direction = iota
	Uncompress
)

func (d Direction) String() string {
	if d == Uncompress {
		return "uncompress"
	}
	return "compress"
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Compress || d == Uncompress
}
