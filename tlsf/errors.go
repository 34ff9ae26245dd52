package tlsf

import "errors"

// Error taxonomy for the core API (spec.md §7). Each error surfaces as a
// nil payload pointer (or nil control handle for ErrMapFailed); nothing is
// retried or logged by the core itself.
var (
	// ErrInvalidSize is returned for semantically impossible requests:
	// a zero-byte allocation/reallocation, or a non-power-of-two alignment.
	ErrInvalidSize = errors.New("tlsf: invalid size")

	// ErrOutOfMemory is returned when no free-list class at or above the
	// requested size contains a block, or when the block found there is
	// smaller than the request as rounded up by the search mapping.
	ErrOutOfMemory = errors.New("tlsf: out of memory")

	// ErrMapFailed is returned when the pool mapping could not be obtained
	// from the OS.
	ErrMapFailed = errors.New("tlsf: pool mapping failed")
)
