// Package errors defines the sentinel error kinds shared across the dRAID
// packages, per the error taxonomy in the redundancy-layer design.
package errors

import "errors"

var (
	// ErrNotFound: no permutation-map table entry for a given child count.
	ErrNotFound = errors.New("draid: not found")
	// ErrInvalidInput: bad geometry parameters or a malformed spare name.
	ErrInvalidInput = errors.New("draid: invalid input")
	// ErrChecksumMismatch: permutation map checksum verification failed.
	ErrChecksumMismatch = errors.New("draid: checksum mismatch")
	// ErrNoReplicas: more than nparity children failed to open.
	ErrNoReplicas = errors.New("draid: insufficient replicas")
	// ErrIoError: a child returned an error, or a label-range I/O was rejected.
	ErrIoError = errors.New("draid: io error")
	// ErrStale: the dirty time log says the range is not current on this child.
	ErrStale = errors.New("draid: stale")
	// ErrNoEntry: the child is not readable at all for this offset.
	ErrNoEntry = errors.New("draid: no entry")
	// ErrNotSupported: an ioctl or trim was issued against a child that
	// does not support it.
	ErrNotSupported = errors.New("draid: not supported")
)
