package vdev

// IOFlag distinguishes the several I/O purposes dRAID's core needs to
// tell apart: ordinary application I/O, scrub verification, resilver
// repair, sequential rebuild, and the two label-probe flavors a
// distributed spare treats specially.
type IOFlag int

const (
	IOFlagNormal IOFlag = iota
	IOFlagScrub
	IOFlagResilver
	IOFlagRebuild
	IOFlagProbe
	IOFlagConfigWriter
)

// DTLKind selects which dirty-time-log predicate is being queried.
type DTLKind int

const (
	// DTLMissing: the range was never written on this child at all.
	DTLMissing DTLKind = iota
	// DTLPartial: the range may be stale as of a given txg.
	DTLPartial
)

// DirtyTimeLog is the external range -> boolean oracle dRAID consults to
// decide whether a column is safe to read or must be treated as missing
// or stale. Its storage and bookkeeping live entirely outside this
// package; dRAID only ever queries it.
type DirtyTimeLog interface {
	Contains(kind DTLKind, offset, size uint64, txg uint64) bool
}

// ChildVdev is the capability set a top-level dRAID vdev's real children
// and distributed spares both implement. Modeling vdev kinds as
// implementations of one interface avoids the source's function-pointer
// vtable inheritance; a real leaf and a distributed spare are two
// independent implementations of the same capability set rather than a
// type hierarchy. The dRAID top-level (TopLevel) does not implement it.
type ChildVdev interface {
	ID() uint64
	IsSpare() bool
	IsReplacing() bool
	HasTrim() bool

	Open() (asize uint64, err error)
	Close() error

	// IsReadable reports whether this child can currently service a read
	// of [offset, offset+size) at all (independent of DTL staleness).
	IsReadable(offset, size uint64) bool

	Read(offset uint64, buf []byte, flags IOFlag) error
	Write(offset uint64, buf []byte, flags IOFlag) error
	Flush() error
	Trim(offset, size uint64) error
}
