// Package spare implements the dRAID distributed spare: a virtual leaf
// vdev whose storage is sliced off the tail of every real child's
// capacity. For any offset it resolves, via the last spare_id columns
// of the permutation, to a concrete child and forwards the I/O there.
package spare

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/openzfs/draid/internal/draid/config"
	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/openzfs/draid/internal/draid/metrics"
	"github.com/openzfs/draid/internal/draid/vdev"
)

// Identity is a parsed draid<P>-<V>-<S> name.
type Identity struct {
	Parity  uint64
	VdevID  uint64
	SpareID uint64
}

// FormatName renders the canonical "draid<P>-<V>-<S>" identity string.
func FormatName(id Identity) string {
	return fmt.Sprintf("draid%d-%d-%d", id.Parity, id.VdevID, id.SpareID)
}

// ParseName parses a "draid<P>-<V>-<S>" identity string: three unsigned
// decimal fields separated by '-'. A malformed name reports
// ErrInvalidInput.
func ParseName(name string) (Identity, error) {
	var id Identity
	var trailing string
	n, err := fmt.Sscanf(name, "draid%d-%d-%d%s", &id.Parity, &id.VdevID, &id.SpareID, &trailing)
	if n < 3 || (err != nil && n != 3) || trailing != "" {
		return Identity{}, fmt.Errorf("%w: malformed spare name %q", draiderrors.ErrInvalidInput, name)
	}
	return id, nil
}

// Parent is the capability surface a distributed spare needs from its
// owning top-level dRAID vdev: permutation lookup and access to the
// concrete child list.
type Parent interface {
	Config() *config.Config
	Child(devidx uint64) vdev.ChildVdev
}

// Spare is one distributed spare leaf. It holds a non-owning
// back-reference to its parent top-level vdev; the parent's lifetime is
// guaranteed to outlive any I/O in flight against the spare.
type Spare struct {
	id     Identity
	parent Parent

	// labelStart/labelEnd mirror the label-reserved regions at the head
	// and tail of a real child that a distributed spare must simulate
	// rather than forward, since nothing is actually persisted there.
	labelStart, labelEnd uint64
}

// Open validates the identity against the parent (matching nparity and
// spare_id < nspares) and records the back-reference. It reports the
// parent's usable size plus the label reservations at both ends, the
// way a real child vdev reports its own label-adjusted size.
func Open(name string, parent Parent, labelStart, labelEnd uint64) (*Spare, error) {
	id, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	cfg := parent.Config()
	if id.Parity != cfg.Nparity {
		return nil, fmt.Errorf("%w: spare %q parity=%d does not match vdev nparity=%d", draiderrors.ErrInvalidInput, name, id.Parity, cfg.Nparity)
	}
	if id.SpareID >= cfg.Nspares {
		return nil, fmt.Errorf("%w: spare %q spare_id=%d out of range [0,%d)", draiderrors.ErrInvalidInput, name, id.SpareID, cfg.Nspares)
	}
	return &Spare{id: id, parent: parent, labelStart: labelStart, labelEnd: labelEnd}, nil
}

func (s *Spare) Close() error {
	metrics.ActiveSpares.Dec()
	return nil
}

func (s *Spare) Identity() Identity { return s.id }

// The methods below satisfy vdev.ChildVdev so a Spare can sit in a
// parent's child list and be resolved recursively by another spare's
// GetChild, per spec.md §4.5.

func (s *Spare) ID() uint64        { return s.id.VdevID }
func (s *Spare) IsSpare() bool     { return true }
func (s *Spare) IsReplacing() bool { return false }
func (s *Spare) HasTrim() bool     { return true }

// Open reports the spare's usable size and marks it as a spare the
// vdev may dispatch I/O through until Close.
func (s *Spare) Open() (uint64, error) {
	metrics.ActiveSpares.Inc()
	return s.Psize(), nil
}

func (s *Spare) IsReadable(offset, size uint64) bool {
	if s.isLabelRange(offset, size) {
		return true
	}
	child, _, err := s.GetChild(offset)
	if err != nil {
		return false
	}
	return child.IsReadable(offset, size)
}

func (s *Spare) Read(offset uint64, buf []byte, flags vdev.IOFlag) error {
	data, err := s.IORead(offset, uint64(len(buf)), flags)
	if err != nil {
		return err
	}
	copy(buf, data)
	return nil
}

func (s *Spare) Write(offset uint64, buf []byte, flags vdev.IOFlag) error {
	return s.IOWrite(offset, buf, flags)
}

func (s *Spare) Flush() error {
	return nil
}

func (s *Spare) Trim(offset, size uint64) error {
	return s.IOTrim(offset, size)
}

// Psize returns the usable size of the spare: the parent's per-disk
// slice size plus the label reservations at both ends, mirroring a real
// child's asize accounting.
func (s *Spare) Psize() uint64 {
	return s.parent.Config().DevSliceSize + s.labelStart + s.labelEnd
}

// GetChild resolves an offset within the spare's address space to the
// concrete child that currently backs it, recursing if that child is
// itself another distributed spare (a spare can itself be sitting under
// a replacing/sparing vdev whose own child is a spare).
func (s *Spare) GetChild(offset uint64) (vdev.ChildVdev, uint64, error) {
	cfg := s.parent.Config()
	perm := offset / cfg.DevSliceSize
	base, iter := cfg.Map.GetPerm(perm)

	tailCol := cfg.Children - 1 - s.id.SpareID
	cid := cfg.Map.PermuteID(base, iter, tailCol)

	child := s.parent.Child(cid)
	if child == nil {
		return nil, 0, fmt.Errorf("%w: no child at index %d", draiderrors.ErrNoEntry, cid)
	}
	if nested, ok := child.(*Spare); ok {
		return nested.GetChild(offset)
	}
	return child, cid, nil
}

// isLabelRange reports whether [offset, offset+size) falls entirely
// within the spare's simulated label-reserved regions at either end.
func (s *Spare) isLabelRange(offset, size uint64) bool {
	if offset+size <= s.labelStart {
		return true
	}
	usable := s.Psize()
	if offset >= usable-s.labelEnd {
		return true
	}
	return false
}

// IORead services a read. Label-range reads succeed with zeroed data
// only for the probe flag; any other flag on a label range fails with
// ErrIoError. Non-label reads forward to the resolved child.
func (s *Spare) IORead(offset uint64, size uint64, flags vdev.IOFlag) ([]byte, error) {
	if s.isLabelRange(offset, size) {
		if flags == vdev.IOFlagProbe {
			return make([]byte, size), nil
		}
		return nil, fmt.Errorf("%w: label-range read on spare with flags=%v", draiderrors.ErrIoError, flags)
	}
	child, _, err := s.GetChild(offset)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if err := child.Read(offset, buf, flags); err != nil {
		return nil, fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
	}
	return buf, nil
}

// IOWrite services a write. Label-range writes succeed (and are
// discarded) only for the probe or config-writer flags; any other flag
// on a label range fails with ErrIoError. Non-label writes forward to
// the resolved child.
func (s *Spare) IOWrite(offset uint64, data []byte, flags vdev.IOFlag) error {
	if s.isLabelRange(offset, uint64(len(data))) {
		if flags == vdev.IOFlagProbe || flags == vdev.IOFlagConfigWriter {
			return nil
		}
		return fmt.Errorf("%w: label-range write on spare with flags=%v", draiderrors.ErrIoError, flags)
	}
	child, _, err := s.GetChild(offset)
	if err != nil {
		return err
	}
	if err := child.Write(offset, data, flags); err != nil {
		return fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
	}
	return nil
}

// IOTrim forwards a trim to the resolved child, failing with
// ErrNotSupported if that child does not advertise trim support.
func (s *Spare) IOTrim(offset, size uint64) error {
	child, _, err := s.GetChild(offset)
	if err != nil {
		return err
	}
	if !child.HasTrim() {
		return fmt.Errorf("%w: child does not support trim", draiderrors.ErrNotSupported)
	}
	return child.Trim(offset, size)
}

// IOFlush broadcasts a flush to every real child of the parent vdev,
// since a spare's writes may have landed on any of them.
func (s *Spare) IOFlush(children []vdev.ChildVdev) error {
	var firstErr error
	for _, c := range children {
		if err := c.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ParentKind describes what kind of vdev a spare's immediate parent is,
// needed by IsActive.
type ParentKind int

const (
	ParentKindNone ParentKind = iota
	ParentKindReplacing
	ParentKindSpare
	ParentKindDraid
)

// IsActive reports whether a distributed spare is currently in active
// use: true iff its parent is a replacing, sparing, or dRAID vdev.
func IsActive(parentKind ParentKind) bool {
	switch parentKind {
	case ParentKindReplacing, ParentKindSpare, ParentKindDraid:
		return true
	default:
		return false
	}
}

// ReadConfigState is the Active/Spare state recorded in a spare's
// synthesized label-equivalent config descriptor.
type ReadConfigState int

const (
	ConfigStateSpare ReadConfigState = iota
	ConfigStateActive
)

// Config is the label-equivalent descriptor a distributed spare
// synthesizes for read_config, since it has no real label of its own.
// PoolGUID identifies the pool the way a real label's pool_guid does;
// using uuid.UUID rather than a raw integer lets a spare's synthesized
// config compare directly against GUIDs minted elsewhere in the pool.
type Config struct {
	Role     string // always "spare"
	PoolGUID uuid.UUID
	TopGUID  uint64
	State    ReadConfigState
}

// ReadConfig synthesizes the descriptor.
func (s *Spare) ReadConfig(poolGUID uuid.UUID, topGUID uint64, active bool) Config {
	state := ConfigStateSpare
	if active {
		state = ConfigStateActive
	}
	return Config{Role: "spare", PoolGUID: poolGUID, TopGUID: topGUID, State: state}
}
