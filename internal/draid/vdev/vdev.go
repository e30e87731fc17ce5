// Package vdev implements the top-level dRAID vdev: the parent device
// that owns the configuration and permutation map, dispatches child I/O
// using the stripe builder's row map, invokes parity math, tracks
// degradation, and surfaces the block-sizing hooks the rest of the pool
// needs (asize, metaslab alignment, max rebuildable size).
package vdev

import (
	"fmt"
	"time"

	"github.com/openzfs/draid/internal/draid/config"
	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/openzfs/draid/internal/draid/geometry"
	"github.com/openzfs/draid/internal/draid/metrics"
	"github.com/openzfs/draid/internal/draid/parity"
	"github.com/openzfs/draid/internal/draid/stripe"
	"github.com/openzfs/draid/weed/glog"
)

// TopLevel is the dRAID parent vdev. Once Open succeeds its Config,
// Geometry, and permutation map are immutable for the vdev's lifetime;
// only the children slice and DTL answers change as the pool runs.
type TopLevel struct {
	cfg      *config.Config
	geo      *geometry.Geometry
	codec    *parity.Codec
	children []ChildVdev
	dtl      DirtyTimeLog
	asize    uint64
}

// Open takes the derived configuration and permutation map the caller
// built with config.New (passed in as cfg), then opens every child. Real (non-spare) children are opened before
// spares so a spare's Open can see every real child's final size, which
// determines the parent's usable capacity. Up to cfg.Nparity failed
// opens are tolerated; more returns ErrNoReplicas.
func Open(cfg *config.Config, ashift uint64, children []ChildVdev, dtl DirtyTimeLog) (*TopLevel, error) {
	if uint64(len(children)) != cfg.Children {
		return nil, fmt.Errorf("%w: expected %d children, got %d", draiderrors.ErrInvalidInput, cfg.Children, len(children))
	}

	var realIdx, spareIdx []int
	for i, c := range children {
		if c.IsSpare() {
			spareIdx = append(spareIdx, i)
		} else {
			realIdx = append(realIdx, i)
		}
	}

	var failed int
	var minChildAsize uint64
	minChildAsize = ^uint64(0)

	for _, i := range realIdx {
		asz, err := children[i].Open()
		if err != nil {
			failed++
			glog.Warningf("vdev: child %d failed to open: %v", children[i].ID(), err)
			continue
		}
		if asz < minChildAsize {
			minChildAsize = asz
		}
	}
	for _, i := range spareIdx {
		if _, err := children[i].Open(); err != nil {
			failed++
			glog.Warningf("vdev: spare child %d failed to open: %v", children[i].ID(), err)
		}
	}

	if uint64(failed) > cfg.Nparity {
		return nil, fmt.Errorf("%w: %d of %d children failed to open, tolerance is %d", draiderrors.ErrNoReplicas, failed, len(children), cfg.Nparity)
	}

	codec, err := parity.New(cfg.Ndata, cfg.Nparity)
	if err != nil {
		return nil, err
	}

	geo := geometry.New(cfg, ashift)

	if minChildAsize == ^uint64(0) {
		minChildAsize = 0
	}
	vdevAsize := (minChildAsize * cfg.Ndisks / cfg.GroupSize) * cfg.GroupSize

	glog.V(1).Infof("vdev: opened draid children=%d ndata=%d nparity=%d nspares=%d failed=%d", cfg.Children, cfg.Ndata, cfg.Nparity, cfg.Nspares, failed)

	return &TopLevel{
		cfg:      cfg,
		geo:      geo,
		codec:    codec,
		children: children,
		dtl:      dtl,
		asize:    vdevAsize,
	}, nil
}

// Close closes every child. The DraidConfig and permutation map are
// torn down by the caller discarding the TopLevel; there is nothing
// further to release here since both are plain immutable Go values.
func (t *TopLevel) Close() error {
	var firstErr error
	for _, c := range t.children {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *TopLevel) Config() *config.Config { return t.cfg }

// Child returns the child at the given device index, or nil if out of
// range. Used by the distributed spare package to resolve tail-column
// lookups back into this vdev's child list.
func (t *TopLevel) Child(devidx uint64) ChildVdev {
	if devidx >= uint64(len(t.children)) {
		return nil
	}
	return t.children[devidx]
}
func (t *TopLevel) Geometry() *geometry.Geometry { return t.geo }

// Asize returns the vdev's usable allocatable size.
func (t *TopLevel) Asize() uint64 { return t.asize }

// MetaslabInit delegates to the geometry layer's alignment helper.
func (t *TopLevel) MetaslabInit(start, size uint64) (uint64, uint64) {
	return t.geo.MetaslabInit(start, size)
}

// MaxRebuildableAsize delegates to the geometry layer.
func (t *TopLevel) MaxRebuildableAsize(maxSegment, maxBlockSize uint64) uint64 {
	return t.geo.MaxRebuildableAsize(maxSegment, maxBlockSize)
}

// Xlate translates a logical range on the parent into the corresponding
// physical range on one child, asserting the range does not span more
// than one group.
func (t *TopLevel) Xlate(childIdx uint64, offset, size uint64) (physOffset, physSize uint64, ok bool) {
	if t.geo.OffsetToGroup(offset) != t.geo.OffsetToGroup(offset+size-1) {
		debugAssertFail("xlate request spans more than one group")
	}
	return t.geo.Xlate(childIdx, offset, size)
}

// IOWrite builds a full-stripe write RowMap, fills parity, and
// dispatches one child write per Scols column. It returns once every
// child I/O it issued has completed; dRAID promises only that the
// parent I/O completes after every column completes, not any ordering
// between columns.
func (t *TopLevel) IOWrite(offset uint64, data []byte, flags IOFlag) error {
	buildStart := time.Now()
	rm, err := stripe.BuildWrite(t.geo, offset, data)
	metrics.StripeBuildSeconds.WithLabelValues("write").Observe(time.Since(buildStart).Seconds())
	if err != nil {
		return err
	}

	shards := make([][]byte, len(rm.Columns))
	for i, col := range rm.Columns {
		shards[i] = col.Buf.Bytes()
	}
	if err := t.codec.GenerateParity(shards); err != nil {
		return err
	}

	var firstErr error
	for i, col := range rm.Columns {
		child := t.children[col.DevIdx]
		if err := child.Write(col.ChildOffset, shards[i], flags); err != nil {
			glog.Errorf("vdev: write to child %d at %d failed: %v", col.DevIdx, col.ChildOffset, err)
			metrics.ChildIOTotal.WithLabelValues("write", "error").Inc()
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
			}
			continue
		}
		metrics.ChildIOTotal.WithLabelValues("write", "ok").Inc()
	}
	return firstErr
}

// columnState is the per-column outcome of a read dispatch, mirroring
// the Pending -> Issued/Skipped -> Completed state machine.
type columnState struct {
	col     stripe.Column
	skipped bool
	skipErr error
	err     error
}

// IORead issues a normal (tight) read across the populated data
// columns. Columns are consulted in reverse column order so that data
// errors accumulate before the last (lowest-index, closest to parity)
// columns are read, matching the rationale that parity should be
// consulted only after data failures are known. Per-column errors are
// attributed via DTL and readability but do not fail the stripe by
// themselves; the caller must follow up with IOReconstruct if
// missingData is nonzero and reconstruction is required.
func (t *TopLevel) IORead(offset uint64, psize uint64, txg uint64, resilver bool) ([]byte, int, error) {
	buildStart := time.Now()
	rm, err := stripe.BuildRead(t.geo, offset, psize)
	metrics.StripeBuildSeconds.WithLabelValues("read").Observe(time.Since(buildStart).Seconds())
	if err != nil {
		return nil, 0, err
	}

	states := make([]columnState, len(rm.Columns))
	missingData := 0

	for i := len(rm.Columns) - 1; i >= 0; i-- {
		col := rm.Columns[i]
		child := t.children[col.DevIdx]
		st := columnState{col: col}

		if !child.IsReadable(col.ChildOffset, col.RealSize) {
			st.skipped = true
			st.skipErr = draiderrors.ErrNoEntry
			missingData++
		} else if t.dtl != nil && t.dtl.Contains(DTLPartial, col.ChildOffset, col.RealSize, txg) {
			st.skipped = true
			st.skipErr = draiderrors.ErrStale
			missingData++
		} else {
			buf := make([]byte, col.RealSize)
			flag := IOFlagNormal
			if resilver {
				flag = IOFlagResilver
			}
			if err := child.Read(col.ChildOffset, buf, flag); err != nil {
				st.err = fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
				missingData++
			} else {
				rm.Columns[i].Buf.Real = buf
			}
		}
		states[i] = st
	}

	if missingData > 0 {
		return nil, missingData, fmt.Errorf("%w: %d columns unavailable", draiderrors.ErrIoError, missingData)
	}

	out := make([]byte, 0, psize)
	for _, col := range rm.Columns {
		out = append(out, col.Buf.Real...)
	}
	return out[:psize], 0, nil
}

// IOReconstruct rebuilds a stripe using the scrub/resilver layout: it
// reads every surviving column (including skip sectors), feeds the
// result through the parity codec's Reconstruct, and returns the
// recovered psize bytes of logical data.
func (t *TopLevel) IOReconstruct(offset uint64, psize uint64, txg uint64) ([]byte, error) {
	buildStart := time.Now()
	rm, err := stripe.BuildScrub(t.geo, offset, psize)
	metrics.StripeBuildSeconds.WithLabelValues("scrub").Observe(time.Since(buildStart).Seconds())
	if err != nil {
		return nil, err
	}

	shards := make([][]byte, len(rm.Columns))
	for i, col := range rm.Columns {
		child := t.children[col.DevIdx]
		buf := col.Buf.Bytes()
		if !child.IsReadable(col.ChildOffset, uint64(len(buf))) {
			shards[i] = nil
			continue
		}
		if err := child.Read(col.ChildOffset, buf, IOFlagScrub); err != nil {
			shards[i] = nil
			continue
		}
		shards[i] = buf
	}

	if err := t.codec.Reconstruct(shards); err != nil {
		return nil, err
	}

	out := make([]byte, 0, psize)
	for i := rm.FirstDataCol; i < rm.Cols; i++ {
		col := rm.Columns[i]
		out = append(out, shards[i][:col.RealSize]...)
	}
	if uint64(len(out)) < psize {
		return nil, fmt.Errorf("%w: reconstructed %d bytes, wanted %d", draiderrors.ErrIoError, len(out), psize)
	}
	return out[:psize], nil
}

// GroupDegraded reports whether any column of the group containing
// offset is currently unreadable.
func (t *TopLevel) GroupDegraded(offset uint64) bool {
	phys, err := t.geo.LogicalToPhysical(offset)
	if err != nil {
		debugAssertFail("GroupDegraded: invalid offset")
		return true
	}
	base, iter := t.cfg.Map.GetPerm(phys.PermIndex)
	for i := uint64(0); i < t.cfg.GroupWidth; i++ {
		c := (phys.GroupStartCol + i) % t.cfg.Ndisks
		devidx := t.cfg.Map.PermuteID(base, iter, c)
		if !t.children[devidx].IsReadable(0, 1) {
			return true
		}
	}
	return false
}

// NeedResilver decides whether a given offset/phys_birth pair must be
// rebuilt, per the three-way branch in the original implementation:
// a multi-spare-in-flight guard, the sequential-rebuild path (no known
// birth txg), and the healing-resilver path (DTL says this txg range is
// partial, and the group is currently degraded).
func (t *TopLevel) NeedResilver(offset uint64, physBirth uint64, physBirthUnknown bool, activeSpares int, txg uint64) bool {
	if t.cfg.Nspares > 1 && activeSpares > 1 {
		return true
	}
	if physBirthUnknown {
		return t.GroupDegraded(offset)
	}
	if t.dtl != nil && t.dtl.Contains(DTLPartial, offset, 1, physBirth) {
		return t.GroupDegraded(offset)
	}
	return false
}

// StateChange notifies the vdev that a child's readability changed and
// refreshes the degraded-groups gauge, since that is the only point at
// which the answer can change.
func (t *TopLevel) StateChange(childIdx uint64, readable bool) {
	glog.V(1).Infof("vdev: child %d readable=%v", childIdx, readable)
	t.refreshDegradedGroupsMetric()
}

// refreshDegradedGroupsMetric recomputes the degraded_groups gauge by
// walking every group in the vdev's allocated capacity. Cheap relative
// to a state change, which is itself a rare event.
func (t *TopLevel) refreshDegradedGroupsMetric() {
	if t.asize == 0 || t.cfg.GroupSize == 0 {
		metrics.DegradedGroups.Set(0)
		return
	}
	var degraded float64
	totalGroups := t.asize / t.cfg.GroupSize
	for g := uint64(0); g < totalGroups; g++ {
		if t.GroupDegraded(t.geo.GroupToOffset(g)) {
			degraded++
		}
	}
	metrics.DegradedGroups.Set(degraded)
}
