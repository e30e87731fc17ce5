// Package geometry implements the pure-arithmetic translation between a
// dRAID vdev's logical address space and its physical (child, offset)
// coordinates. Every function here is side-effect free and either
// succeeds or returns a taxonomy error; nothing retries.
package geometry

import (
	"fmt"

	"github.com/openzfs/draid/internal/draid/config"
	draiderrors "github.com/openzfs/draid/internal/draid/errors"
)

// Geometry wraps a Config with the arithmetic helpers that operate
// purely in terms of its derived constants.
type Geometry struct {
	cfg    *config.Config
	ashift uint64 // sector size exponent
}

func New(cfg *config.Config, ashift uint64) *Geometry {
	return &Geometry{cfg: cfg, ashift: ashift}
}

func (g *Geometry) sectorSize() uint64 { return 1 << g.ashift }

// SectorSize returns 1 << ashift, the pool's minimum sector size.
func (g *Geometry) SectorSize() uint64 { return g.sectorSize() }

// Config returns the underlying derived configuration.
func (g *Geometry) Config() *config.Config { return g.cfg }

// Physical describes one logical offset resolved to its physical
// coordinates.
type Physical struct {
	PermIndex      uint64
	GroupStartCol  uint64
	RowOffset      uint64 // byte offset on the child of the group's first row
	GroupWraps     bool
	WrapColumn     uint64 // column at which the group wraps to the next row, if GroupWraps
}

// OffsetToGroup returns the group number containing a logical offset.
func (g *Geometry) OffsetToGroup(offset uint64) uint64 {
	return offset / g.cfg.GroupSize
}

// GroupToOffset returns the logical offset at which a group starts.
func (g *Geometry) GroupToOffset(group uint64) uint64 {
	return group * g.cfg.GroupSize
}

// LogicalToPhysical converts a logical offset into its permutation
// index, starting column, and row offset on the target child, following
// spec.md §4.2's derivation exactly.
func (g *Geometry) LogicalToPhysical(offset uint64) (Physical, error) {
	cfg := g.cfg
	blocksPerRow := config.RowSize / g.sectorSize()

	group := g.OffsetToGroup(offset)
	groupStartCol := (group * cfg.GroupWidth) % cfg.Ndisks

	b := (offset / g.sectorSize()) % (blocksPerRow * cfg.GroupWidth)
	if b%cfg.GroupWidth != 0 {
		return Physical{}, fmt.Errorf("%w: offset %d not aligned to groupwidth", draiderrors.ErrInvalidInput, offset)
	}

	perm := group / cfg.Ngroups
	rowWithinPerm := (perm*cfg.GroupWidth*cfg.Ngroups + (group%cfg.Ngroups)*cfg.GroupWidth) / cfg.Ndisks

	rowOffset := (rowWithinPerm*blocksPerRow + b/cfg.GroupWidth) * g.sectorSize()

	wraps := groupStartCol+cfg.GroupWidth > cfg.Ndisks
	var wrapCol uint64
	if wraps {
		wrapCol = cfg.Ndisks - groupStartCol
	}

	return Physical{
		PermIndex:     perm,
		GroupStartCol: groupStartCol,
		RowOffset:     rowOffset,
		GroupWraps:    wraps,
		WrapColumn:    wrapCol,
	}, nil
}

// Astart rounds offset up to the nearest multiple of groupwidth*sector.
func (g *Geometry) Astart(offset uint64) uint64 {
	align := g.cfg.GroupWidth * g.sectorSize()
	return roundUp(offset, align)
}

// Asize returns the allocated size (including parity and skip padding)
// for a psize-byte logical block.
func (g *Geometry) Asize(psize uint64) uint64 {
	cfg := g.cfg
	unit := cfg.Ndata * g.sectorSize()
	sectors := roundUp(psize, unit) / g.sectorSize()
	return (sectors / cfg.Ndata) * cfg.GroupWidth * g.sectorSize()
}

// Psize returns the logical payload size carried by an asize-byte
// allocation.
func (g *Geometry) Psize(asize uint64) uint64 {
	cfg := g.cfg
	return (asize / cfg.GroupWidth) * cfg.Ndata
}

// MetaslabInit rounds a metaslab's [start, start+size) range so both its
// start and size are multiples of groupwidth*sector, per spec.md §4.2.
func (g *Geometry) MetaslabInit(start, size uint64) (alignedStart, alignedSize uint64) {
	align := g.cfg.GroupWidth * g.sectorSize()
	alignedStart = roundUp(start, align)
	shrink := alignedStart - start
	if size < shrink {
		return alignedStart, 0
	}
	remaining := size - shrink
	alignedSize = (remaining / align) * align
	return alignedStart, alignedSize
}

// MaxRebuildableAsize returns the largest block size whose rebuild I/O
// will stay aligned, given the largest contiguous healable segment
// available. It rounds the segment up to a sector, caps it at
// maxBlockSize, discards the ndata remainder, then converts back
// through Asize so Psize never over-reports what can be rebuilt.
func (g *Geometry) MaxRebuildableAsize(maxSegment, maxBlockSize uint64) uint64 {
	cfg := g.cfg
	psize := roundUp(maxSegment*cfg.Ndata, g.sectorSize())
	if psize > maxBlockSize {
		psize = maxBlockSize
	}
	unit := cfg.Ndata * g.sectorSize()
	psize = (psize / unit) * unit
	return g.Asize(psize)
}

// Xlate translates a logical [offset, offset+size) range, known to lie
// within a single group, into the corresponding physical range on one
// child. It returns ok=false if the child is not part of that group's
// column set. Mirrors the column-walk loop structure of the original
// rather than a closed form, since the wrap bookkeeping is easy to get
// wrong in closed form.
func (g *Geometry) Xlate(childIdx uint64, offset, size uint64) (physOffset, physSize uint64, ok bool) {
	cfg := g.cfg
	phys, err := g.LogicalToPhysical(offset)
	if err != nil {
		return 0, 0, false
	}

	base, iter := cfg.Map.GetPerm(phys.PermIndex)
	start := phys.RowOffset
	sector := g.sectorSize()
	sizeSectors := size / sector
	for i := uint64(0); i < cfg.GroupWidth; i++ {
		if i != 0 && (phys.GroupStartCol+i)%cfg.Ndisks == 0 {
			start += config.RowSize
		}
		c := (phys.GroupStartCol + i) % cfg.Ndisks
		cid := cfg.Map.PermuteID(base, iter, c)
		if cid == childIdx {
			childSectors := ((sizeSectors-1)/cfg.GroupWidth + 1) * sector
			return start, childSectors, true
		}
	}
	return 0, 0, false
}

func roundUp(v, align uint64) uint64 {
	if align == 0 {
		return v
	}
	r := v % align
	if r == 0 {
		return v
	}
	return v + (align - r)
}
