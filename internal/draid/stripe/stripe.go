// Package stripe implements the dRAID stripe builder: for a given I/O it
// lays out a RowMap describing each column's target child, offset, and
// buffer, in one of three modes (full-stripe write, normal read,
// scrub/resilver read).
package stripe

import (
	"fmt"

	"github.com/openzfs/draid/internal/draid/config"
	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/openzfs/draid/internal/draid/geometry"
)

// Buffer models the "real bytes followed by a zero-filled skip sector"
// composite described in the design notes: a gang buffer rather than a
// single contiguous slice, so the underlying I/O layer can scatter/
// gather instead of memcpy'ing padding into place.
type Buffer struct {
	Real    []byte // may be nil for a pure-skip column
	SkipLen int    // trailing zero bytes appended after Real
}

// Bytes materializes the composite buffer into one contiguous slice.
// Callers that can accept a scatter list should prefer iterating Real
// and a shared zero page of length SkipLen instead of calling this.
func (b Buffer) Bytes() []byte {
	if b.SkipLen == 0 {
		return b.Real
	}
	out := make([]byte, len(b.Real)+b.SkipLen)
	copy(out, b.Real)
	return out
}

func (b Buffer) Len() int { return len(b.Real) + b.SkipLen }

// Column is one per-column descriptor in a RowMap.
type Column struct {
	DevIdx      uint64
	ChildOffset uint64
	RealSize    uint64 // actual data/parity bytes this column carries
	PaddedSize  uint64 // size after promotion to ParitySize
	Buf         Buffer
	IsParity    bool
	Skipped     bool // pure-skip column past the populated range
}

// RowMap is the per-I/O layout produced by the stripe builder.
type RowMap struct {
	Scols        uint64 // stripe columns == groupwidth
	Cols         uint64 // populated columns; BuildWrite and BuildScrub set it to Scols
	FirstDataCol uint64 // == nparity
	SkipStart    uint64
	Nskip        uint64
	ParitySize   uint64
	Asize        uint64
	Columns      []Column

	// SkipBuf is the linear buffer of Nskip sectors allocated in scrub
	// mode. No Column's Buf points into it; columns carry their skip
	// sectors as Buf.SkipLen. Nil for write and normal-read layouts.
	SkipBuf []byte
}

// decomposition holds the (q, r, bc) split of a block's sector count
// across the group's data columns.
type decomposition struct {
	q, r, bc, cols uint64
}

func decompose(cfg *config.Config, psizeSectors uint64) decomposition {
	q := psizeSectors / cfg.Ndata
	r := psizeSectors - q*cfg.Ndata
	var bc uint64
	if r != 0 {
		bc = r + cfg.Nparity
	}
	cols := cfg.GroupWidth
	if q == 0 {
		cols = bc
	}
	return decomposition{q: q, r: r, bc: bc, cols: cols}
}

func totalSectors(cfg *config.Config, d decomposition, psizeSectors uint64) uint64 {
	extra := d.q
	if d.r != 0 {
		extra++
	}
	return psizeSectors + cfg.Nparity*extra
}

// BuildWrite lays out all Scols columns for a write of data, which must
// be exactly psize bytes and aligned to the sector size. Short columns
// get a zero-filled skip sector appended; empty columns get a pure skip
// sector; parity columns get freshly sized buffers. After layout every
// populated column carries ParitySize bytes, so parity math sees a full
// stripe.
func BuildWrite(geo *geometry.Geometry, offset uint64, data []byte) (*RowMap, error) {
	cfg := geo.Config()
	sector := geo.SectorSize()
	psize := uint64(len(data))
	if psize%sector != 0 {
		return nil, fmt.Errorf("%w: psize %d not sector-aligned", draiderrors.ErrInvalidInput, psize)
	}

	phys, err := geo.LogicalToPhysical(offset)
	if err != nil {
		return nil, err
	}

	psizeSectors := psize / sector
	d := decompose(cfg, psizeSectors)
	paritySize := d.q * sector
	if d.r != 0 {
		paritySize += sector
	}

	rm := &RowMap{
		Scols:        cfg.GroupWidth,
		Cols:         d.cols,
		FirstDataCol: cfg.Nparity,
		ParitySize:   paritySize,
		Asize:        totalSectors(cfg, d, psizeSectors) * sector,
	}

	base, iter := cfg.Map.GetPerm(phys.PermIndex)
	columns := make([]Column, cfg.GroupWidth)
	rowOffset := phys.RowOffset
	dataConsumed := uint64(0)

	for i := uint64(0); i < cfg.GroupWidth; i++ {
		if phys.GroupWraps && i == phys.WrapColumn {
			rowOffset += config.RowSize
		}
		c := (phys.GroupStartCol + i) % cfg.Ndisks
		devidx := cfg.Map.PermuteID(base, iter, c)

		col := Column{DevIdx: devidx, ChildOffset: rowOffset, PaddedSize: paritySize}

		switch {
		case i < cfg.Nparity:
			col.IsParity = true
			col.RealSize = paritySize
			col.Buf = Buffer{Real: make([]byte, paritySize)}
		case i < d.bc:
			// big column: full parity-sized slice of real data.
			col.RealSize = paritySize
			col.Buf = Buffer{Real: data[dataConsumed : dataConsumed+paritySize]}
			dataConsumed += paritySize
		case i < d.cols:
			// short column: q sectors of real data, padded with one
			// skip sector when r != 0 (no padding when r == 0).
			realSize := d.q * sector
			col.RealSize = realSize
			skip := paritySize - realSize
			col.Buf = Buffer{Real: data[dataConsumed : dataConsumed+realSize], SkipLen: int(skip)}
			dataConsumed += realSize
		default:
			// empty column: pure skip sector.
			col.Skipped = true
			col.Buf = Buffer{SkipLen: int(paritySize)}
		}
		columns[i] = col
	}

	rm.Columns = columns
	rm.Cols = cfg.GroupWidth // promoted to scols per spec §4.3
	rm.Nskip = roundUp(totalSectors(cfg, d, psizeSectors), cfg.GroupWidth) - totalSectors(cfg, d, psizeSectors)
	return rm, nil
}

// BuildRead lays out only the populated data columns (tight slices of
// the caller buffer) for a normal, non-scrub read. Parity columns are
// omitted; callers that need reconstruction should call BuildScrub
// instead.
func BuildRead(geo *geometry.Geometry, offset uint64, psize uint64) (*RowMap, error) {
	cfg := geo.Config()
	sector := geo.SectorSize()
	if psize%sector != 0 {
		return nil, fmt.Errorf("%w: psize %d not sector-aligned", draiderrors.ErrInvalidInput, psize)
	}

	phys, err := geo.LogicalToPhysical(offset)
	if err != nil {
		return nil, err
	}

	psizeSectors := psize / sector
	d := decompose(cfg, psizeSectors)
	paritySize := d.q * sector
	if d.r != 0 {
		paritySize += sector
	}

	rm := &RowMap{
		Scols:        cfg.GroupWidth,
		Cols:         d.cols,
		FirstDataCol: cfg.Nparity,
		ParitySize:   paritySize,
		Asize:        totalSectors(cfg, d, psizeSectors) * sector,
	}

	base, iter := cfg.Map.GetPerm(phys.PermIndex)
	columns := make([]Column, 0, d.cols)
	rowOffset := phys.RowOffset
	if phys.GroupWraps && phys.WrapColumn < cfg.Nparity {
		// the wrap falls among the skipped parity columns.
		rowOffset += config.RowSize
	}
	dataConsumed := uint64(0)

	for i := cfg.Nparity; i < d.cols; i++ {
		if phys.GroupWraps && i == phys.WrapColumn {
			rowOffset += config.RowSize
		}
		c := (phys.GroupStartCol + i) % cfg.Ndisks
		devidx := cfg.Map.PermuteID(base, iter, c)

		realSize := d.q * sector
		if i < d.bc {
			realSize = paritySize
		}
		columns = append(columns, Column{
			DevIdx:      devidx,
			ChildOffset: rowOffset,
			RealSize:    realSize,
			PaddedSize:  realSize,
			Buf:         Buffer{Real: []byte{}}, // caller fills in after successful read
		})
		dataConsumed += realSize
	}
	_ = dataConsumed
	rm.Columns = columns
	return rm, nil
}

// BuildScrub lays out the full Scols columns like BuildWrite, with
// freshly allocated column buffers instead of slices of caller data, and
// allocates a linear SkipBuf of Nskip sectors. The columns do not
// reference SkipBuf: each column's skip sectors are recorded only as its
// Buf.SkipLen, and a reader that materializes Buf.Bytes() reads them into
// that per-column buffer. Scrub must only be entered when the caller has
// set the scrub/resilver I/O flag.
func BuildScrub(geo *geometry.Geometry, offset uint64, psize uint64) (*RowMap, error) {
	cfg := geo.Config()
	sector := geo.SectorSize()
	if psize%sector != 0 {
		return nil, fmt.Errorf("%w: psize %d not sector-aligned", draiderrors.ErrInvalidInput, psize)
	}

	phys, err := geo.LogicalToPhysical(offset)
	if err != nil {
		return nil, err
	}

	psizeSectors := psize / sector
	d := decompose(cfg, psizeSectors)
	paritySize := d.q * sector
	if d.r != 0 {
		paritySize += sector
	}
	nskip := roundUp(totalSectors(cfg, d, psizeSectors), cfg.GroupWidth) - totalSectors(cfg, d, psizeSectors)

	rm := &RowMap{
		Scols:        cfg.GroupWidth,
		Cols:         cfg.GroupWidth,
		FirstDataCol: cfg.Nparity,
		ParitySize:   paritySize,
		Asize:        totalSectors(cfg, d, psizeSectors) * sector,
		Nskip:        nskip,
		SkipBuf:      make([]byte, nskip*sector),
	}

	base, iter := cfg.Map.GetPerm(phys.PermIndex)
	columns := make([]Column, cfg.GroupWidth)
	rowOffset := phys.RowOffset
	skipConsumed := 0

	for i := uint64(0); i < cfg.GroupWidth; i++ {
		if phys.GroupWraps && i == phys.WrapColumn {
			rowOffset += config.RowSize
		}
		c := (phys.GroupStartCol + i) % cfg.Ndisks
		devidx := cfg.Map.PermuteID(base, iter, c)

		col := Column{DevIdx: devidx, ChildOffset: rowOffset, PaddedSize: paritySize}

		switch {
		case i < cfg.Nparity:
			col.IsParity = true
			col.RealSize = paritySize
			col.Buf = Buffer{Real: make([]byte, paritySize)}
		case i < d.bc:
			col.RealSize = paritySize
			col.Buf = Buffer{Real: make([]byte, paritySize)}
		case i < d.cols:
			realSize := d.q * sector
			skip := int(paritySize - realSize)
			col.RealSize = realSize
			col.Buf = Buffer{Real: make([]byte, realSize), SkipLen: skip}
			skipConsumed += skip
		default:
			col.Skipped = true
			skip := int(paritySize)
			col.Buf = Buffer{SkipLen: skip}
			skipConsumed += skip
		}
		columns[i] = col
	}

	rm.Columns = columns
	return rm, nil
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
