// Package permutation implements the dRAID permutation engine: a
// deterministic, seed-driven table that scatters group column positions
// across children so rebuild and steady-state I/O spread evenly across
// the fleet instead of hammering a fixed set of disks.
package permutation

import (
	"fmt"

	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/openzfs/draid/weed/glog"
)

// Map is an immutable children x nperms permutation table plus the seed
// and checksum it was generated from. Once built it is never mutated and
// may be shared across goroutines without locking.
type Map struct {
	children uint64
	nperms   uint64
	seed     uint64
	checksum uint64
	rows     []byte // children*nperms bytes, row-major
}

func (m *Map) Children() uint64 { return m.children }
func (m *Map) Nperms() uint64   { return m.nperms }
func (m *Map) Seed() uint64     { return m.seed }
func (m *Map) Checksum() uint64 { return m.checksum }

// LookupMap returns the frozen (seed, checksum, nperms) triple recorded
// for a given child count. Only children in [2, MaxChildren] have an
// entry; anything else reports ErrNotFound. The upstream table lookup
// loop scans one entry past the table length, which the table's own
// sizing makes benign (see the permutation engine's open question); this
// implementation instead does a direct bounds check, which is equivalent
// for every children value that ever reaches this function.
func LookupMap(children uint64) (seed, checksum, nperms uint64, err error) {
	if children < 2 || children > MaxChildren {
		return 0, 0, 0, fmt.Errorf("%w: children=%d out of range [2,%d]", draiderrors.ErrNotFound, children, MaxChildren)
	}
	for i := range frozenTable {
		if frozenTable[i].children == children {
			e := frozenTable[i]
			return e.seed, e.checksum, e.nperms, nil
		}
	}
	return 0, 0, 0, fmt.Errorf("%w: children=%d", draiderrors.ErrNotFound, children)
}

// Generate builds a permutation map for the given children/seed/nperms.
// If expectedChecksum is non-zero, the freshly computed checksum must
// match it exactly or Generate fails with ErrChecksumMismatch. Every row
// is validated to be a permutation of [0, children); a violation is an
// ErrInvalidInput since it can only mean the frozen generation algorithm
// was reimplemented incorrectly.
func Generate(children, seed, nperms, expectedChecksum uint64) (*Map, error) {
	if children < 2 || children > MaxChildren {
		return nil, fmt.Errorf("%w: children=%d out of range [2,%d]", draiderrors.ErrInvalidInput, children, MaxChildren)
	}
	if nperms == 0 {
		return nil, fmt.Errorf("%w: nperms must be positive", draiderrors.ErrInvalidInput)
	}

	rows := make([]byte, children*nperms)
	row := make([]byte, children)
	for i := range row {
		row[i] = byte(i)
	}
	copy(rows[0:children], row)

	rng := newPRNG(seed)
	for r := uint64(1); r < nperms; r++ {
		for j := int(children) - 1; j > 0; j-- {
			k := int(rng.next() % uint64(j+1))
			row[j], row[k] = row[k], row[j]
		}
		copy(rows[r*children:(r+1)*children], row)
	}

	if err := checkRows(rows, children, nperms); err != nil {
		return nil, err
	}

	sum := mapChecksum(rows)
	if expectedChecksum != 0 && sum != expectedChecksum {
		return nil, fmt.Errorf("%w: computed=0x%x expected=0x%x", draiderrors.ErrChecksumMismatch, sum, expectedChecksum)
	}

	glog.V(2).Infof("permutation: generated map children=%d nperms=%d seed=0x%x checksum=0x%x", children, nperms, seed, sum)

	return &Map{
		children: children,
		nperms:   nperms,
		seed:     seed,
		checksum: sum,
		rows:     rows,
	}, nil
}

// GenerateFromTable builds the frozen map for a given children count by
// looking up its seed/checksum/nperms in the canonical table first.
func GenerateFromTable(children uint64) (*Map, error) {
	seed, checksum, nperms, err := LookupMap(children)
	if err != nil {
		return nil, err
	}
	return Generate(children, seed, nperms, checksum)
}

// checkRows verifies every row is a permutation of [0, children) using a
// single-pass tally: counts[v] is set to the row index the moment v is
// first seen in that row, and a duplicate is detected the instant the
// tally already records the current row index.
func checkRows(rows []byte, children, nperms uint64) error {
	counts := make([]uint64, children)
	for i := range counts {
		counts[i] = ^uint64(0)
	}
	for r := uint64(0); r < nperms; r++ {
		row := rows[r*children : (r+1)*children]
		for _, v := range row {
			if uint64(v) >= children {
				return fmt.Errorf("%w: row %d has out-of-range value %d", draiderrors.ErrInvalidInput, r, v)
			}
			if counts[v] == r {
				return fmt.Errorf("%w: row %d has duplicate value %d", draiderrors.ErrInvalidInput, r, v)
			}
			counts[v] = r
		}
	}
	return nil
}

// GetPerm returns the row base slice and rotation for permutation index
// pindex, per the rotation trick: nperms rows expand to children*nperms
// effective permutations by rotating each row by iter = pindex mod
// children.
func (m *Map) GetPerm(pindex uint64) (base []byte, iter uint64) {
	ncols := m.children
	poff := pindex % (m.nperms * ncols)
	rowIdx := poff / ncols
	iter = poff % ncols
	base = m.rows[rowIdx*ncols : (rowIdx+1)*ncols]
	return base, iter
}

// PermuteID returns the effective child at column index for a given
// (base, iter) pair obtained from GetPerm.
func (m *Map) PermuteID(base []byte, iter uint64, index uint64) uint64 {
	return (uint64(base[index]) + iter) % m.children
}
