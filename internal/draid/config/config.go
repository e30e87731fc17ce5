// Package config validates and derives the per-vdev dRAID configuration:
// the fixed parameters read from the pool's configuration at open time,
// plus everything that can be computed from them once and reused for
// the vdev's lifetime.
package config

import (
	"fmt"

	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/openzfs/draid/internal/draid/permutation"
)

// RowSize is the frozen on-disk row size constant: the pool's maximum
// block size. It must never change once any pool has been created,
// since every physical offset computation is scaled by it.
const RowSize = 1 << 24 // 16 MiB, i.e. 1 << MAX_BLOCK_SHIFT

// MaxParity is the largest supported parity count.
const MaxParity = 3

// Config is the immutable, derived configuration for one dRAID
// top-level vdev. Built once at open and never mutated afterward.
type Config struct {
	Ndata    uint64
	Nparity  uint64
	Nspares  uint64
	Children uint64
	Ngroups  uint64

	GroupWidth    uint64
	Ndisks        uint64
	GroupSize     uint64
	DevSliceSize  uint64

	Map *permutation.Map
}

// New validates the raw parameters per spec.md §6's configuration
// constraints, builds the permutation map from the frozen table, and
// derives the geometry constants used throughout the rest of the
// package set.
func New(ndata, nparity, nspares, children, ngroups uint64) (*Config, error) {
	if nparity < 1 || nparity > MaxParity {
		return nil, fmt.Errorf("%w: nparity=%d out of range [1,%d]", draiderrors.ErrInvalidInput, nparity, MaxParity)
	}
	if children < nparity+1 {
		return nil, fmt.Errorf("%w: children=%d must be >= nparity+1=%d", draiderrors.ErrInvalidInput, children, nparity+1)
	}
	if children > permutation.MaxChildren {
		return nil, fmt.Errorf("%w: children=%d exceeds MaxChildren=%d", draiderrors.ErrInvalidInput, children, permutation.MaxChildren)
	}
	if nspares >= children {
		return nil, fmt.Errorf("%w: nspares=%d must be less than children=%d", draiderrors.ErrInvalidInput, nspares, children)
	}

	groupWidth := ndata + nparity
	ndisks := children - nspares

	if groupWidth < 2 {
		return nil, fmt.Errorf("%w: groupwidth=%d must be >= 2", draiderrors.ErrInvalidInput, groupWidth)
	}
	if groupWidth > ndisks {
		return nil, fmt.Errorf("%w: groupwidth=%d must be <= ndisks=%d", draiderrors.ErrInvalidInput, groupWidth, ndisks)
	}
	if ngroups == 0 {
		return nil, fmt.Errorf("%w: ngroups must be positive", draiderrors.ErrInvalidInput)
	}
	if (groupWidth*ngroups)%ndisks != 0 {
		return nil, fmt.Errorf("%w: groupwidth*ngroups=%d must be a multiple of ndisks=%d", draiderrors.ErrInvalidInput, groupWidth*ngroups, ndisks)
	}

	groupSize := groupWidth * RowSize
	devSliceSize := (groupSize * ngroups) / ndisks
	if devSliceSize%RowSize != 0 {
		return nil, fmt.Errorf("%w: devslicesize=%d must be a multiple of rowsize=%d", draiderrors.ErrInvalidInput, devSliceSize, RowSize)
	}

	pmap, err := permutation.GenerateFromTable(children)
	if err != nil {
		return nil, err
	}

	return &Config{
		Ndata:        ndata,
		Nparity:      nparity,
		Nspares:      nspares,
		Children:     children,
		Ngroups:      ngroups,
		GroupWidth:   groupWidth,
		Ndisks:       ndisks,
		GroupSize:    groupSize,
		DevSliceSize: devSliceSize,
		Map:          pmap,
	}, nil
}
