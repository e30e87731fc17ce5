// Package parity wraps github.com/klauspost/reedsolomon as the black-box
// parity generator/reconstructor dRAID's stripe builder hands its column
// buffers to. RAIDZ's own P/Q/R math is out of scope here; this module
// only needs a column-shaped Reed-Solomon codec with the same
// (ndata, nparity) shape the stripe builder produces.
package parity

import (
	"fmt"

	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/klauspost/reedsolomon"
)

// Codec wraps a reedsolomon.Encoder sized for one DraidConfig's
// (ndata, nparity). Built once per vdev and reused across I/Os, the way
// the teacher package constructs its erasure-coding encoder once per
// volume rather than per request.
type Codec struct {
	ndata, nparity int
	enc            reedsolomon.Encoder
}

func New(ndata, nparity uint64) (*Codec, error) {
	enc, err := reedsolomon.New(int(ndata), int(nparity))
	if err != nil {
		return nil, fmt.Errorf("%w: reedsolomon.New: %v", draiderrors.ErrInvalidInput, err)
	}
	return &Codec{ndata: int(ndata), nparity: int(nparity), enc: enc}, nil
}

// GenerateParity fills the parity shards (the first c.nparity entries of
// shards) from the data shards (the remaining entries). All shards must
// already be allocated to the same length.
func (c *Codec) GenerateParity(shards [][]byte) error {
	if len(shards) != c.ndata+c.nparity {
		return fmt.Errorf("%w: expected %d shards, got %d", draiderrors.ErrInvalidInput, c.ndata+c.nparity, len(shards))
	}
	reordered := reorderParityLast(shards, c.nparity)
	if err := c.enc.Encode(reordered); err != nil {
		return fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
	}
	return nil
}

// Reconstruct fills in any nil entries of shards (data or parity) given
// enough surviving shards to cover the loss. shards uses the same
// parity-first ordering dRAID's column layout does; Reconstruct handles
// the reordering reedsolomon expects internally.
func (c *Codec) Reconstruct(shards [][]byte) error {
	if len(shards) != c.ndata+c.nparity {
		return fmt.Errorf("%w: expected %d shards, got %d", draiderrors.ErrInvalidInput, c.ndata+c.nparity, len(shards))
	}
	reordered := reorderParityLast(shards, c.nparity)
	if err := c.enc.Reconstruct(reordered); err != nil {
		return fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
	}
	unreorderParityLast(shards, reordered, c.nparity)
	return nil
}

// Verify reports whether the existing parity shards are consistent with
// the data shards, without modifying anything.
func (c *Codec) Verify(shards [][]byte) (bool, error) {
	if len(shards) != c.ndata+c.nparity {
		return false, fmt.Errorf("%w: expected %d shards, got %d", draiderrors.ErrInvalidInput, c.ndata+c.nparity, len(shards))
	}
	reordered := reorderParityLast(shards, c.nparity)
	ok, err := c.enc.Verify(reordered)
	if err != nil {
		return false, fmt.Errorf("%w: %v", draiderrors.ErrIoError, err)
	}
	return ok, nil
}

// reorderParityLast converts dRAID's parity-first column ordering
// (columns 0..nparity-1 are parity, the rest are data) into the
// data-first ordering reedsolomon.Encoder expects.
func reorderParityLast(shards [][]byte, nparity int) [][]byte {
	out := make([][]byte, len(shards))
	copy(out, shards[nparity:])
	copy(out[len(shards)-nparity:], shards[:nparity])
	return out
}

// unreorderParityLast copies any shard reedsolomon filled in (a
// previously nil entry replaced with a newly allocated slice) in
// reordered's data-first ordering back into shards' parity-first
// ordering, the inverse of reorderParityLast's index mapping.
func unreorderParityLast(shards, reordered [][]byte, nparity int) {
	ndata := len(shards) - nparity
	for i := 0; i < ndata; i++ {
		shards[nparity+i] = reordered[i]
	}
	for i := 0; i < nparity; i++ {
		shards[i] = reordered[ndata+i]
	}
}
