package geometry

import (
	"testing"

	"github.com/openzfs/draid/internal/draid/config"
)

func mustConfig(t *testing.T, ndata, nparity, nspares, children, ngroups uint64) *config.Config {
	t.Helper()
	cfg, err := config.New(ndata, nparity, nspares, children, ngroups)
	if err != nil {
		t.Fatalf("config.New failed: %v", err)
	}
	return cfg
}

// TestScenario1 mirrors the first concrete scenario: children=14, ndata=8,
// nparity=1, nspares=2, write at offset 0. ngroups=4 here rather than the
// spec's worked-example value of 13, which fails its own
// (groupwidth*ngroups) mod ndisks == 0 alignment invariant for this
// (groupwidth=9, ndisks=12) shape; 4 is the smallest self-consistent
// substitute.
func TestScenario1(t *testing.T) {
	cfg := mustConfig(t, 8, 1, 2, 14, 4)
	geo := New(cfg, 12) // ashift=12 -> 4096-byte sectors

	if cfg.GroupWidth != 9 {
		t.Fatalf("groupwidth = %d, want 9", cfg.GroupWidth)
	}
	if cfg.Ndisks != 12 {
		t.Fatalf("ndisks = %d, want 12", cfg.Ndisks)
	}

	phys, err := geo.LogicalToPhysical(0)
	if err != nil {
		t.Fatal(err)
	}
	if phys.PermIndex != 0 {
		t.Errorf("perm = %d, want 0", phys.PermIndex)
	}
	if phys.GroupStartCol != 0 {
		t.Errorf("group_start_col = %d, want 0", phys.GroupStartCol)
	}
	if phys.RowOffset != 0 {
		t.Errorf("row_offset = %d, want 0", phys.RowOffset)
	}
}

// TestScenario3 mirrors the group-wrap scenario: reading at offset
// group_size should start at column 9 mod 12 = 9 and wrap after 3
// columns (12-9=3).
func TestScenario3(t *testing.T) {
	cfg := mustConfig(t, 8, 1, 2, 14, 4)
	geo := New(cfg, 12)

	phys, err := geo.LogicalToPhysical(cfg.GroupSize)
	if err != nil {
		t.Fatal(err)
	}
	if phys.GroupStartCol != 9 {
		t.Fatalf("group_start_col = %d, want 9", phys.GroupStartCol)
	}
	if !phys.GroupWraps {
		t.Fatal("expected group to wrap")
	}
	if phys.WrapColumn != 3 {
		t.Fatalf("wrap column = %d, want 3", phys.WrapColumn)
	}
}

func TestAsizePsizeRoundTrip(t *testing.T) {
	cfg := mustConfig(t, 8, 1, 2, 14, 4)
	geo := New(cfg, 12)

	for _, psize := range []uint64{4096, 32768, 65536, 8 * 4096 * 3} {
		asize := geo.Asize(psize)
		gotPsize := geo.Psize(asize)
		asize2 := geo.Asize(gotPsize)
		if asize2 != asize {
			t.Errorf("psize=%d: asize(psize(asize(p)))=%d != asize(p)=%d", psize, asize2, asize)
		}
	}
}

// TestXlate covers a multi-sector range that is narrower than a full
// group (20 sectors against a groupwidth of 9), checking the physical
// size Xlate reports for the resolved child matches
// ceil(sizeInSectors/groupwidth) sectors, per vdev_draid_xlate's
// b_size/end derivation.
func TestXlate(t *testing.T) {
	cfg := mustConfig(t, 8, 1, 2, 14, 4)
	geo := New(cfg, 12)
	sector := geo.SectorSize()

	phys, err := geo.LogicalToPhysical(0)
	if err != nil {
		t.Fatal(err)
	}
	base, iter := cfg.Map.GetPerm(phys.PermIndex)
	childIdx := cfg.Map.PermuteID(base, iter, phys.GroupStartCol)

	size := 20 * sector
	physOffset, physSize, ok := geo.Xlate(childIdx, 0, size)
	if !ok {
		t.Fatal("expected Xlate to resolve the group's first column")
	}
	if physOffset != phys.RowOffset {
		t.Errorf("physOffset = %d, want %d", physOffset, phys.RowOffset)
	}
	wantSize := uint64(3) * sector // ceil(20/9) == 3 sectors
	if physSize != wantSize {
		t.Errorf("physSize = %d, want %d", physSize, wantSize)
	}
}

// TestXlateUnknownChildFails covers the case where childIdx does not
// belong to the offset's group.
func TestXlateUnknownChildFails(t *testing.T) {
	cfg := mustConfig(t, 8, 1, 2, 14, 4)
	geo := New(cfg, 12)

	if _, _, ok := geo.Xlate(cfg.Children, 0, geo.SectorSize()); ok {
		t.Fatal("expected Xlate to fail for a child outside the group's column set")
	}
}

func TestMetaslabInitAlignment(t *testing.T) {
	cfg := mustConfig(t, 8, 1, 2, 14, 4)
	geo := New(cfg, 12)
	align := cfg.GroupWidth * geo.SectorSize()

	for _, start := range []uint64{0, 1, 4095, 4096, 100000} {
		aStart, aSize := geo.MetaslabInit(start, 10*align)
		if aStart%align != 0 {
			t.Errorf("start=%d: aligned start %d not a multiple of %d", start, aStart, align)
		}
		if aSize%align != 0 {
			t.Errorf("start=%d: aligned size %d not a multiple of %d", start, aSize, align)
		}
	}
}
