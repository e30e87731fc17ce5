package stripe

import (
	"testing"

	"github.com/openzfs/draid/internal/draid/config"
	"github.com/openzfs/draid/internal/draid/geometry"
)

func testGeometry(t *testing.T) *geometry.Geometry {
	t.Helper()
	cfg, err := config.New(8, 1, 2, 14, 4)
	if err != nil {
		t.Fatalf("config.New failed: %v", err)
	}
	return geometry.New(cfg, 12)
}

func TestBuildWriteSingleSectorBlock(t *testing.T) {
	geo := testGeometry(t)
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}

	rm, err := BuildWrite(geo, 0, data)
	if err != nil {
		t.Fatal(err)
	}
	if rm.Scols != 9 {
		t.Errorf("scols = %d, want 9", rm.Scols)
	}
	if rm.FirstDataCol != 1 {
		t.Errorf("first_data_col = %d, want 1", rm.FirstDataCol)
	}
	if rm.ParitySize != 4096 {
		t.Errorf("parity_size = %d, want 4096", rm.ParitySize)
	}
	if rm.Asize != 8192 {
		t.Errorf("asize = %d, want 8192", rm.Asize)
	}
	if rm.Nskip != 7 {
		t.Errorf("nskip = %d, want 7", rm.Nskip)
	}
	if len(rm.Columns) != 9 {
		t.Fatalf("len(columns) = %d, want 9", len(rm.Columns))
	}
	if !rm.Columns[0].IsParity {
		t.Error("column 0 should be parity")
	}
	if rm.Columns[1].Skipped {
		t.Error("column 1 carries real data, should not be skipped")
	}
	for i := 2; i < 9; i++ {
		if !rm.Columns[i].Skipped {
			t.Errorf("column %d should be a pure-skip column", i)
		}
		if rm.Columns[i].Buf.SkipLen != int(rm.ParitySize) {
			t.Errorf("column %d skip length = %d, want %d", i, rm.Columns[i].Buf.SkipLen, rm.ParitySize)
		}
	}

	// every device index assigned to a column must be distinct.
	seen := make(map[uint64]bool)
	for _, c := range rm.Columns {
		if seen[c.DevIdx] {
			t.Fatalf("device index %d assigned to more than one column", c.DevIdx)
		}
		seen[c.DevIdx] = true
	}
}

func TestBuildWriteRejectsUnalignedSize(t *testing.T) {
	geo := testGeometry(t)
	if _, err := BuildWrite(geo, 0, make([]byte, 100)); err == nil {
		t.Fatal("expected an error for a non-sector-aligned write")
	}
}

func TestBuildReadOmitsParityColumns(t *testing.T) {
	geo := testGeometry(t)
	rm, err := BuildRead(geo, 0, 4096)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range rm.Columns {
		if c.IsParity {
			t.Error("BuildRead should never include a parity column")
		}
	}
	if len(rm.Columns) == 0 {
		t.Fatal("expected at least one data column")
	}
}

func TestBuildScrubAllocatesSkipBuf(t *testing.T) {
	geo := testGeometry(t)
	rm, err := BuildScrub(geo, 0, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if len(rm.SkipBuf) != int(rm.Nskip)*int(geo.SectorSize()) {
		t.Fatalf("len(SkipBuf) = %d, want %d", len(rm.SkipBuf), int(rm.Nskip)*int(geo.SectorSize()))
	}
	if len(rm.Columns) != 9 {
		t.Fatalf("len(columns) = %d, want 9 (scrub lays out the full stripe)", len(rm.Columns))
	}
}

func TestBufferBytesCompositesSkip(t *testing.T) {
	b := Buffer{Real: []byte{1, 2, 3}, SkipLen: 2}
	got := b.Bytes()
	want := []byte{1, 2, 3, 0, 0}
	if string(got) != string(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	if b.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", b.Len())
	}
}
