package spare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzfs/draid/internal/draid/config"
	draiderrors "github.com/openzfs/draid/internal/draid/errors"
	"github.com/openzfs/draid/internal/draid/vdev"
)

func TestFormatNameCanonical(t *testing.T) {
	got := FormatName(Identity{Parity: 1, VdevID: 0, SpareID: 0})
	assert.Equal(t, "draid1-0-0", got)
}

func TestParseNameRoundTrip(t *testing.T) {
	id, err := ParseName("draid1-0-0")
	require.NoError(t, err)
	assert.Equal(t, Identity{Parity: 1, VdevID: 0, SpareID: 0}, id)
	assert.Equal(t, "draid1-0-0", FormatName(id))
}

func TestParseNameRejectsMissingField(t *testing.T) {
	_, err := ParseName("draid1-0")
	assert.ErrorIs(t, err, draiderrors.ErrInvalidInput)
}

func TestParseNameRejectsTrailingGarbage(t *testing.T) {
	_, err := ParseName("draid1-0-0-extra")
	assert.ErrorIs(t, err, draiderrors.ErrInvalidInput)
}

// fakeLeaf is a trivial in-memory vdev.ChildVdev used as a spare's
// resolved backing child.
type fakeLeaf struct {
	id       uint64
	store    []byte
	readable bool
}

func newFakeLeaf(id uint64, size uint64) *fakeLeaf {
	return &fakeLeaf{id: id, store: make([]byte, size), readable: true}
}

func (f *fakeLeaf) ID() uint64          { return f.id }
func (f *fakeLeaf) IsSpare() bool       { return false }
func (f *fakeLeaf) IsReplacing() bool   { return false }
func (f *fakeLeaf) HasTrim() bool       { return true }
func (f *fakeLeaf) Open() (uint64, error) {
	return uint64(len(f.store)), nil
}
func (f *fakeLeaf) Close() error { return nil }
func (f *fakeLeaf) IsReadable(offset, size uint64) bool {
	return f.readable
}
func (f *fakeLeaf) Read(offset uint64, buf []byte, flags vdev.IOFlag) error {
	copy(buf, f.store[offset:offset+uint64(len(buf))])
	return nil
}
func (f *fakeLeaf) Write(offset uint64, buf []byte, flags vdev.IOFlag) error {
	copy(f.store[offset:offset+uint64(len(buf))], buf)
	return nil
}
func (f *fakeLeaf) Flush() error                   { return nil }
func (f *fakeLeaf) Trim(offset, size uint64) error { return nil }

// fakeParent implements Parent over a fixed child list, covering a
// plain top-level vdev's exposed surface without needing a real
// vdev.TopLevel.
type fakeParent struct {
	cfg      *config.Config
	children []vdev.ChildVdev
}

func (p *fakeParent) Config() *config.Config { return p.cfg }
func (p *fakeParent) Child(devidx uint64) vdev.ChildVdev {
	if devidx >= uint64(len(p.children)) {
		return nil
	}
	return p.children[devidx]
}

func newTestParent(t *testing.T) *fakeParent {
	t.Helper()
	cfg, err := config.New(8, 1, 2, 14, 4)
	require.NoError(t, err)
	children := make([]vdev.ChildVdev, cfg.Children)
	for i := uint64(0); i < cfg.Children; i++ {
		children[i] = newFakeLeaf(i, cfg.DevSliceSize*2)
	}
	return &fakeParent{cfg: cfg, children: children}
}

func TestOpenValidatesParity(t *testing.T) {
	parent := newTestParent(t)
	_, err := Open("draid2-0-0", parent, 0, 0)
	assert.ErrorIs(t, err, draiderrors.ErrInvalidInput)
}

func TestOpenValidatesSpareIDRange(t *testing.T) {
	parent := newTestParent(t)
	_, err := Open("draid1-0-5", parent, 0, 0)
	assert.ErrorIs(t, err, draiderrors.ErrInvalidInput)
}

func TestOpenSucceedsAndReportsPsize(t *testing.T) {
	parent := newTestParent(t)
	s, err := Open("draid1-0-0", parent, 4096, 4096)
	require.NoError(t, err)
	assert.Equal(t, parent.cfg.DevSliceSize+8192, s.Psize())
}

func TestGetChildResolvesTailColumn(t *testing.T) {
	parent := newTestParent(t)
	s, err := Open("draid1-0-0", parent, 0, 0)
	require.NoError(t, err)

	child, cid, err := s.GetChild(0)
	require.NoError(t, err)
	assert.NotNil(t, child)
	assert.Less(t, cid, parent.cfg.Children)
}

func TestLabelRangeProbeSucceedsOtherFlagsFail(t *testing.T) {
	parent := newTestParent(t)
	s, err := Open("draid1-0-0", parent, 4096, 4096)
	require.NoError(t, err)

	buf := make([]byte, 4096)
	require.NoError(t, s.Read(0, buf, vdev.IOFlagProbe))
	for _, b := range buf {
		assert.Zero(t, b)
	}

	err = s.Write(0, buf, vdev.IOFlagNormal)
	assert.ErrorIs(t, err, draiderrors.ErrIoError)
}

func TestWriteThenReadThroughResolvedChild(t *testing.T) {
	parent := newTestParent(t)
	s, err := Open("draid1-0-0", parent, 0, 0)
	require.NoError(t, err)

	offset := parent.cfg.DevSliceSize // second permutation slice, clear of labels
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	require.NoError(t, s.Write(offset, data, vdev.IOFlagNormal))

	buf := make([]byte, 4096)
	require.NoError(t, s.Read(offset, buf, vdev.IOFlagNormal))
	assert.Equal(t, data, buf)
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(ParentKindDraid))
	assert.True(t, IsActive(ParentKindReplacing))
	assert.True(t, IsActive(ParentKindSpare))
	assert.False(t, IsActive(ParentKindNone))
}
