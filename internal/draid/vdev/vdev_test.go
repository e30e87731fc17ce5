package vdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openzfs/draid/internal/draid/config"
	"github.com/openzfs/draid/internal/draid/stripe"
)

// memChild is an in-memory ChildVdev backed by a flat byte slice, used to
// exercise TopLevel's I/O paths without a real block device.
type memChild struct {
	id       uint64
	spare    bool
	store    []byte
	readable bool
}

func newMemChild(id uint64, size uint64) *memChild {
	return &memChild{id: id, store: make([]byte, size), readable: true}
}

func (c *memChild) ID() uint64          { return c.id }
func (c *memChild) IsSpare() bool       { return c.spare }
func (c *memChild) IsReplacing() bool   { return false }
func (c *memChild) HasTrim() bool       { return false }
func (c *memChild) Open() (uint64, error) {
	return uint64(len(c.store)), nil
}
func (c *memChild) Close() error { return nil }
func (c *memChild) IsReadable(offset, size uint64) bool {
	return c.readable
}
func (c *memChild) Read(offset uint64, buf []byte, flags IOFlag) error {
	copy(buf, c.store[offset:offset+uint64(len(buf))])
	return nil
}
func (c *memChild) Write(offset uint64, buf []byte, flags IOFlag) error {
	copy(c.store[offset:offset+uint64(len(buf))], buf)
	return nil
}
func (c *memChild) Flush() error                    { return nil }
func (c *memChild) Trim(offset, size uint64) error  { return nil }

type fakeDTL struct{}

func (fakeDTL) Contains(kind DTLKind, offset, size, txg uint64) bool { return false }

func newTestVdev(t *testing.T) (*TopLevel, []*memChild) {
	t.Helper()
	cfg, err := config.New(8, 1, 2, 14, 4)
	require.NoError(t, err)

	children := make([]ChildVdev, cfg.Children)
	raw := make([]*memChild, cfg.Children)
	const perChildSize = 64 << 20
	for i := uint64(0); i < cfg.Children; i++ {
		mc := newMemChild(i, perChildSize)
		raw[i] = mc
		children[i] = mc
	}

	tl, err := Open(cfg, 12, children, fakeDTL{})
	require.NoError(t, err)
	return tl, raw
}

func TestOpenComputesAsize(t *testing.T) {
	tl, _ := newTestVdev(t)
	assert.Greater(t, tl.Asize(), uint64(0))
	assert.Equal(t, uint64(0), tl.Asize()%tl.Config().GroupSize)
}

func TestOpenToleratesUpToNparityFailures(t *testing.T) {
	cfg, err := config.New(8, 1, 2, 14, 4)
	require.NoError(t, err)

	children := make([]ChildVdev, cfg.Children)
	for i := uint64(0); i < cfg.Children; i++ {
		children[i] = newMemChild(i, 64<<20)
	}
	// Fail exactly nparity=1 real child; Open should still succeed.
	children[0] = &okThenFailOnce{memChild: newMemChild(0, 64<<20), failOpen: true}

	_, err = Open(cfg, 12, children, fakeDTL{})
	require.NoError(t, err)
}

func TestOpenFailsWhenTooManyChildrenFail(t *testing.T) {
	cfg, err := config.New(8, 1, 2, 14, 4)
	require.NoError(t, err)

	children := make([]ChildVdev, cfg.Children)
	for i := uint64(0); i < cfg.Children; i++ {
		if i < 2 {
			children[i] = &failingChild{id: i}
			continue
		}
		children[i] = newMemChild(i, 64<<20)
	}

	_, err = Open(cfg, 12, children, fakeDTL{})
	assert.Error(t, err)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	tl, _ := newTestVdev(t)

	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 251)
	}

	require.NoError(t, tl.IOWrite(0, data, IOFlagNormal))

	got, missing, err := tl.IORead(0, 4096, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 0, missing)
	assert.Equal(t, data, got)
}

func TestReadReportsMissingColumns(t *testing.T) {
	tl, children := newTestVdev(t)

	data := make([]byte, 4096)
	require.NoError(t, tl.IOWrite(0, data, IOFlagNormal))

	rm, err := stripe.BuildRead(tl.Geometry(), 0, 4096)
	require.NoError(t, err)
	require.NotEmpty(t, rm.Columns)
	children[rm.Columns[0].DevIdx].readable = false

	_, missing, err := tl.IORead(0, 4096, 1, false)
	assert.Error(t, err)
	assert.Greater(t, missing, 0)
}

func TestGroupDegradedReflectsChildReadability(t *testing.T) {
	tl, children := newTestVdev(t)
	assert.False(t, tl.GroupDegraded(0))

	phys, err := tl.Geometry().LogicalToPhysical(0)
	require.NoError(t, err)
	base, iter := tl.Config().Map.GetPerm(phys.PermIndex)
	devidx := tl.Config().Map.PermuteID(base, iter, phys.GroupStartCol)

	children[devidx].readable = false
	assert.True(t, tl.GroupDegraded(0))
}

// failingChild always fails to Open, simulating a child that cannot be
// brought online at all.
type failingChild struct{ id uint64 }

func (c *failingChild) ID() uint64                                     { return c.id }
func (c *failingChild) IsSpare() bool                                  { return false }
func (c *failingChild) IsReplacing() bool                              { return false }
func (c *failingChild) HasTrim() bool                                  { return false }
func (c *failingChild) Open() (uint64, error)                         { return 0, assertErr }
func (c *failingChild) Close() error                                   { return nil }
func (c *failingChild) IsReadable(offset, size uint64) bool            { return false }
func (c *failingChild) Read(offset uint64, buf []byte, flags IOFlag) error {
	return assertErr
}
func (c *failingChild) Write(offset uint64, buf []byte, flags IOFlag) error {
	return assertErr
}
func (c *failingChild) Flush() error                   { return nil }
func (c *failingChild) Trim(offset, size uint64) error { return nil }

var assertErr = errOpenFailed{}

type errOpenFailed struct{}

func (errOpenFailed) Error() string { return "simulated open failure" }

// okThenFailOnce wraps a memChild but fails its first Open call, matching
// the shape of a child that is present but briefly unavailable.
type okThenFailOnce struct {
	*memChild
	failOpen bool
}

func (c *okThenFailOnce) Open() (uint64, error) {
	if c.failOpen {
		c.failOpen = false
		return 0, assertErr
	}
	return c.memChild.Open()
}
