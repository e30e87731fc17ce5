package config

import (
	"errors"
	"testing"

	draiderrors "github.com/openzfs/draid/internal/draid/errors"
)

func TestNewValidConfig(t *testing.T) {
	cfg, err := New(8, 1, 2, 14, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GroupWidth != 9 {
		t.Errorf("groupwidth = %d, want 9", cfg.GroupWidth)
	}
	if cfg.Ndisks != 12 {
		t.Errorf("ndisks = %d, want 12", cfg.Ndisks)
	}
	if cfg.DevSliceSize%RowSize != 0 {
		t.Errorf("devslicesize %d not a multiple of rowsize %d", cfg.DevSliceSize, RowSize)
	}
	if cfg.Map == nil {
		t.Fatal("expected a generated permutation map")
	}
}

func TestNewRejectsBadParity(t *testing.T) {
	if _, err := New(8, 0, 2, 14, 4); !errors.Is(err, draiderrors.ErrInvalidInput) {
		t.Fatalf("nparity=0: expected ErrInvalidInput, got %v", err)
	}
	if _, err := New(8, 4, 2, 14, 4); !errors.Is(err, draiderrors.ErrInvalidInput) {
		t.Fatalf("nparity=4: expected ErrInvalidInput, got %v", err)
	}
}

func TestNewRejectsTooFewChildren(t *testing.T) {
	if _, err := New(8, 1, 0, 8, 1); !errors.Is(err, draiderrors.ErrInvalidInput) {
		t.Fatalf("children=8 below groupwidth=9: expected ErrInvalidInput, got %v", err)
	}
}

func TestNewRejectsSparesOverflow(t *testing.T) {
	if _, err := New(8, 1, 14, 14, 4); !errors.Is(err, draiderrors.ErrInvalidInput) {
		t.Fatalf("nspares==children: expected ErrInvalidInput, got %v", err)
	}
}

func TestNewRejectsMisalignedGroups(t *testing.T) {
	// groupwidth=9, ndisks=12: ngroups must make (9*ngroups) a multiple of 12.
	if _, err := New(8, 1, 2, 14, 1); !errors.Is(err, draiderrors.ErrInvalidInput) {
		t.Fatalf("ngroups=1: expected ErrInvalidInput, got %v", err)
	}
}

func TestNewRejectsChildrenOutOfTableRange(t *testing.T) {
	if _, err := New(1, 1, 0, 1, 1); !errors.Is(err, draiderrors.ErrInvalidInput) {
		t.Fatalf("children=1: expected ErrInvalidInput, got %v", err)
	}
}
