package parity

import (
	"bytes"
	"testing"
)

func TestGenerateParityAndReconstruct(t *testing.T) {
	codec, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}

	const shardSize = 4096
	shards := make([][]byte, 6)
	for i := 2; i < 6; i++ { // columns 0,1 are parity; 2..5 are data
		shards[i] = bytes.Repeat([]byte{byte(i)}, shardSize)
	}
	shards[0] = make([]byte, shardSize)
	shards[1] = make([]byte, shardSize)

	if err := codec.GenerateParity(shards); err != nil {
		t.Fatal(err)
	}

	original := make([][]byte, len(shards))
	for i, s := range shards {
		original[i] = append([]byte(nil), s...)
	}

	// lose one data shard and one parity shard, within recoverable bounds.
	lost := []int{0, 3}
	damaged := make([][]byte, len(shards))
	copy(damaged, shards)
	for _, idx := range lost {
		damaged[idx] = nil
	}

	if err := codec.Reconstruct(damaged); err != nil {
		t.Fatal(err)
	}
	for _, idx := range lost {
		if !bytes.Equal(damaged[idx], original[idx]) {
			t.Errorf("shard %d not correctly reconstructed", idx)
		}
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	codec, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}

	const shardSize = 4096
	shards := make([][]byte, 6)
	for i := 2; i < 6; i++ {
		shards[i] = bytes.Repeat([]byte{byte(i)}, shardSize)
	}
	shards[0] = make([]byte, shardSize)
	shards[1] = make([]byte, shardSize)

	if err := codec.GenerateParity(shards); err != nil {
		t.Fatal(err)
	}

	ok, err := codec.Verify(shards)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("freshly generated parity should verify")
	}

	shards[5][0] ^= 0xff
	ok, err = codec.Verify(shards)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("corrupted data shard should fail verification")
	}
}

func TestGenerateParityRejectsShardCountMismatch(t *testing.T) {
	codec, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := codec.GenerateParity(make([][]byte, 3)); err == nil {
		t.Fatal("expected an error for a wrong shard count")
	}
}
