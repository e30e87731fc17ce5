package permutation

import "encoding/binary"

// fletcher4 computes the four running-sum accumulators of the Fletcher4
// family over buf, which must have a length that is a multiple of 4
// (guaranteed here since every permutation map's byte length is
// children*nperms with nperms fixed at 256). Only the first accumulator
// is used by mapChecksum, matching the upstream map-validation routine,
// but all four are computed for fidelity to the algorithm family.
func fletcher4(buf []byte) [4]uint64 {
	var a, b, c, d uint64
	for i := 0; i+4 <= len(buf); i += 4 {
		a += uint64(binary.LittleEndian.Uint32(buf[i : i+4]))
		b += a
		c += b
		d += c
	}
	return [4]uint64{a, b, c, d}
}

// mapChecksum returns the 64-bit checksum recorded for a permutation map:
// the first Fletcher4 accumulator over its flat row bytes.
func mapChecksum(rows []byte) uint64 {
	sums := fletcher4(rows)
	return sums[0]
}
