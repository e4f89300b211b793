// tables.go - precomputed NTT twiddle and base-multiply tables.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// zeta is the primitive 256-th root of unity mod q used throughout FIPS 203.
const zeta = 17

// zetas[k] = zeta^bitrev7(k) mod q, for k = 0..127. Used by the forward and
// inverse NTT butterflies (spec.md §4.2).
var zetas [128]uint16

// gammas[i] = zeta^(2*bitrev7(i)+1) mod q, for i = 0..127. These are the
// per-quadratic-factor constants used by the NTT-domain base multiply
// (spec.md §4.2's "MUL table").
//
// Both tables are derived from their closed-form definitions at init time
// instead of being copied as literal constants. spec.md §9 documents that
// the reference C source this spec was distilled from contains two
// materially different tables under the "MUL_LUT" name in different
// files, plus a normalization-constant typo (3308 vs the correct 3303);
// computing from the formula sidesteps both hazards, and the ring-
// multiplication test (TestRingMultiplication, spec.md §8 #5) is the
// independent check that the formula below is the convention that
// actually round-trips.
var nttInvNormalization uint16

// bitrev7 reverses the low 7 bits of x.
func bitrev7(x int) int {
	r := 0
	for i := 0; i < 7; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

func init() {
	for k := 0; k < 128; k++ {
		zetas[k] = uint16(modPow(zeta, uint32(bitrev7(k)), q))
	}
	for i := 0; i < 128; i++ {
		gammas[i] = uint16(modPow(zeta, uint32(2*bitrev7(i)+1), q))
	}
	// 128^-1 mod q; the correct normalization constant for the inverse
	// NTT's final scaling pass (spec.md §4.2, §9).
	nttInvNormalization = uint16(modInverse(128, q))
}

var gammas [128]uint16
