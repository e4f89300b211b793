// field_test.go - field and table invariant tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {
	require := require.New(t)

	for a := uint32(1); a < q; a++ {
		inv := modInverse(a, q)
		require.Equal(uint32(1), (a*inv)%q, "a=%d: a*a^-1 != 1 mod q", a)
	}
}

// TestZetaOrder checks that zeta = 17 is a primitive 256th root of unity
// mod q: zeta^128 == -1 mod q, and zeta^256 == 1 mod q.
func TestZetaOrder(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(q-1), modPow(zeta, 128, q), "zeta^128 != -1 mod q")
	require.Equal(uint32(1), modPow(zeta, 256, q), "zeta^256 != 1 mod q")
}

// TestNTTInvNormalization checks that the inverse-NTT scaling constant is
// 128^-1 mod q == 3303, the value spec.md documents as correct (as opposed
// to 3308, a typo present in the source this package's algorithms are
// grounded on; see tables.go and DESIGN.md).
func TestNTTInvNormalization(t *testing.T) {
	require := require.New(t)
	require.Equal(uint16(3303), nttInvNormalization)
}

// TestZetasDistinct sanity-checks that the twiddle table was actually
// populated (not left all-zero by a broken init order).
func TestZetasDistinct(t *testing.T) {
	require := require.New(t)

	seen := make(map[uint16]bool)
	for _, z := range zetas {
		seen[z] = true
	}
	require.Greater(len(seen), 100, "zetas table looks degenerate")
}
