// sample.go - XOF-driven samplers: rejection sampling for uniform T_q
// polynomials, and the centered binomial distribution for noise.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// sampleNTT deterministically samples a uniformly-random-looking T_q
// polynomial from a 32-byte seed rho and two index bytes, by rejection
// sampling SHAKE128(rho || i || j) three bytes at a time (spec.md §4.3).
// d1 is always considered before d2 for a given triple, and squeezing
// continues until exactly 256 coefficients have been accepted.
func sampleNTT(rho []byte, i, j byte) *poly {
	xof := sha3.NewShake128()
	xof.Write(rho)
	xof.Write([]byte{i, j})

	p := &poly{}
	var buf [3]byte
	count := 0
	for count < n {
		if _, err := xof.Read(buf[:]); err != nil {
			panic(err) // SHAKE128 XOF reads never fail.
		}

		d1 := uint16(buf[0]) | (uint16(buf[1]&0x0F) << 8)
		d2 := uint16(buf[1]>>4) | (uint16(buf[2]) << 4)

		if d1 < q {
			p.cs[count] = d1
			count++
		}
		if d2 < q && count < n {
			p.cs[count] = d2
			count++
		}
	}
	return p
}

// prf squeezes outLen bytes of SHAKE256(seed || b); the noise-sampling PRF
// of spec.md §4.3 and §4.6.
func prf(seed []byte, b byte, outLen int) []byte {
	buf := make([]byte, len(seed)+1)
	copy(buf, seed)
	buf[len(seed)] = b

	out := make([]byte, outLen)
	sha3.ShakeSum256(out, buf)
	return out
}

// sampleCBD draws a polynomial from the centered binomial distribution
// with parameter eta, seeded by a 32-byte value and a nonce byte
// (spec.md §4.3). For each coefficient, eta bits form x, the next eta
// bits form y, and the coefficient is (x-y) mod q.
func sampleCBD(seed []byte, b byte, eta int) *poly {
	buf := prf(seed, b, 64*eta)

	p := &poly{}
	for i := 0; i < n; i++ {
		var x, y uint16
		for k := 0; k < eta; k++ {
			off := 2*eta*i + k
			x += uint16((buf[off/8] >> uint(off%8)) & 1)
		}
		for k := 0; k < eta; k++ {
			off := 2*eta*i + eta + k
			y += uint16((buf[off/8] >> uint(off%8)) & 1)
		}
		p.cs[i] = uint16((uint32(x) + q - uint32(y)) % q)
	}
	return p
}
