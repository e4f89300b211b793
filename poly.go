// poly.go - polynomials over R_q = Z_q[X]/(X^256+1) and their NTT images.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// poly holds 256 field elements, interpreted either as coefficients of an
// element of R_q or of its NTT image in T_q. The storage is identical;
// which interpretation applies is tracked by the caller, per spec.md §3.
type poly struct {
	cs [n]uint16
}

// add computes p = a + b component-wise mod q.
func (p *poly) add(a, b *poly) {
	for i := range p.cs {
		p.cs[i] = fieldAdd(a.cs[i], b.cs[i])
	}
}

// sub computes p = a - b component-wise mod q.
func (p *poly) sub(a, b *poly) {
	for i := range p.cs {
		p.cs[i] = fieldSub(a.cs[i], b.cs[i])
	}
}

// ntt computes the forward number-theoretic transform of p in place.
// Input is assumed to be a normal-order R_q polynomial; the output is its
// T_q image, addressed in bit-reversed block order (spec.md §4.2).
func (p *poly) ntt() {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			z := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fieldMul(z, p.cs[j+length])
				p.cs[j+length] = fieldSub(p.cs[j], t)
				p.cs[j] = fieldAdd(p.cs[j], t)
			}
		}
	}
}

// invNTT computes the inverse number-theoretic transform of p in place,
// undoing ntt exactly (spec.md §8 #4). Input is a T_q polynomial; output
// is its R_q coefficients.
func (p *poly) invNTT() {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			z := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p.cs[j]
				p.cs[j] = fieldAdd(t, p.cs[j+length])
				p.cs[j+length] = fieldMul(z, fieldSub(p.cs[j+length], t))
			}
		}
	}
	for i := range p.cs {
		p.cs[i] = fieldMul(p.cs[i], nttInvNormalization)
	}
}

// baseMul computes the NTT-domain pointwise product c = a*b, where a and b
// are both T_q polynomials. The ring factors into 128 quadratic extensions
// X^2 - gammas[i]; within each, (a0+a1*X)*(b0+b1*X) reduces via gammas[i]
// (spec.md §4.2).
func (c *poly) baseMul(a, b *poly) {
	for i := 0; i < n/2; i++ {
		a0, a1 := a.cs[2*i], a.cs[2*i+1]
		b0, b1 := b.cs[2*i], b.cs[2*i+1]

		hi := uint32(a1) * uint32(b1) % q * uint32(gammas[i]) % q
		c0 := (uint32(a0)*uint32(b0) + hi) % q
		c1 := (uint32(a0)*uint32(b1) + uint32(a1)*uint32(b0)) % q

		c.cs[2*i] = uint16(c0)
		c.cs[2*i+1] = uint16(c1)
	}
}
