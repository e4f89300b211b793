// polyvec.go - vectors and matrices of polynomials (spec.md §4.5).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// polyVec is a length-k vector of polynomials.
type polyVec []poly

// newPolyVec allocates a zeroed vector of rank k.
func newPolyVec(k int) polyVec {
	return make(polyVec, k)
}

// ntt applies the forward NTT to every element in place.
func (v polyVec) ntt() {
	for i := range v {
		v[i].ntt()
	}
}

// invNTT applies the inverse NTT to every element in place.
func (v polyVec) invNTT() {
	for i := range v {
		v[i].invNTT()
	}
}

// add computes v = a + b component-wise.
func (v polyVec) add(a, b polyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

// encode12 serializes a vector of NTT-domain (or R_q) polynomials as
// 384*k bytes, one poly.encode12 block per element.
func (v polyVec) encode12(out []byte) {
	for i := range v {
		v[i].encode12(out[384*i:])
	}
}

// decode12 is encode12's inverse.
func (v polyVec) decode12(in []byte) {
	for i := range v {
		v[i].decode12(in[384*i:])
	}
}

// matrix is a k*k row-major matrix of polynomials; element (i,j) is at
// index i*k+j (spec.md §3).
type matrix struct {
	k    int
	rows []poly
}

func newMatrix(k int) matrix {
	return matrix{k: k, rows: make([]poly, k*k)}
}

func (m matrix) at(i, j int) *poly {
	return &m.rows[i*m.k+j]
}

// sampleMatrix fills an k*k matrix in the NTT domain by rejection
// sampling, either as A (keygen) or its transpose (encryption) — spec.md
// §4.6, §9 "Matrix transposition in encaps vs keygen". The two index
// orderings are intentional; sampleMatrix(transposed=false) samples A[i][j]
// at (rho, i, j), and transposed=true samples at (rho, j, i).
func sampleMatrix(k int, rho []byte, transposed bool) matrix {
	m := newMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			var p *poly
			if transposed {
				p = sampleNTT(rho, byte(j), byte(i))
			} else {
				p = sampleNTT(rho, byte(i), byte(j))
			}
			*m.at(i, j) = *p
		}
	}
	return m
}

// matVec computes y = A*v (all operands in the NTT domain), y[i] = sum_j
// A[i][j]*v[j] via the NTT-domain base multiply (spec.md §4.5).
func matVec(a matrix, v polyVec) polyVec {
	k := a.k
	y := newPolyVec(k)
	for i := 0; i < k; i++ {
		var acc, term poly
		for j := 0; j < k; j++ {
			term.baseMul(a.at(i, j), &v[j])
			acc.add(&acc, &term)
		}
		y[i] = acc
	}
	return y
}

// vecVec computes the scalar (single-polynomial) inner product of a and b
// in the NTT domain, sum_i a[i]*b[i] (spec.md §4.5).
func vecVec(a, b polyVec) poly {
	var acc, term poly
	for i := range a {
		term.baseMul(&a[i], &b[i])
		acc.add(&acc, &term)
	}
	return acc
}
