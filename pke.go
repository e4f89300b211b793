// pke.go - K-PKE, the IND-CPA public-key encryption scheme underlying
// ML-KEM (spec.md §4.6).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// pkeKeyGen generates a K-PKE encryption/decryption key pair from a
// 32-byte seed d (spec.md §4.6 step 1-7).
//
//	ek <- 384k bytes of t-hat || 32-byte rho
//	dk <- 384k bytes of s-hat
func (p *ParameterSet) pkeKeyGen(d []byte) (ek, dk []byte) {
	rs := sha3.Sum512(d)
	rho, sigma := rs[:32], rs[32:]

	a := sampleMatrix(p.k, rho, false)

	s := newPolyVec(p.k)
	e := newPolyVec(p.k)
	var nonce byte
	for i := 0; i < p.k; i++ {
		s[i] = *sampleCBD(sigma, nonce, p.eta1)
		nonce++
	}
	for i := 0; i < p.k; i++ {
		e[i] = *sampleCBD(sigma, nonce, p.eta1)
		nonce++
	}
	s.ntt()
	e.ntt()

	t := matVec(a, s)
	t.add(t, e)

	ek = make([]byte, p.pkeEkSize)
	t.encode12(ek)
	copy(ek[384*p.k:], rho)

	dk = make([]byte, p.pkeDkSize)
	s.encode12(dk)

	return ek, dk
}

// pkeEncrypt encrypts a 32-byte message m under ek using 32-byte
// randomness r, per spec.md §4.6 step 1-9.
func (p *ParameterSet) pkeEncrypt(ek, m, r []byte) []byte {
	tHat := newPolyVec(p.k)
	tHat.decode12(ek)
	rho := ek[384*p.k:]

	aT := sampleMatrix(p.k, rho, true)

	rVec := newPolyVec(p.k)
	var nonce byte
	for i := 0; i < p.k; i++ {
		rVec[i] = *sampleCBD(r, nonce, p.eta1)
		nonce++
	}
	rVec.ntt()

	e1 := newPolyVec(p.k)
	for i := 0; i < p.k; i++ {
		e1[i] = *sampleCBD(r, nonce, p.eta2)
		nonce++
	}
	e2 := sampleCBD(r, nonce, p.eta2)

	u := matVec(aT, rVec)
	u.invNTT()
	u.add(u, e1)

	var mu poly
	mu.decodeCompressed(m, 1)

	v := vecVec(tHat, rVec)
	v.invNTT()
	v.add(&v, e2)
	v.add(&v, &mu)

	ct := make([]byte, p.ctSize)
	for i := 0; i < p.k; i++ {
		copy(ct[32*int(p.du)*i:], u[i].encodeCompressed(p.du))
	}
	copy(ct[32*int(p.du)*p.k:], v.encodeCompressed(p.dv))

	return ct
}

// pkeDecrypt recovers the 32-byte message encrypted into ct under dk, per
// spec.md §4.6 step 1-5.
func (p *ParameterSet) pkeDecrypt(dk, ct []byte) []byte {
	uSize := 32 * int(p.du)

	u := newPolyVec(p.k)
	for i := 0; i < p.k; i++ {
		u[i].decodeCompressed(ct[uSize*i:], p.du)
	}

	var v poly
	v.decodeCompressed(ct[uSize*p.k:], p.dv)

	sHat := newPolyVec(p.k)
	sHat.decode12(dk)

	u.ntt()
	su := vecVec(sHat, u)
	su.invNTT()

	var w poly
	w.sub(&v, &su)

	return w.encodeCompressed(1)
}
