// kem.go - the IND-CCA2 ML-KEM wrapper around K-PKE, with constant-time
// implicit rejection (spec.md §4.7).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is returned when a byte-serialized key is the
	// wrong size for its ParameterSet.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is the error thrown via a panic when a
	// byte-serialized ciphertext is the wrong size for its ParameterSet.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrInvalidPrivateKey is returned when a byte-serialized decapsulation
	// key fails its embedded encapsulation-key-hash check.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")
)

// Keygen implements the fixed-size functional API of spec.md §6: it
// derives an encapsulation/decapsulation key pair from a 64-byte seed
// (z || d) directly into caller-supplied buffers, with no allocation
// beyond the PKE internals. Buffer sizes are the caller's responsibility,
// per spec.md §7; ek and dk must be exactly p.EncapsulationKeySize() and
// p.DecapsulationKeySize() bytes.
func (p *ParameterSet) Keygen(ek, dk, seed []byte) {
	z := seed[:32]
	d := seed[32:64]

	pkeEk, pkeDk := p.pkeKeyGen(d)

	copy(ek, pkeEk)

	copy(dk, pkeDk)
	off := p.pkeDkSize
	copy(dk[off:], pkeEk)
	off += p.pkeEkSize
	h := sha3.Sum256(pkeEk)
	copy(dk[off:], h[:])
	off += 32
	copy(dk[off:], z)
}

// Encaps implements the fixed-size functional API of spec.md §6: given an
// encapsulation key and 32 bytes of randomness, it derives a shared secret
// and the ciphertext that carries it (spec.md §4.7 step 1-3).
func (p *ParameterSet) Encaps(key, ct, ek, seed []byte) {
	h := sha3.Sum256(ek)

	data := make([]byte, 0, 64)
	data = append(data, seed...)
	data = append(data, h[:]...)
	kr := sha3.Sum512(data)

	copy(key, kr[:32])
	copy(ct, p.pkeEncrypt(ek, seed, kr[32:]))
}

// Decaps implements the fixed-size functional API of spec.md §6: constant-
// time implicit rejection decapsulation (spec.md §4.7 step 1-6). dk must be
// the full KEM decapsulation key, not the inner PKE key alone.
func (p *ParameterSet) Decaps(key, ct, dk []byte) {
	pkeDk := dk[:p.pkeDkSize]
	pkeEk := dk[p.pkeDkSize : p.pkeDkSize+p.pkeEkSize]
	h := dk[p.pkeDkSize+p.pkeEkSize : p.pkeDkSize+p.pkeEkSize+32]
	z := dk[p.pkeDkSize+p.pkeEkSize+32 : p.pkeDkSize+p.pkeEkSize+64]

	mPrime := p.pkeDecrypt(pkeDk, ct)

	data := make([]byte, 0, 64)
	data = append(data, mPrime...)
	data = append(data, h...)
	kr := sha3.Sum512(data)

	rejData := make([]byte, 0, 32+len(ct))
	rejData = append(rejData, z...)
	rejData = append(rejData, ct...)
	kRej := make([]byte, 32)
	sha3.ShakeSum256(kRej, rejData)

	ctPrime := p.pkeEncrypt(pkeEk, mPrime, kr[32:])

	// Constant-time select: blend kr[:32] (honest) with kRej (rejection)
	// under a mask derived from whether ct and ctPrime match, without
	// branching on the comparison result (spec.md §4.7 step 6, §9
	// "Constant-time selection").
	diff := subtle.ConstantTimeCompare(ct, ctPrime) // 1 if equal, 0 if not
	mismatch := 1 - diff
	subtle.ConstantTimeCopy(mismatch, kr[:32], kRej)

	copy(key, kr[:32])
}

// PublicKey is an ML-KEM encapsulation key.
type PublicKey struct {
	p  *ParameterSet
	ek []byte
	h  [32]byte
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, len(pk.ek))
	copy(out, pk.ek)
	return out
}

// PublicKeyFromBytes deserializes a byte-serialized PublicKey for the
// given ParameterSet.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.ekSize {
		return nil, ErrInvalidKeySize
	}
	pk := &PublicKey{p: p, ek: append([]byte(nil), b...)}
	pk.h = sha3.Sum256(pk.ek)
	return pk, nil
}

// PrivateKey is an ML-KEM decapsulation key.
type PrivateKey struct {
	PublicKey
	dk []byte
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	out := make([]byte, len(sk.dk))
	copy(out, sk.dk)
	return out
}

// PrivateKeyFromBytes deserializes a byte-serialized PrivateKey for the
// given ParameterSet, checking that its embedded encapsulation-key hash
// is self-consistent.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.dkSize {
		return nil, ErrInvalidKeySize
	}

	ekOff := p.pkeDkSize
	hOff := ekOff + p.pkeEkSize
	ek := b[ekOff:hOff]
	h := sha3.Sum256(ek)
	if !bytes.Equal(h[:], b[hOff:hOff+32]) {
		return nil, ErrInvalidPrivateKey
	}

	sk := &PrivateKey{dk: append([]byte(nil), b...)}
	sk.PublicKey.p = p
	sk.PublicKey.ek = append([]byte(nil), ek...)
	sk.PublicKey.h = h

	return sk, nil
}

// GenerateKeyPair generates a fresh ML-KEM key pair for the given
// ParameterSet, reading 64 bytes of seed material from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	seed := make([]byte, keygenSeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	ek := make([]byte, p.ekSize)
	dk := make([]byte, p.dkSize)
	p.Keygen(ek, dk, seed)

	pub := &PublicKey{p: p, ek: ek, h: sha3.Sum256(ek)}
	priv := &PrivateKey{PublicKey: *pub, dk: dk}

	return pub, priv, nil
}

// KEMEncrypt generates a ciphertext and shared secret under pk, reading
// 32 bytes of seed material from rng.
func (pk *PublicKey) KEMEncrypt(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	seed := make([]byte, encapsSeedSize)
	if _, err = io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	cipherText = make([]byte, pk.p.ctSize)
	sharedSecret = make([]byte, SharedSecretSize)
	pk.p.Encaps(sharedSecret, cipherText, pk.ek, seed)

	return cipherText, sharedSecret, nil
}

// KEMDecrypt recovers the shared secret carried by cipherText, using
// implicit rejection if cipherText is not a legitimate encapsulation under
// sk's public key. On failure the returned secret is an unpredictable
// pseudorandom value, never a distinguishable error (spec.md §4.7, §7).
func (sk *PrivateKey) KEMDecrypt(cipherText []byte) (sharedSecret []byte) {
	if len(cipherText) != sk.PublicKey.p.ctSize {
		panic(ErrInvalidCipherTextSize)
	}

	sharedSecret = make([]byte, SharedSecretSize)
	sk.PublicKey.p.Decaps(sharedSecret, cipherText, sk.dk)

	return sharedSecret
}
