// doc.go - mlkem godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements ML-KEM, the module-lattice-based key
// encapsulation mechanism standardized as FIPS 203 (Initial Public Draft),
// based on the hardness of solving the learning-with-errors (LWE) problem
// over module lattices.
//
// Three parameter sets are provided, KEM512, KEM768, and KEM1024,
// corresponding to security categories 1, 3, and 5 respectively. Each
// exposes both the fixed-size functional API (Keygen, Encaps, Decaps)
// that operates directly on caller-supplied byte buffers, and a
// higher-level object-oriented API (PublicKey, PrivateKey,
// GenerateKeyPair, KEMEncrypt, KEMDecrypt) built on top of it.
//
// Additionally, implementations of Kyber.AKE and Kyber.UAKE, adapted to
// run over ML-KEM instead of round-2 Kyber, are included for users that
// seek an authenticated key exchange rather than a bare KEM.
//
// This package implements the Initial Public Draft of FIPS 203, not the
// final standard; it exists for interoperability with systems built
// against that draft and is not a substitute for a FIPS 203 final
// implementation.
package mlkem
