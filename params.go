// params.go - ML-KEM parameterization and parameter-set multiplexing
// (spec.md §3, §4.8).
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SharedSecretSize is the size of an ML-KEM shared secret, and of the
	// seed material consumed at several points in the protocol, in bytes.
	SharedSecretSize = 32

	// keygenSeedSize and encapsSeedSize are the sizes of the seed material
	// GenerateKeyPair and KEMEncrypt read from their rng, and of the seed
	// argument Keygen and Encaps take.
	keygenSeedSize = 64
	encapsSeedSize = 32
)

var (
	// KEM512 is the ML-KEM-512 parameter set, targeting security category 1
	// (comparable to AES-128).
	KEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// KEM768 is the ML-KEM-768 parameter set, targeting security category 3
	// (comparable to AES-192).
	KEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// KEM1024 is the ML-KEM-1024 parameter set, targeting security
	// category 5 (comparable to AES-256).
	KEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// ParameterSet fixes the constants (k, eta1, eta2, du, dv) that an ML-KEM
// instantiation is built from; spec.md §4.8 notes that a single generic
// core parameterized by these five integers is sufficient, with
// specialization purely a performance choice.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   uint
	dv   uint

	pkeEkSize int
	pkeDkSize int
	ctSize    int
	ekSize    int
	dkSize    int
}

func newParameterSet(name string, k, eta1, eta2 int, du, dv uint) *ParameterSet {
	p := &ParameterSet{
		name: name,
		k:    k,
		eta1: eta1,
		eta2: eta2,
		du:   du,
		dv:   dv,
	}

	p.pkeEkSize = 384*k + 32
	p.pkeDkSize = 384 * k
	p.ctSize = 32 * (int(du)*k + int(dv))
	p.ekSize = p.pkeEkSize
	p.dkSize = 2*p.pkeDkSize + 96

	return p
}

// Name returns the parameter set's name, e.g. "ML-KEM-768".
func (p *ParameterSet) Name() string { return p.name }

// EncapsulationKeySize returns the size, in bytes, of an encapsulation key.
func (p *ParameterSet) EncapsulationKeySize() int { return p.ekSize }

// DecapsulationKeySize returns the size, in bytes, of a decapsulation key.
func (p *ParameterSet) DecapsulationKeySize() int { return p.dkSize }

// CipherTextSize returns the size, in bytes, of a ciphertext.
func (p *ParameterSet) CipherTextSize() int { return p.ctSize }
