// kex.go - authenticated and unauthenticated key exchange built on top of
// the ML-KEM primitive.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
//
// This layer is not part of FIPS 203 itself; it is the Kyber.AKE/UAKE
// construction (Bos et al., "CRYSTALS-Kyber", §4) expressed purely in
// terms of ML-KEM's encapsulate/decapsulate, carried over from the
// teacher's Kyber round-2 port with no round-2-specific arithmetic left:
// two parties each run one or two KEM exchanges and hash the resulting
// shared secrets together into a session key.

package mlkem

import (
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidMessageSize is thrown via a panic when a UAKE/AKE
	// initiator or responder message is the wrong size.
	ErrInvalidMessageSize = errors.New("mlkem: invalid message size")

	// ErrParameterSetMismatch is thrown via a panic when a key exchange
	// step is given a key from a different ParameterSet than the exchange
	// was started with.
	ErrParameterSetMismatch = errors.New("mlkem: parameter set mismatch")
)

// UAKEInitiatorMessageSize returns the size of the initiator UAKE message.
func (p *ParameterSet) UAKEInitiatorMessageSize() int {
	return p.EncapsulationKeySize() + p.CipherTextSize()
}

// UAKEResponderMessageSize returns the size of the responder UAKE message.
func (p *ParameterSet) UAKEResponderMessageSize() int {
	return p.CipherTextSize()
}

// UAKEInitiatorState is an unauthenticated key exchange initiator
// instance. Each instance MUST only be used for one exchange and never
// reused.
type UAKEInitiatorState struct {
	// Message is the UAKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// NewUAKEInitiatorState creates a new initiator UAKE instance against the
// responder's long-term public key pk.
func (pk *PublicKey) NewUAKEInitiatorState(rng io.Reader) (*UAKEInitiatorState, error) {
	s := new(UAKEInitiatorState)
	s.Message = make([]byte, 0, pk.p.UAKEInitiatorMessageSize())

	var err error
	_, s.eSk, err = pk.p.GenerateKeyPair(rng)
	if err != nil {
		return nil, err
	}
	s.Message = append(s.Message, s.eSk.PublicKey.Bytes()...)

	var ct []byte
	ct, s.tk, err = pk.KEMEncrypt(rng)
	if err != nil {
		return nil, err
	}
	s.Message = append(s.Message, ct...)

	return s, nil
}

// Shared derives the session key for this UAKE instance from the
// responder's message.
func (s *UAKEInitiatorState) Shared(recv []byte) (sharedSecret []byte) {
	if len(recv) != s.eSk.PublicKey.p.UAKEResponderMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	tk := s.eSk.KEMDecrypt(recv)

	xof := sha3.NewShake256()
	xof.Write(tk)
	xof.Write(s.tk)
	sharedSecret = make([]byte, SharedSecretSize)
	xof.Read(sharedSecret)

	return sharedSecret
}

// UAKEResponderShared generates a responder message and session key given
// an initiator UAKE message.
func (sk *PrivateKey) UAKEResponderShared(rng io.Reader, recv []byte) (message, sharedSecret []byte) {
	p := sk.PublicKey.p
	ekLen := p.EncapsulationKeySize()

	if len(recv) != p.UAKEInitiatorMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	rawEk, ct := recv[:ekLen], recv[ekLen:]
	pk, err := p.PublicKeyFromBytes(rawEk)
	if err != nil {
		panic(err)
	}

	message, tk, err := pk.KEMEncrypt(rng)
	if err != nil {
		panic(err)
	}

	xof := sha3.NewShake256()
	xof.Write(tk)
	xof.Write(sk.KEMDecrypt(ct))
	sharedSecret = make([]byte, SharedSecretSize)
	xof.Read(sharedSecret)

	return message, sharedSecret
}

// AKEInitiatorMessageSize returns the size of the initiator AKE message.
func (p *ParameterSet) AKEInitiatorMessageSize() int {
	return p.EncapsulationKeySize() + p.CipherTextSize()
}

// AKEResponderMessageSize returns the size of the responder AKE message.
func (p *ParameterSet) AKEResponderMessageSize() int {
	return 2 * p.CipherTextSize()
}

// AKEInitiatorState is an authenticated key exchange initiator instance.
// Each instance MUST only be used for one exchange and never reused.
type AKEInitiatorState struct {
	// Message is the AKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// NewAKEInitiatorState creates a new initiator AKE instance against the
// responder's long-term public key pk; identical to the UAKE case at this
// step, since the initiator's own authentication is folded in at Shared.
func (pk *PublicKey) NewAKEInitiatorState(rng io.Reader) (*AKEInitiatorState, error) {
	us, err := pk.NewUAKEInitiatorState(rng)
	if err != nil {
		return nil, err
	}
	return &AKEInitiatorState{Message: us.Message, eSk: us.eSk, tk: us.tk}, nil
}

// Shared derives the session key for this AKE instance from the
// responder's message and the initiator's long-term private key.
func (s *AKEInitiatorState) Shared(recv []byte, initiatorPrivateKey *PrivateKey) (sharedSecret []byte) {
	p := s.eSk.PublicKey.p
	if initiatorPrivateKey.PublicKey.p != p {
		panic(ErrParameterSetMismatch)
	}
	if len(recv) != p.AKEResponderMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	ctLen := p.CipherTextSize()

	xof := sha3.NewShake256()
	xof.Write(s.eSk.KEMDecrypt(recv[:ctLen]))
	xof.Write(initiatorPrivateKey.KEMDecrypt(recv[ctLen:]))
	xof.Write(s.tk)
	sharedSecret = make([]byte, SharedSecretSize)
	xof.Read(sharedSecret)

	return sharedSecret
}

// AKEResponderShared generates a responder message and session key given
// an initiator AKE message and the initiator's long-term public key.
func (sk *PrivateKey) AKEResponderShared(rng io.Reader, recv []byte, peerPublicKey *PublicKey) (message, sharedSecret []byte) {
	p := sk.PublicKey.p
	ekLen := p.EncapsulationKeySize()

	if peerPublicKey.p != p {
		panic(ErrParameterSetMismatch)
	}
	if len(recv) != p.AKEInitiatorMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	rawEk, ct := recv[:ekLen], recv[ekLen:]
	pk, err := p.PublicKeyFromBytes(rawEk)
	if err != nil {
		panic(err)
	}

	message = make([]byte, 0, p.AKEResponderMessageSize())
	xof := sha3.NewShake256()

	tmp, tk, err := pk.KEMEncrypt(rng)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)
	message = append(message, tmp...)

	tmp, tk, err = peerPublicKey.KEMEncrypt(rng)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)
	message = append(message, tmp...)

	xof.Write(sk.KEMDecrypt(ct))
	sharedSecret = make([]byte, SharedSecretSize)
	xof.Read(sharedSecret)

	return message, sharedSecret
}
