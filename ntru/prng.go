package ntru

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// PRNG is the byte-producing source this package draws randomness from:
// key generation's g/f search and the random prefix bytes SVES-3 mixes
// into its input block (the blinding polynomial is derived from those
// via IGF-2, not drawn from the PRNG). Implementations
// need not be cryptographically independent across calls to Read, but the
// default SystemRNG and PassphraseRNG both are.
type PRNG interface {
	// Read fills b with random bytes and never returns a short read
	// without an error, matching io.Reader's contract.
	Read(b []byte) (int, error)
}

// SystemRNG draws from the platform CSPRNG via crypto/rand. NewPRNG
// returns it for every selector; GenerateKeyPair and Encrypt still need
// an explicit PRNG argument.
type SystemRNG struct{}

func (SystemRNG) Read(b []byte) (int, error) {
	return rand.Read(b)
}

// PRNGID names a randomness source in a parameter set's wire encoding.
// It is metadata only: Params carries it so a decoded parameter set
// records which source it was generated against, but GenerateKeyPair and
// Encrypt always take an explicit PRNG value rather than build one from
// this selector. Every nominal value below currently resolves to the
// platform CSPRNG through NewPRNG; PassphraseRNG has no selector of its
// own because it needs a passphrase and salt no selector byte can carry,
// and is always constructed explicitly via NewPassphraseRNG.
type PRNGID uint32

const (
	PRNGSystem PRNGID = iota
	PRNGCTRDRBG
	PRNGFortuna
)

// NewPRNG returns the PRNG source named by id. Unrecognized or
// passphrase-shaped selectors fall back to SystemRNG, the same
// degrade-to-default behavior NewDigest uses for an unknown DigestID.
func NewPRNG(id PRNGID) PRNG {
	return SystemRNG{}
}

// PassphraseRNG is a deterministic PRNG seeded from a passphrase, used to
// reproduce a key pair byte-for-byte from a low-entropy secret plus a
// public salt (spec section on passphrase-based key recovery). It wraps
// lattigo's keyed PRNG, the same deterministic-stream primitive the
// teacher repo's sampler machinery draws on for its own seeded draws.
//
// Two PassphraseRNGs seeded with the same passphrase and salt, but a
// different branch label ("f" vs "g"), produce independent-looking
// streams: the label is folded into the derived key before it reaches
// lattigo, so key generation's f and g searches never share a stream.
type PassphraseRNG struct {
	inner *utils.KeyedPRNG
}

// NewPassphraseRNG derives a PRNG from a passphrase, a public salt, and a
// branch label distinguishing independent uses of the same passphrase
// (e.g. "f" and "g" within one key generation).
func NewPassphraseRNG(passphrase, salt []byte, branch string) (*PassphraseRNG, error) {
	seed := derivePassphraseSeed(passphrase, salt, branch)
	inner, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, err
	}
	return &PassphraseRNG{inner: inner}, nil
}

func (r *PassphraseRNG) Read(b []byte) (int, error) {
	return r.inner.Read(b)
}

// derivePassphraseSeed folds the passphrase, salt and branch label into a
// fixed-size seed via SHA-512, the same hash the default Digest adapter
// uses for the rest of the package's hashing needs.
func derivePassphraseSeed(passphrase, salt []byte, branch string) []byte {
	d := NewSHA512Digest()
	d.Update([]byte("ntruencrypt-passphrase-rng"))
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(passphrase)))
	d.Update(lenBuf[:])
	d.Update(passphrase)
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(salt)))
	d.Update(lenBuf[:])
	d.Update(salt)
	d.Update([]byte(branch))
	return d.Finalize()
}
