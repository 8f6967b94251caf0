package ntru

import (
	"crypto/subtle"
	"os"
)

// Decrypt reverses Encrypt: it recovers the masked message representative
// from the ciphertext via the private polynomial, strips the MGF-TP-1
// mask, re-derives the blinding polynomial the encryptor must have used,
// and re-encrypts to confirm the ciphertext was produced honestly before
// returning the plaintext. Every failure along this path — a
// coefficient-balance rejection, a non-zero pad byte, an over-long
// declared length, or a mismatch at the final re-encryption check —
// returns the same ErrInvalidEncoding, so a caller cannot use the error
// to build a decryption oracle.
func Decrypt(priv *PrivateKey, pub *PublicKey, ciphertext []byte) ([]byte, error) {
	params := priv.Params
	if len(ciphertext) < 3 {
		return nil, ErrTruncatedInput
	}
	var oid [3]byte
	copy(oid[:], ciphertext[0:3])
	if oid != params.OID {
		return nil, ErrInvalidOID
	}

	e, err := FromBinary(ciphertext[3:], params.N, params.Q)
	if err != nil {
		return nil, err
	}

	// a = t*e mod q, where t is the stored private polynomial. Under
	// FastFp, t stands for f = 1+3t (spec.md §4.6 step 2), and the
	// fold-back a = 3*a+e computes f*e without ever materializing f
	// densely: 3*(t*e) + e == (3t+1)*e == f*e (mod q).
	a := priv.F.MultiplyDense(e, params.Q)
	if params.FastFp {
		a.Mult(3)
		a.Add(e)
		a.ModPositive(params.Q)
	}
	a.ModCenter(params.Q)
	a.Mod3()

	var mPrime *IntegerPolynomial
	if params.FastFp {
		// fp = 1 in Z_3 when f = 1+3t, so ci = a directly (spec.md §4.8
		// step 2's fastFp branch).
		mPrime = a
	} else {
		fp, err := priv.Fp()
		if err != nil {
			return nil, err
		}
		mPrime = a.Multiply(fp, 3)
		mPrime.Mod3()
	}

	if !dm0Satisfied(mPrime, params.Dm0) {
		dbg(os.Stderr, "ntru: decrypt: dm0 check failed\n")
		return nil, ErrInvalidEncoding
	}

	rSeedR := e.Clone()
	rSeedR.Subtract(mPrime)
	rSeedR.ModPositive(params.Q)

	digest := NewDigest(params.DigestID)
	mask := GenerateMask(rSeedR.ToBinary(params.Q), params.N, params.MinMGFHashCalls, params.HashSeed, digest)

	m := mPrime.Clone()
	m.Subtract(mask)
	m.Mod3()

	block := decodeMessageTrits(params, m)
	b, msg, ok := parsePaddedBlock(params, block)
	if !ok {
		return nil, ErrInvalidEncoding
	}

	r := deriveBlindingPoly(params, pub.H, b, msg)
	cR := r.MultiplyDense(pub.H, params.Q)

	// The re-encryption check below is the one place a maliciously crafted
	// ciphertext and an honest one differ only in the least significant
	// bits of a big comparison; subtle.ConstantTimeCompare avoids leaking
	// the mismatching byte position through timing, the same defensive
	// habit applied to re-encryption checks elsewhere in the ecosystem.
	// This is not a claim of fully constant-time decryption end to end.
	if !constantTimeEqualPolyBytes(cR, rSeedR, params.Q) {
		dbg(os.Stderr, "ntru: decrypt: R' != cR\n")
		return nil, ErrInvalidEncoding
	}

	return msg, nil
}

func constantTimeEqualPolyBytes(a, b *IntegerPolynomial, q int64) bool {
	return subtle.ConstantTimeCompare(a.ToBinary(q), b.ToBinary(q)) == 1
}
