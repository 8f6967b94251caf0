package ntru

import "os"

// maxEncryptAttempts bounds the SVES-3 rejection loop, per spec's "may
// impose a maximum iteration ceiling to prevent runaway on pathological
// parameters" — distinct from Params.MaxM1, which bounds the masked
// representative's coefficient sum rather than the retry count.
const maxEncryptAttempts = 8192

// Encrypt implements SVES-3: it pads msg into a fixed-length message
// representative, masks it with MGF-TP-1 keyed off a deterministically
// derived blinding polynomial, and returns the ciphertext polynomial
// encoding e = r*h + m' mod q, prefixed with the parameter set's OID. It
// retries with a fresh random prefix whenever the masked representative's
// coefficient sum exceeds Params.MaxM1 (when positive) or fails the Dm0
// coefficient-balance check, either of which a uniformly random mask
// fails only with small, parameter-tuned probability.
func Encrypt(pub *PublicKey, msg []byte, prng PRNG) ([]byte, error) {
	params := pub.Params
	if len(msg) > params.MaxMsgLenBytes {
		return nil, ErrMessageTooLong
	}

	bLen := params.Db / 8
	b := make([]byte, bLen)

	for attempt := 0; attempt < maxEncryptAttempts; attempt++ {
		if _, err := prng.Read(b); err != nil {
			return nil, err
		}
		block := buildPaddedBlock(params, b, msg)

		r := deriveBlindingPoly(params, pub.H, b, msg)
		R := r.MultiplyDense(pub.H, params.Q)

		digest := NewDigest(params.DigestID)
		mask := GenerateMask(R.ToBinary(params.Q), params.N, params.MinMGFHashCalls, params.HashSeed, digest)

		m, err := encodeMessageTrits(params, block)
		if err != nil {
			return nil, err
		}
		mPrime := m.Clone()
		mPrime.Add(mask)

		if params.MaxM1 > 0 {
			sum := mPrime.SumCoeffs()
			if sum < 0 {
				sum = -sum
			}
			if sum > int64(params.MaxM1) {
				dbg(os.Stderr, "ntru: encrypt: |sumCoeffs| exceeds MaxM1 on attempt %d, retrying\n", attempt)
				continue
			}
			mPrime.Coeffs[0] = 0
		}
		mPrime.Mod3()

		if !dm0Satisfied(mPrime, params.Dm0) {
			dbg(os.Stderr, "ntru: encrypt: dm0 check failed on attempt %d, retrying\n", attempt)
			continue
		}

		e := R.Clone()
		e.Add(mPrime)
		e.ModPositive(params.Q)

		out := make([]byte, 0, 3+params.PublicKeyPolyBytes())
		out = append(out, params.OID[:]...)
		out = append(out, e.ToBinary(params.Q)...)
		return out, nil
	}
	return nil, newError(KindParameter, "encryption exceeded maximum rejection-loop attempts")
}

func dm0Satisfied(p *IntegerPolynomial, dm0 int) bool {
	return p.Count(1) >= dm0 && p.Count(-1) >= dm0 && p.Count(0) >= dm0
}
