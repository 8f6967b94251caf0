package ntru

import "encoding/binary"

// GenerateMask implements MGF-TP-1, the mask-generation function SVES-3
// uses to turn the encryption-time candidate R into a ternary polynomial
// that blinds the padded message before the final trinary encoding. It
// hashes counter-keyed blocks of (optionally pre-hashed) seed material and
// reads every byte of each hash output as a base-3 number: bytes below 3^5 (=243) yield
// five trits each (value%3, reduced so 2 maps to -1); bytes at or above
// 243 are discarded outright rather than reduced, so the trit values stay
// uniform. Hashing continues until both N coefficients are produced and at
// least minCallsMask hash calls have been made, so the caller cannot tell
// from the call count alone how many usable bytes a given seed produced.
func GenerateMask(seed []byte, n, minCallsMask int, hashSeed bool, digest Digest) *IntegerPolynomial {
	z := seed
	if hashSeed {
		digest.Reset()
		digest.Update(seed)
		z = digest.Finalize()
	}

	out := NewIntegerPolynomial(n)
	counter := 0
	numCoeffs := 0

	for numCoeffs < n || counter < minCallsMask {
		digest.Reset()
		digest.Update(z)
		var cb [4]byte
		binary.BigEndian.PutUint32(cb[:], uint32(counter))
		digest.Update(cb[:])
		h := digest.Finalize()
		counter++

		if numCoeffs < n {
			for o := 0; o < len(h) && numCoeffs < n; o++ {
				coeff := int(h[o])
				if coeff >= 243 {
					continue
				}
				for t := 0; t < 5 && numCoeffs < n; t++ {
					rem := coeff % 3
					if rem == 2 {
						rem = -1
					}
					out.Coeffs[numCoeffs] = int64(rem)
					numCoeffs++
					coeff /= 3
				}
			}
		}
	}
	return out
}
