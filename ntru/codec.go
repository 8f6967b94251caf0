package ntru

import "math/big"

// codec.go holds the compact binary encodings IntegerPolynomial values are
// packed into and out of: the full-width q-ary encoding used for public
// keys and ciphertexts, a 4-bit nibble encoding for small non-negative
// auxiliary values, the base-3 "tight" trit packing (5 trits per byte)
// used for already-ternary polynomials, and the SVES-3 message-block
// embedding (ToBinary3Sves/FromBinary3Sves), which packs arbitrary byte
// strings into trits and back.

// bitsPerCoeff returns ceil(log2(q)) for a power-of-two or arbitrary
// modulus q > 1.
func bitsPerCoeff(q int64) int {
	bits := 0
	for v := q - 1; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}

// ToBinary packs p's coefficients (each assumed already reduced into
// [0, q)) into a byte slice, bitsPerCoeff(q) bits per coefficient, written
// LSB-first into a continuous bit stream and flushed to bytes LSB-first.
// The final byte is zero-padded in its high bits if N*bitsPerCoeff(q) is
// not a multiple of 8.
func (p *IntegerPolynomial) ToBinary(q int64) []byte {
	bits := bitsPerCoeff(q)
	totalBits := bits * len(p.Coeffs)
	out := make([]byte, (totalBits+7)/8)

	bitPos := 0
	for _, c := range p.Coeffs {
		v := uint64(floorMod(c, q))
		for b := 0; b < bits; b++ {
			if v&(1<<uint(b)) != 0 {
				out[bitPos/8] |= 1 << uint(bitPos%8)
			}
			bitPos++
		}
	}
	return out
}

// FromBinary unpacks N coefficients encoded by ToBinary(q).
func FromBinary(data []byte, n int, q int64) (*IntegerPolynomial, error) {
	bits := bitsPerCoeff(q)
	totalBits := bits * n
	if len(data) < (totalBits+7)/8 {
		return nil, ErrTruncatedInput
	}

	out := NewIntegerPolynomial(n)
	bitPos := 0
	for i := 0; i < n; i++ {
		var v uint64
		for b := 0; b < bits; b++ {
			if data[bitPos/8]&(1<<uint(bitPos%8)) != 0 {
				v |= 1 << uint(b)
			}
			bitPos++
		}
		out.Coeffs[i] = int64(v)
	}
	return out, nil
}

// ToBinary4 packs coefficients known to lie in [0, 15] two to a byte (low
// nibble first, then high nibble); only the low four bits of each
// coefficient are kept. Encrypt and Decrypt key the mask from ToBinary(Q),
// not from this encoding.
func (p *IntegerPolynomial) ToBinary4() []byte {
	n := len(p.Coeffs)
	out := make([]byte, (n+1)/2)
	for i, c := range p.Coeffs {
		v := byte(c & 0x0f)
		if i%2 == 0 {
			out[i/2] |= v
		} else {
			out[i/2] |= v << 4
		}
	}
	return out
}

// FromBinary4 unpacks N coefficients encoded by ToBinary4.
func FromBinary4(data []byte, n int) (*IntegerPolynomial, error) {
	if len(data) < (n+1)/2 {
		return nil, ErrTruncatedInput
	}
	out := NewIntegerPolynomial(n)
	for i := 0; i < n; i++ {
		b := data[i/2]
		if i%2 == 0 {
			out.Coeffs[i] = int64(b & 0x0f)
		} else {
			out.Coeffs[i] = int64(b >> 4)
		}
	}
	return out, nil
}

var trit3Pows = [5]int{1, 3, 9, 27, 81}

// ToBinary3Tight packs a ternary polynomial (coefficients in {-1,0,1}) at
// five trits per byte in base 3, mapping -1,0,1 to 0,1,2. 3^5 == 243 fits
// in a byte with room to spare.
func (p *IntegerPolynomial) ToBinary3Tight() []byte {
	n := len(p.Coeffs)
	out := make([]byte, (n+4)/5)
	for i := 0; i < n; i += 5 {
		var v int
		for j := 0; j < 5; j++ {
			var trit int
			if i+j < n {
				trit = int(p.Coeffs[i+j]) + 1
			} else {
				trit = 1 // zero coefficient for padding positions
			}
			v += trit * trit3Pows[j]
		}
		out[i/5] = byte(v)
	}
	return out
}

// FromBinary3Tight unpacks N ternary coefficients encoded by
// ToBinary3Tight.
func FromBinary3Tight(data []byte, n int) (*IntegerPolynomial, error) {
	if len(data) < (n+4)/5 {
		return nil, ErrTruncatedInput
	}
	out := NewIntegerPolynomial(n)
	for i := 0; i < n; i += 5 {
		v := int(data[i/5])
		for j := 0; j < 5 && i+j < n; j++ {
			trit := v % 3
			v /= 3
			out.Coeffs[i+j] = int64(trit) - 1
		}
	}
	return out, nil
}

// ToBinary3Sves reverses FromBinary3Sves: it packs p's coefficients back
// into a numBytes-byte buffer by treating them as base-3 digits of a
// big-endian integer (digit 2 standing for -1) and re-expanding that
// integer in base 256. When skipConstant is true, coefficient 0 is
// excluded from the digit sequence (SVES-3 reserves it for the MaxM1
// constant-term constraint rather than message data; see
// deriveBlindingPoly's callers). This is a lossless inverse of
// FromBinary3Sves as long as numBytes matches the value that produced p,
// which is always params' fixed padded-block length here — unlike
// ToBinary3Tight/FromBinary3Tight's per-byte 5-trit packing, which cannot
// round-trip arbitrary byte values at or above 243 and so is unsuitable
// for embedding message bytes (only already-ternary data).
func (p *IntegerPolynomial) ToBinary3Sves(skipConstant bool, numBytes int) []byte {
	coeffs := p.Coeffs
	if skipConstant {
		coeffs = coeffs[1:]
	}
	v := big.NewInt(0)
	three := big.NewInt(3)
	digit := new(big.Int)
	for i := len(coeffs) - 1; i >= 0; i-- {
		d := coeffs[i]
		if d == -1 {
			d = 2
		}
		v.Mul(v, three)
		v.Add(v, digit.SetInt64(d))
	}
	raw := v.Bytes()
	out := make([]byte, numBytes)
	if len(raw) > numBytes {
		raw = raw[len(raw)-numBytes:]
	}
	copy(out[numBytes-len(raw):], raw)
	return out
}

// FromBinary3Sves embeds an arbitrary byte string into an N-coefficient
// ternary polynomial by treating the bytes as a big-endian base-256
// integer and re-expanding it in base 3, one coefficient per digit
// (least-significant digit first), mapping digit 2 to -1. When
// skipConstant is true only N-1 trits are produced, filling coefficients
// 1..N-1 and leaving coefficient 0 at zero (SVES-3 forces it to zero
// after masking in that case; see encodeMessageTrits). This is a lossless
// bijection as long as 3^n (or 3^(n-1)) exceeds the integer data
// represents, true by construction for SVES-3's fixed-length padded
// message block.
func FromBinary3Sves(data []byte, n int, skipConstant bool) (*IntegerPolynomial, error) {
	trits := n
	start := 0
	if skipConstant {
		trits = n - 1
		start = 1
	}
	v := new(big.Int).SetBytes(data)
	three := big.NewInt(3)
	mod := new(big.Int)
	out := NewIntegerPolynomial(n)
	for i := 0; i < trits; i++ {
		v.DivMod(v, three, mod)
		d := mod.Int64()
		if d == 2 {
			d = -1
		}
		out.Coeffs[start+i] = d
	}
	return out, nil
}
