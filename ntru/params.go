package ntru

import (
	"encoding/binary"
)

// PolyType selects the representation key generation uses for the private
// polynomial f (and thereby the weight of the blinding polynomial r derived
// at encryption time; see blindingSparsity): a single ternary polynomial
// with Df ones and Df-1 negative ones (Df of each under FastFp), or a
// product-form polynomial f = f1*f2+f3 assembled from three sparser
// ternary factors. It is carried on the wire as its own
// 32-bit selector rather than packed into a flags byte, alongside the
// digest and PRNG selectors.
type PolyType uint32

const (
	// PolySimple is a single ternary polynomial, Df ones and Df-1 negative
	// ones (Df negative ones under FastFp).
	PolySimple PolyType = iota
	// PolyProduct is the product-form f = f1*f2+f3 used by all four
	// APR2011 presets, the plain and the "FAST" ones alike, trading a
	// larger private-key encoding for cheaper convolutions during
	// decryption.
	PolyProduct
)

// Params bundles one EESS #1 parameter set: the ring dimension and
// modulus, the sparsity of the private and blinding polynomials, the
// message-padding geometry SVES-3 needs, and the IGF-2/MGF-TP-1 tuning
// knobs (candidate bit width, minimum hash-call counts) that make index
// and mask generation reproducible across implementations.
type Params struct {
	OID  [3]byte
	Name string

	N int
	Q int64

	// Df, Dg: number of +1 coefficients in the simple-form private
	// polynomial f and the public polynomial's generator g; f carries
	// Df-1 negative ones (Df under FastFp) and g carries Dg-1.
	// Df1/Df2/Df3 are used instead of Df when PolyType is PolyProduct. Dg
	// is a derived field (see deriveFields); it is not part of the wire
	// format.
	Df            int
	Df1, Df2, Df3 int
	Dg            int

	// Dm0 is the minimum number of +1, -1 and 0 coefficients the
	// decrypted candidate message representative must each have before
	// it is accepted; fewer than Dm0 of any one value is treated as a
	// decryption failure.
	Dm0 int

	// MaxMsgLenBytes bounds the plaintext length SVES-3 will pad and
	// encrypt; it is always <= 255, since the padded block carries the
	// message length in a single byte. Derived from N, Db and MaxM1 (see
	// deriveFields); it is not part of the wire format.
	MaxMsgLenBytes int

	// MaxM1, when positive, bounds |sumCoeffs| of the masked message
	// representative (Encrypt retries above it) and reserves its constant
	// coefficient, which is forced to zero; 0 disables both.
	MaxM1 int

	// Db is the number of random bits mixed into the SVES-3 input block
	// alongside the message and its length byte.
	Db int

	// C is the bit width IGF-2 draws raw candidates at before rejection
	// sampling folds them into [0, N).
	C int

	MinIGFHashCalls int
	MinMGFHashCalls int
	HashSeed        bool

	// FastFp marks a private polynomial of the form f = 1 + 3*F, whose
	// inverse mod p is the constant polynomial 1 regardless of F,
	// letting decryption skip the invertF3 call entirely.
	FastFp bool

	PolyType PolyType
	DigestID DigestID

	// PRNGID names the randomness source this parameter set nominally
	// expects. It travels with the parameter set for wire compatibility;
	// GenerateKeyPair and Encrypt still take an explicit PRNG argument
	// rather than constructing one from this selector (see NewPRNG).
	PRNGID PRNGID

	// Sparse selects the sparse index-list representation for f and g
	// (cheaper convolutions, larger in-memory footprint per nonzero
	// coefficient bookkeeping) over the dense coefficient-vector one.
	Sparse bool
}

// deriveFields recomputes the Params fields that are functions of the
// other fields rather than independent parameters: Dg = N/3, and
// MaxMsgLenBytes from N, Db and MaxM1. Preset constructors call this once
// after setting their literal fields, and ParamsFromBytes calls it after
// decoding the wire fields, since neither Dg nor MaxMsgLenBytes travels on
// the wire: a reader reconstructs them instead of trusting a transmitted
// copy.
func (p *Params) deriveFields() {
	p.Dg = p.N / 3

	effectiveN := p.N
	if p.MaxM1 > 0 {
		effectiveN = p.N - 1
	}
	p.MaxMsgLenBytes = (effectiveN*3/2)/8 - 1 - p.Db/8
}

// BitsPerCoeff returns ceil(log2(Q)).
func (p *Params) BitsPerCoeff() int { return bitsPerCoeff(p.Q) }

// PublicKeyPolyBytes returns the packed length in bytes of a public-key
// polynomial h under this parameter set's ToBinary(Q) encoding.
func (p *Params) PublicKeyPolyBytes() int {
	bits := p.BitsPerCoeff()
	return (p.N*bits + 7) / 8
}

// Validate reports whether the parameter set is internally consistent:
// positive dimensions, a power-of-two modulus, and sparsity figures that
// fit within N and within the single-byte message-length field.
func (p *Params) Validate() error {
	if p.N <= 0 {
		return newError(KindParameter, "N must be positive")
	}
	if p.Q < 2 || p.Q&(p.Q-1) != 0 {
		return newError(KindParameter, "Q must be a power of two")
	}
	switch p.PolyType {
	case PolySimple:
		if p.Df <= 0 || 2*p.Df >= p.N {
			return newError(KindParameter, "Df out of range for N")
		}
	case PolyProduct:
		if p.Df1 <= 0 || p.Df2 <= 0 || p.Df3 <= 0 {
			return newError(KindParameter, "Df1/Df2/Df3 must be positive")
		}
		if 2*(p.Df1+p.Df2+p.Df3) >= p.N {
			return newError(KindParameter, "Df1+Df2+Df3 out of range for N")
		}
	default:
		return newError(KindParameter, "unknown PolyType")
	}
	if p.Dg <= 0 || 2*p.Dg >= p.N {
		return newError(KindParameter, "Dg out of range for N")
	}
	if p.MaxMsgLenBytes <= 0 || p.MaxMsgLenBytes > 255 {
		return newError(KindParameter, "MaxMsgLenBytes must be in (0, 255]")
	}
	if p.Db <= 0 {
		return newError(KindParameter, "Db must be positive")
	}
	if p.C <= 0 {
		return newError(KindParameter, "C must be positive")
	}
	return nil
}

// paramsWireFixedLen is the byte length Bytes/ParamsFromBytes exchange:
// 12 signed 32-bit integers, in order N, q, df, df1, df2, df3, db, dm0,
// maxM1, c, minIGF, minMGF; one boolean (hashSeed); the 3-byte OID; two
// more booleans (sparse, fastFp); and three 32-bit selectors (polyType,
// digest, prng). Dg and MaxMsgLenBytes are deliberately absent: they are
// derived fields (deriveFields) a reader recomputes instead of trusting
// off the wire.
const paramsWireFixedLen = 12*4 + 1 + 3 + 1 + 1 + 3*4

// Bytes serializes the parameter set to a flat binary blob in the field
// order paramsWireFixedLen documents. Name is not serialized; it is
// metadata for humans, not part of the cryptographic parameter identity
// the OID already carries.
func (p *Params) Bytes() []byte {
	buf := make([]byte, paramsWireFixedLen)
	off := 0
	putInt := func(v int) {
		binary.BigEndian.PutUint32(buf[off:], uint32(int32(v)))
		off += 4
	}
	putInt(p.N)
	putInt(int(p.Q))
	putInt(p.Df)
	putInt(p.Df1)
	putInt(p.Df2)
	putInt(p.Df3)
	putInt(p.Db)
	putInt(p.Dm0)
	putInt(p.MaxM1)
	putInt(p.C)
	putInt(p.MinIGFHashCalls)
	putInt(p.MinMGFHashCalls)

	putBool := func(v bool) {
		if v {
			buf[off] = 1
		}
		off++
	}
	putBool(p.HashSeed)

	copy(buf[off:off+3], p.OID[:])
	off += 3

	putBool(p.Sparse)
	putBool(p.FastFp)

	putSelector := func(v uint32) {
		binary.BigEndian.PutUint32(buf[off:], v)
		off += 4
	}
	putSelector(uint32(p.PolyType))
	putSelector(uint32(p.DigestID))
	putSelector(uint32(p.PRNGID))

	return buf
}

// ParamsFromBytes deserializes a blob produced by Params.Bytes, then
// re-derives Dg and MaxMsgLenBytes from the decoded fields.
func ParamsFromBytes(data []byte) (*Params, error) {
	if len(data) < paramsWireFixedLen {
		return nil, ErrTruncatedInput
	}
	p := &Params{}
	off := 0
	getInt := func() int {
		v := int32(binary.BigEndian.Uint32(data[off:]))
		off += 4
		return int(v)
	}
	p.N = getInt()
	p.Q = int64(getInt())
	p.Df = getInt()
	p.Df1 = getInt()
	p.Df2 = getInt()
	p.Df3 = getInt()
	p.Db = getInt()
	p.Dm0 = getInt()
	p.MaxM1 = getInt()
	p.C = getInt()
	p.MinIGFHashCalls = getInt()
	p.MinMGFHashCalls = getInt()

	getBool := func() bool {
		v := data[off] != 0
		off++
		return v
	}
	p.HashSeed = getBool()

	copy(p.OID[:], data[off:off+3])
	off += 3

	p.Sparse = getBool()
	p.FastFp = getBool()

	getSelector := func() uint32 {
		v := binary.BigEndian.Uint32(data[off:])
		off += 4
		return v
	}
	p.PolyType = PolyType(getSelector())
	p.DigestID = DigestID(getSelector())
	p.PRNGID = PRNGID(getSelector())

	p.deriveFields()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
