package ntru

import "encoding/binary"

// privateRepr tags which of PrivateF's three representations a serialized
// private key carries.
type privateRepr byte

const (
	reprDense privateRepr = iota
	reprSparse
	reprProduct
)

// PrivateF is the private polynomial f, held in whichever representation
// key generation chose: a dense coefficient vector, a sparse index-list
// ternary polynomial, or a product-form f1*f2+f3 triple. Exactly one field
// is non-nil.
type PrivateF struct {
	Dense   *DenseTernaryPolynomial
	Sparse  *SparseTernaryPolynomial
	Product *ProductFormPolynomial
}

func (f *PrivateF) repr() privateRepr {
	switch {
	case f.Product != nil:
		return reprProduct
	case f.Sparse != nil:
		return reprSparse
	default:
		return reprDense
	}
}

// ToIntegerPolynomial expands f into its dense form, reduced into
// [0, modulus) for the product-form case (the dense and sparse ternary
// cases are already in {-1,0,1} and ignore modulus).
func (f *PrivateF) ToIntegerPolynomial(modulus int64) *IntegerPolynomial {
	switch {
	case f.Product != nil:
		return f.Product.ToIntegerPolynomial(modulus)
	case f.Sparse != nil:
		return f.Sparse.ToIntegerPolynomial()
	case f.Dense != nil:
		return f.Dense.ToIntegerPolynomial()
	default:
		panic("ntru: empty PrivateF")
	}
}

// MultiplyDense computes f*b reduced into [0, modulus), picking the
// cheapest convolution path available for f's representation.
func (f *PrivateF) MultiplyDense(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	switch {
	case f.Product != nil:
		return f.Product.Multiply(b, modulus)
	case f.Sparse != nil:
		return f.Sparse.MultiplyDense(b, modulus)
	case f.Dense != nil:
		return f.Dense.Poly.Multiply(b, modulus)
	default:
		panic("ntru: empty PrivateF")
	}
}

// ActualF returns the private polynomial f actually used to define the
// public key and ciphertext relations. For ordinary parameter sets this is
// simply F's ternary (or product-form) projection, i.e. f = t, as
// ToIntegerPolynomial(params.Q) returns it (a dense or sparse t keeps its
// -1 coefficients). When params.FastFp is set, the stored
// polynomial is t in f = 1 + 3*t (spec.md §4.6 step 2's fast-Fp case),
// so here it is folded back into the real f, reduced into [0, Q), which is
// not itself ternary and must not be confused with the stored t.
func (f *PrivateF) ActualF(params *Params) *IntegerPolynomial {
	t := f.ToIntegerPolynomial(params.Q)
	if !params.FastFp {
		return t
	}
	out := t.Clone()
	out.Mult(3)
	out.Coeffs[0] += 1
	out.ModPositive(params.Q)
	return out
}

// Clear zeroizes every coefficient this PrivateF holds.
func (f *PrivateF) Clear() {
	if f.Dense != nil {
		f.Dense.Poly.Clear()
	}
	if f.Sparse != nil {
		f.Sparse.Ones = nil
		f.Sparse.NegOnes = nil
	}
	if f.Product != nil {
		f.Product.F1.Ones, f.Product.F1.NegOnes = nil, nil
		f.Product.F2.Ones, f.Product.F2.NegOnes = nil, nil
		f.Product.F3.Ones, f.Product.F3.NegOnes = nil, nil
	}
}

// PublicKey is the public polynomial h = p*g*fq mod q (or its product-form
// analogue), paired with the parameter set it was generated under.
type PublicKey struct {
	Params *Params
	H      *IntegerPolynomial
}

// Bytes packs the public key as its OID followed by H.ToBinary(Q).
func (pub *PublicKey) Bytes() []byte {
	out := make([]byte, 0, 3+pub.Params.PublicKeyPolyBytes())
	out = append(out, pub.Params.OID[:]...)
	out = append(out, pub.H.ToBinary(pub.Params.Q)...)
	return out
}

// ParsePublicKey decodes a public key previously produced by Bytes,
// checking that its embedded OID matches the supplied parameter set.
func ParsePublicKey(data []byte, params *Params) (*PublicKey, error) {
	if len(data) < 3 {
		return nil, ErrTruncatedInput
	}
	var oid [3]byte
	copy(oid[:], data[0:3])
	if oid != params.OID {
		return nil, ErrInvalidOID
	}
	h, err := FromBinary(data[3:], params.N, params.Q)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Params: params, H: h}, nil
}

// PrivateKey is the private polynomial f (in whatever representation key
// generation produced), paired with the parameter set it was generated
// under. Fp (f^-1 mod 3) is not stored; it is cheap to recompute and
// storing it would just be one more secret to zeroize.
type PrivateKey struct {
	Params *Params
	F      *PrivateF
}

// Fp returns f^-1 mod 3, or the constant polynomial 1 when the parameter
// set uses the fast-Fp private-key form (f = 1 + 3*F).
func (priv *PrivateKey) Fp() (*IntegerPolynomial, error) {
	if priv.Params.FastFp {
		one := NewIntegerPolynomial(priv.Params.N)
		one.Coeffs[0] = 1
		return one, nil
	}
	f := priv.F.ToIntegerPolynomial(3)
	fp, ok := f.InvertF3()
	if !ok {
		return nil, ErrNotInvertible
	}
	return fp, nil
}

// Clear zeroizes the private polynomial's coefficients.
func (priv *PrivateKey) Clear() {
	priv.F.Clear()
}

// Bytes packs the private key as its OID, a one-byte representation tag,
// and the representation-specific payload: a tight base-3 encoding for
// the dense case, or 2-byte big-endian index lists for the sparse and
// product-form cases.
func (priv *PrivateKey) Bytes() []byte {
	out := make([]byte, 0, 4+priv.Params.N/4)
	out = append(out, priv.Params.OID[:]...)
	out = append(out, byte(priv.F.repr()))

	switch priv.F.repr() {
	case reprDense:
		out = append(out, priv.F.Dense.Poly.ToBinary3Tight()...)
	case reprSparse:
		out = append(out, encodeSparseIndices(priv.F.Sparse)...)
	case reprProduct:
		out = append(out, encodeSparseIndices(priv.F.Product.F1)...)
		out = append(out, encodeSparseIndices(priv.F.Product.F2)...)
		out = append(out, encodeSparseIndices(priv.F.Product.F3)...)
	}
	return out
}

// ParsePrivateKey decodes a private key previously produced by Bytes,
// checking that its embedded OID matches the supplied parameter set.
func ParsePrivateKey(data []byte, params *Params) (*PrivateKey, error) {
	if len(data) < 4 {
		return nil, ErrTruncatedInput
	}
	var oid [3]byte
	copy(oid[:], data[0:3])
	if oid != params.OID {
		return nil, ErrInvalidOID
	}
	repr := privateRepr(data[3])
	rest := data[4:]

	f := &PrivateF{}
	switch repr {
	case reprDense:
		poly, err := FromBinary3Tight(rest, params.N)
		if err != nil {
			return nil, err
		}
		f.Dense = &DenseTernaryPolynomial{Poly: poly}
	case reprSparse:
		sparse, _, err := decodeSparseIndices(rest, params.N)
		if err != nil {
			return nil, err
		}
		f.Sparse = sparse
	case reprProduct:
		f1, n1, err := decodeSparseIndices(rest, params.N)
		if err != nil {
			return nil, err
		}
		f2, n2, err := decodeSparseIndices(rest[n1:], params.N)
		if err != nil {
			return nil, err
		}
		f3, _, err := decodeSparseIndices(rest[n1+n2:], params.N)
		if err != nil {
			return nil, err
		}
		f.Product = &ProductFormPolynomial{F1: f1, F2: f2, F3: f3}
	default:
		return nil, newError(KindEncoding, "unknown private-key representation tag")
	}
	return &PrivateKey{Params: params, F: f}, nil
}

func encodeSparseIndices(s *SparseTernaryPolynomial) []byte {
	out := make([]byte, 4, 4+2*(len(s.Ones)+len(s.NegOnes)))
	binary.BigEndian.PutUint16(out[0:2], uint16(len(s.Ones)))
	binary.BigEndian.PutUint16(out[2:4], uint16(len(s.NegOnes)))
	for _, i := range s.Ones {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(i))
		out = append(out, b[:]...)
	}
	for _, i := range s.NegOnes {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(i))
		out = append(out, b[:]...)
	}
	return out
}

// decodeSparseIndices parses a sparse index list from the front of data
// and returns the consumed byte count alongside the result.
func decodeSparseIndices(data []byte, n int) (*SparseTernaryPolynomial, int, error) {
	if len(data) < 4 {
		return nil, 0, ErrTruncatedInput
	}
	numOnes := int(binary.BigEndian.Uint16(data[0:2]))
	numNegOnes := int(binary.BigEndian.Uint16(data[2:4]))
	need := 4 + 2*(numOnes+numNegOnes)
	if len(data) < need {
		return nil, 0, ErrTruncatedInput
	}
	ones := make([]int, numOnes)
	off := 4
	for i := 0; i < numOnes; i++ {
		ones[i] = int(binary.BigEndian.Uint16(data[off : off+2]))
		off += 2
	}
	negOnes := make([]int, numNegOnes)
	for i := 0; i < numNegOnes; i++ {
		negOnes[i] = int(binary.BigEndian.Uint16(data[off : off+2]))
		off += 2
	}
	return &SparseTernaryPolynomial{n: n, Ones: ones, NegOnes: negOnes}, need, nil
}

// KeyPair bundles a public and private key generated together.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// Clear zeroizes the private half of the pair.
func (kp *KeyPair) Clear() {
	kp.Private.Clear()
}

// IsValid reports whether Public.H is consistent with Private.F under the
// parameter set, per spec.md §8's "Key-pair validity" property: H must be
// reduced mod Q, F's representation must match the parameter set's
// PolyType, Fp must be derivable (F invertible mod 3, or FastFp), and
// recovering g := (f*h)*(3^-1 mod q) mod q, centered, must yield a ternary
// polynomial with exactly Dg ones and Dg-1 negative-ones — the "p=3"
// public-key construction h = 3*g*fq mod q gives f*h = 3*g mod q, so the
// recovery divisor is 3. A
// single flipped coefficient in either H or F (t) almost always breaks
// this recovery, which is what makes IsValid double as a tamper check.
func (kp *KeyPair) IsValid() bool {
	params := kp.Public.Params
	if params.OID != kp.Private.Params.OID {
		return false
	}
	if !kp.Public.H.IsReduced(params.Q) {
		return false
	}
	if kp.Private.F.repr() == reprProduct && params.PolyType != PolyProduct {
		return false
	}
	if kp.Private.F.repr() != reprProduct && params.PolyType == PolyProduct {
		return false
	}
	if _, err := kp.Private.Fp(); err != nil {
		return false
	}

	t := kp.Private.F.ToIntegerPolynomial(params.Q)
	if params.PolyType != PolyProduct && !t.IsTernary() {
		return false
	}

	threeInv, ok := modInverse(3, params.Q)
	if !ok {
		return false
	}
	f := kp.Private.F.ActualF(params)
	g := f.Multiply(kp.Public.H, params.Q)
	g.Mult(threeInv)
	g.ModCenter(params.Q)

	if !g.IsTernary() {
		return false
	}
	if g.Count(1) != params.Dg || g.Count(-1) != params.Dg-1 {
		return false
	}
	return true
}
