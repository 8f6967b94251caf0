package ntru

// ProductFormPolynomial represents f = f1*f2 + f3, the product-form
// private polynomial used by the APR2011 parameter sets (plain and
// "FAST"). Each of
// f1, f2, f3 is a sparse ternary polynomial; multiplying by a
// ProductFormPolynomial costs O(N*(d1+d2+d3)) rather than the O(N^2) a
// dense degree-N private key would pay, at the cost of a slightly larger
// key encoding (three index lists instead of one).
type ProductFormPolynomial struct {
	F1, F2, F3 *SparseTernaryPolynomial
}

func (p *ProductFormPolynomial) N() int { return p.F1.N() }

// ToIntegerPolynomial expands f1*f2+f3 into its dense coefficient form,
// reduced into [0, modulus).
func (p *ProductFormPolynomial) ToIntegerPolynomial(modulus int64) *IntegerPolynomial {
	return p.Multiply(nil, modulus)
}

// Multiply computes the ring product of p with the dense polynomial b
// (p*b, not p itself) when b is non-nil; when b is nil it instead expands
// p alone (f1*f2+f3) into dense form. Both paths reduce into
// [0, modulus).
func (p *ProductFormPolynomial) Multiply(b *IntegerPolynomial, modulus int64) *IntegerPolynomial {
	f2Dense := p.F2.ToIntegerPolynomial()
	var f1f2 *IntegerPolynomial
	if b == nil {
		f1f2 = p.F1.MultiplyDense(f2Dense, modulus)
	} else {
		// (f1*f2)*b == f1*(f2*b); convolve with b first to keep the cost
		// at O(N*(d1+d2)) instead of O(N^2).
		f2b := f2Dense.Multiply(b, modulus)
		f1f2 = p.F1.MultiplyDense(f2b, modulus)
	}

	var f3term *IntegerPolynomial
	if b == nil {
		f3term = p.F3.ToIntegerPolynomial()
	} else {
		f3term = p.F3.MultiplyDense(b, modulus)
	}

	f1f2.Add(f3term)
	f1f2.ModPositive(modulus)
	return f1f2
}

// GenerateRandomProductForm draws f1, f2, f3 independently via
// GenerateRandomSparseTernary: f1 and f2 with symmetric (df1,df1) and
// (df2,df2) weight, f3 with (df3Ones, df3NegOnes) — the asymmetric pair
// spec.md §4.6 step 2 calls for (df3, df3-1 for non-fast-Fp parameter
// sets; df3, df3 for fast-Fp ones, where the "+1" bump on f's constant
// coefficient supplies the asymmetry f3 would otherwise have carried).
func GenerateRandomProductForm(n int, df1, df2, df3Ones, df3NegOnes int, prng PRNG) (*ProductFormPolynomial, error) {
	f1, err := GenerateRandomSparseTernary(n, df1, df1, prng)
	if err != nil {
		return nil, err
	}
	f2, err := GenerateRandomSparseTernary(n, df2, df2, prng)
	if err != nil {
		return nil, err
	}
	f3, err := GenerateRandomSparseTernary(n, df3Ones, df3NegOnes, prng)
	if err != nil {
		return nil, err
	}
	return &ProductFormPolynomial{F1: f1, F2: f2, F3: f3}, nil
}
