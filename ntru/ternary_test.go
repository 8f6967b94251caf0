package ntru

import "testing"

func TestGenerateRandomSparseTernaryShape(t *testing.T) {
	prng := SystemRNG{}
	n, ones, negOnes := 251, 17, 16
	s, err := GenerateRandomSparseTernary(n, ones, negOnes, prng)
	if err != nil {
		t.Fatalf("GenerateRandomSparseTernary: %v", err)
	}
	if len(s.Ones) != ones || len(s.NegOnes) != negOnes {
		t.Fatalf("got %d ones, %d negOnes; want %d, %d", len(s.Ones), len(s.NegOnes), ones, negOnes)
	}
	seen := make(map[int]bool, ones+negOnes)
	for _, idx := range append(append([]int(nil), s.Ones...), s.NegOnes...) {
		if idx < 0 || idx >= n {
			t.Fatalf("index %d out of range [0,%d)", idx, n)
		}
		if seen[idx] {
			t.Fatalf("index %d appears in both lists", idx)
		}
		seen[idx] = true
	}
	dense := s.ToIntegerPolynomial()
	if dense.Count(1) != ones || dense.Count(-1) != negOnes {
		t.Fatalf("dense projection has wrong weight: +1=%d -1=%d", dense.Count(1), dense.Count(-1))
	}
}

func TestSparseMultiplyDenseMatchesSchoolbook(t *testing.T) {
	n := 31
	prng := SystemRNG{}
	s, err := GenerateRandomSparseTernary(n, 5, 4, prng)
	if err != nil {
		t.Fatalf("GenerateRandomSparseTernary: %v", err)
	}
	b := NewIntegerPolynomial(n)
	for i := range b.Coeffs {
		b.Coeffs[i] = int64(i*13 + 1)
	}
	q := int64(2048)

	viaSparse := s.MultiplyDense(b, q)
	viaDense := s.ToIntegerPolynomial().Multiply(b, q)
	if !viaSparse.Equal(viaDense) {
		t.Fatalf("sparse multiply disagrees with schoolbook: %v vs %v", viaSparse.Coeffs, viaDense.Coeffs)
	}
}

func TestGenerateRandomSparseTernaryRejectsOverflow(t *testing.T) {
	prng := SystemRNG{}
	if _, err := GenerateRandomSparseTernary(10, 6, 6, prng); err == nil {
		t.Fatalf("expected error when numOnes+numNegOnes exceeds N")
	}
}
