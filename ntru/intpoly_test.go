package ntru

import "testing"

func TestIntegerPolynomialAddSubtract(t *testing.T) {
	a := NewIntegerPolynomialFrom([]int64{1, 2, 3})
	b := NewIntegerPolynomialFrom([]int64{5, -1, 2})
	a.Add(b)
	want := []int64{6, 1, 5}
	for i, v := range want {
		if a.Coeffs[i] != v {
			t.Fatalf("Add[%d] = %d, want %d", i, a.Coeffs[i], v)
		}
	}
	a.Subtract(b)
	orig := []int64{1, 2, 3}
	for i, v := range orig {
		if a.Coeffs[i] != v {
			t.Fatalf("Subtract[%d] = %d, want %d", i, a.Coeffs[i], v)
		}
	}
}

func TestIntegerPolynomialMultiplyRingLaw(t *testing.T) {
	// In Z[X]/(X^3 - 1), X * X^2 == 1.
	x := NewIntegerPolynomialFrom([]int64{0, 1, 0})
	x2 := NewIntegerPolynomialFrom([]int64{0, 0, 1})
	got := x.Multiply(x2, 1000)
	want := NewIntegerPolynomialFrom([]int64{1, 0, 0})
	if !got.Equal(want) {
		t.Fatalf("X*X^2 = %v, want %v", got.Coeffs, want.Coeffs)
	}
}

func TestIntegerPolynomialModCenterAndMod3(t *testing.T) {
	p := NewIntegerPolynomialFrom([]int64{0, 1, 2, 3, 4, 5})
	p.ModCenter(6)
	want := []int64{0, 1, 2, 3, -2, -1}
	for i, v := range want {
		if p.Coeffs[i] != v {
			t.Fatalf("ModCenter[%d] = %d, want %d", i, p.Coeffs[i], v)
		}
	}

	m := NewIntegerPolynomialFrom([]int64{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5})
	m.Mod3()
	for i, c := range m.Coeffs {
		if c < -1 || c > 1 {
			t.Fatalf("Mod3 produced non-ternary coefficient %d at %d", c, i)
		}
	}
}

func TestInvertF3RoundTrip(t *testing.T) {
	n := 11
	f := NewIntegerPolynomial(n)
	f.Coeffs[0] = 1
	f.Coeffs[1] = 1
	f.Coeffs[3] = -1
	f.Coeffs[7] = 1

	inv, ok := f.InvertF3()
	if !ok {
		t.Fatalf("expected f to be invertible mod 3")
	}
	prod := f.Multiply(inv, 3)
	prod.Mod3()
	for i, c := range prod.Coeffs {
		want := int64(0)
		if i == 0 {
			want = 1
		}
		if c != want {
			t.Fatalf("f*f^-1 mod 3 coeff %d = %d, want %d", i, c, want)
		}
	}
}

func TestInvertFqRoundTrip(t *testing.T) {
	n := 11
	q := int64(32)
	f := NewIntegerPolynomial(n)
	f.Coeffs[0] = 1
	f.Coeffs[2] = 1
	f.Coeffs[4] = 1 // odd weight, so f is a unit mod 2
	f.Coeffs[5] = -1
	f.Coeffs[9] = -1

	inv, ok := f.InvertFq(q)
	if !ok {
		t.Fatalf("expected f to be invertible mod %d", q)
	}
	prod := f.Multiply(inv, q)
	for i, c := range prod.Coeffs {
		want := int64(0)
		if i == 0 {
			want = 1
		}
		if c != want {
			t.Fatalf("f*f^-1 mod q coeff %d = %d, want %d", i, c, want)
		}
	}
}

func TestInvertFqRejectsNonUnit(t *testing.T) {
	n := 8
	f := NewIntegerPolynomial(n) // the zero polynomial is never invertible
	if _, ok := f.InvertFq(16); ok {
		t.Fatalf("expected zero polynomial to be non-invertible")
	}
}
