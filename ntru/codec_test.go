package ntru

import "testing"

func TestToBinaryFromBinaryRoundTrip(t *testing.T) {
	n, q := 11, int64(2048)
	p := NewIntegerPolynomial(n)
	for i := range p.Coeffs {
		p.Coeffs[i] = int64((i * 37) % int(q))
	}
	data := p.ToBinary(q)
	got, err := FromBinary(data, n, q)
	if err != nil {
		t.Fatalf("FromBinary: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.Coeffs, p.Coeffs)
	}
}

func TestToBinary3TightRoundTrip(t *testing.T) {
	n := 23
	p := NewIntegerPolynomial(n)
	vals := []int64{-1, 0, 1}
	for i := range p.Coeffs {
		p.Coeffs[i] = vals[i%3]
	}
	data := p.ToBinary3Tight()
	got, err := FromBinary3Tight(data, n)
	if err != nil {
		t.Fatalf("FromBinary3Tight: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.Coeffs, p.Coeffs)
	}
}

func TestToBinary3SvesRoundTrip(t *testing.T) {
	n := 17
	p := NewIntegerPolynomial(n)
	vals := []int64{1, -1, 0, 0, -1}
	for i := range p.Coeffs {
		p.Coeffs[i] = vals[i%len(vals)]
	}
	numBytes := 5
	data := p.ToBinary3Sves(false, numBytes)
	got, err := FromBinary3Sves(data, n, false)
	if err != nil {
		t.Fatalf("FromBinary3Sves: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.Coeffs, p.Coeffs)
	}
}

func TestToBinary3SvesSkipConstantLeavesZero(t *testing.T) {
	n := 21 // 3^(n-1) must exceed the block's integer value (0xABCDEF01)
	block := []byte{0xAB, 0xCD, 0xEF, 0x01}
	p, err := FromBinary3Sves(block, n, true)
	if err != nil {
		t.Fatalf("FromBinary3Sves: %v", err)
	}
	if p.Coeffs[0] != 0 {
		t.Fatalf("coefficient 0 = %d, want 0 when skipConstant", p.Coeffs[0])
	}
	back := p.ToBinary3Sves(true, len(block))
	for i := range block {
		if back[i] != block[i] {
			t.Fatalf("round trip byte %d = %#x, want %#x", i, back[i], block[i])
		}
	}
}

func TestToBinary4RoundTrip(t *testing.T) {
	n := 9
	p := NewIntegerPolynomial(n)
	for i := range p.Coeffs {
		p.Coeffs[i] = int64(i % 16)
	}
	data := p.ToBinary4()
	got, err := FromBinary4(data, n)
	if err != nil {
		t.Fatalf("FromBinary4: %v", err)
	}
	if !got.Equal(p) {
		t.Fatalf("round trip mismatch: got %v, want %v", got.Coeffs, p.Coeffs)
	}
}

func TestFromBinaryTruncatedInput(t *testing.T) {
	if _, err := FromBinary([]byte{0x01}, 100, 2048); err != ErrTruncatedInput {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestFromBinary3SvesMessageBlockRoundTrip(t *testing.T) {
	block := []byte{0xAB, 0xCD, 0xEF, 0x00, 0x11, 0x22, 0x33}
	n := 50
	p, err := FromBinary3Sves(block, n, false)
	if err != nil {
		t.Fatalf("FromBinary3Sves: %v", err)
	}
	if !p.IsTernary() {
		t.Fatalf("FromBinary3Sves produced non-ternary coefficients")
	}
	back := p.ToBinary3Sves(false, len(block))
	for i := range block {
		if back[i] != block[i] {
			t.Fatalf("round trip byte %d = %#x, want %#x", i, back[i], block[i])
		}
	}
}
