package ntru

import "testing"

func TestIndexGeneratorDeterministic(t *testing.T) {
	seed := make([]byte, 16)
	for i := range seed {
		seed[i] = byte(i)
	}
	params := PresetAPR2011_439()

	draw := func() []int {
		ig := NewIndexGenerator(seed, params.N, params.C, params.MinIGFHashCalls, params.HashSeed, NewDigest(params.DigestID))
		out := make([]int, 8)
		for i := range out {
			out[i] = ig.NextIndex()
		}
		return out
	}

	first := draw()
	second := draw()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("IGF stream not deterministic at index %d: %d vs %d", i, first[i], second[i])
		}
	}
	for _, idx := range first {
		if idx < 0 || idx >= params.N {
			t.Fatalf("index %d out of range [0,%d)", idx, params.N)
		}
	}
}

func TestIndexGeneratorDifferentSeedsDiffer(t *testing.T) {
	params := PresetEES401EP1()
	seedA := []byte("seed-a-0000000000")
	seedB := []byte("seed-b-0000000000")

	igA := NewIndexGenerator(seedA, params.N, params.C, params.MinIGFHashCalls, params.HashSeed, NewDigest(params.DigestID))
	igB := NewIndexGenerator(seedB, params.N, params.C, params.MinIGFHashCalls, params.HashSeed, NewDigest(params.DigestID))

	same := true
	for i := 0; i < 8; i++ {
		if igA.NextIndex() != igB.NextIndex() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("distinct seeds produced identical index streams")
	}
}
