package ntru

import "testing"

func smallTestParams() *Params {
	// A small, fast parameter set for unit tests that don't need
	// production-grade security margins.
	p := PresetEES401EP1()
	return p
}

func TestKeyPairRoundTripBytes(t *testing.T) {
	params := smallTestParams()
	kp, err := GenerateKeyPair(params, SystemRNG{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	pubBytes := kp.Public.Bytes()
	gotPub, err := ParsePublicKey(pubBytes, params)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if !gotPub.H.Equal(kp.Public.H) {
		t.Fatalf("public key round trip mismatch")
	}

	privBytes := kp.Private.Bytes()
	gotPriv, err := ParsePrivateKey(privBytes, params)
	if err != nil {
		t.Fatalf("ParsePrivateKey: %v", err)
	}
	if !gotPriv.F.ToIntegerPolynomial(params.Q).Equal(kp.Private.F.ToIntegerPolynomial(params.Q)) {
		t.Fatalf("private key round trip mismatch")
	}
}

func TestKeyPairIsValid(t *testing.T) {
	params := smallTestParams()
	kp, err := GenerateKeyPair(params, SystemRNG{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if !kp.IsValid() {
		t.Fatalf("freshly generated key pair reported invalid")
	}
}

// Scenario from spec.md §8: flipping a single coefficient in either H or
// t must make IsValid report false.
func TestKeyPairIsValidDetectsPerturbation(t *testing.T) {
	params := smallTestParams()
	kp, err := GenerateKeyPair(params, SystemRNG{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if !kp.IsValid() {
		t.Fatalf("freshly generated key pair reported invalid")
	}

	tamperedH := &KeyPair{
		Public:  &PublicKey{Params: params, H: kp.Public.H.Clone()},
		Private: kp.Private,
	}
	tamperedH.Public.H.Coeffs[0] ^= 1
	tamperedH.Public.H.ModPositive(params.Q)
	if tamperedH.IsValid() {
		t.Fatalf("expected flipped H coefficient to invalidate the key pair")
	}

	tPoly := kp.Private.F.ToIntegerPolynomial(params.Q).Clone()
	tPoly.Coeffs[0] = (tPoly.Coeffs[0] + 1) % 3
	if tPoly.Coeffs[0] > 1 {
		tPoly.Coeffs[0] -= 3
	}
	tamperedT := &KeyPair{
		Public:  kp.Public,
		Private: &PrivateKey{Params: params, F: &PrivateF{Dense: &DenseTernaryPolynomial{Poly: tPoly}}},
	}
	if tamperedT.IsValid() {
		t.Fatalf("expected flipped private-polynomial coefficient to invalidate the key pair")
	}
}

func TestKeyPairIsValidRejectsMismatchedOID(t *testing.T) {
	a := smallTestParams()
	b := PresetEES449EP1()

	kpA, err := GenerateKeyPair(a, SystemRNG{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	kpB, err := GenerateKeyPair(b, SystemRNG{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	mixed := &KeyPair{Public: kpA.Public, Private: kpB.Private}
	if mixed.IsValid() {
		t.Fatalf("expected mismatched parameter sets to be invalid")
	}
}

func TestPrivateKeyFpFastFp(t *testing.T) {
	params := PresetEES1087EP2() // FastFp == true
	kp, err := GenerateKeyPair(params, SystemRNG{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	fp, err := kp.Private.Fp()
	if err != nil {
		t.Fatalf("Fp: %v", err)
	}
	if fp.Coeffs[0] != 1 {
		t.Fatalf("fast-Fp constant coefficient = %d, want 1", fp.Coeffs[0])
	}
	for i := 1; i < fp.N(); i++ {
		if fp.Coeffs[i] != 0 {
			t.Fatalf("fast-Fp coefficient %d = %d, want 0", i, fp.Coeffs[i])
		}
	}
}
