package ntru

import (
	"os"
	"sync"
)

// maxKeygenAttempts bounds the rejection loop searching for a private
// polynomial f invertible mod q; a parameter set this loop exhausts is
// misconfigured (Df/Df1-3 too small relative to N), not merely unlucky.
const maxKeygenAttempts = 4096

// keygenBatchSize is how many candidate f polynomials are drawn and
// inversion-tested together per round. Drawing the whole batch from the
// caller's PRNG sequentially keeps key generation reproducible under
// PassphraseRNG; only the CPU-bound inversion attempts run concurrently.
const keygenBatchSize = 8

// GenerateKeyPair runs NTRUEncrypt key generation under params, drawing
// randomness from prng for both the g and f searches: a ternary g, a
// private polynomial f invertible modulo both q and 3 (searched via
// rejection sampling, batched across goroutines for the expensive
// inversion step), and the public polynomial h = 3*g*fq mod q.
func GenerateKeyPair(params *Params, prng PRNG) (*KeyPair, error) {
	return generateKeyPair(params, prng, prng)
}

// GenerateKeyPairFromPassphrase reproduces spec.md §5's passphrase-based
// key generation: g and f are searched from two independently-keyed
// branches of the same (passphrase, salt) pair, so the two searches never
// share a byte stream even though both are reproducible from the same
// low-entropy secret (see PassphraseRNG's branch-label documentation).
func GenerateKeyPairFromPassphrase(params *Params, passphrase, salt []byte) (*KeyPair, error) {
	rngG, err := NewPassphraseRNG(passphrase, salt, "g")
	if err != nil {
		return nil, err
	}
	rngF, err := NewPassphraseRNG(passphrase, salt, "f")
	if err != nil {
		return nil, err
	}
	return generateKeyPair(params, rngG, rngF)
}

func generateKeyPair(params *Params, prngG, prngF PRNG) (*KeyPair, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	g, err := generateG(params, prngG)
	if err != nil {
		return nil, err
	}

	f, fq, err := generateInvertibleF(params, prngF)
	if err != nil {
		return nil, err
	}

	h := fq.Multiply(g.ToIntegerPolynomial(), params.Q)
	h.Mult3(params.Q)

	return &KeyPair{
		Public:  &PublicKey{Params: params, H: h},
		Private: &PrivateKey{Params: params, F: f},
	}, nil
}

// generateG draws the blinding-like polynomial g with Dg ones and Dg-1
// negative-ones, per spec.md §4.6 step 1 (the asymmetry is what IsValid's
// recovered-g check in keys.go verifies against).
func generateG(params *Params, prng PRNG) (TernaryPolynomial, error) {
	if params.Sparse {
		return GenerateRandomSparseTernary(params.N, params.Dg, params.Dg-1, prng)
	}
	return GenerateRandomDenseTernary(params.N, params.Dg, params.Dg-1, prng)
}

// fNegOnes returns the negative-one count the stored polynomial t should
// carry, per spec.md §4.6 step 2: df-1 for the plain "f = t" case, or df
// (symmetric with the ones count) when FastFp's "f = 1 + 3t" bump on the
// constant coefficient already supplies the asymmetry.
func fNegOnes(params *Params, df int) int {
	if params.FastFp {
		return df
	}
	return df - 1
}

func generateCandidateF(params *Params, prng PRNG) (*PrivateF, error) {
	if params.PolyType == PolyProduct {
		pf, err := GenerateRandomProductForm(params.N, params.Df1, params.Df2, params.Df3, fNegOnes(params, params.Df3), prng)
		if err != nil {
			return nil, err
		}
		return &PrivateF{Product: pf}, nil
	}
	if params.Sparse {
		s, err := GenerateRandomSparseTernary(params.N, params.Df, fNegOnes(params, params.Df), prng)
		if err != nil {
			return nil, err
		}
		return &PrivateF{Sparse: s}, nil
	}
	d, err := GenerateRandomDenseTernary(params.N, params.Df, fNegOnes(params, params.Df), prng)
	if err != nil {
		return nil, err
	}
	return &PrivateF{Dense: d}, nil
}

// generateInvertibleF draws candidate f polynomials until one is
// invertible mod q, returning the stored polynomial t alongside
// fq = f^-1 mod q, where f is t itself or, under FastFp, the 1+3t it
// stands in for (PrivateF.ActualF).
func generateInvertibleF(params *Params, prng PRNG) (*PrivateF, *IntegerPolynomial, error) {
	for attempt := 0; attempt < maxKeygenAttempts; attempt += keygenBatchSize {
		n := keygenBatchSize
		if attempt+n > maxKeygenAttempts {
			n = maxKeygenAttempts - attempt
		}

		batch := make([]*PrivateF, n)
		for i := range batch {
			pf, err := generateCandidateF(params, prng)
			if err != nil {
				return nil, nil, err
			}
			batch[i] = pf
		}

		fqs := make([]*IntegerPolynomial, n)
		var wg sync.WaitGroup
		for i, pf := range batch {
			wg.Add(1)
			go func(i int, pf *PrivateF) {
				defer wg.Done()
				dense := pf.ActualF(params)
				// Per spec.md §4.6 step 2, non-FastFp sets also require f
				// invertible mod 3 (fp = f^-1 mod 3); FastFp sets fp = 1
				// trivially and skip this check.
				if !params.FastFp {
					t := pf.ToIntegerPolynomial(3)
					if _, ok := t.InvertF3(); !ok {
						return
					}
				}
				if fq, ok := dense.InvertFq(params.Q); ok {
					fqs[i] = fq
				}
			}(i, pf)
		}
		wg.Wait()

		for i, fq := range fqs {
			if fq != nil {
				return batch[i], fq, nil
			}
		}
		dbg(os.Stderr, "ntru: keygen: batch of %d candidate f polynomials had none invertible mod q, retrying\n", n)
	}
	return nil, nil, newError(KindParameter, "key generation exceeded maximum attempts searching for an invertible f")
}
