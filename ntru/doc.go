// Package ntru implements the NTRUEncrypt public-key cryptosystem: a
// lattice-based asymmetric encryption scheme operating in the truncated
// polynomial ring R = Z[X]/(X^N - 1) with a large power-of-two modulus q and
// a small modulus p = 3.
//
// The package exposes key-pair generation, encryption and decryption using
// the SVES-3 padding scheme from EESS #1, together with the polynomial
// algebra (dense, sparse and product-form ternary polynomials), the
// deterministic IGF-2 index generator and MGF-TP-1 mask generator, and the
// compact binary encodings the scheme relies on.
//
// Digest functions and PRNG sources are supplied by the caller through the
// Digest and PRNG interfaces; this package ships adapters for the common
// cases (SHA-256/512, Keccak-256/512, the platform CSPRNG, and a
// passphrase-seeded deterministic RNG) but does not mandate any of them.
package ntru
