package ntru

// sves.go holds the pieces of SVES-3 padding shared between Encrypt and
// Decrypt: the padded-message-block layout and the deterministic
// derivation of the blinding polynomial r from the public key, the message
// and the random prefix b, which is what lets Decrypt re-derive r and re-encrypt to
// check a ciphertext's integrity without ever seeing the randomness
// Encrypt used.

// paddedBlockLen is the fixed length, in bytes, of the SVES-3 message
// representative under params: a random prefix b, a one-byte length
// field, and a maxMsgLenBytes-sized field holding the message followed by
// zero padding.
func paddedBlockLen(params *Params) int {
	return params.Db/8 + 1 + params.MaxMsgLenBytes
}

// buildPaddedBlock lays out b || len(msg) || msg || zero-padding into a
// fixed-length block.
func buildPaddedBlock(params *Params, b, msg []byte) []byte {
	block := make([]byte, paddedBlockLen(params))
	copy(block, b)
	off := len(b)
	block[off] = byte(len(msg))
	off++
	copy(block[off:], msg)
	return block
}

// parsePaddedBlock splits a recovered message block back into b, the
// declared message, and reports whether every padding byte was zero and
// the declared length fit within MaxMsgLenBytes. Callers must still
// reject a decryption whose ok is false without revealing which
// sub-check failed.
func parsePaddedBlock(params *Params, block []byte) (b, msg []byte, ok bool) {
	dbBytes := params.Db / 8
	if len(block) < dbBytes+1 {
		return nil, nil, false
	}
	b = block[:dbBytes]
	msgLen := int(block[dbBytes])
	if msgLen > params.MaxMsgLenBytes {
		return nil, nil, false
	}
	msgStart := dbBytes + 1
	msgEnd := msgStart + msgLen
	if msgEnd > len(block) {
		return nil, nil, false
	}
	msg = block[msgStart:msgEnd]
	for _, padByte := range block[msgEnd:] {
		if padByte != 0 {
			return nil, nil, false
		}
	}
	return b, msg, true
}

// blindingSparsity returns the number of +1 coefficients, and equally of
// -1 coefficients, the deterministically derived blinding polynomial r
// uses: Df for simple parameter sets, or Df1+Df2+Df3 for product-form ones
// (there being no separate Dr field in this parameter layout).
func blindingSparsity(params *Params) int {
	if params.PolyType == PolyProduct {
		return params.Df1 + params.Df2 + params.Df3
	}
	return params.Df
}

// deriveBlindingPoly deterministically derives the SVES-3 blinding
// polynomial r from the public key, the raw message and the random prefix
// b via IGF-2, hashing oid || M || b || truncate(h.toBinary(q), db/8) as
// its seed. Both Encrypt and Decrypt call this with the same (h, b, msg)
// triple for a legitimate ciphertext, which is what lets Decrypt's
// re-encryption check catch a tampered or malformed one.
func deriveBlindingPoly(params *Params, h *IntegerPolynomial, b, msg []byte) *SparseTernaryPolynomial {
	pkBytes := h.ToBinary(params.Q)
	pkLen := params.Db / 8
	if pkLen > len(pkBytes) {
		pkLen = len(pkBytes)
	}

	digest := NewDigest(params.DigestID)
	digest.Reset()
	digest.Update(params.OID[:])
	digest.Update(msg)
	digest.Update(b)
	digest.Update(pkBytes[:pkLen])
	seed := digest.Finalize()

	ig := NewIndexGenerator(seed, params.N, params.C, params.MinIGFHashCalls, params.HashSeed, NewDigest(params.DigestID))

	d := blindingSparsity(params)
	if d < 1 {
		d = 1
	}
	used := make(map[int]bool, 2*d)
	ones := make([]int, 0, d)
	for len(ones) < d {
		idx := ig.NextIndex()
		if used[idx] {
			continue
		}
		used[idx] = true
		ones = append(ones, idx)
	}
	negOnes := make([]int, 0, d)
	for len(negOnes) < d {
		idx := ig.NextIndex()
		if used[idx] {
			continue
		}
		used[idx] = true
		negOnes = append(negOnes, idx)
	}
	return &SparseTernaryPolynomial{n: params.N, Ones: ones, NegOnes: negOnes}
}
