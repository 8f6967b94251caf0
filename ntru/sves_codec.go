package ntru

// encodeMessageTrits embeds the padded SVES-3 block into an N-trit
// polynomial for masking, via FromBinary3Sves. When Params.MaxM1 is
// positive, coefficient 0 is reserved rather than carrying message data
// (skipConstant), leaving it to be forced to zero once the mask is added.
func encodeMessageTrits(params *Params, block []byte) (*IntegerPolynomial, error) {
	return FromBinary3Sves(block, params.N, params.MaxM1 > 0)
}

// decodeMessageTrits reverses encodeMessageTrits, via ToBinary3Sves.
func decodeMessageTrits(params *Params, poly *IntegerPolynomial) []byte {
	return poly.ToBinary3Sves(params.MaxM1 > 0, paddedBlockLen(params))
}
