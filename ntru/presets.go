package ntru

// The Preset* functions below return the fixed parameter sets EESS #1
// publishes for NTRUEncrypt, spanning moderate, high and highest security
// categories. The EES sets use the simple ternary-polynomial form; all four
// APR2011 sets use the product form, and their "FAST" variants differ from
// the plain ones only in setting FastFp (and in OID and Name). Each
// returns a fresh *Params so callers
// are free to mutate the copy they receive (e.g. to swap DigestID)
// without perturbing the preset. Dg and MaxMsgLenBytes are not set
// directly: deriveFields computes them from N, Db and MaxM1 once the rest
// of the literal fields are in place.

func presetBase(oid byte, name string, n int, q int64) *Params {
	return &Params{
		OID:      [3]byte{0x00, 0x00, oid},
		Name:     name,
		N:        n,
		Q:        q,
		DigestID: DigestSHA512,
	}
}

// PresetEES401EP1 is the moderate-security simple-form parameter set.
func PresetEES401EP1() *Params {
	p := presetBase(0x01, "EES401EP1", 401, 2048)
	p.Df, p.Dm0 = 113, 113
	p.MaxM1, p.Db = 10, 112
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 11, 32, 9
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES449EP1 is an alternate moderate-security simple-form parameter
// set with a larger N and Df than EES401EP1.
func PresetEES449EP1() *Params {
	p := presetBase(0x02, "EES449EP1", 449, 2048)
	p.Df, p.Dm0 = 134, 134
	p.MaxM1, p.Db = 10, 112
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 9, 31, 9
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES541EP1 is a moderate-to-high-security simple-form parameter
// set.
func PresetEES541EP1() *Params {
	p := presetBase(0x03, "EES541EP1", 541, 2048)
	p.Df, p.Dm0 = 49, 49
	p.MaxM1, p.Db = 10, 112
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 11, 15, 9
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES677EP1 is the high-security simple-form parameter set.
func PresetEES677EP1() *Params {
	p := presetBase(0x04, "EES677EP1", 677, 2048)
	p.Df, p.Dm0 = 157, 157
	p.MaxM1, p.Db = 10, 112
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 11, 27, 9
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES1087EP1 is the highest-security simple-form parameter set.
func PresetEES1087EP1() *Params {
	p := presetBase(0x05, "EES1087EP1", 1087, 2048)
	p.Df, p.Dm0 = 120, 120
	p.MaxM1, p.Db = 10, 256
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 13, 25, 14
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES1087EP2 is an alternate highest-security simple-form parameter
// set; it differs from EES1087EP1 only in using the fast-Fp private
// polynomial form (f = 1 + 3*F), so its message budget is the same.
func PresetEES1087EP2() *Params {
	p := presetBase(0x06, "EES1087EP2", 1087, 2048)
	p.Df, p.Dm0 = 120, 120
	p.MaxM1, p.Db = 10, 256
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 13, 25, 14
	p.FastFp = true
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES1171EP1 is the high-security simple-form parameter set at a
// larger ring dimension than EES677EP1.
func PresetEES1171EP1() *Params {
	p := presetBase(0x07, "EES1171EP1", 1171, 2048)
	p.Df, p.Dm0 = 106, 106
	p.MaxM1, p.Db = 10, 256
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 13, 20, 14
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetEES1499EP1 is the highest-security simple-form parameter set at
// the largest standard ring dimension.
func PresetEES1499EP1() *Params {
	p := presetBase(0x08, "EES1499EP1", 1499, 2048)
	p.Df, p.Dm0 = 79, 79
	p.MaxM1, p.Db = 10, 256
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 13, 17, 14
	p.PolyType = PolySimple
	p.deriveFields()
	return p
}

// PresetAPR2011_439 is the moderate-security product-form parameter set.
func PresetAPR2011_439() *Params {
	p := presetBase(0x09, "APR2011_439", 439, 2048)
	p.Df1, p.Df2, p.Df3, p.Dm0 = 9, 8, 5, 9
	p.MaxM1, p.Db = 10, 112
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 9, 32, 9
	p.PolyType = PolyProduct
	p.Sparse = true
	p.deriveFields()
	return p
}

// PresetAPR2011_439_FAST is PresetAPR2011_439 with the fast-Fp private
// polynomial form (f = 1 + 3*F).
func PresetAPR2011_439_FAST() *Params {
	p := PresetAPR2011_439()
	p.OID = [3]byte{0x00, 0x00, 0x0a}
	p.Name = "APR2011_439_FAST"
	p.FastFp = true
	return p
}

// PresetAPR2011_743 is the high-security product-form parameter set.
func PresetAPR2011_743() *Params {
	p := presetBase(0x0b, "APR2011_743", 743, 2048)
	p.Df1, p.Df2, p.Df3, p.Dm0 = 11, 11, 15, 11
	p.MaxM1, p.Db = 10, 112
	p.C, p.MinIGFHashCalls, p.MinMGFHashCalls = 11, 27, 14
	p.PolyType = PolyProduct
	p.Sparse = true
	p.deriveFields()
	return p
}

// PresetAPR2011_743_FAST is PresetAPR2011_743 with the fast-Fp private
// polynomial form.
func PresetAPR2011_743_FAST() *Params {
	p := PresetAPR2011_743()
	p.OID = [3]byte{0x00, 0x00, 0x0c}
	p.Name = "APR2011_743_FAST"
	p.FastFp = true
	return p
}

// presetsByOID indexes every preset by its third OID byte, for LookupPreset.
var presetsByOID = map[byte]func() *Params{
	0x01: PresetEES401EP1,
	0x02: PresetEES449EP1,
	0x03: PresetEES541EP1,
	0x04: PresetEES677EP1,
	0x05: PresetEES1087EP1,
	0x06: PresetEES1087EP2,
	0x07: PresetEES1171EP1,
	0x08: PresetEES1499EP1,
	0x09: PresetAPR2011_439,
	0x0a: PresetAPR2011_439_FAST,
	0x0b: PresetAPR2011_743,
	0x0c: PresetAPR2011_743_FAST,
}

// LookupPreset returns the preset parameter set identified by oid, or
// ErrInvalidOID if oid names none of them.
func LookupPreset(oid [3]byte) (*Params, error) {
	if oid[0] != 0x00 || oid[1] != 0x00 {
		return nil, ErrInvalidOID
	}
	ctor, ok := presetsByOID[oid[2]]
	if !ok {
		return nil, ErrInvalidOID
	}
	return ctor(), nil
}
