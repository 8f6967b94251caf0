package ntru

// polyInvertModPrimeXN1 and its helpers implement the inverse of a
// polynomial in F_p[X]/(X^N - 1) by running the extended Euclidean
// algorithm between the polynomial and X^N - 1 directly in F_p[X] (no
// modular reduction tricks specific to p=2 or p=3; the same code path
// serves invertF3 and the mod-2 base case of invertFq's Newton lift). This
// generalizes the scalar extGCD in bigint.go from integers to polynomials
// over a small prime field, in the same spirit as the teacher's egcd.go.
//
// Polynomials here are plain []int64 slices with coefficients held in
// [0, p) and no fixed length; degree is tracked by trimming trailing zero
// high-order coefficients rather than by a separate field.

func polyDegree(a []int64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}
	return -1
}

func polyTrim(a []int64) []int64 {
	d := polyDegree(a)
	if d < 0 {
		return []int64{0}
	}
	return append([]int64(nil), a[:d+1]...)
}

func polyAddModP(a, b []int64, p int64) []int64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = floorMod(av+bv, p)
	}
	return polyTrim(out)
}

func polySubModP(a, b []int64, p int64) []int64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = floorMod(av-bv, p)
	}
	return polyTrim(out)
}

func polyMulModP(a, b []int64, p int64) []int64 {
	da, db := polyDegree(a), polyDegree(b)
	if da < 0 || db < 0 {
		return []int64{0}
	}
	out := make([]int64, da+db+1)
	for i := 0; i <= da; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j <= db; j++ {
			out[i+j] = floorMod(out[i+j]+a[i]*b[j], p)
		}
	}
	return polyTrim(out)
}

func polyScaleModP(a []int64, s int64, p int64) []int64 {
	out := make([]int64, len(a))
	for i, c := range a {
		out[i] = floorMod(c*s, p)
	}
	return polyTrim(out)
}

// polyDivModP divides a by b in F_p[X], returning quotient and remainder.
// It requires b to be nonzero; p must be prime so every nonzero leading
// coefficient is invertible mod p.
func polyDivModP(a, b []int64, p int64) (q, r []int64, ok bool) {
	b = polyTrim(b)
	degB := polyDegree(b)
	if degB < 0 {
		return nil, nil, false
	}
	leadInv, invOK := modInverse(b[degB], p)
	if !invOK {
		return nil, nil, false
	}

	r = polyTrim(a)
	degR := polyDegree(r)
	qLen := degR - degB + 1
	if qLen < 1 {
		qLen = 1
	}
	qc := make([]int64, qLen)

	for {
		degR = polyDegree(r)
		if degR < degB {
			break
		}
		shift := degR - degB
		coeff := floorMod(r[degR]*leadInv, p)
		if shift >= len(qc) {
			grown := make([]int64, shift+1)
			copy(grown, qc)
			qc = grown
		}
		qc[shift] = coeff
		for i := 0; i <= degB; i++ {
			r[i+shift] = floorMod(r[i+shift]-coeff*b[i], p)
		}
		r = polyTrim(r)
	}
	return polyTrim(qc), r, true
}

// polyExtGCDModP returns (g, u, v) with a*u + b*v = g = gcd(a, b) in F_p[X].
func polyExtGCDModP(a, b []int64, p int64) (g, u, v []int64) {
	oldR, r := polyTrim(a), polyTrim(b)
	oldS, s := []int64{1}, []int64{0}
	oldT, t := []int64{0}, []int64{1}

	for polyDegree(r) >= 0 && !(polyDegree(r) == 0 && r[0] == 0) {
		quot, rem, _ := polyDivModP(oldR, r, p)
		oldR, r = r, rem
		oldS, s = s, polySubModP(oldS, polyMulModP(quot, s, p), p)
		oldT, t = t, polySubModP(oldT, polyMulModP(quot, t, p), p)
	}
	return oldR, oldS, oldT
}

// polyInvertModPrimeXN1 inverts f in F_p[X]/(X^N - 1), returning a
// length-N coefficient vector, or ok=false if f is not a unit in that ring
// (the gcd with X^N - 1 is not a nonzero constant).
func polyInvertModPrimeXN1(f []int64, p int64) (inv []int64, ok bool) {
	n := len(f)
	xn1 := make([]int64, n+1)
	xn1[0] = floorMod(-1, p)
	xn1[n] = 1

	g, u, _ := polyExtGCDModP(f, xn1, p)
	g = polyTrim(g)
	if polyDegree(g) != 0 || g[0] == 0 {
		return nil, false
	}
	gInv, invOK := modInverse(g[0], p)
	if !invOK {
		return nil, false
	}

	scaled := polyScaleModP(u, gInv, p)
	_, rem, _ := polyDivModP(scaled, xn1, p)

	out := make([]int64, n)
	copy(out, rem)
	return out, true
}
