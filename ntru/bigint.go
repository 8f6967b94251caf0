package ntru

// extGCD returns (g, u, v) such that a*u + b*v = g = gcd(a,b), using the
// standard iterative extended Euclidean algorithm. The moduli this package
// inverts against (3 and powers of two) are small enough that plain int64
// arithmetic never overflows, so there is no need for math/big here.
func extGCD(a, b int64) (g, u, v int64) {
	oldR, r := a, b
	oldU, u1 := int64(1), int64(0)
	oldV, v1 := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldU, u1 = u1, oldU-q*u1
		oldV, v1 = v1, oldV-q*v1
	}

	return oldR, oldU, oldV
}

// modInverse returns the inverse of a modulo m (m > 0), and whether it
// exists. The result is normalized to [0, m).
func modInverse(a, m int64) (int64, bool) {
	if m <= 0 {
		return 0, false
	}
	a %= m
	if a < 0 {
		a += m
	}
	g, u, _ := extGCD(a, m)
	if g != 1 && g != -1 {
		return 0, false
	}
	if g == -1 {
		u = -u
	}
	u %= m
	if u < 0 {
		u += m
	}
	return u, true
}

// floorDiv divides a by b rounding toward negative infinity (Go's / and %
// truncate toward zero).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a mod b with the result always in [0, b) for b > 0.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
