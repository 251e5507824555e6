package fr

// This file computes square roots in the field. Since q - 1 == 2^28 * t with t odd,
// the 2-Sylow subgroup of the multiplicative group is large and the simple
// exponentiation tricks for q == 3 mod 4 do not apply; we use the Tonelli-Shanks
// algorithm with [RootOfUnity] as the initial fudge element.
//
// Square roots come in pairs {r, -r} and no choice of the two is canonical in this
// field; SquareRoot may return either.

// Legendre returns the Legendre symbol of z: +1 if z is a nonzero square,
// -1 if z is a non-square and 0 if z is zero.
//
// Not constant time.
func (z *feElement_64) Legendre() int {
	var symbol feElement_64
	symbol.ExpVartime(z, &qMinus1Half)
	if symbol.IsZero() {
		return 0
	}
	if symbol.IsOne() {
		return 1
	}
	return -1
}

// SquareRoot computes a square root z of x, if it exists, and reports whether it did.
// If x is a non-square, SquareRoot returns false and leaves z unchanged.
// The returned root is either of the pair {r, -r}; callers needing a fixed choice
// must pick one themselves (e.g. by [Cmp] against its negative).
//
// Not constant time.
func (z *feElement_64) SquareRoot(x *feElement_64) (ok bool) {
	if x.IsZero() {
		z.SetZero()
		return true
	}

	// Write q - 1 == 2^v0 * t with t odd. For w == x^((t-1)/2) we start with
	//   r == x * w        (candidate root, r^2 == x * b)
	//   b == r * w == x^t (error term, b is in the group of 2^v0-th roots of unity)
	// and repair r by roots of unity of decreasing order until b == 1.
	var w, r, b, c feElement_64
	w.ExpVartime(x, &tonelliShanks)
	r.Mul(x, &w)
	b.Mul(&r, &w)
	c = feRootOfUnity
	v := uint(TwoAdicity)

	for !b.IsOne() {
		// smallest m with b^(2^m) == 1
		m := uint(0)
		sq := b
		for !sq.IsOne() {
			sq.SquareEq()
			m++
			if m == v {
				// b has full order, so x^t != 1 and x is a non-square.
				return false
			}
		}

		// c has order 2^v; raise it to 2^(v-m-1) to get an element of order 2^(m+1)
		// whose square flips the offending component of b.
		for i := uint(0); i < v-m-1; i++ {
			c.SquareEq()
		}
		r.MulEq(&c)
		c.SquareEq()
		b.MulEq(&c)
		v = m
	}

	*z = r
	return true
}
