package fr

// ExpVartime computes z := base^exponent, treating exponent as a plain 256-bit integer
// (not a field element; in particular it is not reduced mod q-1).
// base^0 is 1 for every base, including 0.
//
// As the name says, the running time depends on the bits of the exponent.
// Callers with secret exponents must not use this.
func (z *feElement_64) ExpVartime(base *feElement_64, exponent *Uint256) {
	// Left-to-right square and multiply. We accumulate into a local so that z may alias base.
	result := feOne
	foundFirstBit := false
	for i := 3; i >= 0; i-- {
		word := exponent[i]
		for bit := 63; bit >= 0; bit-- {
			if foundFirstBit {
				result.SquareEq()
			}
			if word&(1<<uint(bit)) != 0 {
				foundFirstBit = true
				result.MulEq(base)
			}
		}
	}
	*z = result
}

// Inv computes the multiplicative inverse z := 1/x and reports whether it exists.
// For x == 0, Inv returns false and leaves z unchanged.
//
// The inverse is computed as x^(q-2). The exponent is fixed and public, so the use of
// ExpVartime leaks nothing about x.
func (z *feElement_64) Inv(x *feElement_64) (ok bool) {
	if x.IsZero() {
		return false
	}
	z.ExpVartime(x, &qMinus2)
	return true
}

// InvEq computes z := 1/z and reports whether the inverse exists.
func (z *feElement_64) InvEq() (ok bool) {
	return z.Inv(z)
}

// Div computes z := x / y and reports whether the division is defined.
// For y == 0, Div returns false and leaves z unchanged.
func (z *feElement_64) Div(x, y *feElement_64) (ok bool) {
	var yInv feElement_64
	if ok = yInv.Inv(y); !ok {
		return
	}
	z.Mul(x, &yInv)
	return
}

// DivEq computes z /= x and reports whether the division is defined.
func (z *feElement_64) DivEq(x *feElement_64) (ok bool) {
	return z.Div(z, x)
}
