package fr

import (
	"math/big"
	"testing"

	"github.com/halofield/bn254/internal/testutils"
)

func TestExpSmallCases(t *testing.T) {
	rng := testRng(200)
	var zero Uint256
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)

		var y FieldElement
		y.ExpVartime(&x, &zero)
		testutils.FatalUnless(t, y.IsOne(), "x^0 != 1")

		y.ExpVartime(&x, &Uint256{1, 0, 0, 0})
		testutils.FatalUnless(t, y.IsEqual(&x), "x^1 != x")

		y.ExpVartime(&x, &Uint256{2, 0, 0, 0})
		var xSquared FieldElement
		xSquared.Square(&x)
		testutils.FatalUnless(t, y.IsEqual(&xSquared), "x^2 != Square(x)")
	}

	// 0^0 == 1 by convention
	var y FieldElement
	y.ExpVartime(&FieldElementZero, &zero)
	testutils.FatalUnless(t, y.IsOne(), "0^0 != 1")
	y.ExpVartime(&FieldElementZero, &Uint256{5, 0, 0, 0})
	testutils.FatalUnless(t, y.IsZero(), "0^5 != 0")
}

func TestExpMatchesBigInt(t *testing.T) {
	rng := testRng(201)
	for i := 0; i < 50; i++ {
		x := randomFieldElement(rng)
		exponent := Uint256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}

		var y FieldElement
		y.ExpVartime(&x, &exponent)

		exponentArray := [4]uint64(exponent)
		ref := new(big.Int).Exp(x.ToBigInt(), uint256ToBigInt(&exponentArray), scalarFieldSize_Int)
		testutils.FatalUnless(t, y.ToBigInt().Cmp(ref) == 0, "ExpVartime disagrees with big.Int.Exp")
	}
}

func TestExpAliasing(t *testing.T) {
	rng := testRng(202)
	exponent := Uint256{0xdeadbeef, 3, 0, 1}
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)
		var expected FieldElement
		expected.ExpVartime(&x, &exponent)
		x.ExpVartime(&x, &exponent)
		testutils.FatalUnless(t, x.IsEqual(&expected), "ExpVartime fails with aliased receiver")
	}
}

func TestFermatLittleTheorem(t *testing.T) {
	rng := testRng(203)
	qMinus1 := Uint256{scalarFieldSize_0 - 1, scalarFieldSize_1, scalarFieldSize_2, scalarFieldSize_3}
	for i := 0; i < 1000; i++ {
		x := randomFieldElement(rng)
		if x.IsZero() {
			continue
		}
		var y FieldElement
		y.ExpVartime(&x, &qMinus1)
		testutils.FatalUnless(t, y.IsOne(), "x^(q-1) != 1 for x = %v", &x)
	}
}

func TestInv(t *testing.T) {
	rng := testRng(204)
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)
		if x.IsZero() {
			continue
		}
		var xInv FieldElement
		testutils.FatalUnless(t, xInv.Inv(&x), "Inv failed on nonzero element")
		var product FieldElement
		product.Mul(&x, &xInv)
		testutils.FatalUnless(t, product.IsOne(), "x * (1/x) != 1")

		// in-place variant
		y := x
		testutils.FatalUnless(t, y.InvEq(), "InvEq failed on nonzero element")
		testutils.FatalUnless(t, y.IsEqual(&xInv), "InvEq disagrees with Inv")
	}

	sentinel := FieldElementTwo
	testutils.FatalUnless(t, !sentinel.Inv(&FieldElementZero), "Inv(0) reported success")
	testutils.FatalUnless(t, sentinel.IsEqual(&FieldElementTwo), "failed Inv modified the receiver")
}

func TestDiv(t *testing.T) {
	rng := testRng(205)
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)
		y := randomFieldElement(rng)
		if y.IsZero() {
			continue
		}
		var quotient FieldElement
		testutils.FatalUnless(t, quotient.Div(&x, &y), "Div failed on nonzero divisor")
		quotient.MulEq(&y)
		testutils.FatalUnless(t, quotient.IsEqual(&x), "(x / y) * y != x")
	}

	sentinel := FieldElementTwo
	testutils.FatalUnless(t, !sentinel.Div(&FieldElementOne, &FieldElementZero), "division by zero reported success")
	testutils.FatalUnless(t, sentinel.IsEqual(&FieldElementTwo), "failed Div modified the receiver")
}

// uint256ToBigInt is a test helper; the non-test code converts via Montgomery form instead.
func uint256ToBigInt(x *[4]uint64) *big.Int {
	result := new(big.Int)
	for i := 3; i >= 0; i-- {
		result.Lsh(result, 64)
		result.Or(result, new(big.Int).SetUint64(x[i]))
	}
	return result
}
