// Package fr implements arithmetic in the scalar field of the BN254 pairing curve,
// i.e. the prime field of size
//
//	q = 21888242871839275222246405745257275088548364400416034343698204186575808495617.
//
// Field elements are held in Montgomery form (the stored limbs represent v * 2^256 mod q)
// with canonical (fully reduced) limb values, so that equality is limb-wise equality and
// serialization needs no extra reduction step.
//
// The API style is mutating with pointer receivers: z.Add(&x, &y) computes x + y and stores
// the result in z. Receivers and arguments are free to alias. Operations named with an Eq
// suffix modify the receiver in place, e.g. z.AddEq(&x) is z.Add(z, &x).
//
// All arithmetic runs in time independent of the operand values, with the documented
// exceptions of ExpVartime, Inv, Div, SquareRoot, Legendre, Cmp and String.
package fr

import "math/bits"

// feElement_64 is the uint64-limb implementation of a BN254 scalar field element.
// words holds the Montgomery representation, little-endian, always < q.
type feElement_64 struct {
	words [4]uint64
}

// FieldElement is an element of the BN254 scalar field.
//
// The zero value of this type is a valid representation of the field element 0.
type FieldElement = feElement_64

// SetZero sets z to 0.
func (z *feElement_64) SetZero() {
	z.words = [4]uint64{}
}

// SetOne sets z to 1.
func (z *feElement_64) SetOne() {
	z.words = feOne.words
}

// Add computes z := x + y.
func (z *feElement_64) Add(x, y *feElement_64) {
	addMod(&z.words, &x.words, &y.words)
}

// AddEq computes z += x.
func (z *feElement_64) AddEq(x *feElement_64) {
	addMod(&z.words, &z.words, &x.words)
}

// Sub computes z := x - y.
func (z *feElement_64) Sub(x, y *feElement_64) {
	subModReduce(&z.words, &x.words, &y.words)
}

// SubEq computes z -= x.
func (z *feElement_64) SubEq(x *feElement_64) {
	subModReduce(&z.words, &z.words, &x.words)
}

// Neg computes z := -x.
func (z *feElement_64) Neg(x *feElement_64) {
	// q - x, then zero the result if x was zero (q is not a canonical representation of 0).
	d0, borrow := bits.Sub64(scalarFieldSize_0, x.words[0], 0)
	d1, borrow := bits.Sub64(scalarFieldSize_1, x.words[1], borrow)
	d2, borrow := bits.Sub64(scalarFieldSize_2, x.words[2], borrow)
	d3, _ := bits.Sub64(scalarFieldSize_3, x.words[3], borrow)

	or := x.words[0] | x.words[1] | x.words[2] | x.words[3]
	mask := -((or | -or) >> 63) // all-ones iff x != 0
	z.words[0] = d0 & mask
	z.words[1] = d1 & mask
	z.words[2] = d2 & mask
	z.words[3] = d3 & mask
}

// NegEq computes z := -z.
func (z *feElement_64) NegEq() {
	z.Neg(z)
}

// Double computes z := 2 * x.
func (z *feElement_64) Double(x *feElement_64) {
	addMod(&z.words, &x.words, &x.words)
}

// DoubleEq computes z *= 2.
func (z *feElement_64) DoubleEq() {
	addMod(&z.words, &z.words, &z.words)
}

// Mul computes z := x * y.
func (z *feElement_64) Mul(x, y *feElement_64) {
	montMul(&z.words, &x.words, &y.words)
}

// MulEq computes z *= x.
func (z *feElement_64) MulEq(x *feElement_64) {
	montMul(&z.words, &z.words, &x.words)
}

// Square computes z := x * x. This is faster than z.Mul(x, x).
func (z *feElement_64) Square(x *feElement_64) {
	montSquare(&z.words, &x.words)
}

// SquareEq computes z *= z.
func (z *feElement_64) SquareEq() {
	montSquare(&z.words, &z.words)
}

// IsZero checks whether the field element is zero.
// Like all predicates on this type, the check runs in constant time;
// only the final bool conversion is visible to the caller.
func (z *feElement_64) IsZero() bool {
	return z.words[0]|z.words[1]|z.words[2]|z.words[3] == 0
}

// IsOne checks whether the field element is one.
func (z *feElement_64) IsOne() bool {
	return z.IsEqual(&feOne)
}

// IsEqual checks whether z and x represent the same field element.
// Representations are canonical, so this is a limb-wise comparison.
func (z *feElement_64) IsEqual(x *feElement_64) bool {
	d := (z.words[0] ^ x.words[0]) | (z.words[1] ^ x.words[1]) | (z.words[2] ^ x.words[2]) | (z.words[3] ^ x.words[3])
	return (d|-d)>>63 == 0
}

// Select sets z := x if cond == 1 and z := y if cond == 0, without branching on cond.
// cond must be 0 or 1.
func (z *feElement_64) Select(x, y *feElement_64, cond int) {
	mask := -uint64(cond & 1)
	z.words[0] = y.words[0] ^ (mask & (x.words[0] ^ y.words[0]))
	z.words[1] = y.words[1] ^ (mask & (x.words[1] ^ y.words[1]))
	z.words[2] = y.words[2] ^ (mask & (x.words[2] ^ y.words[2]))
	z.words[3] = y.words[3] ^ (mask & (x.words[3] ^ y.words[3]))
}

// Cmp compares the canonical (non-Montgomery) integer values of z and x,
// returning -1, 0 or +1 as for [big.Int.Cmp].
//
// Cmp is NOT constant time. It imposes a total order that is only meaningful
// for non-secret values (e.g. to sort or deduplicate).
func (z *feElement_64) Cmp(x *feElement_64) int {
	zRaw := fromMontgomery(&z.words)
	xRaw := fromMontgomery(&x.words)
	for i := 3; i >= 0; i-- {
		if zRaw[i] != xRaw[i] {
			if zRaw[i] < xRaw[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
