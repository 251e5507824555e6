package fr

import "math/bits"

// Uint256 is a plain (non-Montgomery) 256-bit unsigned integer, stored as four little-endian 64-bit words.
// It is used for exponents and raw integer conversions; it is NOT the internal representation of a field element.
type Uint256 [4]uint64

// IsZero checks whether the Uint256 is (exactly) zero.
func (z *Uint256) IsZero() bool {
	return z[0]|z[1]|z[2]|z[3] == 0
}

// The three primitives below are the building blocks of all multi-word arithmetic in this package.
// They are pure and branch-free; math/bits lowers them to the corresponding carry-chain instructions.

// adc returns the sum a + b + carry together with the new carry. carry must be 0 or 1.
func adc(a, b, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}

// sbb returns a - b - (borrow >> 63) together with the new borrow.
// The borrow is all-ones on underflow and zero otherwise, so that it can be
// ANDed against the modulus words for a branchless conditional add-back.
func sbb(a, b, borrow uint64) (diff, borrowOut uint64) {
	d, b1 := bits.Sub64(a, b, borrow>>63)
	return d, -b1
}

// madd returns acc + a*b + carry as a 128-bit value, split into its low and high 64-bit halves.
// The high half cannot overflow: (2^64-1)^2 + 2*(2^64-1) == 2^128 - 1.
func madd(acc, a, b, carry uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	var c uint64
	lo, c = bits.Add64(lo, acc, 0)
	hi, _ = bits.Add64(hi, 0, c)
	lo, c = bits.Add64(lo, carry, 0)
	hi, _ = bits.Add64(hi, 0, c)
	return
}

// subModReduce sets z := x - y mod q for x < 2q and y <= q, writing a canonical (< q) result.
// The borrow of the raw subtraction chain is an all-ones mask, so the add-back of q
// is a single unconditional masked addition; no limb value is ever branched on.
func subModReduce(z, x, y *[4]uint64) {
	var borrow uint64
	z[0], borrow = sbb(x[0], y[0], 0)
	z[1], borrow = sbb(x[1], y[1], borrow)
	z[2], borrow = sbb(x[2], y[2], borrow)
	z[3], borrow = sbb(x[3], y[3], borrow)

	var carry uint64
	z[0], carry = bits.Add64(z[0], scalarFieldSize_0&borrow, 0)
	z[1], carry = bits.Add64(z[1], scalarFieldSize_1&borrow, carry)
	z[2], carry = bits.Add64(z[2], scalarFieldSize_2&borrow, carry)
	z[3], _ = bits.Add64(z[3], scalarFieldSize_3&borrow, carry)
}

// addModGeneric sets z := x + y mod q for canonical x and y, writing a canonical result.
// The raw sum is below 2q < 2^256, so the carry chain cannot overflow and at most one
// subtraction of q is needed; subModReduce performs it branch-free.
func addModGeneric(z, x, y *[4]uint64) {
	var s [4]uint64
	var carry uint64
	s[0], carry = bits.Add64(x[0], y[0], 0)
	s[1], carry = bits.Add64(x[1], y[1], carry)
	s[2], carry = bits.Add64(x[2], y[2], carry)
	s[3], _ = bits.Add64(x[3], y[3], carry)

	q := [4]uint64{scalarFieldSize_0, scalarFieldSize_1, scalarFieldSize_2, scalarFieldSize_3}
	subModReduce(z, &s, &q)
}

// isBelowModulus reports whether x, read as a raw 256-bit integer, is strictly smaller than q.
// The check is a trial subtraction, so it does not branch on the limb values.
func isBelowModulus(x *[4]uint64) bool {
	var borrow uint64
	_, borrow = sbb(x[0], scalarFieldSize_0, 0)
	_, borrow = sbb(x[1], scalarFieldSize_1, borrow)
	_, borrow = sbb(x[2], scalarFieldSize_2, borrow)
	_, borrow = sbb(x[3], scalarFieldSize_3, borrow)
	// borrow is all-ones iff the subtraction underflowed, i.e. iff x < q.
	return borrow != 0
}
