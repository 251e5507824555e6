package fr

import "math/bits"

// This file contains the Montgomery arithmetic core: multiplication, squaring and the
// reduction of a 512-bit product. Field elements store v*r mod q for r == 2^256, so
// montMul(x, y) == x*y/r mod q keeps products in the Montgomery domain.
//
// All routines here write canonical (< q) outputs and run in time independent of the
// operand values.

// montgomeryReduce reduces the 512-bit integer with little-endian words r0..r7 by r == 2^256,
// returning (r0..r7) / 2^256 mod q as canonical limbs.
//
// Each of the four passes adds a multiple of q chosen to zero the lowest remaining word,
// then shifts down by one word (implicitly, by renaming). Since the input is below 2^512
// and 4 passes divide by 2^256, the pre-subtraction result is below 2q.
func montgomeryReduce(r0, r1, r2, r3, r4, r5, r6, r7 uint64) (z [4]uint64) {
	var carry, carry2 uint64

	k := r0 * negativeInverseModulus_uint64
	_, carry = madd(r0, k, scalarFieldSize_0, 0)
	r1, carry = madd(r1, k, scalarFieldSize_1, carry)
	r2, carry = madd(r2, k, scalarFieldSize_2, carry)
	r3, carry = madd(r3, k, scalarFieldSize_3, carry)
	r4, carry2 = bits.Add64(r4, carry, 0)

	k = r1 * negativeInverseModulus_uint64
	_, carry = madd(r1, k, scalarFieldSize_0, 0)
	r2, carry = madd(r2, k, scalarFieldSize_1, carry)
	r3, carry = madd(r3, k, scalarFieldSize_2, carry)
	r4, carry = madd(r4, k, scalarFieldSize_3, carry)
	r5, carry2 = bits.Add64(r5, carry, carry2)

	k = r2 * negativeInverseModulus_uint64
	_, carry = madd(r2, k, scalarFieldSize_0, 0)
	r3, carry = madd(r3, k, scalarFieldSize_1, carry)
	r4, carry = madd(r4, k, scalarFieldSize_2, carry)
	r5, carry = madd(r5, k, scalarFieldSize_3, carry)
	r6, carry2 = bits.Add64(r6, carry, carry2)

	k = r3 * negativeInverseModulus_uint64
	_, carry = madd(r3, k, scalarFieldSize_0, 0)
	r4, carry = madd(r4, k, scalarFieldSize_1, carry)
	r5, carry = madd(r5, k, scalarFieldSize_2, carry)
	r6, carry = madd(r6, k, scalarFieldSize_3, carry)
	r7, _ = bits.Add64(r7, carry, carry2)

	sum := [4]uint64{r4, r5, r6, r7}
	q := [4]uint64{scalarFieldSize_0, scalarFieldSize_1, scalarFieldSize_2, scalarFieldSize_3}
	subModReduce(&z, &sum, &q)
	return
}

// montMul sets z := x * y / 2^256 mod q via a schoolbook 4x4 multiplication followed by
// montgomeryReduce. z, x, y may alias.
func montMul(z, x, y *[4]uint64) {
	var r0, r1, r2, r3, r4, r5, r6, r7, carry uint64

	r0, carry = madd(0, x[0], y[0], 0)
	r1, carry = madd(0, x[0], y[1], carry)
	r2, carry = madd(0, x[0], y[2], carry)
	r3, r4 = madd(0, x[0], y[3], carry)

	r1, carry = madd(r1, x[1], y[0], 0)
	r2, carry = madd(r2, x[1], y[1], carry)
	r3, carry = madd(r3, x[1], y[2], carry)
	r4, r5 = madd(r4, x[1], y[3], carry)

	r2, carry = madd(r2, x[2], y[0], 0)
	r3, carry = madd(r3, x[2], y[1], carry)
	r4, carry = madd(r4, x[2], y[2], carry)
	r5, r6 = madd(r5, x[2], y[3], carry)

	r3, carry = madd(r3, x[3], y[0], 0)
	r4, carry = madd(r4, x[3], y[1], carry)
	r5, carry = madd(r5, x[3], y[2], carry)
	r6, r7 = madd(r6, x[3], y[3], carry)

	*z = montgomeryReduce(r0, r1, r2, r3, r4, r5, r6, r7)
}

// montSquare sets z := x * x / 2^256 mod q. It computes the off-diagonal half of the
// product once, doubles it with a word-level shift, then adds the diagonal terms.
// z and x may alias.
func montSquare(z, x *[4]uint64) {
	var r0, r1, r2, r3, r4, r5, r6, r7, carry uint64

	r1, carry = madd(0, x[0], x[1], 0)
	r2, carry = madd(0, x[0], x[2], carry)
	r3, r4 = madd(0, x[0], x[3], carry)

	r3, carry = madd(r3, x[1], x[2], 0)
	r4, r5 = madd(r4, x[1], x[3], carry)

	r5, r6 = madd(r5, x[2], x[3], 0)

	r7 = r6 >> 63
	r6 = (r6 << 1) | (r5 >> 63)
	r5 = (r5 << 1) | (r4 >> 63)
	r4 = (r4 << 1) | (r3 >> 63)
	r3 = (r3 << 1) | (r2 >> 63)
	r2 = (r2 << 1) | (r1 >> 63)
	r1 <<= 1

	r0, carry = madd(0, x[0], x[0], 0)
	r1, carry = bits.Add64(r1, carry, 0)
	r2, carry = madd(r2, x[1], x[1], carry)
	r3, carry = bits.Add64(r3, carry, 0)
	r4, carry = madd(r4, x[2], x[2], carry)
	r5, carry = bits.Add64(r5, carry, 0)
	r6, carry = madd(r6, x[3], x[3], carry)
	r7, _ = bits.Add64(r7, carry, 0)

	*z = montgomeryReduce(r0, r1, r2, r3, r4, r5, r6, r7)
}

// fromMontgomery converts x from Montgomery form to a plain integer, i.e. returns x / 2^256 mod q.
// Appending four zero words makes this a plain Montgomery reduction.
func fromMontgomery(x *[4]uint64) [4]uint64 {
	return montgomeryReduce(x[0], x[1], x[2], x[3], 0, 0, 0, 0)
}
