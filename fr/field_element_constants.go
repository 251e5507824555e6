package fr

import (
	"math/big"

	"github.com/halofield/bn254/internal/utils"
)

// This file contains all important constants used in the field element implementation.
// This includes exported constants and internal pre-computed constants.
//
// NOTES:
//   - We often define multiple versions of a given constant that differ in type. This is mostly for convenience.
//     Our convention is to suffix the constant with a tag for the type:
//        - _Int for big.Int
//        - _untyped for untyped constants
//        - _string for a string representation (hex, understood by [*big.Int]'s SetString)
//        - _64 for uint64 words
//   - Since Go lacks const arrays, we define large 256-bit constants both as untyped 256-bit constants
//     and separately as constants for every individual word.
//     The convention is that these are suffixed as constant_64_0, constant_64_1 for the (little-endian) 0th, 1st etc. uint64-word.
//
//     Note that the language does not let one do ANYTHING with >64-bit constants other than define other constants.

// ScalarFieldSize_untyped is the prime modulus q of the BN254 scalar field as an untyped int.
// Due to overflowing all standard types, this is only useful in constant expressions.
// In most cases, you want to use ScalarFieldSize_Int of type big.Int instead.
const (
	ScalarFieldSize_untyped = 0x30644e72e131a029_b85045b68181585d_2833e84879b97091_43e1f593f0000001
	ScalarFieldSize_string  = "0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001"
)

// ScalarFieldSize_Int is the prime modulus q of the BN254 scalar field as a [*big.Int].
// This equals 21888242871839275222246405745257275088548364400416034343698204186575808495617.
var ScalarFieldSize_Int *big.Int = utils.InitIntFromString(ScalarFieldSize_string)

// scalarFieldSize_Int is an internal unexported deep-copy of ScalarFieldSize_Int.
// This is not exported to prevent accidental modifications.
var scalarFieldSize_Int *big.Int = new(big.Int).Set(ScalarFieldSize_Int)

// ScalarFieldBitLength is the bitlength of ScalarFieldSize.
const ScalarFieldBitLength = 254

// ScalarFieldByteLength is the length of the canonical encoding of a field element in bytes.
const ScalarFieldByteLength = 32

// TwoAdicity is the largest s such that 2^s divides ScalarFieldSize - 1.
// [RootOfUnity] generates the (cyclic) group of 2^TwoAdicity-th roots of unity.
const TwoAdicity = 28

// 64-bit sized words of the modulus. The index is the position of the word.
const (
	scalarFieldSize_0 uint64 = (ScalarFieldSize_untyped >> (iota * 64)) & 0xFFFFFFFF_FFFFFFFF
	scalarFieldSize_1
	scalarFieldSize_2
	scalarFieldSize_3
)

// negativeInverseModulus_uint64 is -1/q mod 2^64, the precomputed helper of Montgomery reduction:
// adding (r_i * negativeInverseModulus_uint64 mod 2^64) * q to an accumulator cancels its i-th word.
//
// Unlike the constants below, this value cannot be written as a constant expression in q,
// so it is cross-checked in init() by exponentiating q by totient(2^64) - 1.
const negativeInverseModulus_uint64 uint64 = 0xc2e1f593efffffff

// r == 2^256 is the Montgomery multiplier. It is not defined explicitly, because
//  a) it is a 257-bit constant, which is not portable according to the Go spec.
//  b) code relies deeply on this exact value. Changing it would break everything.

// rModScalarField_untyped is 2^256 mod q. This is also the Montgomery representation of 1.
// The weird computation is to avoid 1 << 256, which is not portable according to the Go spec
// (intermediate results are too large even for untyped computations): 2^256 - 5q == 2*(2^255 - 2q) - q.
const rModScalarField_untyped = 2*((1<<255)-2*ScalarFieldSize_untyped) - ScalarFieldSize_untyped

func init() {
	if rModScalarField_untyped != 0x0e0a77c19a07df2f_666ea36f7879462e_36fc76959f60cd29_ac96341c4ffffffb {
		panic(0)
	}
}

// rModScalarField_64_i is the i'th 64-bit word of (2^256 mod q), i.e. of the Montgomery representation of 1.
const (
	rModScalarField_64_0 uint64 = (rModScalarField_untyped >> (iota * 64)) & 0xFFFFFFFF_FFFFFFFF
	rModScalarField_64_1
	rModScalarField_64_2
	rModScalarField_64_3
)

// rSquared_64_i is the i'th 64-bit word of 2^512 mod q. Multiplying by this (in the Montgomery domain)
// lifts a raw integer into Montgomery form. Cross-checked against q in init().
//
// Value: 0x0216d0b17f4e44a5_8c49833d53bb8085_53fe3ab1e35c59e3_1bb8e645ae216da7
const (
	rSquared_64_0 uint64 = 0x1bb8e645ae216da7
	rSquared_64_1 uint64 = 0x53fe3ab1e35c59e3
	rSquared_64_2 uint64 = 0x8c49833d53bb8085
	rSquared_64_3 uint64 = 0x0216d0b17f4e44a5
)

// rCubed_64_i is the i'th 64-bit word of 2^768 mod q. This lifts the high 256-bit digit of a
// 512-bit integer into Montgomery form (that digit carries an implicit factor 2^256).
// Cross-checked against q in init().
//
// Value: 0x0cf8594b7fcc657c_893cc664a19fcfed_2a489cbe1cfbb6b8_5e94d8e1b4bf0040
const (
	rCubed_64_0 uint64 = 0x5e94d8e1b4bf0040
	rCubed_64_1 uint64 = 0x2a489cbe1cfbb6b8
	rCubed_64_2 uint64 = 0x893cc664a19fcfed
	rCubed_64_3 uint64 = 0x0cf8594b7fcc657c
)

// Internal element constants. We export *copies* of these variables (see below). Internal functions
// should use the originals: accidental modification of an exported variable must not be able to
// corrupt the arithmetic, and the compiler has a chance to see that the originals never change.

// feZero is the representation of zero. Montgomery form of 0 is 0.
var feZero feElement_64

// feOne is the field element 1, i.e. 2^256 mod q.
var feOne feElement_64 = feElement_64{words: [4]uint64{rModScalarField_64_0, rModScalarField_64_1, rModScalarField_64_2, rModScalarField_64_3}}

// feRSquared is the field element with Montgomery representation 2^512 mod q, i.e. the number 2^256 mod q.
// Montgomery-multiplying a raw (non-Montgomery) limb vector by feRSquared converts it into Montgomery form.
var feRSquared feElement_64 = feElement_64{words: [4]uint64{rSquared_64_0, rSquared_64_1, rSquared_64_2, rSquared_64_3}}

// feRCubed is the field element with Montgomery representation 2^768 mod q, used by the wide (512-bit) reduction.
var feRCubed feElement_64 = feElement_64{words: [4]uint64{rCubed_64_0, rCubed_64_1, rCubed_64_2, rCubed_64_3}}

// These are derived from q at package initialization, see initDerivedConstants.
var (
	feMinusOne    feElement_64 // -1
	feTwo         feElement_64 // 2
	feTwoInv      feElement_64 // 1/2 mod q
	feGenerator   feElement_64 // 7, a generator of the multiplicative group
	feRootOfUnity feElement_64 // 7^oddOrder, a primitive 2^TwoAdicity-th root of unity
	feDelta       feElement_64 // 7^(2^TwoAdicity), generates the group of order oddOrder
	qMinus2       Uint256      // q - 2, the public inversion exponent (Fermat)
	qMinus1Half   Uint256      // (q - 1) / 2, the Legendre exponent
	oddOrder      Uint256      // t with q - 1 == 2^TwoAdicity * t, t odd
	tonelliShanks Uint256      // (t - 1) / 2, the Tonelli-Shanks pre-exponent
)

// Exported copies of important field element constants.
// NOTE: We intentionally expose *copies* of unexported variables here to prevent users from modifying feOne etc.
// Internal code must not use the exported variables.
var (
	FieldElementZero     FieldElement
	FieldElementOne      FieldElement
	FieldElementMinusOne FieldElement
	FieldElementTwo      FieldElement

	// Generator is the smallest multiplicative generator of the field, the number 7.
	Generator FieldElement
	// RootOfUnity is a primitive 2^TwoAdicity-th root of unity, namely Generator^t for the odd t with q-1 == 2^TwoAdicity * t.
	RootOfUnity FieldElement
	// TwoInv is the constant 1/2 mod q.
	TwoInv FieldElement
)

func init() {
	verifyPrecomputedConstants()
	initDerivedConstants()
}

// verifyPrecomputedConstants cross-checks the hand-written word constants above against q.
// A mismatch is a build-configuration bug, so we panic.
func verifyPrecomputedConstants() {
	// -1/q mod 2^64 via exponentiation by totient(2^64) - 1.
	inv := uint64(1)
	for i := 0; i < 63; i++ {
		inv = inv * inv
		inv = inv * scalarFieldSize_0
	}
	inv = -inv
	if inv != negativeInverseModulus_uint64 {
		panic(ErrorPrefix + "precomputed -1/q mod 2^64 is inconsistent with q")
	}

	shifted := new(big.Int).Lsh(big.NewInt(1), 512)
	shifted.Mod(shifted, scalarFieldSize_Int)
	if utils.BigIntToUIntArray(shifted) != [4]uint64{rSquared_64_0, rSquared_64_1, rSquared_64_2, rSquared_64_3} {
		panic(ErrorPrefix + "precomputed 2^512 mod q is inconsistent with q")
	}

	shifted.Lsh(big.NewInt(1), 768)
	shifted.Mod(shifted, scalarFieldSize_Int)
	if utils.BigIntToUIntArray(shifted) != [4]uint64{rCubed_64_0, rCubed_64_1, rCubed_64_2, rCubed_64_3} {
		panic(ErrorPrefix + "precomputed 2^768 mod q is inconsistent with q")
	}
}

// initDerivedConstants computes the element constants and public exponents that cannot be
// written as constant expressions. Everything here is derived from q alone.
func initDerivedConstants() {
	qMinusOne := new(big.Int).Sub(scalarFieldSize_Int, big.NewInt(1))

	qMinus2 = utils.BigIntToUIntArray(new(big.Int).Sub(scalarFieldSize_Int, big.NewInt(2)))
	qMinus1Half = utils.BigIntToUIntArray(new(big.Int).Rsh(qMinusOne, 1))

	// q - 1 == 2^TwoAdicity * t with t odd
	t := new(big.Int).Rsh(qMinusOne, TwoAdicity)
	if t.Bit(0) != 1 {
		panic(ErrorPrefix + "odd part of q-1 is not odd; TwoAdicity is wrong")
	}
	oddOrder = utils.BigIntToUIntArray(t)
	tonelliShanks = utils.BigIntToUIntArray(new(big.Int).Rsh(t, 1))

	feMinusOne.Neg(&feOne)
	feTwo.Add(&feOne, &feOne)
	if ok := feTwoInv.Inv(&feTwo); !ok {
		panic(ErrorPrefix + "2 has no inverse; this cannot happen")
	}
	feGenerator.SetUint64(7)
	feRootOfUnity.ExpVartime(&feGenerator, &oddOrder)
	feDelta.ExpVartime(&feGenerator, &Uint256{1 << TwoAdicity, 0, 0, 0})

	FieldElementZero = feZero
	FieldElementOne = feOne
	FieldElementMinusOne = feMinusOne
	FieldElementTwo = feTwo
	Generator = feGenerator
	RootOfUnity = feRootOfUnity
	TwoInv = feTwoInv
}
