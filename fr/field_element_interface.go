package fr

import (
	"io"
	"math/big"
)

// FieldElementInterface is the interface satisfied by pointers to field element types.
// It exists so that generic code (polynomial evaluation, FFTs, batch inversion) can be
// written once against any limb implementation; [*FieldElement] satisfies it.
//
// The type parameter is the pointer type itself, so that binary operations take
// arguments of the concrete type rather than the interface.
type FieldElementInterface[FEPtr any] interface {
	SetZero()
	SetOne()
	SetUint64(value uint64)

	IsZero() bool
	IsOne() bool
	IsEqual(x FEPtr) bool
	Cmp(x FEPtr) int

	Add(x, y FEPtr)
	Sub(x, y FEPtr)
	Mul(x, y FEPtr)
	Square(x FEPtr)
	Double(x FEPtr)
	Neg(x FEPtr)
	Inv(x FEPtr) bool
	Div(x, y FEPtr) bool

	AddEq(x FEPtr)
	SubEq(x FEPtr)
	MulEq(x FEPtr)
	SquareEq()
	DoubleEq()
	NegEq()

	Bytes() [32]byte
	SetBytes(input *[32]byte) bool
	SetRandom(rnd io.Reader) error
	ToBigInt() *big.Int
	SetBigInt(x *big.Int)
	String() string
}

var _ FieldElementInterface[*FieldElement] = &FieldElement{}
