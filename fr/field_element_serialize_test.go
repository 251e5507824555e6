package fr

import (
	"bytes"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/halofield/bn254/internal/testutils"
	"github.com/halofield/bn254/internal/utils"
)

func TestBytesRoundTrip(t *testing.T) {
	rng := testRng(100)
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)
		encoding := x.Bytes()
		var y FieldElement
		require.True(t, y.SetBytes(&encoding))
		require.True(t, y.IsEqual(&x), "Bytes/SetBytes roundtrip changed the value")
	}
}

func TestSetBytesRejectsNonCanonical(t *testing.T) {
	// little-endian encoding of q itself, the smallest non-canonical value
	var encodingOfQ [32]byte
	binary.LittleEndian.PutUint64(encodingOfQ[0:8], scalarFieldSize_0)
	binary.LittleEndian.PutUint64(encodingOfQ[8:16], scalarFieldSize_1)
	binary.LittleEndian.PutUint64(encodingOfQ[16:24], scalarFieldSize_2)
	binary.LittleEndian.PutUint64(encodingOfQ[24:32], scalarFieldSize_3)

	sentinel := FieldElementTwo
	require.False(t, sentinel.SetBytes(&encodingOfQ))
	require.True(t, sentinel.IsEqual(&FieldElementTwo), "rejected SetBytes modified the receiver")

	var allOnes [32]byte
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	require.False(t, sentinel.SetBytes(&allOnes))

	// q - 1 is the largest canonical value
	encodingOfQ[0] -= 1
	var x FieldElement
	require.True(t, x.SetBytes(&encodingOfQ))
	require.True(t, x.IsEqual(&FieldElementMinusOne))
}

func TestSetBytesWide(t *testing.T) {
	// regression vector from the halo2 field implementation
	var input [64]byte
	for i := range input {
		input[i] = 0xaa
	}
	var x FieldElement
	x.SetBytesWide(&input)
	expected := Uint256{0x7e7140b5196b9e6f, 0x9abac9e4157b6172, 0xf04bc41062fd7322, 0x1185fa9c9fef6326}
	require.Equal(t, expected, x.ToUint256())

	// cross-check against big.Int on random inputs
	rng := testRng(101)
	for i := 0; i < iterationsPerTest; i++ {
		rng.Read(input[:])
		x.SetBytesWide(&input)

		var beBytes [64]byte
		for j := range input {
			beBytes[63-j] = input[j]
		}
		ref := new(big.Int).SetBytes(beBytes[:])
		ref.Mod(ref, ScalarFieldSize_Int)
		require.Zero(t, x.ToBigInt().Cmp(ref), "SetBytesWide disagrees with big.Int reduction")
	}
}

func TestIntegerSetters(t *testing.T) {
	var x, y FieldElement
	x.SetUint64(12345)
	y.SetBigInt(big.NewInt(12345))
	require.True(t, x.IsEqual(&y))

	value128 := uint128.New(0x0123456789abcdef, 0xfedcba9876543210)
	x.SetUint128(value128)
	require.Zero(t, x.ToBigInt().Cmp(value128.Big()))

	// SetUint256 reduces mod q, so feeding in q must give 0
	q := Uint256{scalarFieldSize_0, scalarFieldSize_1, scalarFieldSize_2, scalarFieldSize_3}
	x.SetUint256(&q)
	require.True(t, x.IsZero())

	rng := testRng(102)
	for i := 0; i < iterationsPerTest; i++ {
		value := Uint256{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
		x.SetUint256(&value)
		raw := [4]uint64(value)
		ref := utils.UIntarrayToInt(&raw)
		ref.Mod(ref, ScalarFieldSize_Int)
		require.Zero(t, x.ToBigInt().Cmp(ref))
	}
}

func TestToUint256RoundTrip(t *testing.T) {
	rng := testRng(103)
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)
		value := x.ToUint256()
		var y FieldElement
		y.SetUint256(&value)
		require.True(t, y.IsEqual(&x))
	}
}

func TestSerializeDeserialize(t *testing.T) {
	rng := testRng(104)
	var buf bytes.Buffer
	elements := make([]FieldElement, 20)
	for i := range elements {
		elements[i] = randomFieldElement(rng)
		written, err := elements[i].Serialize(&buf)
		require.NoError(t, err)
		require.Equal(t, ScalarFieldByteLength, written)
	}
	for i := range elements {
		var x FieldElement
		read, err := x.Deserialize(&buf)
		require.NoError(t, err)
		require.Equal(t, ScalarFieldByteLength, read)
		require.True(t, x.IsEqual(&elements[i]))
	}
}

func TestDeserializeRejectsNonCanonical(t *testing.T) {
	var encodingOfQ [32]byte
	binary.LittleEndian.PutUint64(encodingOfQ[0:8], scalarFieldSize_0)
	binary.LittleEndian.PutUint64(encodingOfQ[8:16], scalarFieldSize_1)
	binary.LittleEndian.PutUint64(encodingOfQ[16:24], scalarFieldSize_2)
	binary.LittleEndian.PutUint64(encodingOfQ[24:32], scalarFieldSize_3)

	x := FieldElementTwo
	read, err := x.Deserialize(bytes.NewReader(encodingOfQ[:]))
	require.ErrorIs(t, err, ErrNonCanonical)
	require.Equal(t, ScalarFieldByteLength, read)
	require.True(t, x.IsEqual(&FieldElementTwo), "failed Deserialize modified the receiver")
}

func TestDeserializeShortInput(t *testing.T) {
	var x FieldElement
	_, err := x.Deserialize(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestStringAndFromHex(t *testing.T) {
	require.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", FieldElementOne.String())
	require.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000000", FieldElementZero.String())
	require.Equal(t, "<nil field element>", (*FieldElement)(nil).String())

	x := FromHex(ScalarFieldSize_string) // q reduces to 0
	require.True(t, x.IsZero())

	require.True(t, testutils.CheckPanic(func() { FromHex("not hex") }), "FromHex did not panic on malformed input")

	rng := testRng(105)
	for i := 0; i < iterationsPerTest; i++ {
		x = randomFieldElement(rng)
		y := FromHex(x.String())
		require.True(t, y.IsEqual(&x), "String/FromHex roundtrip changed the value")
	}
}

func TestBigIntRoundTrip(t *testing.T) {
	rng := testRng(106)
	for i := 0; i < iterationsPerTest; i++ {
		x := randomFieldElement(rng)
		var y FieldElement
		y.SetBigInt(x.ToBigInt())
		require.True(t, y.IsEqual(&x))
	}

	// negative numbers reduce into [0, q)
	var z FieldElement
	z.SetBigInt(big.NewInt(-1))
	require.True(t, z.IsEqual(&FieldElementMinusOne))
}
