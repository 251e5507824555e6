package utils

import (
	"encoding/binary"
	"math/big"
)

const ErrorPrefix = "bn254 / internal / utils: "

// InitIntFromString initializes a big.Int from a given string, panicking on malformed input.
// This is intended to initialize package-level constants from compile-time constant strings:
// in contrast to plain big.Int.SetString, failure is not a run-time condition to handle.
func InitIntFromString(input string) *big.Int {
	result := new(big.Int)
	_, ok := result.SetString(input, 0)
	if !ok {
		panic(ErrorPrefix + "InitIntFromString could not parse " + input)
	}
	return result
}

// UIntarrayToInt converts a little-endian [4]uint64 array to big.Int, without any Montgomery conversions.
func UIntarrayToInt(z *[4]uint64) *big.Int {
	var bigEndianBytes [32]byte
	binary.BigEndian.PutUint64(bigEndianBytes[0:8], z[3])
	binary.BigEndian.PutUint64(bigEndianBytes[8:16], z[2])
	binary.BigEndian.PutUint64(bigEndianBytes[16:24], z[1])
	binary.BigEndian.PutUint64(bigEndianBytes[24:32], z[0])
	return new(big.Int).SetBytes(bigEndianBytes[:])
}

// BigIntToUIntArray converts a big.Int to a little-endian [4]uint64 array without Montgomery conversions.
// We assume 0 <= x < 2^256
func BigIntToUIntArray(x *big.Int) (result [4]uint64) {
	// As this is an internal function, panic is OK for error handling.
	if x.Sign() < 0 {
		panic(ErrorPrefix + "BigIntToUIntArray: trying to convert negative big.Int")
	}
	if x.BitLen() > 256 {
		panic(ErrorPrefix + "BigIntToUIntArray: big.Int too large to fit into 32 bytes")
	}
	var bigEndianBytes [32]byte
	x.FillBytes(bigEndianBytes[:])
	result[0] = binary.BigEndian.Uint64(bigEndianBytes[24:32])
	result[1] = binary.BigEndian.Uint64(bigEndianBytes[16:24])
	result[2] = binary.BigEndian.Uint64(bigEndianBytes[8:16])
	result[3] = binary.BigEndian.Uint64(bigEndianBytes[0:8])
	return
}
