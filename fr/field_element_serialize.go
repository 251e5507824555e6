package fr

import (
	"encoding/binary"
	"fmt"
	"io"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"

	"github.com/halofield/bn254/internal/utils"
)

// This file contains conversions between field elements and bytes, integers and strings.
//
// The canonical wire format of a field element is exactly 32 bytes: the unique representative
// in [0, q), as a little-endian integer. Encodings of integers >= q are rejected on input,
// so the encoding is a bijection between field elements and valid byte strings.

// Bytes returns the canonical 32-byte little-endian encoding of z.
func (z *feElement_64) Bytes() (result [32]byte) {
	raw := fromMontgomery(&z.words)
	binary.LittleEndian.PutUint64(result[0:8], raw[0])
	binary.LittleEndian.PutUint64(result[8:16], raw[1])
	binary.LittleEndian.PutUint64(result[16:24], raw[2])
	binary.LittleEndian.PutUint64(result[24:32], raw[3])
	return
}

// SetBytes sets z to the field element with canonical little-endian encoding input.
// If input is not canonical (the encoded integer is not smaller than the field size),
// SetBytes returns false and leaves z unchanged.
func (z *feElement_64) SetBytes(input *[32]byte) (ok bool) {
	var raw [4]uint64
	raw[0] = binary.LittleEndian.Uint64(input[0:8])
	raw[1] = binary.LittleEndian.Uint64(input[8:16])
	raw[2] = binary.LittleEndian.Uint64(input[16:24])
	raw[3] = binary.LittleEndian.Uint64(input[24:32])
	if !isBelowModulus(&raw) {
		return false
	}
	// Multiplying by r^2 in the Montgomery domain lifts the raw integer into Montgomery form.
	montMul(&z.words, &raw, &feRSquared.words)
	return true
}

// SetBytesWide sets z to the 512-bit little-endian integer input, reduced mod q.
// The 64-byte input covers the full 512-bit range, so the reduced output is
// statistically close to uniform when the input is; this is the intended way to
// derive a field element from a hash or a raw entropy source.
func (z *feElement_64) SetBytesWide(input *[64]byte) {
	var lo, hi [4]uint64
	lo[0] = binary.LittleEndian.Uint64(input[0:8])
	lo[1] = binary.LittleEndian.Uint64(input[8:16])
	lo[2] = binary.LittleEndian.Uint64(input[16:24])
	lo[3] = binary.LittleEndian.Uint64(input[24:32])
	hi[0] = binary.LittleEndian.Uint64(input[32:40])
	hi[1] = binary.LittleEndian.Uint64(input[40:48])
	hi[2] = binary.LittleEndian.Uint64(input[48:56])
	hi[3] = binary.LittleEndian.Uint64(input[56:64])
	z.setUint512(&lo, &hi)
}

// setUint512 sets z to lo + 2^256 * hi mod q.
// lo is lifted by r^2 as usual; the implicit factor 2^256 of hi turns its lift into
// a multiplication by r^3.
func (z *feElement_64) setUint512(lo, hi *[4]uint64) {
	var l, h feElement_64
	montMul(&l.words, lo, &feRSquared.words)
	montMul(&h.words, hi, &feRCubed.words)
	z.Add(&l, &h)
}

// SetUint64 sets z to the given small integer.
func (z *feElement_64) SetUint64(value uint64) {
	raw := [4]uint64{value, 0, 0, 0}
	montMul(&z.words, &raw, &feRSquared.words)
}

// SetUint128 sets z to the given 128-bit integer.
func (z *feElement_64) SetUint128(value uint128.Uint128) {
	raw := [4]uint64{value.Lo, value.Hi, 0, 0}
	montMul(&z.words, &raw, &feRSquared.words)
}

// SetUint256 sets z to the given 256-bit integer, reduced mod q.
// Unlike SetBytes, values >= q are accepted.
func (z *feElement_64) SetUint256(value *Uint256) {
	raw := [4]uint64(*value)
	montMul(&z.words, &raw, &feRSquared.words)
}

// ToUint256 returns the canonical integer represented by z.
func (z *feElement_64) ToUint256() Uint256 {
	return Uint256(fromMontgomery(&z.words))
}

// SetRandom sets z to a field element derived from 64 bytes of rnd,
// distributed statistically close to uniform if rnd is.
// On a read error, z is left unchanged.
func (z *feElement_64) SetRandom(rnd io.Reader) error {
	var buf [64]byte
	if _, err := io.ReadFull(rnd, buf[:]); err != nil {
		return fmt.Errorf(ErrorPrefix+"SetRandom could not read 64 bytes: %w", err)
	}
	z.SetBytesWide(&buf)
	return nil
}

// Serialize writes the canonical 32-byte encoding of z to output.
// It returns the number of bytes written and any write error.
func (z *feElement_64) Serialize(output io.Writer) (bytesWritten int, err error) {
	encoding := z.Bytes()
	bytesWritten, err = output.Write(encoding[:])
	if err != nil {
		err = fmt.Errorf(ErrorPrefix+"Serialize failed after %v bytes: %w", bytesWritten, err)
	}
	return
}

// Deserialize reads a canonical 32-byte encoding from input and sets z to the encoded
// field element. It returns the number of bytes read and any error; non-canonical
// encodings yield [ErrNonCanonical] and leave z unchanged.
func (z *feElement_64) Deserialize(input io.Reader) (bytesRead int, err error) {
	var encoding [32]byte
	bytesRead, err = io.ReadFull(input, encoding[:])
	if err != nil {
		err = fmt.Errorf(ErrorPrefix+"Deserialize failed after %v bytes: %w", bytesRead, err)
		return
	}
	if !z.SetBytes(&encoding) {
		err = ErrNonCanonical
	}
	return
}

// String returns the canonical value of z as a 0x-prefixed big-endian hex string.
// It notably works on nil receivers (for debugging convenience) and is not constant time.
func (z *feElement_64) String() string {
	if z == nil {
		return "<nil field element>"
	}
	encoding := z.Bytes()
	// reverse to big-endian for display
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		encoding[i], encoding[j] = encoding[j], encoding[i]
	}
	return "0x" + fasthex.EncodeToString(encoding[:])
}

// FromHex returns the field element given by the 0x-prefixed hex string input, reduced mod q.
// It panics on malformed input and is intended for constants and tests.
func FromHex(input string) (result FieldElement) {
	result.SetBigInt(utils.InitIntFromString(input))
	return
}
