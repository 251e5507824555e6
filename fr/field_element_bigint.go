package fr

import (
	"math/big"

	"github.com/halofield/bn254/internal/utils"
)

// ToBigInt returns the canonical value of z as a [*big.Int] in [0, q).
func (z *feElement_64) ToBigInt() *big.Int {
	raw := fromMontgomery(&z.words)
	return utils.UIntarrayToInt(&raw)
}

// SetBigInt sets z to the residue class of x mod q. Arbitrary (including negative) x is accepted.
func (z *feElement_64) SetBigInt(x *big.Int) {
	reduced := new(big.Int).Mod(x, scalarFieldSize_Int) // Mod returns a non-negative result
	raw := utils.BigIntToUIntArray(reduced)
	montMul(&z.words, &raw, &feRSquared.words)
}
