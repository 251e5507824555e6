//go:build amd64 && !purego

package fr

// addMod sets z := x + y mod q for canonical x and y, writing a canonical result.
// Implemented in add_amd64.s; addModGeneric is the portable reference.
//
//go:noescape
func addMod(z, x, y *[4]uint64)
