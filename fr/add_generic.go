//go:build !amd64 || purego

package fr

// addMod sets z := x + y mod q for canonical x and y, writing a canonical result.
func addMod(z, x, y *[4]uint64) {
	addModGeneric(z, x, y)
}
