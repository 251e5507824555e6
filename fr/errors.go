package fr

import "errors"

// ErrorPrefix is prepended to all panic and error messages originating from this package.
const ErrorPrefix = "bn254 / fr: "

// ErrNonCanonical is returned by the deserialization routines when the 32-byte input,
// read as a little-endian integer, is not smaller than the field size.
var ErrNonCanonical = errors.New(ErrorPrefix + "serialized field element is not canonical (not smaller than the field size)")
