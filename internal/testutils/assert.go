package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, err) panics with panic(err).
func Assert(condition bool, err ...interface{}) {
	if len(err) > 1 {
		panic("bn254 / testutils: Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic("This is not supposed to be possible")
		} else {
			panic(err[0])
		}
	}
}

// FatalUnless aborts the test with the given formatted message unless condition holds.
func FatalUnless(t *testing.T, condition bool, formatstring string, args ...any) {
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
