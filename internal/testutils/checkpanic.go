package testutils

// CheckPanic runs fun, captures any panic and reports whether one occurred.
// It does not re-raise or return the actual panic argument.
//
// This function is only used in testing.
func CheckPanic(fun func()) (didPanic bool) {
	didPanic = true
	defer func() {
		_ = recover()
	}()
	fun()
	didPanic = false
	return
}
