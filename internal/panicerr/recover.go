// Package panicerr isolates a function call in its own goroutine, converting
// any panic or abnormal exit into an ordinary error return.
package panicerr

import "runtime/debug"

// Recover runs f in a new goroutine wrapped in defer logic that converts any
// panic or runtime.Goexit into a non-nil returned error.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer recoverExit(name, errch)
		defer recoverPanic(name, errch)
		errch <- f()
	}()
	return <-errch
}

func recoverPanic(name string, errch chan<- error) {
	if e := recover(); e != nil {
		select {
		case errch <- panicError{name, e, debug.Stack()}:
		default:
		}
	}
}

func recoverExit(name string, errch chan<- error) {
	// finds an empty channel only when f's own send never happened
	select {
	case errch <- exitError(name):
	default:
	}
}
