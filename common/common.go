/*
	Package common holds stock fact types for code that talks to the
	operating system.  They're ordinary named types; flare routes facts by
	Go type, so sharing these across packages is what lets a handler in
	one package require a fact staged in another.

	Nothing obliges you to use them.  Any named type works as a fact;
	these just cover the vocabulary nearly every os-facing failure wants.
*/
package common

import (
	"errors"
	"syscall"
)

type (
	// Name of the resource being operated on, usually a file path.
	Name string

	// Code is an OS error number (errno on unixes).
	Code int

	// Op labels the operation that failed: "open", "read", "seek"...
	Op string
)

/*
	CodeOf digs the OS error number out of err, however deeply wrapped.
	Go's file APIs bury the errno inside *os.PathError and friends; this
	is the one-liner for staging it:

		if code, ok := common.CodeOf(err); ok {
			flare.Raise(ctx, ReadError, code, common.Op("read"))
		}
*/
func CodeOf(err error) (Code, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Code(errno), true
	}
	return 0, false
}
