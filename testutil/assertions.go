package testutil

import (
	"fmt"

	"go.polydawn.net/flare"
)

/*
	'actual' should be a `*flare.Failure` (or any error); 'expected' should
	be a `*flare.Kind`; we'll check that the failure is under the umbrella
	of the kind.
*/
func ShouldBeKind(actual interface{}, expected ...interface{}) string {
	err, ok := actual.(error)
	if !ok {
		return fmt.Sprintf("You must provide an `error` as the first argument to this assertion; got `%T`", actual)
	}

	var kind *flare.Kind
	switch len(expected) {
	case 0:
		return "You must provide a flare `Kind` as the expectation parameter to this assertion."
	case 1:
		knd, ok := expected[0].(*flare.Kind)
		if !ok {
			return "You must provide a flare `Kind` as the expectation parameter to this assertion."
		}
		kind = knd
	default:
		return "You must provide one parameter as an expectation to this assertion."
	}

	failure, ok := err.(*flare.Failure)
	if !ok {
		return fmt.Sprintf("Expected a failure of kind %q but got a plain `%T`!  (Full message: %s)", kind.String(), err, err.Error())
	}
	if failure.Kind().Is(kind) {
		return ""
	}
	return fmt.Sprintf("Expected failure to be of kind %q but it had %q instead!", kind.String(), failure.Kind().String())
}

/*
	'actual' should be a `func()`; 'expected' should be a `*flare.Kind`;
	we'll run the function, and check that it raises, and that the failure
	is under the umbrella of the kind.
*/
func ShouldRaise(actual interface{}, expected ...interface{}) string {
	fn, ok := actual.(func())
	if !ok {
		return fmt.Sprintf("You must provide a `func()` as the first argument to this assertion; got `%T`", actual)
	}

	var kind *flare.Kind
	switch len(expected) {
	case 0:
		return "You must provide a flare `Kind` as the expectation parameter to this assertion."
	case 1:
		knd, ok := expected[0].(*flare.Kind)
		if !ok {
			return "You must provide a flare `Kind` as the expectation parameter to this assertion."
		}
		kind = knd
	default:
		return "You must provide one parameter as an expectation to this assertion."
	}

	caught := capturePanic(fn)
	if caught == nil {
		return fmt.Sprintf("Expected a failure of kind %q but nothing was raised!", kind.String())
	}
	failure, ok := caught.(*flare.Failure)
	if !ok {
		return fmt.Sprintf("Expected a failure of kind %q but the panic was a `%T`!  (Value: %v)", kind.String(), caught, caught)
	}
	if failure.Kind().Is(kind) {
		return ""
	}
	return fmt.Sprintf("Expected failure to be of kind %q but it had %q instead!", kind.String(), failure.Kind().String())
}

/*
	'actual' should be a `func()`; we'll run it and complain unless it
	panics with a `*flare.Defect`.  No expectation parameters.
*/
func ShouldDefect(actual interface{}, expected ...interface{}) string {
	fn, ok := actual.(func())
	if !ok {
		return fmt.Sprintf("You must provide a `func()` as the first argument to this assertion; got `%T`", actual)
	}
	if len(expected) != 0 {
		return "This assertion takes no expectation parameters."
	}

	caught := capturePanic(fn)
	if caught == nil {
		return "Expected a defect but nothing panicked!"
	}
	if _, ok := caught.(*flare.Defect); !ok {
		return fmt.Sprintf("Expected a defect but the panic was a `%T`!  (Value: %v)", caught, caught)
	}
	return ""
}

func capturePanic(fn func()) (caught interface{}) {
	defer func() {
		caught = recover()
	}()
	fn()
	return nil
}
