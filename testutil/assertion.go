package testutil

import (
	"reflect"
	"testing"
)

// Every check comes in two moods: `Assert*` halts the test on failure
// (Fatalf), `Want*` records it and carries on (Errorf).

type failFn func(string, ...interface{})

func AssertNoError(t *testing.T, err error) { t.Helper(); checkNoError(t.Fatalf, err) }
func WantNoError(t *testing.T, err error)   { t.Helper(); checkNoError(t.Errorf, err) }
func checkNoError(fail failFn, err error) {
	if err != nil {
		fail("unexpected error: %s", err)
	}
}

func AssertEqual(t *testing.T, actual, expect interface{}) { t.Helper(); checkEqual(t.Fatalf, actual, expect) }
func WantEqual(t *testing.T, actual, expect interface{})   { t.Helper(); checkEqual(t.Errorf, actual, expect) }
func checkEqual(fail failFn, actual, expect interface{}) {
	if !reflect.DeepEqual(actual, expect) {
		fail("expected %#v, got %#v", expect, actual)
	}
}
