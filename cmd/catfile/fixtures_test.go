package main

import (
	"bytes"
	"path/filepath"
	"testing"

	. "github.com/warpfork/go-wish"
)

func runTestcase(t *testing.T, tc testcase) {
	t.Helper()
	stdin := &bytes.Buffer{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := runMain(tc.command(), stdin, stdout, stderr)
	Wish(t, code, ShouldEqual, tc.exitcode())
	Wish(t, paveGuids(paveLogtimes(paveAnsicolors(stdout.String()))), ShouldEqual, tc.stdout())
	Wish(t, paveGuids(paveLogtimes(paveAnsicolors(stderr.String()))), ShouldEqual, tc.stderr())
}

func TestFixtures(t *testing.T) {
	t.Skip("wip :)")
	matches, err := filepath.Glob("testdata/*.tcase")
	if err != nil {
		panic(err)
	}
	for _, filename := range matches {
		t.Run(filepath.Base(filename), func(t *testing.T) {
			runTestcase(t, loadTestcase(filename))
		})
	}
}
