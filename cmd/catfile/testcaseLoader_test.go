package main

import (
	"strconv"
	"strings"

	"github.com/warpfork/go-wish/wishfix"
)

func loadTestcase(filename string) testcase {
	return testcase{wishfix.MustLoadFile(filename)}
}

type testcase struct {
	hunks wishfix.Hunks
}

func (tc testcase) command() []string {
	return strings.Fields(string(tc.hunks.GetSection("command")))
}
func (tc testcase) exitcode() int {
	code, _ := strconv.Atoi(strings.TrimSpace(string(tc.hunks.GetSection("exitcode"))))
	return code
}
func (tc testcase) stdout() string {
	return string(tc.hunks.GetSection("stdout"))
}
func (tc testcase) stderr() string {
	return string(tc.hunks.GetSection("stderr"))
}
