package main

import (
	"regexp"
)

/*
	Paves scrub the output streams of everything that varies run to run,
	so fixture files can hold the interesting residue.
*/

var (
	ansiPattern    = regexp.MustCompile("\x1b" + `\[[0-9;]+m`)
	logtimePattern = regexp.MustCompile(`\[[0-9]{2}-[0-9]{2} [0-9]{2}:[0-9]{2}:[0-9]{2}\]`)
	guidPattern    = regexp.MustCompile(`[0-9a-z]{8}-[0-9a-z]{8}`)
)

func paveAnsicolors(raw string) string {
	return ansiPattern.ReplaceAllString(raw, "")
}

func paveLogtimes(raw string) string {
	return logtimePattern.ReplaceAllString(raw, "[MM-DD hh:mm:ss]")
}

func paveGuids(raw string) string {
	return guidPattern.ReplaceAllString(raw, "xxxxxxxx-xxxxxxxx")
}
