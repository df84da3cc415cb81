package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"go.polydawn.net/flare/cmd/catfile/bhv"
	. "go.polydawn.net/flare/testutil"
)

func invoke(args ...string) (code int, stdout, stderr string) {
	stdinBuf := &bytes.Buffer{}
	stdoutBuf := &bytes.Buffer{}
	stderrBuf := &bytes.Buffer{}
	code = runMain(append([]string{"catfile"}, args...), stdinBuf, stdoutBuf, stderrBuf)
	return code, stdoutBuf.String(), stderrBuf.String()
}

func writeFodder(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fodder.txt")
	AssertNoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestCatHappyPath(t *testing.T) {
	one := writeFodder(t, "hello, world\n")
	two := writeFodder(t, "and more\n")
	code, stdout, stderr := invoke("cat", one, two)
	WantEqual(t, code, 0)
	WantEqual(t, stdout, "hello, world\nand more\n")
	WantEqual(t, stderr, "")
}

func TestCatMissingFile(t *testing.T) {
	code, stdout, stderr := invoke("cat", "/bogus/lost.txt")
	WantEqual(t, code, cmdbhv.EXIT_OPEN)
	WantEqual(t, stdout, "")
	if !strings.Contains(stderr, "no such file") {
		t.Errorf("stderr should explain the missing file, got %q", stderr)
	}
	if !strings.Contains(stderr, "lost.txt") {
		t.Errorf("stderr should name the missing file, got %q", stderr)
	}
}

func TestCatRefusesDirectories(t *testing.T) {
	dir := t.TempDir()
	code, _, stderr := invoke("cat", dir)
	WantEqual(t, code, cmdbhv.EXIT_USER)
	if !strings.Contains(stderr, "it is a directory") {
		t.Errorf("stderr should explain the refusal, got %q", stderr)
	}
}

func TestCatEmptyPathArg(t *testing.T) {
	code, _, stderr := invoke("cat", "")
	WantEqual(t, code, cmdbhv.EXIT_BADARGS)
	if !strings.Contains(stderr, "unusable argument") {
		t.Errorf("stderr should call out the empty path, got %q", stderr)
	}
}

func TestCatNoArgs(t *testing.T) {
	code, _, stderr := invoke("cat")
	WantEqual(t, code, cmdbhv.EXIT_BADARGS)
	if !strings.Contains(stderr, "catfile: ") {
		t.Errorf("stderr should carry the usage complaint, got %q", stderr)
	}
}

func TestCatStopsAtFirstFailure(t *testing.T) {
	one := writeFodder(t, "first\n")
	code, stdout, _ := invoke("cat", one, "/bogus/lost.txt", one)
	WantEqual(t, code, cmdbhv.EXIT_OPEN)
	WantEqual(t, stdout, "first\n")
}

func TestJsonFormat(t *testing.T) {
	code, stdout, _ := invoke("--format=json", "cat", "/bogus/lost.txt")
	WantEqual(t, code, cmdbhv.EXIT_OPEN)
	if !strings.HasPrefix(stdout, "{") {
		t.Errorf("json mode should put events on stdout, got %q", stdout)
	}
	if !strings.Contains(stdout, "no such file") {
		t.Errorf("json mode should carry the error message, got %q", stdout)
	}
}

func TestVersionCmd(t *testing.T) {
	code, stdout, _ := invoke("version")
	WantEqual(t, code, 0)
	if !strings.Contains(stdout, "commit") {
		t.Errorf("version output looks wrong: %q", stdout)
	}
}

var reportPathPattern = regexp.MustCompile(`file: "([^"]+)"`)

func TestSelftestUnmapped(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("CATFILE_DEBUG", "")
	code, _, stderr := invoke("selftest", "unmapped")
	WantEqual(t, code, cmdbhv.EXIT_UNKNOWNPANIC)
	if !strings.Contains(stderr, "MartianError") {
		t.Errorf("stderr should name the unhandled failure, got %q", stderr)
	}
	m := reportPathPattern.FindStringSubmatch(stderr)
	if m == nil {
		t.Fatalf("stderr should point at an error report file, got %q", stderr)
	}
	reportPath := m[1]
	defer os.Remove(reportPath)
	report, err := os.ReadFile(reportPath)
	AssertNoError(t, err)
	if !strings.Contains(string(report), "MartianError") {
		t.Errorf("report should record the panic, got %q", report)
	}
	if !strings.Contains(string(report), "selftest") {
		t.Errorf("report should record the tracked failure context, got %q", report)
	}
}

func TestSelftestPanicRepanicsInDebugMode(t *testing.T) {
	t.Setenv("CATFILE_DEBUG", "1")
	defer func() {
		WantEqual(t, recover(), "selftest: deliberate panic")
	}()
	invoke("selftest", "panic")
	t.Error("should not be reached")
}
