package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ugorji/go/codec"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/lib/guid"
)

/*
	An errorReport is what we leave on disk when the process is about to
	die from something no dispatch plan claimed.  It keeps the gritty
	details out of the user's face while still giving a bug report
	something to chew on.
*/
type errorReport struct {
	Guid    string // fresh mint, so reports can be told apart.
	Time    string // RFC3339.
	Panic   string // stringified panic value.
	Context string // whatever failure context was still tracked, pretty-printed.
}

func saveErrorReport(ctx context.Context, caught interface{}) (string, error) {
	logFile, err := os.CreateTemp(os.TempDir(), "catfile-error-report-")
	if err != nil {
		return "", err
	}
	defer logFile.Close()
	report := errorReport{
		Guid:    guid.New(),
		Time:    time.Now().Format(time.RFC3339),
		Panic:   fmt.Sprintf("%v", caught),
		Context: flare.Describe(ctx),
	}
	if err := codec.NewEncoder(logFile, &codec.JsonHandle{}).Encode(report); err != nil {
		return "", err
	}
	logFile.Write([]byte{'\n'})
	return logFile.Name(), nil
}
