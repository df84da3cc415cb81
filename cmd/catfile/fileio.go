package main

import (
	"context"
	"io"
	"os"

	"github.com/inconshreveable/log15"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/cmd/catfile/bhv"
	"go.polydawn.net/flare/common"
)

/*
	The protected file layer.  Nothing here returns an error: failures
	raise, staged with enough context that the dispatch plan above can
	compose a decent sentence about them.  The file name is staged once
	at the top of each file's scope; the op and errno get attached right
	at each raise.
*/

func printFile(ctx context.Context, path string, p printer, log log15.Logger) {
	defer flare.Stage(ctx, common.Name(path)).Close()
	if path == "" {
		flare.Raise(ctx, cmdbhv.CmdLineError, common.Name(path))
	}
	log.Debug("printing file", "path", path)
	f := fileOpen(ctx, path)
	defer f.Close()
	size := fileSize(ctx, f)
	body := fileRead(ctx, f, size)
	log.Debug("file read fully", "path", path, "bytes", size)
	p.printOutput(Event_Output{Msg: string(body)})
}

func fileOpen(ctx context.Context, path string) *os.File {
	f, err := os.Open(path)
	flare.Must(ctx, err, cmdbhv.OpenError, osFacts("open", err)...)
	return f
}

func fileSize(ctx context.Context, f *os.File) int64 {
	fi, err := f.Stat()
	flare.Must(ctx, err, cmdbhv.StatError, osFacts("stat", err)...)
	if fi.IsDir() {
		flare.Raise(ctx, cmdbhv.RefusalError)
	}
	return fi.Size()
}

func fileRead(ctx context.Context, f *os.File, size int64) []byte {
	body := make([]byte, size)
	_, err := io.ReadFull(f, body)
	flare.Must(ctx, err, cmdbhv.ReadError, osFacts("read", err)...)
	return body
}

func osFacts(op string, err error) []any {
	facts := []any{common.Op(op)}
	if code, ok := common.CodeOf(err); ok {
		facts = append(facts, code)
	}
	return facts
}
