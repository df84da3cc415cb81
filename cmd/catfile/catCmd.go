package main

import (
	"context"

	"github.com/inconshreveable/log15"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/cmd/catfile/bhv"
	"go.polydawn.net/flare/lib/guid"
)

func CatCmd(ctx context.Context, paths []string, p printer, log log15.Logger) error {
	err := flare.Dispatch(ctx, func(ctx context.Context) error {
		for _, path := range paths {
			printFile(ctx, path, p, log)
		}
		return nil
	}, cmdbhv.TryPlanToExit)
	evt := Event_Result{
		Guid:     guid.New(),
		ExitCode: cmdbhv.ExitCodeForError(err),
	}
	if err != nil {
		evt.Error = err.Error()
	}
	p.printResult(evt)
	return err
}
