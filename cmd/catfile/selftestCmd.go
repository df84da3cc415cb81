package main

import (
	"context"

	"github.com/inconshreveable/log15"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/common"
)

/*
	MartianError is raised by the selftest command and deliberately
	appears in no dispatch plan, so it sails straight through to the
	outermost rescue in main.
*/
var MartianError *flare.Kind = flare.NewKind("MartianError")

func SelftestCmd(ctx context.Context, mode string, log log15.Logger) error {
	log.Debug("selftest engaged", "mode", mode)
	switch mode {
	case "unmapped":
		defer flare.Stage(ctx, common.Name("selftest")).Close()
		flare.Raise(ctx, MartianError, common.Op("selftest"))
	case "panic":
		panic("selftest: deliberate panic")
	}
	return nil
}
