package testutil

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/smartystreets/goconvey/convey"
)

/*
	Builds a logger whose output lands inside the convey report of the
	test that emitted it, instead of interleaving with the progress dots
	on the terminal.
*/
func TestLogger(c convey.C) log15.Logger {
	log := log15.New()
	log.SetHandler(log15.StreamHandler(conveyWriter{c}, log15.TerminalFormat()))
	return log
}

// Adapts a convey context into an io.Writer so log handlers can aim at it.
type conveyWriter struct {
	c convey.C
}

var _ io.Writer = conveyWriter{}

func (w conveyWriter) Write(msg []byte) (int, error) {
	return w.c.Print(string(msg))
}
