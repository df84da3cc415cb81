package flare

import (
	"fmt"
	"path/filepath"
)

/*
	Origin records where a failure was raised: one frame, captured by
	Raise itself.  Handlers can require it like any other fact
	(flare.Needs[flare.Origin]()), and Describe prints it, so even a
	failure nobody staged context for says where it came from.

	This is raise-site provenance, not a stack trace.
*/
type Origin struct {
	File string
	Line int
	Func string
}

func (o Origin) String() string {
	return fmt.Sprintf("%s:%d (%s)", filepath.Base(o.File), o.Line, o.Func)
}

/*
	Cause carries an underlying Go error as a context fact.  Must attaches
	one automatically; Raise callers can too.  The error stays out of the
	Failure carrier itself, but a handler that wants it asks:

		cause := flare.MustGet[flare.Cause](ctx)
*/
type Cause struct {
	Err error
}

func (c Cause) String() string {
	if c.Err == nil {
		return "<nil>"
	}
	return c.Err.Error()
}
