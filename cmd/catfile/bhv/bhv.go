/*
	Package cmdbhv holds catfile's behavior vocabulary: the failure kinds
	the commands raise, the exit codes the process maps them to, and the
	dispatch plan that does the mapping.

	It's a separate package so both the command implementations and the
	tests can speak it without importing main.
*/
package cmdbhv

import (
	"context"
	"fmt"
	"syscall"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/common"
)

const (
	EXIT_SUCCESS      = 0
	EXIT_BADARGS      = 1
	EXIT_UNKNOWNPANIC = 2 // same code as golang uses when the process dies naturally on an unhandled panic.
	EXIT_USER         = 3 // grab bag for general user-facing refusals (try to make a more specific code if possible/useful)
	EXIT_OPEN         = 10
	EXIT_STAT         = 11
	EXIT_READ         = 12
)

/*
	The failure taxonomy.  Every raise in catfile uses one of these; the
	outermost dispatch maps each to a distinct exit status, and anything
	outside the family (which would be a bug) escapes to the last-ditch
	recover in main and exits EXIT_UNKNOWNPANIC.
*/
var (
	Error        *flare.Kind = flare.NewKind("CatfileError")
	CmdLineError *flare.Kind = Error.NewKind("CmdLineError")
	RefusalError *flare.Kind = Error.NewKind("RefusalError")
	IOError      *flare.Kind = Error.NewKind("IOError")
	FileError    *flare.Kind = IOError.NewKind("FileError")
	OpenError    *flare.Kind = FileError.NewKind("OpenError")
	StatError    *flare.Kind = FileError.NewKind("StatError")
	ReadError    *flare.Kind = FileError.NewKind("ReadError")
)

type ErrExit struct {
	Message string
	Code    int
}

func (e *ErrExit) Error() string {
	return e.Message
}

// ExitCodeForError is the last translation step before os.Exit.
func ExitCodeForError(err error) int {
	switch e := err.(type) {
	case nil:
		return EXIT_SUCCESS
	case *ErrExit:
		return e.Code
	default:
		return EXIT_UNKNOWNPANIC
	}
}

/*
	TryPlanToExit turns failures into user-facing ErrExits.  Descriptor
	order is doing real work here: the ENOENT descriptor must sit ahead of
	the general open-failure one, or its nicer message never prints.
*/
var TryPlanToExit = flare.Plan{
	{On: OpenError, When: []flare.Cond{
		flare.Needs[common.Name](),
		flare.NeedsIf[common.Code](func(c common.Code) bool { return c == common.Code(syscall.ENOENT) }),
	}, Do: func(ctx context.Context, f *flare.Failure) error {
		return &ErrExit{
			Message: fmt.Sprintf("catfile: %s: no such file", flare.MustGet[common.Name](ctx)),
			Code:    EXIT_OPEN,
		}
	}},
	{On: OpenError, When: []flare.Cond{
		flare.Needs[common.Name](),
	}, Do: func(ctx context.Context, f *flare.Failure) error {
		return &ErrExit{
			Message: fmt.Sprintf("catfile: cannot open %q%s", flare.MustGet[common.Name](ctx), causeSuffix(ctx)),
			Code:    EXIT_OPEN,
		}
	}},
	{On: StatError, When: []flare.Cond{
		flare.Needs[common.Name](),
	}, Do: func(ctx context.Context, f *flare.Failure) error {
		return &ErrExit{
			Message: fmt.Sprintf("catfile: cannot size up %q%s", flare.MustGet[common.Name](ctx), causeSuffix(ctx)),
			Code:    EXIT_STAT,
		}
	}},
	{On: ReadError, When: []flare.Cond{
		flare.Needs[common.Name](),
	}, Do: func(ctx context.Context, f *flare.Failure) error {
		return &ErrExit{
			Message: fmt.Sprintf("catfile: cannot read %q%s", flare.MustGet[common.Name](ctx), causeSuffix(ctx)),
			Code:    EXIT_READ,
		}
	}},
	{On: RefusalError, When: []flare.Cond{
		flare.Needs[common.Name](),
	}, Do: func(ctx context.Context, f *flare.Failure) error {
		return &ErrExit{
			Message: fmt.Sprintf("catfile: refusing to print %q: it is a directory", flare.MustGet[common.Name](ctx)),
			Code:    EXIT_USER,
		}
	}},
	{On: CmdLineError, Do: func(ctx context.Context, f *flare.Failure) error {
		msg := "catfile: bad command line"
		if name, ok := flare.Get[common.Name](ctx); ok {
			msg = fmt.Sprintf("catfile: bad command line: unusable argument %q", name)
		}
		return &ErrExit{Message: msg, Code: EXIT_BADARGS}
	}},
	// Belt for io kinds that grow later and don't get a tailored line.
	{On: IOError, Do: func(ctx context.Context, f *flare.Failure) error {
		return &ErrExit{
			Message: fmt.Sprintf("catfile: io trouble (%s)%s", f.Kind(), causeSuffix(ctx)),
			Code:    EXIT_USER,
		}
	}},
}

func causeSuffix(ctx context.Context) string {
	cause, ok := flare.Get[flare.Cause](ctx)
	if !ok {
		return ""
	}
	return fmt.Sprintf(": %s", cause)
}
