package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"gopkg.in/alecthomas/kingpin.v2"

	"go.polydawn.net/flare"
	"go.polydawn.net/flare/cmd/catfile/bhv"
	"go.polydawn.net/flare/cmd/catfile/version"
)

func main() {
	os.Exit(runMain(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

/*
	runMain is the whole program, minus the card-carrying globals, so
	tests can drive it end to end with plain buffers.

	The deferred rescue here is the last line of defense: anything that
	panics all the way out of the dispatch plans lands here, gets logged
	to a report file, and turns into the its-a-bug exit code.
*/
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	ctx := flare.Prime(context.Background())
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if isDebugMode() {
			// in debug mode, let the panic fly so the runtime's own crash output does the talking.
			panic(r)
		}
		// stash the gory details in a file; the terminal gets the polite version.
		logPath, saveErr := saveErrorReport(ctx, r)
		var saveMsg string
		if saveErr == nil {
			saveMsg = fmt.Sprintf("We've logged the full error to a file: %q.  Please include this in the report.", logPath)
		} else {
			saveMsg = fmt.Sprintf("Additionally, we were unable to save a full log of the problem (\"%s\").", saveErr)
		}
		fmt.Fprintf(stderr,
			"catfile encountered a serious issue and was unable to complete your request!\n"+
				"Please file an issue to help us fix it.\n"+
				saveMsg+"\n"+
				"\n"+
				"This is the short version of the problem:\n"+
				"%v\n",
			r)
		code = cmdbhv.EXIT_UNKNOWNPANIC
	}()
	bhv := Main(ctx, args, stdin, stdout, stderr)
	err := bhv.action()
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
	}
	return cmdbhv.ExitCodeForError(err)
}

func isDebugMode() bool {
	// either the generic "DEBUG" or our own "CATFILE_DEBUG" env var flips this on.
	return len(os.Getenv("DEBUG")) != 0 || len(os.Getenv("CATFILE_DEBUG")) != 0
}

// Holder type so test code can peek at the parsed args
//  before committing to running the logic.
type behavior struct {
	parsedArgs interface{}
	action     func() error
}

type format string

const (
	format_Ansi = "ansi"
	format_Json = "json"
)

func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) behavior {
	// CLI boilerplate.
	app := kingpin.New("catfile", "Print files, with fussy error reporting.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// Args struct defs and flag declarations.
	baseArgs := struct {
		Format string
		Debug  bool
	}{}
	app.Flag("format", "Output api format").
		Default(format_Ansi).
		EnumVar(&baseArgs.Format,
			format_Ansi, format_Json)
	app.Flag("debug", "Narrate each step to the log stream").
		BoolVar(&baseArgs.Debug)
	bhvs := map[string]behavior{}
	{
		cmdCat := app.Command("cat", "Print files to stdout.")
		argsCat := struct {
			Files []string
		}{}
		cmdCat.Arg("files", "Paths of files to print.").
			Required().
			StringsVar(&argsCat.Files)
		bhvs[cmdCat.FullCommand()] = behavior{&argsCat, func() error {
			printer := setupPrinter(format(baseArgs.Format), stdout, stderr)
			log := setupLogger(baseArgs.Debug, printer)
			return CatCmd(ctx, argsCat.Files, printer, log)
		}}
	}
	{
		cmdSelftest := app.Command("selftest", "Fail on purpose, to exercise the sad paths.").Hidden()
		argsSelftest := struct {
			Mode string
		}{}
		cmdSelftest.Arg("mode", "Which sad path to take.").
			Default("unmapped").
			EnumVar(&argsSelftest.Mode,
				"unmapped", "panic")
		bhvs[cmdSelftest.FullCommand()] = behavior{&argsSelftest, func() error {
			printer := setupPrinter(format(baseArgs.Format), stdout, stderr)
			log := setupLogger(baseArgs.Debug, printer)
			return SelftestCmd(ctx, argsSelftest.Mode, log)
		}}
	}
	{
		cmdVersion := app.Command("version", "Print program version.")
		bhvs[cmdVersion.FullCommand()] = behavior{nil, func() error {
			fmt.Fprintf(stdout,
				"catfile\n commit:\t%s (dirty: %s)\n tree:\t%s\n",
				version.GitCommit, version.GitDirty, version.GitTreeHash)
			return nil
		}}
	}

	// Parse!
	parsedCmdStr, err := app.Parse(args[1:])
	if err != nil {
		return behavior{
			parsedArgs: err,
			action: func() error {
				return &cmdbhv.ErrExit{
					Message: fmt.Sprintf("catfile: %s", err),
					Code:    cmdbhv.EXIT_BADARGS,
				}
			},
		}
	}
	// Return behavior named by the command and subcommand strings.
	if bhv, ok := bhvs[parsedCmdStr]; ok {
		return bhv
	}
	panic("unreachable, cli parser must error on unknown commands")
}

func setupPrinter(format format, stdout, stderr io.Writer) printer {
	switch format {
	case format_Ansi:
		return ansi{stdout: stdout, stderr: stderr}
	case format_Json:
		return jsonPrinter{stdout: stdout}
	default:
		panic("unreachable")
	}
}

/*
	setupLogger rigs a log15.Logger to feed the event printer, so debug
	chatter comes out in whatever format the user asked for.  Without
	the debug flag the logger swallows everything.
*/
func setupLogger(debug bool, p printer) log15.Logger {
	log := log15.New()
	if !debug {
		log.SetHandler(log15.DiscardHandler())
		return log
	}
	log.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
		evt := Event_Log{
			Time:  r.Time.UnixMilli(),
			Level: r.Lvl.String(),
			Msg:   r.Msg,
		}
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			evt.Detail = append(evt.Detail, LogDetail{
				Key:   fmt.Sprintf("%v", r.Ctx[i]),
				Value: fmt.Sprintf("%v", r.Ctx[i+1]),
			})
		}
		p.printLog(evt)
		return nil
	}))
	return log
}
