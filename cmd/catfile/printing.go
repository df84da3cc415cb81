package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/polydawn/refmt/json"
)

type printer interface {
	printLog(Event_Log)
	printOutput(Event_Output)
	printResult(Event_Result)
}

var (
	_ printer = ansi{}
	_ printer = jsonPrinter{}
)

type ansi struct{ stdout, stderr io.Writer }

var (
	logFlare   = []byte("\033[0;36m-⟩ \033[0m")
	colorReset = []byte("\033[0m")
)

func (p ansi) printLog(evt Event_Log) {
	msg := bytes.NewBuffer([]byte(logFlare))
	msg.WriteString(fmt.Sprintf("[\033[1;30m%v\033[0m] ", time.UnixMilli(evt.Time).Local().Format("01-02 15:04:05")))
	msg.Write(logFlare)
	msg.WriteString(fmt.Sprintf("%v: ", evt.Level))
	msg.WriteString(fmt.Sprintf("%v", evt.Msg))
	if len(evt.Detail) > 0 {
		msg.Write([]byte("\033[1;30m ---"))
	}
	for i, detail := range evt.Detail {
		msg.WriteString(fmt.Sprintf(" \033[1;34m%s: \033[1;30m%v", detail.Key, detail.Value))
		if i < len(evt.Detail)-1 { // add comma for all values except the last
			msg.WriteByte(',')
		}
	}
	msg.Write(colorReset)
	msg.WriteByte('\n')
	msg.WriteTo(p.stderr)
}

// File content goes to stdout raw: decorating it would defeat the
// entire point of a cat.
func (p ansi) printOutput(evt Event_Output) {
	io.WriteString(p.stdout, evt.Msg)
}

func (p ansi) printResult(evt Event_Result) {
	if evt.Error == "" {
		return // a quiet exit is a polite exit
	}
	p.printLog(Event_Log{
		Time:  time.Now().UnixMilli(),
		Level: "error",
		Msg:   evt.Error,
		Detail: []LogDetail{
			{"exitcode", fmt.Sprintf("%d", evt.ExitCode)},
			{"guid", evt.Guid},
		},
	})
}

type jsonPrinter struct{ stdout io.Writer }

func (p jsonPrinter) printLog(evt Event_Log) {
	if err := json.NewMarshallerAtlased(p.stdout, json.EncodeOptions{}, Atlas).Marshal(Event{Log: &evt}); err != nil {
		panic(err)
	}
	p.stdout.Write([]byte{'\n'})
}

func (p jsonPrinter) printOutput(evt Event_Output) {
	if err := json.NewMarshallerAtlased(p.stdout, json.EncodeOptions{}, Atlas).Marshal(Event{Output: &evt}); err != nil {
		panic(err)
	}
	p.stdout.Write([]byte{'\n'})
}

func (p jsonPrinter) printResult(evt Event_Result) {
	if err := json.NewMarshallerAtlased(p.stdout, json.EncodeOptions{}, Atlas).Marshal(Event{Result: &evt}); err != nil {
		panic(err)
	}
	p.stdout.Write([]byte{'\n'})
}
