package main

import (
	"github.com/polydawn/refmt/obj/atlas"
)

/*
	This file is all serializable types for the event stream catfile
	emits in json format: one Event per line, exactly one of the union
	fields set.
*/

type Event struct {
	Log    *Event_Log
	Output *Event_Output
	Result *Event_Result
}

var Event_AtlasEntry = atlas.BuildEntry(Event{}).StructMap().Autogenerate().Complete()

// A journal line: something catfile wants to tell the human.
type Event_Log struct {
	Time   int64 // unix millis
	Level  string
	Msg    string
	Detail []LogDetail
}

var Event_Log_AtlasEntry = atlas.BuildEntry(Event_Log{}).StructMap().Autogenerate().Complete()

type LogDetail struct {
	Key   string
	Value string
}

var LogDetail_AtlasEntry = atlas.BuildEntry(LogDetail{}).StructMap().Autogenerate().Complete()

// A run of file content bound for stdout.
type Event_Output struct {
	Msg string
}

var Event_Output_AtlasEntry = atlas.BuildEntry(Event_Output{}).StructMap().Autogenerate().Complete()

// The final word on a command: an id for referencing the run in bug
// reports, the exit code about to be used, and the error if any.
type Event_Result struct {
	Guid     string
	ExitCode int
	Error    string
}

var Event_Result_AtlasEntry = atlas.BuildEntry(Event_Result{}).StructMap().Autogenerate().Complete()

var Atlas = atlas.MustBuild(
	Event_AtlasEntry,
	Event_Log_AtlasEntry,
	LogDetail_AtlasEntry,
	Event_Output_AtlasEntry,
	Event_Result_AtlasEntry,
)
