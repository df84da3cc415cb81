package flare

import (
	"fmt"
)

/*
	Failure is the carrier that rides a panic from a Raise to a dispatch
	boundary.  It is deliberately minimal: a kind for routing plus the
	incident number that gates slot lookups.  Anything descriptive (names,
	codes, causes) travels in the context slots instead; see Stage and
	Raise's trailing facts.

	Only the engine constructs Failures.  Client code meets them in
	handler callbacks.
*/
type Failure struct {
	kind     *Kind
	incident IncidentID
}

// Kind returns the failure's kind.
func (f *Failure) Kind() *Kind {
	return f.kind
}

// Incident returns the incident this failure is propagating under.
func (f *Failure) Incident() IncidentID {
	return f.incident
}

func (f *Failure) Error() string {
	return fmt.Sprintf("failure: %s", f.kind)
}

/*
	Defect marks a misuse of the engine itself: raising with a nil kind,
	MustGet of a fact the matcher never guaranteed, carrying an untyped
	nil.  Defects are not domain failures.  No Plan catches them;
	dispatchers wave them through so they crash (or land in whatever
	last-ditch recover the program keeps for bugs).
*/
type Defect struct {
	What string
}

func (d *Defect) Error() string {
	return "flare defect: " + d.What
}

func defectf(format string, args ...any) {
	panic(&Defect{What: fmt.Sprintf(format, args...)})
}
