/*
	Package flare transports error context from the place a failure happens
	to the place it's handled, without fattening the error value itself.

	The problem: the function that detects a failure rarely has the info a
	handler wants (the filename five frames up; the errno only the syscall
	wrapper saw), and threading all of it through every return type in
	between pollutes signatures that never look at it.  Flare's answer is a
	side channel: typed context slots live in a per-task kit, carried by a
	context.Context.  Code anywhere on the call path can stage facts into
	the slots; the failure value itself stays tiny (a kind plus an incident
	number) and rides a panic to the nearest dispatch boundary.

	Life of a failure:

		ctx = flare.Prime(ctx)                      // once per task
		defer flare.Stage(ctx, Name(path)).Close()  // staged: commits only on unwind
		flare.Raise(ctx, OpenError, Code(errno))    // attached: committed immediately

	and at the boundary:

		err := flare.Dispatch(ctx, doThings, flare.Plan{
			{On: OpenError, When: []flare.Cond{flare.Needs[Name]()}, Do: reportOpen},
			{Do: reportAnything},
		})

	Handlers are tried strictly in order.  A handler matches when its kind
	filter accepts the failure's kind (hierarchically) and every listed
	context fact was committed under this incident.  The first full match
	runs; if none match, the same failure re-raises to the next boundary
	out, with everything committed so far still attached.

	Staged facts that never see a failure are restored on scope exit, so
	nothing leaks into later, unrelated incidents.  Facts are gated by
	incident number, not cleared, which makes staleness checks cheap.

	One kit belongs to one goroutine.  Never share a primed context between
	goroutines that run concurrently; give children their own via Prime.
*/
package flare
