package flare

import (
	"context"
	"path"
	"reflect"
	"runtime"
)

/*
	Raise begins (or continues) a failure propagation.  It never returns.

	The facts are committed to their slots immediately, under the incident
	the new failure rides; they beat anything a scoped loader later commits
	for the same types, since the raise site is as inner as it gets.  An
	Origin fact recording the raise site is committed alongside.

	If a failure is already propagating in this task (a raise out of
	cleanup code running mid-unwind), the new failure continues the same
	incident rather than opening a fresh one, inheriting its context.
*/
func Raise(ctx context.Context, kind *Kind, facts ...any) {
	panic(raise(ctx, kind, facts, 1))
}

/*
	Must raises kind if err is non-nil, attaching the error as a Cause
	fact ahead of the given facts.  On nil err it's a no-op, which makes
	the deep layers of fallible code read flat:

		f, err := os.Open(path)
		flare.Must(ctx, err, OpenError, Name(path))
*/
func Must(ctx context.Context, err error, kind *Kind, facts ...any) {
	if err == nil {
		return
	}
	panic(raise(ctx, kind, append([]any{Cause{Err: err}}, facts...), 1))
}

func raise(ctx context.Context, kind *Kind, facts []any, skip int) *Failure {
	if kind == nil {
		defectf("raise with a nil kind")
	}
	k := kitFrom(ctx)
	if k == nil {
		// No kit means no boundary above us could have primed; the
		// carrier still propagates, just without slot context.
		return &Failure{kind: kind, incident: 0}
	}
	id := k.ensureCurrent()
	k.propagating = true
	if origin, ok := callerOrigin(skip + 2); ok {
		k.commit(id, reflect.TypeOf(origin), origin)
	}
	for _, fact := range facts {
		rt := reflect.TypeOf(fact)
		if rt == nil {
			defectf("cannot carry an untyped nil fact (raising %s)", kind)
		}
		k.commit(id, rt, fact)
	}
	return &Failure{kind: kind, incident: id}
}

func callerOrigin(skip int) (Origin, bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Origin{}, false
	}
	origin := Origin{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		origin.Func = path.Base(fn.Name())
	}
	return origin, true
}
