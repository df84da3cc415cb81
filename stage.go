package flare

import (
	"context"
	"reflect"
)

/*
	Stage readies facts for commit should a failure propagate out of the
	current scope.  Use it with defer, RAII-style:

		defer flare.Stage(ctx, Name(path)).Close()

	Nothing touches the slots at stage time.  When the deferred Close runs
	during a failure's unwind, each staged fact is committed under the
	propagating incident, unless its slot was already committed under that
	incident: deferred calls run innermost-first, so the value staged
	nearest the failure wins.  When Close runs on a normal exit, each
	fact's slot is restored to exactly its pre-stage entry, so nothing
	staged here can bleed into a later, unrelated incident.
*/
func Stage(ctx context.Context, facts ...any) *Loader {
	k := kitFrom(ctx)
	if k == nil {
		return &Loader{}
	}
	l := &Loader{k: k, entries: make([]loadEntry, 0, len(facts))}
	for _, fact := range facts {
		rt := reflect.TypeOf(fact)
		if rt == nil {
			defectf("cannot stage an untyped nil fact")
		}
		prev, hadPrev := k.slots[rt]
		l.entries = append(l.entries, loadEntry{
			rt:      rt,
			value:   fact,
			prev:    prev,
			hadPrev: hadPrev,
		})
	}
	return l
}

/*
	StageFn is Stage for facts that cost something to compute.  The
	producers run only if a failure actually unwinds the scope:

		defer flare.StageFn(ctx, func() any { return Code(fetchErrno()) }).Close()

	A producer returning an untyped nil contributes nothing.  A producer
	whose fact type an inner scope already committed still runs; its
	fact type is only knowable from the value it returns, and the
	shadowed result is dropped.
*/
func StageFn(ctx context.Context, producers ...func() any) *Loader {
	k := kitFrom(ctx)
	if k == nil {
		return &Loader{}
	}
	l := &Loader{k: k, entries: make([]loadEntry, 0, len(producers))}
	for _, produce := range producers {
		l.entries = append(l.entries, loadEntry{produce: produce})
	}
	return l
}

/*
	Loader holds facts staged for one scope.  Close ends the scope; see
	Stage.  A Loader from a kit-less context is inert.
*/
type Loader struct {
	k       *kit
	entries []loadEntry
	closed  bool
}

type loadEntry struct {
	rt      reflect.Type
	value   any
	produce func() any
	prev    slotEntry
	hadPrev bool
}

func (l *Loader) Close() {
	if l.k == nil || l.closed {
		return
	}
	l.closed = true
	k := l.k
	if k.propagating && k.current != 0 {
		l.commitAll(k.current)
		return
	}
	// Normal exit.  Unstage in reverse so nested stagings of one type
	// within this loader unwind back to the oldest snapshot.
	for i := len(l.entries) - 1; i >= 0; i-- {
		entry := l.entries[i]
		if entry.rt == nil {
			continue // producer, never ran, never wrote
		}
		if entry.hadPrev {
			k.slots[entry.rt] = entry.prev
		} else {
			delete(k.slots, entry.rt)
		}
	}
}

func (l *Loader) commitAll(id IncidentID) {
	k := l.k
	for _, entry := range l.entries {
		value := entry.value
		rt := entry.rt
		if entry.produce != nil {
			value = entry.produce()
			rt = reflect.TypeOf(value)
			if rt == nil {
				continue
			}
		}
		if _, done := k.committed(id, rt); done {
			continue // an inner scope (or the raise itself) got here first
		}
		k.commit(id, rt, value)
	}
}
