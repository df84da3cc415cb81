package flare

import (
	"context"
)

/*
	Handler is one dispatch descriptor: a kind filter, context
	requirements, and the callback to run when both hold.

	A nil On accepts every kind; an empty When asks for nothing.  A bare
	Handler{Do: ...} is therefore a catch-all, and since descriptors are
	tried strictly in order, it belongs at the end of the plan.  Putting
	it first shadows everything after it; the engine takes your word
	for it.
*/
type Handler struct {
	On   *Kind
	When []Cond
	Do   func(ctx context.Context, f *Failure) error
}

// Plan is an ordered list of descriptors.  First full match wins.
type Plan []Handler

/*
	Dispatch runs fn under a boundary that routes failures to the plan.

	When fn returns normally its error (nil or not) passes through
	untouched.  When fn raises, descriptors are tried in plan order
	against the failure's kind and committed context; the first full
	match has its Do invoked, Do's return value becomes Dispatch's, and
	the incident is retired so the next failure draws a fresh ID.  During
	Do the failure's whole committed context is readable through ctx
	(Get, MustGet, Describe).

	When nothing in the plan matches, the same carrier re-raises and the
	incident stays active, so an outer Dispatch sees every fact inner
	scopes committed.  Panics that are not *Failure, including *Defect,
	pass through unrouted.

	A context with no kit gets a fresh one here, visible to fn and
	everything below it.  Nesting is safe: a dispatch that opens while an
	incident is already active (a boundary inside a handler, say) leaves
	that incident alone.
*/
func Dispatch(ctx context.Context, fn func(context.Context) error, plan Plan) (result error) {
	k := kitFrom(ctx)
	if k == nil {
		ctx = Prime(ctx)
		k = kitFrom(ctx)
	}
	entryIncident := k.current
	entryPropagating := k.propagating
	defer func() {
		r := recover()
		if r == nil {
			// Normal return.  Retire whatever a bypassing recover may
			// have left half-propagated, but never an incident that was
			// already live when this boundary opened.
			if entryIncident == 0 {
				k.endIncident()
			}
			return
		}
		f, ok := r.(*Failure)
		if !ok {
			panic(r)
		}
		h := plan.pick(k, f)
		if h == nil {
			panic(f)
		}
		k.propagating = false
		k.current = f.incident
		result = h.Do(ctx, f)
		if entryIncident == 0 {
			k.endIncident()
		} else {
			// Opened mid-incident: put back exactly what was in flight
			// at entry.  The unwind flag matters as much as the ID; an
			// outer failure may still be propagating past this boundary.
			k.propagating = entryPropagating
			k.current = entryIncident
		}
	}()
	result = fn(ctx)
	return
}

func (p Plan) pick(k *kit, f *Failure) *Handler {
	for i := range p {
		if p[i].matches(k, f) {
			return &p[i]
		}
	}
	return nil
}
