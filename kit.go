package flare

import (
	"context"
	"reflect"
)

/*
	IncidentID numbers one propagation of one failure through one task.
	IDs are allocated from a per-kit counter and are strictly increasing;
	an ID is never reused within its kit.  Zero means "no incident".

	Slots remember which incident committed them, so a fact left over from
	a resolved incident can never satisfy a matcher inspecting a later one.
*/
type IncidentID uint64

/*
	kit is the whole of the engine's state for one task: the incident
	counter, the currently active incident, and the context slots.

	A kit is reached through a context.Context and is owned by exactly one
	goroutine at a time.  Nothing here locks; the ownership rule is the
	synchronization.
*/
type kit struct {
	counter     uint64
	current     IncidentID
	propagating bool
	slots       map[reflect.Type]slotEntry
}

type slotEntry struct {
	value    any
	incident IncidentID
}

type kitKey struct{}

/*
	Prime returns a context carrying a fresh kit.

	Most programs never call this: Dispatch primes automatically when no
	kit is present.  Call it yourself to stage context above the outermost
	dispatch, or when handing work to a new goroutine (each goroutine must
	own its kit; never share a primed context across goroutines that run
	concurrently).
*/
func Prime(ctx context.Context) context.Context {
	return context.WithValue(ctx, kitKey{}, &kit{
		slots: make(map[reflect.Type]slotEntry),
	})
}

func kitFrom(ctx context.Context) *kit {
	k, _ := ctx.Value(kitKey{}).(*kit)
	return k
}

/*
	CurrentIncident returns the active incident's ID, or zero when no
	failure is in flight (and none was left unresolved).  Does not
	allocate an incident; it's a pure observation.
*/
func CurrentIncident(ctx context.Context) IncidentID {
	k := kitFrom(ctx)
	if k == nil {
		return 0
	}
	return k.current
}

// ensureCurrent returns the active incident, beginning one if none is.
func (k *kit) ensureCurrent() IncidentID {
	if k.current == 0 {
		k.counter++
		k.current = IncidentID(k.counter)
	}
	return k.current
}

/*
	endIncident retires the active incident.  The propagating flag drops
	and the next failure will draw a fresh ID.  Slots are left alone:
	entries tagged with the retired ID are unreachable to any future
	matcher, which is cheaper than sweeping them.
*/
func (k *kit) endIncident() {
	k.propagating = false
	k.current = 0
}

// commit writes a fact into its slot, tagged with the given incident.
func (k *kit) commit(id IncidentID, rt reflect.Type, value any) {
	k.slots[rt] = slotEntry{value: value, incident: id}
}

// committed reads the slot for rt iff it was committed under id.
func (k *kit) committed(id IncidentID, rt reflect.Type) (any, bool) {
	if id == 0 {
		return nil, false
	}
	entry, ok := k.slots[rt]
	if !ok || entry.incident != id {
		return nil, false
	}
	return entry.value, true
}
