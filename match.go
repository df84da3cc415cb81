package flare

import (
	"reflect"
)

/*
	Cond is one context requirement on a dispatch descriptor: a fact type
	that must be committed under the failure's incident, optionally with a
	predicate on its value.
*/
type Cond struct {
	rt   reflect.Type
	pred func(any) bool
}

// Needs requires a T fact, any value.
func Needs[T any]() Cond {
	return Cond{rt: typeOf[T]()}
}

/*
	NeedsIf requires a T fact whose value satisfies pred.  Predicates are
	consulted only once every required type on the descriptor is present,
	and must be pure: they may run for descriptors that end up not chosen.

		flare.NeedsIf[Code](func(c Code) bool { return c == 2 })
*/
func NeedsIf[T any](pred func(T) bool) Cond {
	return Cond{
		rt:   typeOf[T](),
		pred: func(value any) bool { return pred(value.(T)) },
	}
}

/*
	matches decides whether a descriptor can take this failure.  Read-only:
	no slot is written and no state moves, so a failed candidate leaves no
	trace for the next descriptor in line.
*/
func (h *Handler) matches(k *kit, f *Failure) bool {
	if h.On != nil && !f.kind.Is(h.On) {
		return false
	}
	// Presence of every required type first; predicates only after.
	for _, cond := range h.When {
		if _, ok := k.committed(f.incident, cond.rt); !ok {
			return false
		}
	}
	for _, cond := range h.When {
		if cond.pred == nil {
			continue
		}
		value, _ := k.committed(f.incident, cond.rt)
		if !cond.pred(value) {
			return false
		}
	}
	return true
}
