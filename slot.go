package flare

import (
	"context"
	"reflect"
)

/*
	Get returns the T committed under the active incident, if any.

	Inside a handler this reads the dispatched failure's context.  Facts
	from incidents already resolved never surface here, no matter what the
	slot physically holds.
*/
func Get[T any](ctx context.Context) (T, bool) {
	var zero T
	k := kitFrom(ctx)
	if k == nil {
		return zero, false
	}
	value, ok := k.committed(k.current, typeOf[T]())
	if !ok {
		return zero, false
	}
	return value.(T), true
}

/*
	MustGet is Get for facts a handler's match already guaranteed.  Reaching
	for a T that is not committed under the active incident is an engine
	defect, not a domain failure: it panics a *Defect, which no dispatch
	plan will swallow.
*/
func MustGet[T any](ctx context.Context) T {
	value, ok := Get[T](ctx)
	if !ok {
		defectf("no %s fact is committed under the active incident", typeOf[T]())
	}
	return value
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
