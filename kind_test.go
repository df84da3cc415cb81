package flare_test

import (
	"testing"

	"go.polydawn.net/flare"
	. "go.polydawn.net/flare/testutil"
)

func TestKindAncestry(t *testing.T) {
	base := flare.NewKind("BaseError")
	mid := base.NewKind("MidError")
	tip := mid.NewKind("TipError")
	other := flare.NewKind("OtherError")

	WantEqual(t, tip.Is(tip), true)
	WantEqual(t, tip.Is(mid), true)
	WantEqual(t, tip.Is(base), true)
	WantEqual(t, tip.Is(other), false)
	WantEqual(t, base.Is(tip), false)
	WantEqual(t, mid.Is(other), false)
}

func TestKindIdentity(t *testing.T) {
	// Two kinds may share a name; they're still different kinds.
	k1 := flare.NewKind("SameName")
	k2 := flare.NewKind("SameName")
	WantEqual(t, k1.Is(k2), false)
	WantEqual(t, k2.Is(k1), false)
	WantEqual(t, k1.String(), "SameName")
}
