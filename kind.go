package flare

/*
	Kind is a node in a failure taxonomy.  Kinds have identity (two calls
	to NewKind yield two distinct kinds, names notwithstanding) and form a
	hierarchy: a dispatch descriptor filtering on a kind accepts failures
	of that kind or any kind descended from it.

	Declare kinds as package vars, parents before children:

		var IOError = flare.NewKind("IOError")
		var FileError = IOError.NewKind("FileError")
*/
type Kind struct {
	name   string
	parent *Kind
}

// NewKind declares a new root kind.
func NewKind(name string) *Kind {
	return &Kind{name: name}
}

// NewKind declares a child kind under k.
func (k *Kind) NewKind(name string) *Kind {
	return &Kind{name: name, parent: k}
}

/*
	Is reports whether k is the ancestor kind, or descends from it.
	Every kind Is itself.
*/
func (k *Kind) Is(ancestor *Kind) bool {
	for cur := k; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func (k *Kind) String() string {
	return k.name
}
