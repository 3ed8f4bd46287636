// Package caps holds the standard terminfo capability names.
package caps

// Name pairs a capability's long name with its short capname.
type Name struct {
	Long  string
	Short string
}

// Kind is the value type of a capability.
type Kind int

const (
	KindUnknown Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

type entry struct {
	kind Kind
	long string
}

var index = func() map[string]entry {
	m := make(map[string]entry, 2*(len(Booleans)+len(Numbers)+len(Strings)))
	add := func(kind Kind, names []Name) {
		for _, n := range names {
			m[n.Long] = entry{kind: kind, long: n.Long}
			m[n.Short] = entry{kind: kind, long: n.Long}
		}
	}
	add(KindBool, Booleans)
	add(KindNumber, Numbers)
	add(KindString, Strings)
	return m
}()

// Lookup resolves a long name or a capname to the capability's long name
// and kind. Names outside the standard tables report false.
func Lookup(name string) (string, Kind, bool) {
	e, ok := index[name]
	if !ok {
		return "", KindUnknown, false
	}
	return e.long, e.kind, true
}

// Canonical returns the long name for name, or name itself when it is not
// a standard capability. Extended capabilities keep the names they were
// compiled with.
func Canonical(name string) string {
	if long, _, ok := Lookup(name); ok {
		return long
	}
	return name
}

// Short returns the capname for a long name, or "" when long is not a
// standard capability.
func Short(long string) string {
	e, ok := index[long]
	if !ok || e.long != long {
		return ""
	}
	for _, table := range [][]Name{Booleans, Numbers, Strings} {
		for _, n := range table {
			if n.Long == long {
				return n.Short
			}
		}
	}
	return ""
}
