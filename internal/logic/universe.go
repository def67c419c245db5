package logic

import "sort"

// universe is the registry of domain elements, keyed by name. It grows as a
// side effect of term creation and is emptied only by Session.Reset.
type universe struct {
	elems map[string]*Term
}

func newUniverse() *universe {
	return &universe{elems: make(map[string]*Term)}
}

// register inserts the term under its name. Idempotent: a name already
// present leaves the registry unchanged. Placeholders are never registered.
func (u *universe) register(t *Term) bool {
	if t == nil || t.name == "" {
		return false
	}
	if _, ok := u.elems[t.name]; ok {
		return false
	}
	u.elems[t.name] = t
	return true
}

// lookup returns the registered term for name, if any.
func (u *universe) lookup(name string) (*Term, bool) {
	t, ok := u.elems[name]
	return t, ok
}

func (u *universe) contains(name string) bool {
	_, ok := u.elems[name]
	return ok
}

func (u *universe) size() int { return len(u.elems) }

func (u *universe) clear() {
	u.elems = make(map[string]*Term)
}

// enumerate returns the elements sorted by name. Quantifier search walks
// this order, which makes witnesses deterministic.
func (u *universe) enumerate() []*Term {
	out := make([]*Term, 0, len(u.elems))
	for _, t := range u.elems {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
