package logic

// Term is a named element of a session's universe. Terms are interned per
// session: requesting the same name twice yields the same pointer, so name
// equality and pointer identity agree for registered terms.
type Term struct {
	name string
}

// Name returns the term's name.
func (t *Term) Name() string { return t.name }

// Equal reports whether both terms carry the same name. Placeholder terms
// (empty name) are equal only to themselves.
func (t *Term) Equal(other *Term) bool {
	if other == nil {
		return false
	}
	if t.name == "" || other.name == "" {
		return t == other
	}
	return t.name == other.name
}

// Less orders terms lexicographically by name.
func (t *Term) Less(other *Term) bool { return t.name < other.name }

func (t *Term) String() string { return t.name }
