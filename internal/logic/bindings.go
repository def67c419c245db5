package logic

import (
	"fmt"
	"sort"
	"strings"
)

// Bindings is an immutable assignment of variable names to terms. Bind
// returns an extended copy and never modifies the receiver, so the
// environments returned from interpretation are stable snapshots: a witness
// survives however evaluation continues.
type Bindings struct {
	vars map[string]*Term
}

// NewBindings returns an empty assignment.
func NewBindings() Bindings {
	return Bindings{}
}

// Bind returns a copy of b with name bound to t, replacing any previous
// binding for name.
func (b Bindings) Bind(name string, t *Term) Bindings {
	vars := make(map[string]*Term, len(b.vars)+1)
	for k, v := range b.vars {
		vars[k] = v
	}
	vars[name] = t
	return Bindings{vars: vars}
}

// Lookup returns the term bound to name, if any.
func (b Bindings) Lookup(name string) (*Term, bool) {
	t, ok := b.vars[name]
	return t, ok
}

// Len returns the number of bound names.
func (b Bindings) Len() int { return len(b.vars) }

// Names returns the bound names sorted lexicographically.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.vars))
	for k := range b.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String renders the assignment as {x=A, y=B} with names sorted.
func (b Bindings) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range b.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%s", name, b.vars[name])
	}
	sb.WriteString("}")
	return sb.String()
}
