package logic

import (
	"sort"
	"strings"
)

// maxArity bounds predicate arity. The evaluator handles nullary, unary,
// and binary relations.
const maxArity = 2

// Predicate is a named relation defined extensionally by its fact table:
// application is a lookup, not a rule evaluation.
type Predicate struct {
	session *Session
	name    string
	arity   int

	// truths maps the encoded tuple to its terms. Every stored term is a
	// registered universe element.
	truths map[string][]*Term
}

// Name returns the predicate's name.
func (p *Predicate) Name() string { return p.name }

// Arity returns the predicate's arity.
func (p *Predicate) Arity() int { return p.arity }

func (p *Predicate) callableName() string { return p.name }

func (p *Predicate) String() string { return p.name }

// Compare is the explicit guard against predicate comparison. Predicates
// are identified by identity only; any comparison attempt is an error.
func (p *Predicate) Compare(*Predicate) error { return ErrPredicateComparison }

// AssertFact records a tuple in the fact table. Raw names and terms are
// coerced through the session's registry, growing the universe on first
// use. Re-asserting an existing tuple is a no-op.
func (p *Predicate) AssertFact(args ...Arg) error {
	if len(args) != p.arity {
		return &ArityError{Name: p.name, Want: p.arity, Got: len(args)}
	}
	tuple := make([]*Term, len(args))
	for i, arg := range args {
		t, err := p.session.argTerm(arg)
		if err != nil {
			return err
		}
		tuple[i] = t
	}
	key := tupleKey(tuple)
	if _, ok := p.truths[key]; ok {
		return nil
	}
	if err := p.session.admitFact(); err != nil {
		return err
	}
	p.truths[key] = tuple
	return nil
}

// SatisfyingTuples returns a copy of the fact table sorted by tuple.
// Mutating the result leaves the table untouched.
func (p *Predicate) SatisfyingTuples() [][]*Term {
	keys := make([]string, 0, len(p.truths))
	for k := range p.truths {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([][]*Term, 0, len(keys))
	for _, k := range keys {
		tuple := p.truths[k]
		cp := make([]*Term, len(tuple))
		copy(cp, tuple)
		out = append(out, cp)
	}
	return out
}

// Apply builds a formula from the predicate and its arguments. When every
// argument names a registered universe element the call evaluates eagerly
// against the fact table, yielding Top or Bot. Any symbolic argument makes
// the whole call symbolic: the predicate and its raw arguments are captured
// as a deferred Application.
func (p *Predicate) Apply(args ...Arg) (Formula, error) {
	if len(args) != p.arity {
		return nil, &ArityError{Name: p.name, Want: p.arity, Got: len(args)}
	}
	for _, arg := range args {
		if !p.session.concrete(arg) {
			return &Application{callable: p, args: append([]Arg(nil), args...)}, nil
		}
	}
	tuple := make([]*Term, len(args))
	for i, arg := range args {
		t, err := p.session.argTerm(arg)
		if err != nil {
			return nil, err
		}
		tuple[i] = t
	}
	if _, ok := p.truths[tupleKey(tuple)]; ok {
		return Top, nil
	}
	return Bot, nil
}

// interpret resolves a deferred application of this predicate. Arguments
// resolve in order: universe element, nested formula, local binding, free
// variable. A name that resolves nowhere fails with the universe and
// free-variable snapshots attached. A nested formula yields a truth value,
// which cannot stand in a term position; interpreting it first lets a
// deferred function application surface its own error.
func (p *Predicate) interpret(s *Session, args []Arg, b Bindings) (bool, Bindings, error) {
	resolved := make([]Arg, len(args))
	for i, arg := range args {
		switch a := arg.(type) {
		case ElemArg:
			if a.Term != nil && a.Term.name != "" && s.universe.contains(a.Term.name) {
				resolved[i] = arg
				continue
			}
			return false, b, s.unboundErr(arg.String())
		case NestedArg:
			_, m, err := a.Formula.Interpret(s, b)
			if err != nil {
				return false, m, err
			}
			return false, m, s.unboundErr(a.Formula.String())
		case NameArg:
			if s.universe.contains(a.Value) {
				resolved[i] = arg
				continue
			}
			if t, ok := b.Lookup(a.Value); ok {
				resolved[i] = ElemArg{Term: t}
				continue
			}
			if t, ok := s.free[a.Value]; ok {
				resolved[i] = ElemArg{Term: t}
				continue
			}
			return false, b, s.unboundErr(a.Value)
		}
	}
	f, err := p.Apply(resolved...)
	if err != nil {
		return false, b, err
	}
	return f.Interpret(s, b)
}

// tupleKey encodes a tuple for fact-table lookup.
func tupleKey(tuple []*Term) string {
	names := make([]string, len(tuple))
	for i, t := range tuple {
		names[i] = t.name
	}
	return strings.Join(names, "\x00")
}
