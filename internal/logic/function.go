package logic

import "fmt"

// EvalFunc is a host-supplied interpretation procedure for a function
// symbol. It receives fully concrete terms, one per argument position.
type EvalFunc func(args ...*Term) (*Term, error)

// Function is a named operation over domain elements. Unlike a term, the
// symbol itself is not a universe element.
type Function struct {
	session *Session
	name    string
	arity   int
	eval    EvalFunc
}

// Name returns the function's name.
func (f *Function) Name() string { return f.name }

// Arity returns the function's arity.
func (f *Function) Arity() int { return f.arity }

func (f *Function) callableName() string { return f.name }

// Apply evaluates the function when every argument names a registered
// universe element, yielding the computed term as an argument. Otherwise
// the call is captured as a deferred application, usable as a nested
// argument to further calls.
func (f *Function) Apply(args ...Arg) (Arg, error) {
	if len(args) != f.arity {
		return nil, &ArityError{Name: f.name, Want: f.arity, Got: len(args)}
	}
	for _, arg := range args {
		if !f.session.concrete(arg) {
			app := &Application{callable: f, args: append([]Arg(nil), args...)}
			return NestedArg{Formula: app}, nil
		}
	}
	terms := make([]*Term, len(args))
	for i, arg := range args {
		t, err := f.session.argTerm(arg)
		if err != nil {
			return nil, err
		}
		terms[i] = t
	}
	out, err := f.eval(terms...)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %s: %w", f.name, err)
	}
	if out == nil {
		return nil, fmt.Errorf("function %s returned no term", f.name)
	}
	return ElemArg{Term: out}, nil
}
