package logic

// Arg is one argument position in a predicate or function application.
// Exactly three kinds exist: a raw name (a domain element if registered at
// call time, a variable otherwise), a concrete term, and a nested formula.
type Arg interface {
	isArg()
	String() string
}

// NameArg is a raw name argument.
type NameArg struct{ Value string }

// ElemArg is a concrete term argument.
type ElemArg struct{ Term *Term }

// NestedArg is a formula argument, deferred applications included.
type NestedArg struct{ Formula Formula }

func (NameArg) isArg()   {}
func (ElemArg) isArg()   {}
func (NestedArg) isArg() {}

func (a NameArg) String() string { return a.Value }

func (a ElemArg) String() string {
	if a.Term == nil {
		return "<nil>"
	}
	return a.Term.String()
}

func (a NestedArg) String() string { return a.Formula.String() }

// Name wraps a raw name as an argument.
func Name(v string) Arg { return NameArg{Value: v} }

// Elem wraps a concrete term as an argument.
func Elem(t *Term) Arg { return ElemArg{Term: t} }

// Nested wraps a formula as an argument.
func Nested(f Formula) Arg { return NestedArg{Formula: f} }

// Names expands raw names into an argument list.
func Names(vs ...string) []Arg {
	args := make([]Arg, len(vs))
	for i, v := range vs {
		args[i] = NameArg{Value: v}
	}
	return args
}
