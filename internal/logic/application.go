package logic

import (
	"fmt"
	"strings"
)

// Callable tags the two kinds of symbol an application can defer:
// predicates and functions.
type Callable interface {
	callableName() string
}

// Application is a deferred call: at construction time at least one
// argument did not name a registered universe element. The raw arguments
// are kept untouched until interpretation resolves them.
type Application struct {
	callable Callable
	args     []Arg
}

func (*Application) isFormula() {}

// Callable returns the deferred symbol.
func (a *Application) Callable() Callable { return a.callable }

// Args returns a copy of the raw argument list.
func (a *Application) Args() []Arg {
	out := make([]Arg, len(a.args))
	copy(out, a.args)
	return out
}

func (a *Application) String() string {
	parts := make([]string, len(a.args))
	for i, arg := range a.args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", a.callable.callableName(), strings.Join(parts, ","))
}

// Interpret resolves the deferred call. Predicate applications resolve each
// argument against the universe, the local bindings, and the free-variable
// store, then re-apply; the resolved call is fully concrete and yields a
// constant. Function applications cannot be interpreted in formula
// position.
func (a *Application) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	switch c := a.callable.(type) {
	case *Predicate:
		return c.interpret(s, a.args, b)
	case *Function:
		return false, b, ErrDeferredFunction
	default:
		return false, b, fmt.Errorf("unknown callable %T", c)
	}
}
