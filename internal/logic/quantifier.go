package logic

import "fmt"

type forallNode struct {
	binder string
	scope  Formula
}

type existsNode struct {
	binder string
	scope  Formula
}

func (*forallNode) isFormula() {}
func (*existsNode) isFormula() {}

// Forall builds the universal quantification of scope over binder.
func Forall(binder string, scope Formula) Formula {
	return &forallNode{binder: binder, scope: scope}
}

// Exists builds the existential quantification of scope over binder.
func Exists(binder string, scope Formula) Formula {
	return &existsNode{binder: binder, scope: scope}
}

func (n *forallNode) String() string { return fmt.Sprintf("∀%s(%s)", n.binder, n.scope) }
func (n *existsNode) String() string { return fmt.Sprintf("∃%s(%s)", n.binder, n.scope) }

// Interpret tests the scope against every universe element in sorted name
// order, binding the element to the binder. The first falsifying element
// stops the search and its bindings are returned as the counterexample.
// Exhausting the universe, the empty universe included, satisfies the
// quantification and returns the incoming bindings unchanged.
func (n *forallNode) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	for _, elem := range s.universe.enumerate() {
		tv, m, err := n.scope.Interpret(s, b.Bind(n.binder, elem))
		if err != nil {
			return false, m, err
		}
		if !tv {
			return false, m, nil
		}
	}
	return true, b, nil
}

// Interpret searches the universe in sorted name order and stops at the
// first element satisfying the scope, returning its bindings as the
// witness. Over an empty universe nothing exists; exhaustion returns the
// incoming bindings unchanged.
func (n *existsNode) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	for _, elem := range s.universe.enumerate() {
		tv, m, err := n.scope.Interpret(s, b.Bind(n.binder, elem))
		if err != nil {
			return false, m, err
		}
		if tv {
			return true, m, nil
		}
	}
	return false, b, nil
}
