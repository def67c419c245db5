package logic

import "fmt"

// Formula is a node of the logical AST: a constant, a connective, a
// quantifier, or a deferred application. Interpret evaluates the node
// against a session, threading a binding environment through the
// subformulas and returning the truth value together with the bindings as
// they stood when the result was decided.
type Formula interface {
	fmt.Stringer

	// Interpret evaluates the formula under the given local bindings.
	Interpret(s *Session, b Bindings) (bool, Bindings, error)

	isFormula()
}

// Top and Bot are the constant formulas. A predicate applied to fully
// concrete arguments evaluates eagerly to one of these, so results compare
// directly with ==.
var (
	Top Formula = topConst{}
	Bot Formula = botConst{}
)

type topConst struct{}
type botConst struct{}

func (topConst) isFormula() {}
func (botConst) isFormula() {}

func (topConst) String() string { return "⊤" }
func (botConst) String() string { return "⊥" }

func (topConst) Interpret(_ *Session, b Bindings) (bool, Bindings, error) {
	return true, b, nil
}

func (botConst) Interpret(_ *Session, b Bindings) (bool, Bindings, error) {
	return false, b, nil
}

type andNode struct{ left, right Formula }
type orNode struct{ left, right Formula }
type impliesNode struct{ left, right Formula }
type notNode struct{ expr Formula }

func (*andNode) isFormula()     {}
func (*orNode) isFormula()      {}
func (*impliesNode) isFormula() {}
func (*notNode) isFormula()     {}

// And builds the conjunction of l and r.
func And(l, r Formula) Formula { return &andNode{left: l, right: r} }

// Or builds the disjunction of l and r.
func Or(l, r Formula) Formula { return &orNode{left: l, right: r} }

// Implies builds the material implication from l to r.
func Implies(l, r Formula) Formula { return &impliesNode{left: l, right: r} }

// Not builds the negation of e.
func Not(e Formula) Formula { return &notNode{expr: e} }

// Interpret evaluates both operands unconditionally, threading the left
// side's bindings into the right. Bindings found on the left stay visible
// even when the conjunction comes out false.
func (n *andNode) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	tv1, m1, err := n.left.Interpret(s, b)
	if err != nil {
		return false, m1, err
	}
	tv2, m2, err := n.right.Interpret(s, m1)
	if err != nil {
		return false, m2, err
	}
	return tv1 && tv2, m2, nil
}

// Interpret evaluates both operands unconditionally, like conjunction.
func (n *orNode) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	tv1, m1, err := n.left.Interpret(s, b)
	if err != nil {
		return false, m1, err
	}
	tv2, m2, err := n.right.Interpret(s, m1)
	if err != nil {
		return false, m2, err
	}
	return tv1 || tv2, m2, nil
}

// Interpret short-circuits on a false antecedent: the implication holds
// vacuously and the consequent is never evaluated.
func (n *impliesNode) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	tv, m, err := n.left.Interpret(s, b)
	if err != nil {
		return false, m, err
	}
	if !tv {
		return true, m, nil
	}
	return n.right.Interpret(s, m)
}

func (n *notNode) Interpret(s *Session, b Bindings) (bool, Bindings, error) {
	tv, m, err := n.expr.Interpret(s, b)
	if err != nil {
		return false, m, err
	}
	return !tv, m, nil
}

func (n *andNode) String() string     { return fmt.Sprintf("%s ∧ %s", n.left, n.right) }
func (n *orNode) String() string      { return fmt.Sprintf("%s ∨ %s", n.left, n.right) }
func (n *impliesNode) String() string { return fmt.Sprintf("(%s) → %s", n.left, n.right) }
func (n *notNode) String() string     { return fmt.Sprintf("¬%s", n.expr) }
