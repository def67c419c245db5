package datalog

import (
	"context"
	"fmt"

	"herbrand/internal/logic"
)

// ImportFacts asserts a store's tuples for one relation back into the
// session's fact table. Tuples already present are no-ops; the count of
// newly recorded facts is returned.
func ImportFacts(p *logic.Predicate, st *Store) (int, error) {
	rows, err := st.Facts(p.Name())
	if err != nil {
		return 0, err
	}
	before := len(p.SatisfyingTuples())
	for _, row := range rows {
		if len(row) != p.Arity() {
			return 0, fmt.Errorf("predicate %s expects %d arguments, got %d", p.Name(), p.Arity(), len(row))
		}
		if err := p.AssertFact(logic.Names(row...)...); err != nil {
			return 0, err
		}
	}
	return len(p.SatisfyingTuples()) - before, nil
}

// TransitiveClosure closes a binary relation under transitivity: the
// session's facts are exported, the closure rule evaluated to fixpoint,
// and the derived pairs asserted back into the fact table. Returns the
// number of new facts recorded.
func TransitiveClosure(ctx context.Context, s *logic.Session, p *logic.Predicate) (int, error) {
	if p.Arity() != 2 {
		return 0, fmt.Errorf("transitive closure needs a binary relation, %s has arity %d", p.Name(), p.Arity())
	}
	st, err := Export(s)
	if err != nil {
		return 0, err
	}
	name, err := MangleName(p.Name())
	if err != nil {
		return 0, err
	}
	rule := fmt.Sprintf("%s(X, Z) :- %s(X, Y), %s(Y, Z).", name, name, name)
	if _, err := st.Derive(ctx, rule); err != nil {
		return 0, err
	}
	return ImportFacts(p, st)
}
