package logic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrExistentialFact is returned by AssertExists: an existence claim
	// carries no ground instance to record, so it never enters the
	// knowledge base.
	ErrExistentialFact = errors.New("existential facts are not allowed")

	// ErrDeferredFunction is returned when interpretation reaches a
	// function application that still carries symbolic arguments.
	ErrDeferredFunction = errors.New("deferred function application is not implemented")

	// ErrPredicateComparison is returned by Predicate.Compare: predicates
	// are identified by identity, never compared.
	ErrPredicateComparison = errors.New("predicates cannot be compared")
)

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d arguments, got %d", e.Name, e.Want, e.Got)
}

// NonTermError reports an argument that cannot stand for a domain element.
type NonTermError struct {
	Value string
}

func (e *NonTermError) Error() string {
	return fmt.Sprintf("arguments must be terms: %s", e.Value)
}

// UnboundVariableError reports a name that resolved to neither a universe
// element, a local binding, nor a free variable. It snapshots the universe
// and the free-variable store for diagnosis.
type UnboundVariableError struct {
	Name     string
	Universe []string
	Free     map[string]string
}

func (e *UnboundVariableError) Error() string {
	free := make([]string, 0, len(e.Free))
	for k, v := range e.Free {
		free = append(free, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(free)
	return fmt.Sprintf("cannot interpret %s (universe: [%s], free vars: [%s])",
		e.Name, strings.Join(e.Universe, " "), strings.Join(free, " "))
}

// InconsistencyError reports a universal fact that evaluated false against
// the current interpretation. Witness carries the falsifying assignment.
type InconsistencyError struct {
	Formula string
	Witness Bindings
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s is inconsistent with the current interpretation (evidence: %s)",
		e.Formula, e.Witness)
}
