// Package logic re-exports the evaluator so external tools can embed it
// without reaching into internal packages.
package logic

import (
	"herbrand/internal/logic"
)

// Re-export the evaluator types
type (
	Session       = logic.Session
	SessionConfig = logic.SessionConfig
	Term          = logic.Term
	Predicate     = logic.Predicate
	Function      = logic.Function
	EvalFunc      = logic.EvalFunc
	Application   = logic.Application
	Formula       = logic.Formula
	Callable      = logic.Callable
	Arg           = logic.Arg
	NameArg       = logic.NameArg
	ElemArg       = logic.ElemArg
	NestedArg     = logic.NestedArg
	Bindings      = logic.Bindings
	Entry         = logic.Entry

	ArityError           = logic.ArityError
	NonTermError         = logic.NonTermError
	UnboundVariableError = logic.UnboundVariableError
	InconsistencyError   = logic.InconsistencyError
)

// Re-export constructors and constants
var (
	NewSession           = logic.NewSession
	NewSessionWithConfig = logic.NewSessionWithConfig
	DefaultSessionConfig = logic.DefaultSessionConfig
	NewBindings          = logic.NewBindings

	Name   = logic.Name
	Elem   = logic.Elem
	Nested = logic.Nested
	Names  = logic.Names

	And     = logic.And
	Or      = logic.Or
	Not     = logic.Not
	Implies = logic.Implies
	Forall  = logic.Forall
	Exists  = logic.Exists

	Top = logic.Top
	Bot = logic.Bot

	ErrExistentialFact     = logic.ErrExistentialFact
	ErrDeferredFunction    = logic.ErrDeferredFunction
	ErrPredicateComparison = logic.ErrPredicateComparison
)
