// Package logic implements a finite-domain first-order-logic evaluator:
// named terms over a growable universe, extensionally-defined predicates,
// host-evaluated functions, and a formula AST whose interpretation threads
// a binding environment and reports witnesses.
package logic

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionConfig holds session configuration.
type SessionConfig struct {
	// Logger receives the session's structured events. Nil means no logging.
	Logger *zap.Logger

	// FactLimit caps the total number of facts asserted across the
	// session's predicates. Zero disables the limit.
	FactLimit int
}

// DefaultSessionConfig returns the default session configuration.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{Logger: zap.NewNop()}
}

// Session owns one independent evaluation state: the universe, the declared
// predicates, the free-variable store, and the validated knowledge base.
// Everything constructed from a session evaluates against that session only.
//
// A session assumes a single logical thread of control; concurrent use
// requires external synchronization.
type Session struct {
	id     string
	logger *zap.Logger
	config SessionConfig

	universe   *universe
	predicates map[string]*Predicate
	free       map[string]*Term
	kb         []Entry

	factCount       int
	factLimitWarned bool
}

// NewSession creates a session with default configuration.
func NewSession() *Session {
	return NewSessionWithConfig(DefaultSessionConfig())
}

// NewSessionWithConfig creates a session with the given configuration.
func NewSessionWithConfig(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:         uuid.New().String()[:8],
		logger:     logger,
		config:     cfg,
		universe:   newUniverse(),
		predicates: make(map[string]*Predicate),
		free:       make(map[string]*Term),
	}
}

// ID returns the session's short identifier.
func (s *Session) ID() string { return s.id }

// NewTerm returns the session's term for name, creating and registering it
// on first use. Terms are interned, so the same name always yields the same
// pointer. The empty name yields a fresh unregistered placeholder with
// identity equality only.
func (s *Session) NewTerm(name string) *Term {
	if name == "" {
		return &Term{}
	}
	if t, ok := s.universe.lookup(name); ok {
		return t
	}
	t := &Term{name: name}
	s.universe.register(t)
	s.logger.Debug("added element to universe",
		zap.String("session", s.id),
		zap.String("element", name),
		zap.Int("size", s.universe.size()))
	return t
}

// Universe returns the registered elements sorted by name.
func (s *Session) Universe() []*Term {
	return s.universe.enumerate()
}

// UniverseSize returns the number of registered elements.
func (s *Session) UniverseSize() int { return s.universe.size() }

// InUniverse reports whether name is a registered element.
func (s *Session) InUniverse(name string) bool { return s.universe.contains(name) }

// NewPredicate declares a relation of the given arity. Arity is limited to
// 0, 1, or 2, and relation names must be unique within the session. The
// relation starts with an empty fact table.
func (s *Session) NewPredicate(arity int, name string) (*Predicate, error) {
	if name == "" {
		return nil, fmt.Errorf("predicate name must not be empty")
	}
	if arity < 0 || arity > maxArity {
		return nil, fmt.Errorf("predicate %s: arity %d out of range [0, %d]", name, arity, maxArity)
	}
	if _, ok := s.predicates[name]; ok {
		return nil, fmt.Errorf("predicate %s already declared", name)
	}
	p := &Predicate{
		session: s,
		name:    name,
		arity:   arity,
		truths:  make(map[string][]*Term),
	}
	s.predicates[name] = p
	return p, nil
}

// Predicates returns the declared predicates sorted by name.
func (s *Session) Predicates() []*Predicate {
	names := make([]string, 0, len(s.predicates))
	for name := range s.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Predicate, len(names))
	for i, name := range names {
		out[i] = s.predicates[name]
	}
	return out
}

// Predicate returns the declared predicate with the given name.
func (s *Session) Predicate(name string) (*Predicate, bool) {
	p, ok := s.predicates[name]
	return p, ok
}

// NewFunction declares an operation over domain elements backed by a
// host-supplied evaluation procedure. The symbol itself is not a universe
// element: functions map elements to elements but are not values.
func (s *Session) NewFunction(name string, arity int, eval EvalFunc) (*Function, error) {
	if name == "" {
		return nil, fmt.Errorf("function name must not be empty")
	}
	if arity < 0 {
		return nil, fmt.Errorf("function %s: negative arity %d", name, arity)
	}
	if eval == nil {
		return nil, fmt.Errorf("function %s: evaluation procedure required", name)
	}
	return &Function{session: s, name: name, arity: arity, eval: eval}, nil
}

// BindFree binds a free variable to a domain element, coercing and
// registering the value as a term. Re-binding an already-bound name is the
// one tolerated anomaly: it warns and replaces the binding.
func (s *Session) BindFree(name string, value Arg) error {
	if name == "" {
		return fmt.Errorf("free variable name must not be empty")
	}
	t, err := s.argTerm(value)
	if err != nil {
		return err
	}
	if old, ok := s.free[name]; ok {
		s.logger.Warn("rebinding free variable",
			zap.String("session", s.id),
			zap.String("variable", name),
			zap.String("old", old.name),
			zap.String("new", t.name))
	}
	s.free[name] = t
	return nil
}

// FreeVars returns a snapshot of the free-variable store.
func (s *Session) FreeVars() map[string]*Term {
	out := make(map[string]*Term, len(s.free))
	for k, v := range s.free {
		out[k] = v
	}
	return out
}

// ClearFree empties the free-variable store.
func (s *Session) ClearFree() {
	s.free = make(map[string]*Term)
}

// Interpret evaluates a formula under an empty local binding environment.
// Free variables remain visible through the session's store.
func (s *Session) Interpret(f Formula) (bool, Bindings, error) {
	return s.InterpretWith(f, NewBindings())
}

// InterpretWith evaluates a formula under explicit local bindings.
func (s *Session) InterpretWith(f Formula, b Bindings) (bool, Bindings, error) {
	if f == nil {
		return false, b, fmt.Errorf("nil formula")
	}
	return f.Interpret(s, b)
}

// FactCount returns the number of facts asserted across all predicates.
func (s *Session) FactCount() int { return s.factCount }

// Reset wipes the universe, every declared predicate's fact table, the
// predicate registry, the free-variable store, and the knowledge base.
func (s *Session) Reset() {
	s.universe.clear()
	for _, p := range s.predicates {
		p.truths = make(map[string][]*Term)
	}
	s.predicates = make(map[string]*Predicate)
	s.free = make(map[string]*Term)
	s.kb = nil
	s.factCount = 0
	s.factLimitWarned = false
	s.logger.Debug("session reset", zap.String("session", s.id))
}

// concrete reports whether an argument already names a registered universe
// element. Anything else is symbolic at call time: an unbound variable name
// or a nested formula.
func (s *Session) concrete(arg Arg) bool {
	switch a := arg.(type) {
	case ElemArg:
		return a.Term != nil && a.Term.name != "" && s.universe.contains(a.Term.name)
	case NameArg:
		return s.universe.contains(a.Value)
	default:
		return false
	}
}

// argTerm coerces an argument to a term, interning and registering it.
func (s *Session) argTerm(arg Arg) (*Term, error) {
	switch a := arg.(type) {
	case ElemArg:
		return s.intern(a.Term)
	case NameArg:
		if a.Value == "" {
			return nil, &NonTermError{Value: `""`}
		}
		return s.NewTerm(a.Value), nil
	default:
		return nil, &NonTermError{Value: arg.String()}
	}
}

// intern routes a term through the session's registry so that name identity
// and pointer identity agree. Placeholders cannot stand for elements.
func (s *Session) intern(t *Term) (*Term, error) {
	if t == nil {
		return nil, &NonTermError{Value: "<nil>"}
	}
	if t.name == "" {
		return nil, &NonTermError{Value: "unnamed term"}
	}
	return s.NewTerm(t.name), nil
}

// admitFact accounts for one new fact against the configured limit.
func (s *Session) admitFact() error {
	if s.config.FactLimit > 0 && s.factCount >= s.config.FactLimit {
		return fmt.Errorf("fact limit exceeded: %d", s.config.FactLimit)
	}
	s.factCount++
	s.maybeWarnFactLimit()
	return nil
}

// maybeWarnFactLimit warns once when fact usage crosses 85% of the limit.
func (s *Session) maybeWarnFactLimit() {
	if s.config.FactLimit <= 0 || s.factLimitWarned {
		return
	}
	utilization := float64(s.factCount) / float64(s.config.FactLimit)
	if utilization >= 0.85 {
		s.logger.Warn("fact table nearing configured limit",
			zap.String("session", s.id),
			zap.Int("facts", s.factCount),
			zap.Int("limit", s.config.FactLimit),
			zap.Float64("utilization", utilization))
		s.factLimitWarned = true
	}
}

// unboundErr builds the diagnostic for a name that resolved nowhere,
// snapshotting the universe and the free-variable store.
func (s *Session) unboundErr(name string) *UnboundVariableError {
	elems := s.universe.enumerate()
	univ := make([]string, len(elems))
	for i, t := range elems {
		univ[i] = t.name
	}
	free := make(map[string]string, len(s.free))
	for k, v := range s.free {
		free[k] = v.name
	}
	return &UnboundVariableError{Name: name, Universe: univ, Free: free}
}
