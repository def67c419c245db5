// Package datalog projects a session's fact tables into a Datalog engine
// and reads derived tuples back. Rule evaluation takes the place of
// hand-rolled fixpoint loops over satisfying tuples.
package datalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"
	"go.uber.org/zap"

	"herbrand/internal/logic"
)

const defaultEvalTimeout = 30 * time.Second

// Config holds bridge configuration.
type Config struct {
	// Logger receives the bridge's structured events. Nil means no logging.
	Logger *zap.Logger

	// EvalTimeout bounds a single rule evaluation when the caller's
	// context carries no deadline. Zero means the default.
	EvalTimeout time.Duration
}

// DefaultConfig returns the default bridge configuration.
func DefaultConfig() Config {
	return Config{EvalTimeout: defaultEvalTimeout}
}

// Store holds a projected fact set: the program lines feeding the next
// evaluation, the evaluated fact store, and the mapping from Datalog
// predicate names back to session relation names.
type Store struct {
	config Config
	logger *zap.Logger

	lines []string
	store factstore.FactStore
	names map[string]string
}

// Export projects every declared predicate and its fact table into a
// Datalog store with default configuration.
func Export(s *logic.Session) (*Store, error) {
	return ExportWithConfig(s, DefaultConfig())
}

// ExportWithConfig projects a session's fact tables with explicit
// configuration. Relation names are converted to Datalog identifiers; two
// relations converting to the same identifier is an error.
func ExportWithConfig(s *logic.Session, cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := &Store{
		config: cfg,
		logger: logger,
		store:  factstore.NewSimpleInMemoryStore(),
		names:  make(map[string]string),
	}
	for _, p := range s.Predicates() {
		name, err := MangleName(p.Name())
		if err != nil {
			return nil, err
		}
		if prev, ok := st.names[name]; ok && prev != p.Name() {
			return nil, fmt.Errorf("predicates %s and %s both map to %s", prev, p.Name(), name)
		}
		st.names[name] = p.Name()
		for _, tuple := range p.SatisfyingTuples() {
			args := make([]string, len(tuple))
			for i, t := range tuple {
				args[i] = fmt.Sprintf("%q", t.Name())
			}
			st.lines = append(st.lines, fmt.Sprintf("%s(%s).", name, strings.Join(args, ", ")))
		}
	}
	if len(st.lines) > 0 {
		if err := st.eval(context.Background(), strings.Join(st.lines, "\n")); err != nil {
			return nil, err
		}
	}
	logger.Debug("exported session facts",
		zap.String("session", s.ID()),
		zap.Int("facts", len(st.lines)))
	return st, nil
}

// Derive evaluates the given Datalog rules over the stored facts and keeps
// the derived atoms. Returns the number of new facts.
func (st *Store) Derive(ctx context.Context, rules string) (int, error) {
	if strings.TrimSpace(rules) == "" {
		return 0, fmt.Errorf("empty rule set")
	}
	before := st.store.EstimateFactCount()
	program := strings.Join(append(append([]string(nil), st.lines...), rules), "\n")
	if err := st.eval(ctx, program); err != nil {
		return 0, err
	}
	added := st.store.EstimateFactCount() - before
	if added < 0 {
		added = 0
	}
	st.logger.Info("derived facts",
		zap.Int("added", added),
		zap.Int("total", st.store.EstimateFactCount()))
	return added, nil
}

// Facts returns the stored tuples for a session relation, sorted. A
// relation with nothing stored yields an empty result.
func (st *Store) Facts(pred string) ([][]string, error) {
	name, err := MangleName(pred)
	if err != nil {
		return nil, err
	}
	var sym ast.PredicateSym
	found := false
	for _, candidate := range st.store.ListPredicates() {
		if candidate.Symbol == name {
			sym = candidate
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}
	var out [][]string
	err = st.store.GetFacts(ast.NewQuery(sym), func(a ast.Atom) error {
		row := make([]string, len(a.Args))
		for i, arg := range a.Args {
			c, ok := arg.(ast.Constant)
			if !ok {
				return fmt.Errorf("non-constant argument in fact %v", a)
			}
			row[i] = c.Symbol
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read facts for %s: %w", pred, err)
	}
	sort.Slice(out, func(i, j int) bool {
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out, nil
}

// FactCount returns the number of stored atoms.
func (st *Store) FactCount() int { return st.store.EstimateFactCount() }

// eval parses and analyzes the program, evaluates it into a fresh fact
// store under the context's deadline, and reloads the program lines from
// the result so later derivations compose.
func (st *Store) eval(ctx context.Context, program string) error {
	unit, err := parse.Unit(strings.NewReader(program))
	if err != nil {
		return fmt.Errorf("failed to parse program: %w", err)
	}
	programInfo, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return fmt.Errorf("failed to analyze program: %w", err)
	}

	if _, ok := ctx.Deadline(); !ok {
		timeout := st.config.EvalTimeout
		if timeout <= 0 {
			timeout = defaultEvalTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fresh := factstore.NewSimpleInMemoryStore()
	errChan := make(chan error, 1)
	go func() {
		_, err := engine.EvalProgramWithStats(programInfo, fresh)
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("failed to evaluate program: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("evaluation timed out: %w", ctx.Err())
	}

	st.store = fresh
	return st.reload()
}

// reload rebuilds the program lines from the evaluated store.
func (st *Store) reload() error {
	var lines []string
	for _, sym := range st.store.ListPredicates() {
		err := st.store.GetFacts(ast.NewQuery(sym), func(a ast.Atom) error {
			line, err := atomLine(a)
			if err != nil {
				return err
			}
			lines = append(lines, line)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to read back facts: %w", err)
		}
	}
	sort.Strings(lines)
	st.lines = lines
	return nil
}

// atomLine renders a stored atom as a program line.
func atomLine(a ast.Atom) (string, error) {
	args := make([]string, len(a.Args))
	for i, arg := range a.Args {
		c, ok := arg.(ast.Constant)
		if !ok {
			return "", fmt.Errorf("non-constant argument in fact %v", a)
		}
		switch c.Type {
		case ast.StringType:
			args[i] = fmt.Sprintf("%q", c.Symbol)
		case ast.NameType:
			args[i] = c.Symbol
		case ast.NumberType:
			args[i] = fmt.Sprintf("%d", c.NumValue)
		default:
			return "", fmt.Errorf("unsupported constant in fact %v", a)
		}
	}
	return fmt.Sprintf("%s(%s).", a.Predicate.Symbol, strings.Join(args, ", ")), nil
}

// MangleName converts a session relation name to a Datalog identifier:
// PreReq becomes pre_req. Names that cannot form an identifier are
// rejected.
func MangleName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty predicate name")
	}
	var sb strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsLower(r) || r == '_':
			sb.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				return "", fmt.Errorf("predicate %s does not map to a datalog identifier", name)
			}
			sb.WriteRune(r)
		default:
			return "", fmt.Errorf("predicate %s does not map to a datalog identifier", name)
		}
	}
	out := sb.String()
	if c := out[0]; c < 'a' || c > 'z' {
		return "", fmt.Errorf("predicate %s does not map to a datalog identifier", name)
	}
	return out, nil
}
