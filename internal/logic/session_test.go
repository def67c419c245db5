package logic

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func TestInterpretUnboundVariable(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	f, err := preReq.Apply(Names("MATH22", "x")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	_, _, err = s.Interpret(f)
	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Fatalf("Interpret() error = %v, want *UnboundVariableError", err)
	}
	if unbound.Name != "x" {
		t.Errorf("unbound name = %s, want x", unbound.Name)
	}
	want := []string{"MATH121", "MATH21", "MATH22"}
	if diff := cmp.Diff(want, unbound.Universe); diff != "" {
		t.Errorf("universe snapshot mismatch (-want +got):\n%s", diff)
	}
	if len(unbound.Free) != 0 {
		t.Errorf("free snapshot = %v, want empty", unbound.Free)
	}
}

func TestBindFreeResolvesVariable(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	f, err := preReq.Apply(Names("MATH22", "x")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := s.BindFree("x", Name("MATH121")); err != nil {
		t.Fatalf("BindFree() error = %v", err)
	}

	tv, m, err := s.Interpret(f)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if !tv {
		t.Errorf("PreReq(MATH22, x) with x=MATH121 interpreted false")
	}
	// Free variables resolve through the store; they do not enter the
	// local bindings.
	if m.Len() != 0 {
		t.Errorf("local bindings hold %d entries, want 0", m.Len())
	}
}

func TestBindFreeRebindWarnsAndReplaces(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewSessionWithConfig(SessionConfig{Logger: zap.New(core)})
	preReq := seedCourses(t, s)

	f, err := preReq.Apply(Names("MATH22", "x")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := s.BindFree("x", Name("MATH121")); err != nil {
		t.Fatalf("BindFree() error = %v", err)
	}
	if err := s.BindFree("x", Name("MATH456")); err != nil {
		t.Fatalf("rebinding BindFree() error = %v", err)
	}

	if got := logs.FilterMessage("rebinding free variable").Len(); got != 1 {
		t.Errorf("rebind warnings = %d, want 1", got)
	}
	// Binding a fresh element grows the universe as a side effect.
	if !s.InUniverse("MATH456") {
		t.Errorf("MATH456 missing from the universe after binding")
	}

	tv, _, err := s.Interpret(f)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if tv {
		t.Errorf("PreReq(MATH22, x) with x=MATH456 interpreted true")
	}
}

func TestLocalBindingBeatsFreeVariable(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	f, err := preReq.Apply(Names("MATH22", "x")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := s.BindFree("x", Name("MATH456")); err != nil {
		t.Fatalf("BindFree() error = %v", err)
	}

	seed := NewBindings().Bind("x", s.NewTerm("MATH121"))
	tv, _, err := s.InterpretWith(f, seed)
	if err != nil {
		t.Fatalf("InterpretWith() error = %v", err)
	}
	if !tv {
		t.Errorf("local x=MATH121 should win over free x=MATH456")
	}
}

func TestFreeVarsSnapshot(t *testing.T) {
	s := NewSession()
	if err := s.BindFree("x", Name("MATH121")); err != nil {
		t.Fatalf("BindFree() error = %v", err)
	}

	snap := s.FreeVars()
	snap["y"] = s.NewTerm("MATH21")
	if len(s.FreeVars()) != 1 {
		t.Errorf("mutating the snapshot leaked into the session")
	}

	s.ClearFree()
	if len(s.FreeVars()) != 0 {
		t.Errorf("ClearFree() left %d bindings", len(s.FreeVars()))
	}
}

func TestBindFreeRejectsNonTerms(t *testing.T) {
	s := NewSession()

	err := s.BindFree("x", Nested(Top))
	var nonTerm *NonTermError
	if !errors.As(err, &nonTerm) {
		t.Errorf("BindFree(formula) error = %v, want *NonTermError", err)
	}
	if err := s.BindFree("", Name("MATH21")); err == nil {
		t.Errorf("empty variable name should fail")
	}
}

func TestReset(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)
	if err := s.BindFree("x", Name("MATH121")); err != nil {
		t.Fatalf("BindFree() error = %v", err)
	}
	xx, err := preReq.Apply(Names("x", "x")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := s.AssertForall("x", Not(xx), "anti-reflexivity"); err != nil {
		t.Fatalf("AssertForall() error = %v", err)
	}

	s.Reset()

	if s.UniverseSize() != 0 {
		t.Errorf("UniverseSize() = %d after reset, want 0", s.UniverseSize())
	}
	if len(s.Predicates()) != 0 {
		t.Errorf("Predicates() = %d after reset, want 0", len(s.Predicates()))
	}
	if len(s.FreeVars()) != 0 {
		t.Errorf("FreeVars() = %d after reset, want 0", len(s.FreeVars()))
	}
	if len(s.KnowledgeBase()) != 0 {
		t.Errorf("KnowledgeBase() = %d after reset, want 0", len(s.KnowledgeBase()))
	}
	if s.FactCount() != 0 {
		t.Errorf("FactCount() = %d after reset, want 0", s.FactCount())
	}
	// Held predicate handles see their tables emptied too.
	if got := len(preReq.SatisfyingTuples()); got != 0 {
		t.Errorf("held predicate still has %d tuples after reset", got)
	}
}

func TestSessionIDsUnique(t *testing.T) {
	a := NewSession()
	b := NewSession()
	if a.ID() == "" || len(a.ID()) != 8 {
		t.Errorf("ID() = %q, want 8 characters", a.ID())
	}
	if a.ID() == b.ID() {
		t.Errorf("two sessions share the ID %q", a.ID())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			s := NewSession()
			p, err := s.NewPredicate(2, "PreReq")
			if err != nil {
				return err
			}
			left := fmt.Sprintf("COURSE%d", i)
			if err := p.AssertFact(Name(left), Name("SHARED")); err != nil {
				return err
			}
			if s.UniverseSize() != 2 {
				return fmt.Errorf("session %d universe size = %d, want 2", i, s.UniverseSize())
			}
			f, err := p.Apply(Name(left), Name("SHARED"))
			if err != nil {
				return err
			}
			if f != Top {
				return fmt.Errorf("session %d lost its own fact", i)
			}
			other := fmt.Sprintf("COURSE%d", (i+1)%8)
			if s.InUniverse(other) && other != left {
				return fmt.Errorf("session %d sees element %s from another session", i, other)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("isolation violated: %v", err)
	}
}

func TestInterpretNilFormula(t *testing.T) {
	s := NewSession()
	if _, _, err := s.Interpret(nil); err == nil {
		t.Errorf("Interpret(nil) should fail")
	}
}
