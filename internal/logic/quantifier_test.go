package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestForallEmptyUniverse(t *testing.T) {
	s := NewSession()
	p, err := s.NewPredicate(1, "P")
	if err != nil {
		t.Fatalf("NewPredicate() error = %v", err)
	}
	app, err := p.Apply(Name("x"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tv, m, err := s.Interpret(Forall("x", app))
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if !tv {
		t.Errorf("universal over empty universe interpreted false, want vacuously true")
	}
	if m.Len() != 0 {
		t.Errorf("vacuous universal bound %d variables, want 0", m.Len())
	}
}

func TestExistsEmptyUniverse(t *testing.T) {
	s := NewSession()
	p, err := s.NewPredicate(1, "P")
	if err != nil {
		t.Fatalf("NewPredicate() error = %v", err)
	}
	app, err := p.Apply(Name("x"))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tv, m, err := s.Interpret(Exists("x", app))
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if tv {
		t.Errorf("existential over empty universe interpreted true")
	}
	if m.Len() != 0 {
		t.Errorf("failed existential bound %d variables, want 0", m.Len())
	}
}

func TestForallCounterexample(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	app, err := preReq.Apply(Names("y", "MATH121")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Enumeration is sorted, so MATH121 is the first element tried and
	// the first to falsify the scope.
	tv, m, err := s.Interpret(Forall("y", app))
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if tv {
		t.Errorf("not every course is a prerequisite of MATH121, got true")
	}
	if diff := cmp.Diff(map[string]string{"y": "MATH121"}, bindingNames(m)); diff != "" {
		t.Errorf("counterexample mismatch (-want +got):\n%s", diff)
	}
}

func TestExistsWitness(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	app, err := preReq.Apply(Names("y", "MATH121")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	tv, m, err := s.Interpret(Exists("y", app))
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if !tv {
		t.Errorf("MATH121 has a prerequisite, got false")
	}
	if diff := cmp.Diff(map[string]string{"y": "MATH22"}, bindingNames(m)); diff != "" {
		t.Errorf("witness mismatch (-want +got):\n%s", diff)
	}
}

func TestForallExhaustionKeepsIncomingBindings(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	xx, err := preReq.Apply(Names("x", "x")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	seed := NewBindings().Bind("w", s.NewTerm("MATH21"))
	tv, m, err := s.InterpretWith(Forall("x", Not(xx)), seed)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if !tv {
		t.Errorf("no course is its own prerequisite, got false")
	}
	if diff := cmp.Diff(map[string]string{"w": "MATH21"}, bindingNames(m)); diff != "" {
		t.Errorf("exhausted universal should return incoming bindings (-want +got):\n%s", diff)
	}
}

func TestNestedQuantifierCounterexample(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	xy, err := preReq.Apply(Names("x", "y")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	yz, err := preReq.Apply(Names("y", "z")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	xz, err := preReq.Apply(Names("x", "z")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	transitivity := Forall("x", Forall("y", Forall("z", Implies(And(xy, yz), xz))))
	tv, m, err := s.Interpret(transitivity)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if tv {
		t.Errorf("the raw table is not transitively closed, got true")
	}
	want := map[string]string{"x": "MATH21", "y": "MATH22", "z": "MATH121"}
	if diff := cmp.Diff(want, bindingNames(m)); diff != "" {
		t.Errorf("counterexample mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantifierBinderShadowsOuterBinding(t *testing.T) {
	s := NewSession()
	preReq := seedCourses(t, s)

	app, err := preReq.Apply(Names("x", "MATH121")...)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// The binder rebinds x per element. Under the seeded x=MATH21 the
	// scope would be false; the search still finds its own witness.
	seed := NewBindings().Bind("x", s.NewTerm("MATH21"))
	tv, m, err := s.InterpretWith(Exists("x", app), seed)
	if err != nil {
		t.Fatalf("Interpret() error = %v", err)
	}
	if !tv {
		t.Errorf("existential with shadowed binder interpreted false")
	}
	if got, _ := m.Lookup("x"); got.Name() != "MATH22" {
		t.Errorf("witness x = %s, want MATH22", got.Name())
	}
}
