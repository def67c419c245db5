package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"herbrand/internal/datalog"
	"herbrand/internal/logic"
)

var (
	satisfied = color.New(color.FgGreen, color.Bold)
	falsified = color.New(color.FgRed, color.Bold)
	rejected  = color.New(color.FgYellow)
)

// demoCmd walks the evaluator end to end
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the evaluator on the course-prerequisite scenario",
	Long: `Builds the PreReq relation over a small course universe and exercises
eager evaluation, deferred applications, free variables, quantifier
search, knowledge-base validation, and the Datalog transitive closure.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := newSession()

	preReq, err := seedPreReq(s)
	if err != nil {
		return err
	}
	fmt.Printf("universe: %v\n", s.Universe())
	fmt.Printf("%s holds %d tuples\n", preReq.Name(), len(preReq.SatisfyingTuples()))

	// Fully concrete applications evaluate on the spot.
	concrete, err := preReq.Apply(logic.Names("MATH22", "MATH121")...)
	if err != nil {
		return err
	}
	fmt.Printf("concrete application evaluates eagerly: PreReq(MATH22,MATH121) = %s\n", concrete)
	fmt.Printf("connectives wrap constants unevaluated: %s\n", logic.Not(concrete))

	// A variable argument defers the whole call.
	open, err := preReq.Apply(logic.Names("MATH22", "x")...)
	if err != nil {
		return err
	}
	fmt.Printf("a variable argument defers evaluation: %s\n", open)

	// With x unbound, interpretation fails with the diagnostic snapshot.
	if _, _, err := s.Interpret(open); err != nil {
		fmt.Printf("with x unbound: %v\n", err)
	}

	// Bind the free variable and evaluate for real.
	if err := s.BindFree("x", logic.Name("MATH121")); err != nil {
		return err
	}
	verdict(s, open)

	// Rebinding warns and replaces; MATH456 joins the universe.
	if err := s.BindFree("x", logic.Name("MATH456")); err != nil {
		return err
	}
	verdict(s, open)

	// Quantifier search walks the universe in sorted order.
	perCourse, err := preReq.Apply(logic.Names("y", "MATH121")...)
	if err != nil {
		return err
	}
	verdict(s, logic.Forall("y", perCourse))
	verdict(s, logic.Exists("y", perCourse))

	// Anti-reflexivity holds and enters the knowledge base.
	xx, err := preReq.Apply(logic.Names("x", "x")...)
	if err != nil {
		return err
	}
	if err := s.AssertForall("x", logic.Not(xx), "anti-reflexivity"); err != nil {
		return err
	}
	fmt.Println("recorded: anti-reflexivity")

	// Transitivity is rejected until the relation is actually closed.
	xy, err := preReq.Apply(logic.Names("x", "y")...)
	if err != nil {
		return err
	}
	yz, err := preReq.Apply(logic.Names("y", "z")...)
	if err != nil {
		return err
	}
	xz, err := preReq.Apply(logic.Names("x", "z")...)
	if err != nil {
		return err
	}
	scope := logic.Forall("y", logic.Forall("z", logic.Implies(logic.And(xy, yz), xz)))

	err = s.AssertForall("x", scope, "transitivity")
	var inconsistent *logic.InconsistencyError
	if errors.As(err, &inconsistent) {
		rejected.Printf("rejected: %v\n", inconsistent)
	} else if err != nil {
		return err
	}

	// Close PreReq under transitivity through the Datalog bridge, then
	// the same claim validates.
	added, err := datalog.TransitiveClosure(cmd.Context(), s, preReq)
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", preReq.Name(), err)
	}
	fmt.Printf("transitive closure added %d facts\n", added)
	if err := s.AssertForall("x", scope, "transitivity"); err != nil {
		return err
	}
	fmt.Println("recorded: transitivity")

	// Functions compute fresh terms from concrete arguments.
	next, err := s.NewFunction("next", 1, nextCourse(s))
	if err != nil {
		return err
	}
	succ, err := next.Apply(logic.Name("MATH21"))
	if err != nil {
		return err
	}
	fmt.Printf("next(MATH21) = %s\n", succ)

	// Deferred function applications nest but cannot be interpreted.
	deferredNext, err := next.Apply(logic.Name("y"))
	if err != nil {
		return err
	}
	viaNext, err := preReq.Apply(logic.Name("x"), deferredNext)
	if err != nil {
		return err
	}
	search := logic.Exists("x", logic.Exists("y", viaNext))
	if _, _, err := s.Interpret(search); errors.Is(err, logic.ErrDeferredFunction) {
		rejected.Printf("%s stays symbolic: %v\n", search, err)
	}

	// Existence is never recorded as a fact, however true.
	if err := s.AssertExists("y", perCourse, "has-prerequisite"); errors.Is(err, logic.ErrExistentialFact) {
		rejected.Printf("rejected: %v\n", err)
	}

	// A four-binder search over the closed relation.
	yx, err := preReq.Apply(logic.Names("y", "x")...)
	if err != nil {
		return err
	}
	xw, err := preReq.Apply(logic.Names("x", "w")...)
	if err != nil {
		return err
	}
	zy, err := preReq.Apply(logic.Names("z", "y")...)
	if err != nil {
		return err
	}
	body := logic.And(
		logic.And(
			logic.And(
				logic.And(
					logic.Or(logic.Or(xy, logic.Not(yx)), logic.Not(zy)),
					logic.Or(logic.Not(xy), logic.Not(yx))),
				logic.Or(yx, logic.Not(xw))),
			zy),
		yx)
	verdict(s, logic.Forall("x", logic.Forall("y", logic.Forall("z", logic.Forall("w", body)))))

	fmt.Println("knowledge base:")
	for _, entry := range s.KnowledgeBase() {
		name := entry.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %-17s %s\n", name, entry.Formula)
	}
	return nil
}

// verdict interprets a formula and prints its truth value with the final
// bindings.
func verdict(s *logic.Session, f logic.Formula) {
	tv, witness, err := s.Interpret(f)
	if err != nil {
		rejected.Printf("✗ %s: %v\n", f, err)
		return
	}
	if tv {
		satisfied.Printf("⊨ %s", f)
	} else {
		falsified.Printf("⊭ %s", f)
	}
	if witness.Len() > 0 {
		fmt.Printf("  %s", witness)
	}
	fmt.Println()
}

// seedPreReq declares the course-prerequisite relation and its base facts.
func seedPreReq(s *logic.Session) (*logic.Predicate, error) {
	preReq, err := s.NewPredicate(2, "PreReq")
	if err != nil {
		return nil, err
	}
	if err := preReq.AssertFact(logic.Names("MATH21", "MATH22")...); err != nil {
		return nil, err
	}
	if err := preReq.AssertFact(logic.Names("MATH22", "MATH121")...); err != nil {
		return nil, err
	}
	return preReq, nil
}

// nextCourse returns the successor function over the sorted universe. The
// last course is its own successor.
func nextCourse(s *logic.Session) logic.EvalFunc {
	return func(args ...*logic.Term) (*logic.Term, error) {
		courses := s.Universe()
		for i, course := range courses {
			if course.Equal(args[0]) && i+1 < len(courses) {
				return courses[i+1], nil
			}
		}
		return args[0], nil
	}
}
