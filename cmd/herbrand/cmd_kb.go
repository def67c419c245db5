package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"herbrand/internal/datalog"
	"herbrand/internal/logic"
)

// kbCmd validates the demo claims and lists the knowledge base
var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Validate the demo claims and list the knowledge base",
	Long: `Builds the course-prerequisite scenario, closes the relation, validates
the anti-reflexivity and transitivity claims, and prints the resulting
knowledge base.`,
	RunE: runKB,
}

func runKB(cmd *cobra.Command, args []string) error {
	s := newSession()
	preReq, err := seedPreReq(s)
	if err != nil {
		return err
	}
	if _, err := datalog.TransitiveClosure(cmd.Context(), s, preReq); err != nil {
		return fmt.Errorf("failed to close %s: %w", preReq.Name(), err)
	}

	xx, err := preReq.Apply(logic.Names("x", "x")...)
	if err != nil {
		return err
	}
	if err := s.AssertForall("x", logic.Not(xx), "anti-reflexivity"); err != nil {
		return err
	}

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
	if err := s.AssertForall("x", scope, "transitivity"); err != nil {
		return err
	}

	entries := s.KnowledgeBase()
	fmt.Printf("%d validated facts over %d universe elements\n", len(entries), s.UniverseSize())
	for _, entry := range entries {
		name := entry.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %-17s %s\n", name, entry.Formula)
	}
	return nil
}
