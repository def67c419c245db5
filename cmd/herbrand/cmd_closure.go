package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"herbrand/internal/datalog"
)

// closureCmd evaluates Datalog rules over the demo relation
var closureCmd = &cobra.Command{
	Use:   "closure [rules-file]",
	Short: "Evaluate Datalog rules over the demo relation",
	Long: `Exports the course-prerequisite fact table into the Datalog bridge,
evaluates the given rules, and prints the closed relation. Without a
rules file (and with no rules_path configured) the transitivity rule is
used.

Example:
  herbrand closure
  herbrand closure rules.mg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClosure,
}

func runClosure(cmd *cobra.Command, args []string) error {
	s := newSession()
	preReq, err := seedPreReq(s)
	if err != nil {
		return err
	}

	path := cfg.Datalog.RulesPath
	if len(args) > 0 {
		path = args[0]
	}
	rules := ""
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read rules file %s: %w", path, err)
		}
		rules = string(data)
	}

	st, err := datalog.ExportWithConfig(s, datalog.Config{
		Logger:      logger,
		EvalTimeout: cfg.GetEvalTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to export facts: %w", err)
	}

	if strings.TrimSpace(rules) == "" {
		name, err := datalog.MangleName(preReq.Name())
		if err != nil {
			return err
		}
		rules = fmt.Sprintf("%s(X, Z) :- %s(X, Y), %s(Y, Z).", name, name, name)
	}

	added, err := st.Derive(cmd.Context(), rules)
	if err != nil {
		return fmt.Errorf("failed to evaluate rules: %w", err)
	}
	fmt.Printf("derived %d new facts\n", added)

	rows, err := st.Facts(preReq.Name())
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("  %s(%s)\n", preReq.Name(), strings.Join(row, ", "))
	}
	return nil
}
