package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"herbrand/internal/config"
	"herbrand/internal/logging"
	"herbrand/internal/logic"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "herbrand",
	Short: "herbrand - finite-domain first-order-logic workbench",
	Long: `herbrand evaluates first-order formulas over finite universes.

Domain elements, relations, and functions are declared in-process;
formulas built from them interpret to a truth value plus witnessing
variable bindings. Universally quantified claims are validated against
the current interpretation before entering the knowledge base, and a
Datalog bridge closes relations under user-supplied rules.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		level := cfg.Logging.Level
		if verbose {
			level = zapcore.DebugLevel.String()
		}
		logger, err = logging.New(level, cfg.Logging.Development)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "herbrand.yaml", "Config file path")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(closureCmd)
	rootCmd.AddCommand(kbCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSession builds a session wired to the loaded configuration.
func newSession() *logic.Session {
	return logic.NewSessionWithConfig(logic.SessionConfig{
		Logger:    logger,
		FactLimit: cfg.Engine.FactLimit,
	})
}
