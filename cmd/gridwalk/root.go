package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridwalk/puzzle"
)

const manifestEnv = "GRIDWALK_MANIFEST"

// app carries state shared by every subcommand.
type app struct {
	verbose  bool
	quiet    bool
	manifest string

	logger *zap.Logger
	reg    *puzzle.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{reg: puzzle.Default()}

	root := &cobra.Command{
		Use:     AppName,
		Short:   "Grid state-search puzzle solver",
		Version: Version,
		Long: `gridwalk solves grid puzzles: guard patrols, turn-cost mazes,
corrupting-memory exits, box-pushing warehouses, and a few memoized
recursions that ride along.

Puzzles are listed in a YAML manifest (--manifest, $` + manifestEnv + `)
or passed directly with "gridwalk run <kind> <file>".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	defaultManifest := os.Getenv(manifestEnv)
	if defaultManifest == "" {
		defaultManifest = "puzzles.yaml"
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "disable logging")
	root.PersistentFlags().StringVarP(&a.manifest, "manifest", "m", defaultManifest, "puzzle manifest (env "+manifestEnv+")")

	root.AddCommand(
		newSolveCmd(a),
		newRunCmd(a),
		newRenderCmd(a),
		newKindsCmd(a),
	)
	return root
}

func (a *app) initLogger() error {
	if a.quiet {
		a.logger = zap.NewNop()
		return nil
	}
	config := zap.NewProductionConfig()
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) runner() *puzzle.Runner {
	return puzzle.NewRunner(a.reg, a.logger)
}
