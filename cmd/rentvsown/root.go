package main

import (
	"github.com/spf13/cobra"

	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/pkg/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rentvsown",
		Short: "Compare renting an apartment with buying one on a mortgage",
		Long: `rentvsown projects the net assets of two households over the life of a mortgage
and a longer horizon: one buys an apartment with a loan, the other rents and
invests the down payment and the monthly cost difference.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().Bool("debug", false, "log calculation details to stderr")

	root.AddCommand(
		newCalculateCmd(),
		newAmortizeCmd(),
		newInvestCmd(),
		newExampleCmd(),
		newServeCmd(),
		newFormatsCmd(),
	)
	return root
}

// newEngine returns an engine that logs through slog when --debug is set.
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logger.SetupWriter(cmd.ErrOrStderr(), "development", "debug")
		engine.SetLogger(logger.Calc())
		engine.Debug = true
	}
	return engine
}
