package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "seofactory",
	Short: "Deterministic pre-analysis for content-planning pipelines",
	Long: `seofactory audits the output of the strategy, EAV-inventory, and
topical-map planning steps and produces structured data-quality findings
before any generative-AI call is made.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// newLogger returns a console logger in debug mode, a silent one otherwise.
func newLogger() *zap.Logger {
	if DebugMode {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
	}
	return zap.NewNop()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
}
