package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logLevel string

// logger is configured by the root command before any subcommand runs
var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:     "quickcdc",
	Short:   "quickcdc - fast content defined chunking",
	Long:    "quickcdc splits files into content defined chunks with salted asymmetric extremum chunking.",
	Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(logger, logLevel, os.Stderr)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning",
		"Diagnostic log level (trace, debug, info, warning, error)")
}
