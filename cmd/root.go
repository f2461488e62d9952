package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "hoopsim",
	Short: "Day-scheduled dual-fidelity basketball simulator",
	Long: "hoopsim advances a season one calendar day at a time: the user's game runs " +
		"through a tick-by-tick possession engine while the rest of the slate runs " +
		"through a coarse lite simulator.",
}

// setupLogging applies the --log flag to the process-wide logrus level.
func setupLogging(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
