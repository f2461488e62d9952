package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopsim/hoopsim/sim/roster"
)

var (
	rosterLeaguePath string // Path to the league spec YAML
	rosterLogLevel   string // Log verbosity level
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Inspect league roster data",
}

// rosterValidateCmd loads and resolves a league spec, reporting dangling
// references as warnings without failing startup.
var rosterValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a league spec and report integrity warnings",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(rosterLogLevel)

		spec, err := roster.LoadLeagueSpec(rosterLeaguePath)
		if err != nil {
			logrus.Fatalf("Failed to load league spec: %v", err)
		}
		league, err := roster.Resolve(spec)
		if err != nil {
			logrus.Fatalf("Failed to resolve league spec: %v", err)
		}

		fmt.Printf("teams: %d\n", len(league.Teams))
		fmt.Printf("players: %d\n", len(spec.Players))
		fmt.Printf("scheduled games: %d\n", len(league.Schedule))
		fmt.Printf("warnings: %d\n", league.Warnings)
	},
}

// init sets up CLI flags and subcommands
func init() {
	rosterValidateCmd.Flags().StringVar(&rosterLeaguePath, "league", "league.yaml", "Path to league spec YAML")
	rosterValidateCmd.Flags().StringVar(&rosterLogLevel, "log", "warning", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rosterCmd.AddCommand(rosterValidateCmd)
	rootCmd.AddCommand(rosterCmd)
}
