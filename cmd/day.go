package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/roster"
)

var (
	dayLeaguePath string  // Path to the league spec YAML
	dayNumber     int     // Calendar day to simulate
	daySeed       int64   // Seed for reproducible runs
	dayLogLevel   string  // Log verbosity level
	dayPeriods    int     // Periods per game in the deep engine
	dayShotProb   float64 // Flat make probability for the deep engine
)

// dayCmd drives one full calendar day: lite pre-sim, the user's game live,
// then the lite remainder.
var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Simulate one calendar day of the schedule",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(dayLogLevel)

		cache := roster.NewCache()
		league, err := cache.Load(dayLeaguePath)
		if err != nil {
			logrus.Fatalf("Failed to load league spec: %v", err)
		}
		slate := league.GamesForDay(dayNumber)
		if len(slate) == 0 {
			logrus.Fatalf("No games scheduled on day %d", dayNumber)
		}
		pre, focal, post := sim.SplitSlate(slate)

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(daySeed))
		lite := sim.NewLiteSimulator(pre, post, sim.DefaultLiteTuning(), rng)

		var engine *sim.PossessionEngine
		var deep sim.Simulator
		if focal != nil {
			tuning := sim.DefaultGameTuning()
			tuning.ShotMakeProbability = dayShotProb
			engine, err = sim.NewPossessionEngine(focal.Home, focal.Away, tuning, rng, nil)
			if err != nil {
				logrus.Fatalf("Failed to start user game: %v", err)
			}
			deep = engine.Simulator()
		}

		day, err := sim.NewDayStateMachine(sim.DayHub)
		if err != nil {
			logrus.Fatalf("Failed to start day: %v", err)
		}
		mgr := sim.NewSimManager(day, deep, lite)

		period := 1
		for mgr.Current() != sim.DayComplete {
			signal := mgr.Tick()
			switch mgr.Current() {
			case sim.DayHub, sim.DayPreSim, sim.DayPostSim:
				if signal == sim.SignalSlateComplete {
					logrus.Infof("Phase %s complete", mgr.Current())
					mgr.AdvanceDayState()
				}
			case sim.DayUserGameLive:
				if engine == nil {
					// Nothing on the slate involves the user; skip the live phase.
					mgr.AdvanceDayState()
					continue
				}
				if signal == sim.SignalEndOfPeriod {
					engine.ResetPeriod()
					if period >= dayPeriods {
						logrus.Infof("User game final")
						mgr.AdvanceDayState()
					}
					period++
				}
			}
		}

		fmt.Printf("=== Day %d Results ===\n", dayNumber)
		for _, res := range lite.Results() {
			fmt.Printf("%s %d - %s %d\n", res.HomeCode, res.HomeScore, res.AwayCode, res.AwayScore)
		}
		if engine != nil {
			engine.BoxScore().Print()
		}
	},
}

// init sets up CLI flags and subcommands
func init() {
	dayCmd.Flags().StringVar(&dayLeaguePath, "league", "league.yaml", "Path to league spec YAML")
	dayCmd.Flags().IntVar(&dayNumber, "day", 1, "Calendar day to simulate")
	dayCmd.Flags().Int64Var(&daySeed, "seed", 42, "Seed for reproducible simulation")
	dayCmd.Flags().StringVar(&dayLogLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	dayCmd.Flags().IntVar(&dayPeriods, "periods", 4, "Periods per game in the deep engine")
	dayCmd.Flags().Float64Var(&dayShotProb, "shot-probability", 0.4, "Flat make probability per shot attempt")

	rootCmd.AddCommand(dayCmd)
}
