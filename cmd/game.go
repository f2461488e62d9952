package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hoopsim/hoopsim/sim"
	"github.com/hoopsim/hoopsim/sim/roster"
	"github.com/hoopsim/hoopsim/sim/trace"
)

var (
	gameLeaguePath string  // Path to the league spec YAML
	gameHome       string  // Home team code
	gameAway       string  // Away team code
	gameSeed       int64   // Seed for reproducible runs
	gameLogLevel   string  // Log verbosity level
	gamePeriods    int     // Number of periods to play
	gameShotProb   float64 // Flat make probability for shot attempts
	gameThreeRate  float64 // Share of attempts taken from deep
	gameFlipOnMiss bool    // Transfer possession on missed shots
	gameShowPlays  bool    // Print the collected play-by-play
)

// gameCmd runs a single deep game headless and prints the box score.
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Run one game through the deep possession engine",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging(gameLogLevel)

		cache := roster.NewCache()
		league, err := cache.Load(gameLeaguePath)
		if err != nil {
			logrus.Fatalf("Failed to load league spec: %v", err)
		}
		home, ok := league.Teams[gameHome]
		if !ok {
			logrus.Fatalf("Unknown home team code %q", gameHome)
		}
		away, ok := league.Teams[gameAway]
		if !ok {
			logrus.Fatalf("Unknown away team code %q", gameAway)
		}

		tuning := sim.DefaultGameTuning()
		tuning.ShotMakeProbability = gameShotProb
		tuning.ThreeAttemptRate = gameThreeRate
		tuning.FlipOnMiss = gameFlipOnMiss

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(gameSeed))
		bus := sim.NewEventBus()
		gt := trace.NewGameTrace(trace.Config{Level: trace.LevelPlays})
		recordPlay := sim.Handler(func(payload any) {
			if rec, ok := payload.(trace.Record); ok {
				gt.Record(rec)
			}
		})
		bus.On(TopicGamePlay, &recordPlay)

		engine, err := sim.NewPossessionEngine(home, away, tuning, rng, busLogFunc(bus))
		if err != nil {
			logrus.Fatalf("Failed to start game: %v", err)
		}

		for period := 1; period <= gamePeriods; period++ {
			for engine.Tick() != sim.SignalEndOfPeriod {
			}
			engine.ResetPeriod()
		}

		if gameShowPlays {
			for _, play := range gt.Plays {
				fmt.Printf("[%4ds] %s\n", play.SecondsRemaining, play.Message)
			}
		}
		engine.BoxScore().Print()
	},
}

// TopicGamePlay is the event-bus topic carrying deep-game narration.
const TopicGamePlay = "game.play"

// busLogFunc bridges the engine's log callback onto the event bus as
// trace.Record payloads.
func busLogFunc(bus *sim.EventBus) sim.LogFunc {
	return func(secondsRemaining int64, message string, pos *sim.CourtPos) {
		rec := trace.Record{SecondsRemaining: secondsRemaining, Message: message}
		if pos != nil {
			rec.X, rec.Z, rec.HasPos = pos.X, pos.Z, true
		}
		bus.Emit(TopicGamePlay, rec)
	}
}

// init sets up CLI flags and subcommands
func init() {
	gameCmd.Flags().StringVar(&gameLeaguePath, "league", "league.yaml", "Path to league spec YAML")
	gameCmd.Flags().StringVar(&gameHome, "home", "", "Home team code")
	gameCmd.Flags().StringVar(&gameAway, "away", "", "Away team code")
	gameCmd.Flags().Int64Var(&gameSeed, "seed", 42, "Seed for reproducible simulation")
	gameCmd.Flags().StringVar(&gameLogLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	gameCmd.Flags().IntVar(&gamePeriods, "periods", 4, "Number of periods to play")
	gameCmd.Flags().Float64Var(&gameShotProb, "shot-probability", 0.4, "Flat make probability per shot attempt")
	gameCmd.Flags().Float64Var(&gameThreeRate, "three-rate", 0, "Share of attempts taken from three (0 disables)")
	gameCmd.Flags().BoolVar(&gameFlipOnMiss, "flip-on-miss", false, "Transfer possession on missed shots")
	gameCmd.Flags().BoolVar(&gameShowPlays, "plays", false, "Print play-by-play before the box score")
	_ = gameCmd.MarkFlagRequired("home")
	_ = gameCmd.MarkFlagRequired("away")

	rootCmd.AddCommand(gameCmd)
}
