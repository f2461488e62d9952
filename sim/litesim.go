package sim

import "math/rand"

// Matchup pairs two teams scheduled against each other.
type Matchup struct {
	Home *Team
	Away *Team
}

// SplitSlate partitions one day's schedule around the user's game: matchups
// before it run in the pre-sim phase, the user's game runs deep, and the
// rest runs in the post-sim phase. With no user game on the slate everything
// lands in pre-sim and the live phase has nothing to drive.
func SplitSlate(games []Matchup) (pre []Matchup, focal *Matchup, post []Matchup) {
	for i := range games {
		g := games[i]
		if focal == nil && (g.Home.IsUser || g.Away.IsUser) {
			focal = &games[i]
			continue
		}
		if focal == nil {
			pre = append(pre, g)
		} else {
			post = append(post, g)
		}
	}
	return pre, focal, post
}

// GameResult is a lite game's scoreboard view.
type GameResult struct {
	HomeCode  string
	AwayCode  string
	HomeScore int
	AwayScore int
	Final     bool
}

// liteGame tracks one coarse game's remaining possessions and score.
type liteGame struct {
	home *Team
	away *Team

	homeScore int
	awayScore int

	offense         Side
	possessionsLeft int

	rng *rand.Rand
}

// LiteSimulator advances all non-focal games for a day in coarse possession
// chunks. It holds the pre-game and post-game slates and selects the active
// one by the phase passed to Tick, so a single instance serves the whole
// day. At the hub there is nothing scheduled, so hub ticks report the slate
// complete immediately.
type LiteSimulator struct {
	pre    []*liteGame
	post   []*liteGame
	tuning LiteTuning
}

// NewLiteSimulator builds the day's lite slates. Each game draws from its
// own RNG subsystem so slates stay deterministic regardless of chunk
// interleaving.
func NewLiteSimulator(pre, post []Matchup, tuning LiteTuning, rng *PartitionedRNG) *LiteSimulator {
	build := func(games []Matchup) []*liteGame {
		out := make([]*liteGame, 0, len(games))
		for _, m := range games {
			out = append(out, &liteGame{
				home:            m.Home,
				away:            m.Away,
				offense:         SideHome,
				possessionsLeft: tuning.PossessionsPerGame,
				rng:             rng.ForSubsystem(SubsystemGame(m.Home.Code, m.Away.Code)),
			})
		}
		return out
	}
	return &LiteSimulator{
		pre:    build(pre),
		post:   build(post),
		tuning: tuning,
	}
}

// Tick implements Simulator: it advances every unfinished game on the
// phase's slate by one possession chunk. SignalSlateComplete means the
// active slate has no play left; phases without a slate are complete by
// definition.
func (l *LiteSimulator) Tick(phase DayState) Signal {
	var slate []*liteGame
	switch phase {
	case DayPreSim:
		slate = l.pre
	case DayPostSim:
		slate = l.post
	default:
		return SignalSlateComplete
	}

	live := false
	for _, g := range slate {
		if g.possessionsLeft <= 0 {
			continue
		}
		g.runChunk(l.tuning)
		if g.possessionsLeft > 0 {
			live = true
		}
	}
	if live {
		return SignalNone
	}
	return SignalSlateComplete
}

// runChunk burns through one tick's worth of possessions for a single game.
func (g *liteGame) runChunk(tuning LiteTuning) {
	chunk := tuning.PossessionsPerTick
	if chunk > g.possessionsLeft {
		chunk = g.possessionsLeft
	}
	for i := 0; i < chunk; i++ {
		g.runPossession(tuning)
	}
	g.possessionsLeft -= chunk
}

// runPossession scores the possession with a chance scaled by the strength
// gap between offense and defense, then alternates possession.
func (g *liteGame) runPossession(tuning LiteTuning) {
	off, def := g.home, g.away
	if g.offense == SideAway {
		off, def = g.away, g.home
	}
	chance := tuning.BaseMakeChance + tuning.StrengthScale*(off.Strength()-def.Strength())
	if chance < 0 {
		chance = 0
	}
	if chance > 1 {
		chance = 1
	}
	if g.rng.Float64() < chance {
		if g.offense == SideHome {
			g.homeScore += 2
		} else {
			g.awayScore += 2
		}
	}
	if g.offense == SideHome {
		g.offense = SideAway
	} else {
		g.offense = SideHome
	}
}

// Results returns scoreboard views for both slates, pre-sim games first.
func (l *LiteSimulator) Results() []GameResult {
	out := make([]GameResult, 0, len(l.pre)+len(l.post))
	for _, slate := range [][]*liteGame{l.pre, l.post} {
		for _, g := range slate {
			out = append(out, GameResult{
				HomeCode:  g.home.Code,
				AwayCode:  g.away.Code,
				HomeScore: g.homeScore,
				AwayScore: g.awayScore,
				Final:     g.possessionsLeft <= 0,
			})
		}
	}
	return out
}
