package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Signal is the result of one Tick. SignalNone means more play remains.
type Signal int

const (
	// SignalNone reports an uneventful tick; keep driving.
	SignalNone Signal = iota
	// SignalEndOfPeriod reports an exhausted clock. Callers must stop
	// ticking the engine until they reset the period.
	SignalEndOfPeriod
	// SignalSlateComplete reports that a lite slate has finished every game
	// scheduled for the active phase.
	SignalSlateComplete
)

// PossessionState enumerates the deep-engine FSM states.
type PossessionState int

const (
	// StateStart fires once at tip-off.
	StateStart PossessionState = iota
	// StatePossessionStart inbounds the ball to a weighted pick.
	StatePossessionStart
	// StateShoot resolves a shot attempt.
	StateShoot
)

// Side identifies one of the two teams in a game.
type Side int

const (
	SideHome Side = iota
	SideAway
)

func (s Side) String() string {
	if s == SideHome {
		return "home"
	}
	return "away"
}

// CourtPos is a coarse court position hint attached to narration, in court
// coordinates (x along the baseline-to-baseline axis, z across the lane).
type CourtPos struct {
	X float64
	Z float64
}

// LogFunc receives engine narration: seconds remaining, a message, and an
// optional court position hint. A nil LogFunc is silently a no-op; the
// engine has no other output dependency.
type LogFunc func(secondsRemaining int64, message string, pos *CourtPos)

// PossessionEngine advances one basketball game through discrete possession
// states. It exclusively owns its per-game team copies, stat lines and
// clock; it is not reentrant and must be driven by a single tick loop.
type PossessionEngine struct {
	home *Team
	away *Team

	clock      int64
	state      PossessionState
	stateTimer int

	possession  Side
	ballHandler *Player

	score map[Side]int
	stats map[string]*StatLine

	periodScores []PeriodScore
	periodStart  map[Side]int

	tuning GameTuning

	pickRNG *rand.Rand
	shotRNG *rand.Rand
	playRNG *rand.Rand

	logFn LogFunc
}

// NewPossessionEngine builds per-game roster copies with full stamina,
// allocates a stat line for every player on both full rosters, and parks the
// engine at tip-off with the home side inbounding. Either side arriving with
// an empty active roster is an error: the weighted pick is undefined over an
// empty sequence.
func NewPossessionEngine(home, away *Team, tuning GameTuning, rng *PartitionedRNG, logFn LogFunc) (*PossessionEngine, error) {
	if home == nil || away == nil {
		return nil, errors.New("possession engine: both teams are required")
	}
	if len(home.Roster) == 0 || len(away.Roster) == 0 {
		return nil, fmt.Errorf("possession engine: empty active roster (%s: %d, %s: %d)",
			home.Code, len(home.Roster), away.Code, len(away.Roster))
	}
	if rng == nil {
		return nil, errors.New("possession engine: a PartitionedRNG is required")
	}

	e := &PossessionEngine{
		home:        home.gameCopy(),
		away:        away.gameCopy(),
		clock:       tuning.PeriodSeconds,
		state:       StateStart,
		possession:  SideHome,
		score:       map[Side]int{SideHome: 0, SideAway: 0},
		stats:       make(map[string]*StatLine),
		periodStart: map[Side]int{SideHome: 0, SideAway: 0},
		tuning:      tuning,
		pickRNG:     rng.ForSubsystem(SubsystemPossession),
		shotRNG:     rng.ForSubsystem(SubsystemShot),
		playRNG:     rng.ForSubsystem(SubsystemPlaymaking),
		logFn:       logFn,
	}
	for _, p := range e.home.FullRoster() {
		e.stats[p.Name] = &StatLine{Energy: p.CurrentStamina}
	}
	for _, p := range e.away.FullRoster() {
		e.stats[p.Name] = &StatLine{Energy: p.CurrentStamina}
	}
	return e, nil
}

// Tick advances the game by one clock second. An exhausted clock
// short-circuits with SignalEndOfPeriod before any state processing and can
// never underflow. A pending state delay counts down silently; otherwise the
// current state's logic runs.
func (e *PossessionEngine) Tick() Signal {
	if e.clock > 0 {
		e.clock--
	}
	if e.clock <= 0 {
		return SignalEndOfPeriod
	}
	if e.stateTimer > 0 {
		e.stateTimer--
		return SignalNone
	}
	return e.step()
}

// step runs the current state's logic exactly once and schedules the next
// state. Always SignalNone in the current state set; reserved for richer
// event signaling.
func (e *PossessionEngine) step() Signal {
	switch e.state {
	case StateStart:
		e.transition(StatePossessionStart, e.tuning.StartDelay)
	case StatePossessionStart:
		e.inbound()
		e.transition(StateShoot, e.tuning.InboundDelay)
	case StateShoot:
		e.resolveShot()
		e.transition(StatePossessionStart, e.tuning.RecoverDelay)
	default:
		logrus.Warnf("possession engine: unknown state %d, re-inbounding", e.state)
		e.transition(StatePossessionStart, e.tuning.RecoverDelay)
	}
	return SignalNone
}

func (e *PossessionEngine) transition(next PossessionState, delay int) {
	e.state = next
	e.stateTimer = delay
}

// inbound picks the ball-handler from the offensive five by
// stamina-weighted random selection and narrates the possession start.
func (e *PossessionEngine) inbound() {
	offense := e.offense()
	e.ballHandler = pickWeighted(offense.Roster, e.pickRNG)
	e.log(fmt.Sprintf("%s inbounds for %s", e.ballHandler.Name, offense.Name), e.inboundSpot())
}

// pickWeighted draws a candidate proportionally to SelectionWeight. The
// walk-and-accumulate scan falls back to the first candidate if the draw
// lands beyond every accumulated weight on a float edge.
func pickWeighted(candidates []*Player, rng *rand.Rand) *Player {
	total := 0.0
	for _, p := range candidates {
		total += p.SelectionWeight()
	}
	draw := rng.Float64() * total
	running := 0.0
	for _, p := range candidates {
		running += p.SelectionWeight()
		if running > draw {
			return p
		}
	}
	return candidates[0]
}

// resolveShot draws the make/miss outcome, updates score, stats, stamina and
// possession, and narrates the result.
func (e *PossessionEngine) resolveShot() {
	shooter := e.ballHandler
	if shooter == nil {
		// Shot without an inbound only happens if a caller forces state by
		// hand; recover by re-inbounding.
		return
	}
	offense := e.offense()
	defense := e.defense()
	line := e.stats[shooter.Name]

	three := e.tuning.ThreeAttemptRate > 0 && e.shotRNG.Float64() < e.tuning.ThreeAttemptRate
	makeChance := e.tuning.ShotMakeProbability
	points := e.tuning.PointsPerMake
	if three {
		makeChance *= e.tuning.ThreeMakeMultiplier
		points = e.tuning.PointsPerThree
		line.ThreePointsA++
	}
	line.FieldGoalsA++

	made := e.shotRNG.Float64() < makeChance
	if made {
		line.FieldGoalsM++
		line.Points += points
		if three {
			line.ThreePointsM++
		}
		e.score[e.possession] += points
		e.creditAssist(offense, shooter)
		e.log(fmt.Sprintf("%s scores %d for %s", shooter.Name, points, offense.Name), e.rimSpot())
		e.possession = e.otherSide()
	} else {
		e.log(fmt.Sprintf("%s misses for %s", shooter.Name, offense.Name), e.rimSpot())
		if e.tuning.FlipOnMiss {
			e.possession = e.otherSide()
		}
	}

	e.chargeFoul(defense)

	shooter.CurrentStamina -= e.tuning.StaminaCostPerShot
	if shooter.CurrentStamina < 0 {
		shooter.CurrentStamina = 0
	}
	line.Energy = shooter.CurrentStamina
}

// creditAssist marks a made basket as assisted by a random teammate on the
// floor, at the configured rate.
func (e *PossessionEngine) creditAssist(offense *Team, shooter *Player) {
	if e.tuning.AssistRate <= 0 || len(offense.Roster) < 2 {
		return
	}
	if e.playRNG.Float64() >= e.tuning.AssistRate {
		return
	}
	mates := make([]*Player, 0, len(offense.Roster)-1)
	for _, p := range offense.Roster {
		if p != shooter {
			mates = append(mates, p)
		}
	}
	passer := mates[e.playRNG.Intn(len(mates))]
	e.stats[passer.Name].Assists++
}

// chargeFoul occasionally charges a personal foul to a random defender on
// the floor after a shot attempt, at the configured rate.
func (e *PossessionEngine) chargeFoul(defense *Team) {
	if e.tuning.FoulRate <= 0 || len(defense.Roster) == 0 {
		return
	}
	if e.playRNG.Float64() >= e.tuning.FoulRate {
		return
	}
	defender := defense.Roster[e.playRNG.Intn(len(defense.Roster))]
	e.stats[defender.Name].PersonalFouls++
}

func (e *PossessionEngine) offense() *Team {
	if e.possession == SideHome {
		return e.home
	}
	return e.away
}

func (e *PossessionEngine) defense() *Team {
	if e.possession == SideHome {
		return e.away
	}
	return e.home
}

func (e *PossessionEngine) otherSide() Side {
	if e.possession == SideHome {
		return SideAway
	}
	return SideHome
}

// inboundSpot is a coarse baseline position for the offense's own end.
func (e *PossessionEngine) inboundSpot() *CourtPos {
	if e.possession == SideHome {
		return &CourtPos{X: -42, Z: 0}
	}
	return &CourtPos{X: 42, Z: 0}
}

// rimSpot is a coarse position under the basket the offense attacks.
func (e *PossessionEngine) rimSpot() *CourtPos {
	if e.possession == SideHome {
		return &CourtPos{X: 39, Z: 0}
	}
	return &CourtPos{X: -39, Z: 0}
}

func (e *PossessionEngine) log(message string, pos *CourtPos) {
	if e.logFn == nil {
		return
	}
	e.logFn(e.clock, message, pos)
}

// ResetPeriod archives the finished period's scoring and restores the clock
// for the next one. Score, stats and stamina carry over; the FSM resumes
// with a fresh inbound.
func (e *PossessionEngine) ResetPeriod() {
	e.periodScores = append(e.periodScores, PeriodScore{
		Period:    len(e.periodScores) + 1,
		HomeScore: e.score[SideHome] - e.periodStart[SideHome],
		AwayScore: e.score[SideAway] - e.periodStart[SideAway],
	})
	e.periodStart[SideHome] = e.score[SideHome]
	e.periodStart[SideAway] = e.score[SideAway]
	e.clock = e.tuning.PeriodSeconds
	e.transition(StatePossessionStart, e.tuning.StartDelay)
}

// Clock returns seconds remaining in the current period. Never negative.
func (e *PossessionEngine) Clock() int64 { return e.clock }

// State returns the current FSM state.
func (e *PossessionEngine) State() PossessionState { return e.state }

// Possession returns which side currently has the ball.
func (e *PossessionEngine) Possession() Side { return e.possession }

// BallHandler returns the current ball-handler, nil before the first inbound.
func (e *PossessionEngine) BallHandler() *Player { return e.ballHandler }

// Score returns the given side's points.
func (e *PossessionEngine) Score(side Side) int { return e.score[side] }

// Stats returns the stat line for a player name, nil if unknown.
func (e *PossessionEngine) Stats(name string) *StatLine { return e.stats[name] }

// Home returns the engine-owned home team copy.
func (e *PossessionEngine) Home() *Team { return e.home }

// Away returns the engine-owned away team copy.
func (e *PossessionEngine) Away() *Team { return e.away }

// Simulator adapts the engine to the SimManager collaborator contract. The
// deep engine only ever runs during the live phase, so the phase argument is
// ignored.
func (e *PossessionEngine) Simulator() Simulator {
	return SimulatorFunc(func(DayState) Signal {
		return e.Tick()
	})
}
