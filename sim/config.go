package sim

// GameTuning groups the deep-engine design parameters. Defaults reproduce
// the prototype possession loop: 600-second periods, a flat 0.4 make
// probability worth 2 points, and offense keeping the ball after a miss.
type GameTuning struct {
	PeriodSeconds       int64   // clock value at the start of each period
	ShotMakeProbability float64 // flat make chance; execution variance only
	PointsPerMake       int     // points awarded on a made two
	PointsPerThree      int     // points awarded on a made three

	StartDelay   int // ticks before the opening inbound
	InboundDelay int // ticks between inbound and shot attempt
	RecoverDelay int // ticks between shot resolution and next inbound

	// FlipOnMiss transfers possession on a missed shot. The base model keeps
	// the ball with the offense (no rebound modeling); flipping is an
	// explicit extension point.
	FlipOnMiss bool

	// ThreeAttemptRate is the chance a shot attempt is from deep. Zero keeps
	// every attempt a two, preserving the base scoring contract.
	ThreeAttemptRate    float64
	ThreeMakeMultiplier float64 // make-probability scale applied to threes

	// AssistRate is the chance a made basket is credited with an assist
	// from a teammate on the floor.
	AssistRate float64

	// FoulRate is the chance a shot attempt charges a personal foul to a
	// defender on the floor. Fouls are a box-score stat only: they never
	// change score or possession.
	FoulRate float64

	// StaminaCostPerShot drains the shooter after each attempt.
	StaminaCostPerShot float64
}

// DefaultGameTuning returns the prototype parameterization.
func DefaultGameTuning() GameTuning {
	return GameTuning{
		PeriodSeconds:       600,
		ShotMakeProbability: 0.4,
		PointsPerMake:       2,
		PointsPerThree:      3,
		StartDelay:          1,
		InboundDelay:        4,
		RecoverDelay:        2,
		FlipOnMiss:          false,
		ThreeAttemptRate:    0,
		ThreeMakeMultiplier: 0.85,
		AssistRate:          0.55,
		FoulRate:            0.12,
		StaminaCostPerShot:  2,
	}
}

// LiteTuning groups the coarse slate-simulator parameters.
type LiteTuning struct {
	PossessionsPerGame int     // combined possessions a lite game runs for
	PossessionsPerTick int     // chunk advanced per Tick per unfinished game
	BaseMakeChance     float64 // per-possession scoring chance at equal strength
	StrengthScale      float64 // make-chance swing per point of strength gap
}

// DefaultLiteTuning returns chunk sizes that finish a slate in a handful of
// ticks while keeping final scores in a plausible range.
func DefaultLiteTuning() LiteTuning {
	return LiteTuning{
		PossessionsPerGame: 180,
		PossessionsPerTick: 20,
		BaseMakeChance:     0.45,
		StrengthScale:      0.004,
	}
}
