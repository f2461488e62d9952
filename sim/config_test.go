package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGameTuning(t *testing.T) {
	tuning := DefaultGameTuning()

	assert.Equal(t, int64(600), tuning.PeriodSeconds)
	assert.Equal(t, 0.4, tuning.ShotMakeProbability)
	assert.Equal(t, 2, tuning.PointsPerMake)
	assert.Equal(t, 1, tuning.StartDelay)
	assert.Equal(t, 4, tuning.InboundDelay)
	assert.Equal(t, 2, tuning.RecoverDelay)
	assert.False(t, tuning.FlipOnMiss, "base model keeps possession on a miss")
	assert.Zero(t, tuning.ThreeAttemptRate, "threes are an opt-in extension")
	assert.Greater(t, tuning.FoulRate, 0.0)
	assert.Less(t, tuning.FoulRate, 1.0)
}

func TestDefaultLiteTuning(t *testing.T) {
	tuning := DefaultLiteTuning()

	assert.Positive(t, tuning.PossessionsPerGame)
	assert.Positive(t, tuning.PossessionsPerTick)
	assert.LessOrEqual(t, tuning.PossessionsPerTick, tuning.PossessionsPerGame)
	assert.Greater(t, tuning.BaseMakeChance, 0.0)
	assert.Less(t, tuning.BaseMakeChance, 1.0)
}
