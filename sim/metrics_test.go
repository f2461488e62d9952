package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxScore_SnapshotsEngineState(t *testing.T) {
	tuning := DefaultGameTuning()
	tuning.ShotMakeProbability = 1.0
	e := testEngine(t, tuning)

	e.inbound()
	shooter := e.BallHandler()
	e.resolveShot()

	bs := e.BoxScore()
	assert.Equal(t, 2, bs.HomeScore)
	assert.Equal(t, 0, bs.AwayScore)
	assert.Equal(t, "The HOM", bs.HomeName)
	require.Len(t, bs.Rows, 10, "one row per player on both full rosters")

	// Home rows come first, in roster order.
	assert.Equal(t, "HOM", bs.Rows[0].Team)
	assert.Equal(t, "AWY", bs.Rows[9].Team)

	var shooterRow *BoxScoreRow
	for i := range bs.Rows {
		if bs.Rows[i].Name == shooter.Name {
			shooterRow = &bs.Rows[i]
		}
	}
	require.NotNil(t, shooterRow)
	assert.Equal(t, 2, shooterRow.Line.Points)

	// The box score is a snapshot: later play must not mutate it.
	e.inbound()
	e.resolveShot()
	assert.Equal(t, 2, bs.HomeScore+bs.AwayScore)
}

func TestBoxScore_PrintDoesNotPanic(t *testing.T) {
	e := testEngine(t, DefaultGameTuning())
	for e.Tick() != SignalEndOfPeriod {
	}
	e.ResetPeriod()
	assert.NotPanics(t, func() { e.BoxScore().Print() })
}
