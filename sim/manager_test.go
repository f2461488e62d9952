package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, deep, lite Simulator) *SimManager {
	t.Helper()
	day, err := NewDayStateMachine(DayHub)
	require.NoError(t, err)
	return NewSimManager(day, deep, lite)
}

func TestSimManager_RoutesLitePhases(t *testing.T) {
	var phases []DayState
	lite := SimulatorFunc(func(phase DayState) Signal {
		phases = append(phases, phase)
		return SignalSlateComplete
	})
	m := newManager(t, nil, lite)

	// Hub, pre-sim and post-sim all delegate to the lite collaborator with
	// the active phase.
	assert.Equal(t, SignalSlateComplete, m.Tick())
	m.AdvanceDayState() // PRE_SIM_TO_USER_GAME
	assert.Equal(t, SignalSlateComplete, m.Tick())
	m.AdvanceDayState() // USER_GAME_LIVE
	m.AdvanceDayState() // POST_SIM_REMAINDER
	assert.Equal(t, SignalSlateComplete, m.Tick())

	assert.Equal(t, []DayState{DayHub, DayPreSim, DayPostSim}, phases)
}

func TestSimManager_RoutesDeepPhase(t *testing.T) {
	deepCalls := 0
	deep := SimulatorFunc(func(phase DayState) Signal {
		deepCalls++
		assert.Equal(t, DayUserGameLive, phase)
		return SignalEndOfPeriod
	})
	liteCalls := 0
	lite := SimulatorFunc(func(DayState) Signal {
		liteCalls++
		return SignalNone
	})
	m := newManager(t, deep, lite)

	m.AdvanceDayState()
	m.AdvanceDayState() // USER_GAME_LIVE
	assert.Equal(t, SignalEndOfPeriod, m.Tick())
	assert.Equal(t, 1, deepCalls)
	assert.Zero(t, liteCalls)
}

func TestSimManager_MissingCollaboratorsDegrade(t *testing.T) {
	// Stub lite returning a fixed sentinel, no deep collaborator wired.
	lite := SimulatorFunc(func(DayState) Signal { return SignalSlateComplete })
	m := newManager(t, nil, lite)

	assert.Equal(t, SignalSlateComplete, m.Tick(), "hub delegates to lite")

	m.AdvanceDayState()
	m.AdvanceDayState()
	require.Equal(t, DayUserGameLive, m.Current())
	assert.Equal(t, SignalNone, m.Tick(), "no deep collaborator yields a no-op tick")

	// Fully unwired manager stays operable in every phase.
	bare := newManager(t, nil, nil)
	for bare.Current() != DayComplete {
		assert.Equal(t, SignalNone, bare.Tick())
		bare.AdvanceDayState()
	}
	assert.Equal(t, SignalNone, bare.Tick())
}

func TestSimManager_CompletedDayDelegatesNothing(t *testing.T) {
	called := false
	sentinel := SimulatorFunc(func(DayState) Signal {
		called = true
		return SignalEndOfPeriod
	})
	m := newManager(t, sentinel, sentinel)
	for i := 0; i < 4; i++ {
		m.AdvanceDayState()
	}
	require.Equal(t, DayComplete, m.Current())

	assert.Equal(t, SignalNone, m.Tick())
	assert.False(t, called)
}

func TestSimManager_DayPassThroughs(t *testing.T) {
	m := newManager(t, nil, nil)

	assert.Equal(t, DayPreSim, m.AdvanceDayState())
	assert.Equal(t, DayUserGameLive, m.AdvanceDayState())
	assert.Equal(t, DayHub, m.ResetDay())
	assert.Equal(t, DayHub, m.Current())
}

func TestSimulatorFunc_NilIsNoOp(t *testing.T) {
	var f SimulatorFunc
	assert.Equal(t, SignalNone, f.Tick(DayHub))
}
