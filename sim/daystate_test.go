package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayStateMachine_AdvanceOrder(t *testing.T) {
	m, err := NewDayStateMachine(DayHub)
	require.NoError(t, err)

	want := []DayState{DayPreSim, DayUserGameLive, DayPostSim, DayComplete}
	for i, expected := range want {
		got := m.Advance()
		assert.Equal(t, expected, got, "advance %d", i+1)
	}

	// A fifth advance is an idempotent no-op at the terminal phase.
	assert.Equal(t, DayComplete, m.Advance())
	assert.Equal(t, DayComplete, m.Current())
}

func TestDayStateMachine_AdvanceClamps(t *testing.T) {
	m, err := NewDayStateMachine(DayHub)
	require.NoError(t, err)

	for k := 0; k < 20; k++ {
		m.Advance()
	}
	assert.Equal(t, DayComplete, m.Current())
}

func TestDayStateMachine_CanAdvance(t *testing.T) {
	m, err := NewDayStateMachine(DayHub)
	require.NoError(t, err)

	for m.Current() != DayComplete {
		assert.True(t, m.CanAdvance(), "at %s", m.Current())
		m.Advance()
	}
	assert.False(t, m.CanAdvance())
}

func TestDayStateMachine_ResetFromAnyPhase(t *testing.T) {
	for advances := 0; advances <= 4; advances++ {
		m, err := NewDayStateMachine(DayHub)
		require.NoError(t, err)
		for i := 0; i < advances; i++ {
			m.Advance()
		}
		assert.Equal(t, DayHub, m.Reset(), "after %d advances", advances)
		assert.Equal(t, DayHub, m.Current())
	}
}

func TestNewDayStateMachine_InvalidInitialState(t *testing.T) {
	tests := []struct {
		name    string
		initial DayState
		wantErr bool
	}{
		{"hub", DayHub, false},
		{"live", DayUserGameLive, false},
		{"complete", DayComplete, false},
		{"negative", DayState(-1), true},
		{"past end", DayState(5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewDayStateMachine(tt.initial)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, m)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.initial, m.Current())
			}
		})
	}
}

func TestDayState_String(t *testing.T) {
	assert.Equal(t, "DAY_HUB", DayHub.String())
	assert.Equal(t, "DAY_COMPLETE", DayComplete.String())
	assert.Equal(t, "DayState(9)", DayState(9).String())
}
