package sim

import "fmt"

// DayState is one phase of the turn-based calendar-day loop. The order is
// fixed: a day only ever moves forward, never skips, and only returns to the
// hub through an explicit Reset at day rollover.
type DayState int

const (
	// DayHub is the initial phase: the management hub before any game runs.
	DayHub DayState = iota
	// DayPreSim advances, at lite fidelity, the games scheduled before the
	// user's game.
	DayPreSim
	// DayUserGameLive runs the user's game at deep fidelity.
	DayUserGameLive
	// DayPostSim advances the remainder of the slate at lite fidelity.
	DayPostSim
	// DayComplete is terminal; no further advance is possible.
	DayComplete
)

var dayStateNames = map[DayState]string{
	DayHub:          "DAY_HUB",
	DayPreSim:       "PRE_SIM_TO_USER_GAME",
	DayUserGameLive: "USER_GAME_LIVE",
	DayPostSim:      "POST_SIM_REMAINDER",
	DayComplete:     "DAY_COMPLETE",
}

func (s DayState) String() string {
	if name, ok := dayStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("DayState(%d)", int(s))
}

// DayStateMachine sequences one calendar day's phases. One instance per day;
// Reset begins the next day.
type DayStateMachine struct {
	current DayState
}

// NewDayStateMachine starts a machine at the given phase. An initial state
// outside the fixed enumeration is a construction error.
func NewDayStateMachine(initial DayState) (*DayStateMachine, error) {
	if _, ok := dayStateNames[initial]; !ok {
		return nil, fmt.Errorf("day state machine: invalid initial state %d", int(initial))
	}
	return &DayStateMachine{current: initial}, nil
}

// Current returns the active phase.
func (m *DayStateMachine) Current() DayState { return m.current }

// CanAdvance reports whether the day has phases left.
func (m *DayStateMachine) CanAdvance() bool { return m.current != DayComplete }

// Advance moves to the next phase in order and returns it. At DayComplete it
// is an idempotent no-op.
func (m *DayStateMachine) Advance() DayState {
	if m.current == DayComplete {
		return m.current
	}
	m.current++
	return m.current
}

// Reset unconditionally returns to DayHub, beginning the next calendar day.
func (m *DayStateMachine) Reset() DayState {
	m.current = DayHub
	return m.current
}
