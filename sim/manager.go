package sim

// Simulator is the single capability SimManager needs from a simulation
// collaborator: advance one tick for the given day phase and report a
// Signal. Either fidelity can be substituted with a stub satisfying this
// contract.
type Simulator interface {
	Tick(phase DayState) Signal
}

// SimulatorFunc adapts a plain function to the Simulator interface. A nil
// SimulatorFunc ticks as a no-op.
type SimulatorFunc func(phase DayState) Signal

// Tick implements Simulator.
func (f SimulatorFunc) Tick(phase DayState) Signal {
	if f == nil {
		return SignalNone
	}
	return f(phase)
}

// SimManager orchestrates one DayStateMachine plus optional deep and lite
// simulation collaborators, routing each tick to whichever fidelity the
// active phase calls for. Missing collaborators degrade to no-op ticks so
// the orchestration layer stays live during bring-up and testing.
type SimManager struct {
	day  *DayStateMachine
	deep Simulator
	lite Simulator
}

// NewSimManager wires a manager around an existing day machine. Either
// collaborator may be nil.
func NewSimManager(day *DayStateMachine, deep, lite Simulator) *SimManager {
	return &SimManager{day: day, deep: deep, lite: lite}
}

// Tick reads the current day phase and delegates: hub, pre-sim and post-sim
// run at lite fidelity, the live phase at deep fidelity, and a completed (or
// unrecognized) day delegates to nothing.
func (m *SimManager) Tick() Signal {
	phase := m.day.Current()
	switch phase {
	case DayHub, DayPreSim, DayPostSim:
		if m.lite == nil {
			return SignalNone
		}
		return m.lite.Tick(phase)
	case DayUserGameLive:
		if m.deep == nil {
			return SignalNone
		}
		return m.deep.Tick(phase)
	default:
		return SignalNone
	}
}

// Current returns the active day phase.
func (m *SimManager) Current() DayState { return m.day.Current() }

// AdvanceDayState moves the owned day machine forward one phase, exposed so
// an external driver can sequence phases explicitly.
func (m *SimManager) AdvanceDayState() DayState { return m.day.Advance() }

// ResetDay returns the owned day machine to the hub for the next day.
func (m *SimManager) ResetDay() DayState { return m.day.Reset() }
