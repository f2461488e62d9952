// Package sim provides the tick-driven simulation core for hoopsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - engine.go: PossessionEngine, the deep tick-by-tick possession state machine
//   - daystate.go: the fixed five-phase calendar-day sequencer
//   - manager.go: SimManager, which routes each tick to the deep or lite simulator
//
// # Architecture
//
// The sim package defines the in-engine data model and the simulators; input
// handling lives in sub-packages:
//   - sim/roster/: YAML roster/schedule specs, record joining, load cache
//   - sim/trace/: play-by-play recording for consumers of engine narration
//
// Exactly one deep simulation (PossessionEngine) is live at a time; all other
// games scheduled on the same day advance through LiteSimulator in coarse
// possession chunks. Nothing in this package blocks or spawns goroutines: all
// advancement happens synchronously inside Tick calls driven by the caller.
//
// # Key Interfaces
//
// The extension point is a single-method interface:
//   - Simulator: advance one tick for the given day phase and report a Signal
//
// Randomness is injected through PartitionedRNG (rng.go) so any run is
// reproducible from its seed.
package sim
