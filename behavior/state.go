// Package behavior is the per-tick decision engine: it selects each agent's
// behavioral mode in strict priority order and produces the instantaneous
// turning rate and speed the external integrator applies. It never advances
// positions itself.
package behavior

import "github.com/pthm-cable/pursuit/geom"

// OptFloat is an optional scalar. The zero value is unset; this replaces the
// NaN sentinels a state field could otherwise be confused with.
type OptFloat struct {
	Value float64
	Set   bool
}

// Some returns a set OptFloat.
func Some(v float64) OptFloat { return OptFloat{Value: v, Set: true} }

// Clear unsets the value.
func (o *OptFloat) Clear() { *o = OptFloat{} }

// Pose is one agent's position and heading in the arena frame.
type Pose struct {
	Pos         geom.Vec
	Orientation float64
}

// SimulationVector is the six-component pose snapshot owned by the external
// integrator. It is read-only input to the behavior engine.
type SimulationVector struct {
	Prey     Pose
	Predator Pose
}

// PreyState is the prey's persistent behavioral state, mutated in place
// every tick.
type PreyState struct {
	SaccadeClock  float64
	SaccadeDir    float64 // +1 or -1
	SaccadeActive bool

	EscapeActive bool
	EscapeOnset  OptFloat
	EscapeDir    float64 // +1 or -1, drawn at trigger
	EscapeRate   float64 // turning-rate magnitude drawn at trigger, rad/s
	EscapeCount  int     // starts at 1, increments when an escape completes

	Speed    float64
	TurnRate float64

	Orientation        float64
	InitialOrientation float64

	Captured bool

	LocalOutline  []geom.Vec
	GlobalOutline []geom.Vec
}

// PredatorState is the predator's persistent behavioral state.
type PredatorState struct {
	SaccadeClock  float64
	SaccadeDir    float64
	SaccadeActive bool

	InFieldTime   OptFloat // when the prey entered the visual field
	TargetBearing OptFloat // arena-frame bearing toward the prey
	StrikeTime    OptFloat // when the current strike started

	Speed    float64
	TurnRate float64

	Orientation float64
	StrikeTest  StrikeTest

	LocalOutline  []geom.Vec
	GlobalOutline []geom.Vec

	// Suction-zone fan in the arena frame, refreshed on every strike tick
	// for external consumers (recording, visualization).
	SuctionZone   []geom.Vec
	SuctionRadius float64
}

// BehavioralState is the full cross-tick state of one run. It is created
// lazily on the first Step call and mutated in place afterwards; the caller
// owns its lifetime and must stop integrating once StopSim is true.
type BehavioralState struct {
	StopSim  bool
	Prey     PreyState
	Predator PredatorState

	initialized bool
}
