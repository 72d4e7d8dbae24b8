// Package sim owns the pose vector and the simulation clock: it invokes the
// behavior engine once per tick and integrates each agent's pose from the
// emitted speed and turning rate with an explicit Euler step.
package sim

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pursuit/behavior"
	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
	"github.com/pthm-cable/pursuit/telemetry"
)

// Runner drives one simulation run.
type Runner struct {
	cfg   *config.Config
	mode  behavior.SimMode
	state *behavior.BehavioralState
	pose  behavior.SimulationVector
	rng   *behavior.RNG
	rec   *telemetry.Recorder

	now  float64
	tick int
}

// New builds a runner with the initial poses from the config. rec may be nil
// to disable recording.
func New(cfg *config.Config, mode behavior.SimMode, strikeTest behavior.StrikeTest, rng *behavior.RNG, rec *telemetry.Recorder) *Runner {
	r := &Runner{
		cfg:   cfg,
		mode:  mode,
		state: &behavior.BehavioralState{},
		rng:   rng,
		rec:   rec,
	}
	r.state.Predator.StrikeTest = strikeTest
	r.pose.Prey = behavior.Pose{
		Pos:         geom.Vec{X: cfg.Prey.InitialPosition.X, Y: cfg.Prey.InitialPosition.Y},
		Orientation: cfg.Prey.InitialOrientation,
	}
	r.pose.Predator = behavior.Pose{
		Pos:         geom.Vec{X: cfg.Predator.InitialPosition.X, Y: cfg.Predator.InitialPosition.Y},
		Orientation: cfg.Predator.InitialOrientation,
	}
	return r
}

// State exposes the behavioral state for inspection after (or between) ticks.
func (r *Runner) State() *behavior.BehavioralState { return r.state }

// Pose returns the current pose snapshot.
func (r *Runner) Pose() behavior.SimulationVector { return r.pose }

// Now returns the current simulation time.
func (r *Runner) Now() float64 { return r.now }

// Tick returns the number of completed ticks.
func (r *Runner) Tick() int { return r.tick }

// Step runs one tick: behavior decision on the current pose, then the Euler
// pose update from the resulting commands.
func (r *Runner) Step() error {
	if err := behavior.Step(r.mode, r.cfg, r.state, r.now, &r.pose, r.rng); err != nil {
		return err
	}

	dt := r.cfg.Physics.DT
	integrate(&r.pose.Prey, r.state.Prey.TurnRate, r.state.Prey.Speed, dt)
	integrate(&r.pose.Predator, r.state.Predator.TurnRate, r.state.Predator.Speed, dt)
	r.now += dt
	r.tick++

	if r.rec != nil {
		if err := r.rec.WriteTick(r.record()); err != nil {
			return err
		}
	}
	return nil
}

// Run steps until the engine raises StopSim or maxTicks is reached
// (0 = unlimited). Returns whether the prey was captured.
func (r *Runner) Run(maxTicks int) (bool, error) {
	for maxTicks == 0 || r.tick < maxTicks {
		if err := r.Step(); err != nil {
			return false, err
		}
		if r.state.StopSim {
			break
		}
	}
	slog.Info("run finished",
		"ticks", r.tick,
		"time", r.now,
		"captured", r.state.Prey.Captured,
		"stopsim", r.state.StopSim,
		"escapes", r.state.Prey.EscapeCount-1)
	return r.state.Prey.Captured, nil
}

// integrate advances one pose by dt: heading first, then position along the
// new heading.
func integrate(p *behavior.Pose, turnRate, speed, dt float64) {
	p.Orientation = geom.WrapAngle(p.Orientation + turnRate*dt)
	step := r2.Scale(speed*dt, geom.Vec{X: math.Cos(p.Orientation), Y: math.Sin(p.Orientation)})
	p.Pos = r2.Add(p.Pos, step)
}

// record snapshots the tick for the trajectory log.
func (r *Runner) record() telemetry.TickRecord {
	dist := r2.Norm(r2.Sub(r.pose.Prey.Pos, r.pose.Predator.Pos))
	return telemetry.TickRecord{
		Tick:          r.tick,
		Time:          r.now,
		PreyX:         r.pose.Prey.Pos.X,
		PreyY:         r.pose.Prey.Pos.Y,
		PreyHeading:   r.pose.Prey.Orientation,
		PreySpeed:     r.state.Prey.Speed,
		PreyTurnRate:  r.state.Prey.TurnRate,
		PreyEscaping:  r.state.Prey.EscapeActive,
		PredX:         r.pose.Predator.Pos.X,
		PredY:         r.pose.Predator.Pos.Y,
		PredHeading:   r.pose.Predator.Orientation,
		PredSpeed:     r.state.Predator.Speed,
		PredTurnRate:  r.state.Predator.TurnRate,
		PredTargeting: r.state.Predator.TargetBearing.Set,
		PredStriking:  r.state.Predator.StrikeTime.Set,
		SuctionRadius: r.state.Predator.SuctionRadius,
		Distance:      dist,
		Captured:      r.state.Prey.Captured,
	}
}
