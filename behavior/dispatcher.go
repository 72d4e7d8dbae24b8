package behavior

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
	"github.com/pthm-cable/pursuit/motion"
)

// ErrNoPose reports a step invoked without the pose vector it needs.
var ErrNoPose = errors.New("behavior: step requires a pose vector")

// Step is the per-tick entry point. Given the simulation mode, the run
// parameters, the persistent state, the current time, and the pose snapshot
// owned by the integrator, it updates the state in place: lazy
// initialization on the first call, body-outline refresh, then the
// mode-specific agent updates in fixed order (prey before predator, strike
// last). Callers must invoke it with strictly increasing time and stop once
// StopSim is set.
func Step(mode SimMode, cfg *config.Config, st *BehavioralState, now float64, pose *SimulationVector, rng *RNG) error {
	if pose == nil {
		return ErrNoPose
	}
	if st == nil {
		return errors.New("behavior: step requires a state")
	}
	if !st.initialized {
		st.init(cfg, rng)
	}
	st.refreshOutlines(pose)

	switch mode {
	case ModeDefault:
		preyStep(cfg, st, now, pose, rng)
		predatorStep(cfg, st, now, pose)
		test, err := resolveStrikeTest(&st.Predator)
		if err != nil {
			return err
		}
		return strikeStep(cfg, st, now, pose, rng, test)

	case ModeWeihs:
		weihsPreyStep(cfg, st, now, pose, rng, motion.ProfileFull)
		weihsPredatorStep(cfg, st, now, pose, false)
		return nil

	case ModeWeihsAccel:
		weihsPreyStep(cfg, st, now, pose, rng, motion.ProfileRamp)
		weihsPredatorStep(cfg, st, now, pose, false)
		return nil

	case ModeWeihsCaptureCheck:
		weihsPreyStep(cfg, st, now, pose, rng, motion.ProfileFull)
		weihsPredatorStep(cfg, st, now, pose, true)
		return strikeStep(cfg, st, now, pose, rng, StrikeTestDeterministic)

	case ModeSimpleStrike:
		weihsPreyStep(cfg, st, now, pose, rng, motion.ProfileRamp)
		weihsPredatorStep(cfg, st, now, pose, false)
		if st.Predator.StrikeTime.Set && now-st.Predator.StrikeTime.Value > cfg.Strike.Duration {
			// Strike window elapsed without capture: end the run instead of
			// rearming the strike.
			st.StopSim = true
			return nil
		}
		return strikeStep(cfg, st, now, pose, rng, StrikeTestDeterministic)
	}
	return fmt.Errorf("behavior: unknown simulation mode %q", mode)
}

// init performs the one-time lazy initialization: initial saccade directions
// from two uniform draws (prey first), body outlines from the static body
// parameters, and the starting speeds and orientations.
func (st *BehavioralState) init(cfg *config.Config, rng *RNG) {
	st.Prey = PreyState{
		SaccadeDir:         rng.Direction(),
		EscapeCount:        1,
		Speed:              cfg.Prey.CruiseSpeed,
		Orientation:        cfg.Prey.InitialOrientation,
		InitialOrientation: cfg.Prey.InitialOrientation,
		LocalOutline: geom.Outline(cfg.Prey.BodyLength, cfg.Prey.BodyWidth,
			cfg.Prey.COMLength, cfg.Prey.OutlinePoints),
	}
	st.Predator = PredatorState{
		SaccadeDir:  rng.Direction(),
		Speed:       cfg.Predator.CruiseSpeed,
		Orientation: cfg.Predator.InitialOrientation,
		StrikeTest:  st.Predator.StrikeTest,
		LocalOutline: geom.Outline(cfg.Predator.BodyLength, cfg.Predator.BodyWidth,
			cfg.Predator.COMLength, cfg.Predator.OutlinePoints),
	}
	st.initialized = true
}

// refreshOutlines recomputes both arena-frame outlines from the current pose
// vector. This always happens before any agent logic so wall avoidance,
// detection, and capture geometry see the same tick's pose.
func (st *BehavioralState) refreshOutlines(pose *SimulationVector) {
	st.Prey.GlobalOutline = geom.BodyToGlobal(st.Prey.LocalOutline,
		pose.Prey.Orientation, pose.Prey.Pos)
	st.Predator.GlobalOutline = geom.BodyToGlobal(st.Predator.LocalOutline,
		pose.Predator.Orientation, pose.Predator.Pos)
	st.Prey.Orientation = pose.Prey.Orientation
	st.Predator.Orientation = pose.Predator.Orientation
}

// resolveStrikeTest returns the strike-test mode chosen for the run,
// defaulting an unset mode to deterministic with a warning. The default is
// persisted so the warning fires once.
func resolveStrikeTest(pred *PredatorState) (StrikeTest, error) {
	switch pred.StrikeTest {
	case StrikeTestUnset:
		slog.Warn("strike test mode unset, defaulting to deterministic")
		pred.StrikeTest = StrikeTestDeterministic
		return StrikeTestDeterministic, nil
	case StrikeTestDeterministic, StrikeTestProbabilistic:
		return pred.StrikeTest, nil
	}
	return 0, fmt.Errorf("behavior: unknown strike test mode %q", pred.StrikeTest)
}
