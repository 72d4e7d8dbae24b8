package behavior

import (
	"math"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
	"github.com/pthm-cable/pursuit/motion"
	"github.com/pthm-cable/pursuit/vision"
)

// predatorStep runs the predator priority chain for one tick:
// wall avoidance, then visual targeting, then foraging. The visual detector
// runs unconditionally first so the in-field clock stays current; wall
// avoidance then discards its result for the tick.
func predatorStep(cfg *config.Config, st *BehavioralState, now float64, pose *SimulationVector) {
	pred := &st.Predator
	pred.Speed = cfg.Predator.CruiseSpeed

	detectTarget(cfg, pred, st.Prey.GlobalOutline, now, pose)

	if turn, ok := wallAvoidance(cfg.Arena.Radius, cfg.Predator, pred.GlobalOutline, pose.Predator); ok {
		pred.TurnRate = turn
		pred.TargetBearing.Clear()
		pred.InFieldTime.Clear()
		pred.SaccadeClock = now
		pred.SaccadeActive = false
		return
	}

	if pred.TargetBearing.Set {
		targetingStep(cfg, pred, now, pose)
		return
	}

	turn, clock, dir, active := motion.Forage(cfg.Predator.Saccade,
		pred.SaccadeClock, now, pred.SaccadeDir, pred.SaccadeActive)
	pred.TurnRate = turn
	pred.SaccadeClock = clock
	pred.SaccadeDir = dir
	pred.SaccadeActive = active
}

// detectTarget updates the target bearing and in-field clock from the prey's
// arena-frame body outline.
func detectTarget(cfg *config.Config, pred *PredatorState, preyOutline []geom.Vec, now float64, pose *SimulationVector) {
	det := vision.Detect(cfg.Vision, cfg.Predator.FieldSize, now,
		pose.Predator.Pos, pose.Predator.Orientation, preyOutline,
		pred.InFieldTime.Value, pred.InFieldTime.Set)
	if det.InField {
		pred.InFieldTime = Some(det.InFieldTime)
	} else {
		pred.InFieldTime.Clear()
	}
	if det.Detected {
		pred.TargetBearing = Some(det.Bearing)
	} else {
		pred.TargetBearing.Clear()
	}
}

// targetingStep steers toward the current target bearing.
func targetingStep(cfg *config.Config, pred *PredatorState, now float64, pose *SimulationVector) {
	diff := geom.WrapAngle(pred.TargetBearing.Value - pose.Predator.Orientation)
	pred.TurnRate = diff / math.Pi * cfg.Predator.WallGain
	pred.SaccadeClock = now
	pred.SaccadeActive = false
}
