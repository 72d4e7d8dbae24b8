package behavior

import (
	"math"
	"testing"
)

func TestTargetingTurn(t *testing.T) {
	cfg, st, _ := testSetup(t)

	// Prey ahead-left of a predator facing +X, well inside the field.
	pose := posed(st, &SimulationVector{
		Prey:     Pose{Pos: pt(0.03, 0.01), Orientation: 0},
		Predator: Pose{Pos: pt(0, 0), Orientation: 0},
	})

	// Prime the in-field clock so the visual latency has elapsed.
	st.Predator.InFieldTime = Some(0)
	now := cfg.Vision.Latency + 0.01
	predatorStep(cfg, st, now, pose)

	if !st.Predator.TargetBearing.Set {
		t.Fatal("target should be detected")
	}
	wantBearing := math.Atan2(0.01, 0.03)
	if math.Abs(st.Predator.TargetBearing.Value-wantBearing) > 0.05 {
		t.Errorf("target bearing wrong: got %f, want about %f",
			st.Predator.TargetBearing.Value, wantBearing)
	}
	wantTurn := st.Predator.TargetBearing.Value / math.Pi * cfg.Predator.WallGain
	if math.Abs(st.Predator.TurnRate-wantTurn) > 1e-12 {
		t.Errorf("targeting turn wrong: got %f, want %f", st.Predator.TurnRate, wantTurn)
	}
	if st.Predator.SaccadeActive {
		t.Error("targeting must clear saccade state")
	}
	if st.Predator.Speed != cfg.Predator.CruiseSpeed {
		t.Errorf("predator speed must stay at cruise: got %f", st.Predator.Speed)
	}
}

func TestWallAvoidanceClearsTarget(t *testing.T) {
	cfg, st, _ := testSetup(t)

	// Predator past the wall threshold with a previously tracked target.
	x := cfg.Arena.Radius - cfg.Predator.FieldSize
	pose := posed(st, &SimulationVector{
		Prey:     Pose{Pos: pt(x - 0.01, 0), Orientation: 0},
		Predator: Pose{Pos: pt(x, 0), Orientation: 0},
	})
	st.Predator.TargetBearing = Some(0.3)
	st.Predator.InFieldTime = Some(0)

	predatorStep(cfg, st, 1.0, pose)

	if st.Predator.TargetBearing.Set {
		t.Error("wall avoidance must clear the visual target")
	}
	if st.Predator.InFieldTime.Set {
		t.Error("wall avoidance must clear the in-field time")
	}
	if st.Predator.SaccadeActive || st.Predator.SaccadeClock != 1.0 {
		t.Errorf("wall avoidance must reset saccade state: active=%v clock=%f",
			st.Predator.SaccadeActive, st.Predator.SaccadeClock)
	}
	if st.Predator.TurnRate == 0 {
		t.Error("wall avoidance should be turning the predator")
	}
}

func TestPredatorForagesWithoutTarget(t *testing.T) {
	cfg, st, _ := testSetup(t)

	// Prey far outside the visual field, predator away from the wall.
	pose := posed(st, &SimulationVector{
		Prey:     Pose{Pos: pt(-0.1, 0.1), Orientation: 0},
		Predator: Pose{Pos: pt(0.05, 0), Orientation: 0},
	})

	predatorStep(cfg, st, cfg.Predator.Saccade.Interval, pose)

	if st.Predator.TargetBearing.Set {
		t.Error("no target should be detected")
	}
	if !st.Predator.SaccadeActive {
		t.Fatal("predator should start a foraging saccade")
	}
	want := st.Predator.SaccadeDir * cfg.Predator.Saccade.TurnRate
	if st.Predator.TurnRate != want {
		t.Errorf("foraging turn wrong: got %f, want %f", st.Predator.TurnRate, want)
	}
}

func TestDetectionNeedsLatency(t *testing.T) {
	cfg, st, _ := testSetup(t)

	pose := posed(st, &SimulationVector{
		Prey:     Pose{Pos: pt(0.03, 0), Orientation: 0},
		Predator: Pose{Pos: pt(0, 0), Orientation: 0},
	})

	// First sighting: the in-field clock starts but no bearing is reported.
	predatorStep(cfg, st, 0.5, pose)
	if !st.Predator.InFieldTime.Set {
		t.Fatal("prey should be in the visual field")
	}
	if st.Predator.TargetBearing.Set {
		t.Error("bearing must not be reported before the visual latency")
	}

	// After the latency the predator locks on.
	predatorStep(cfg, st, 0.5+cfg.Vision.Latency, pose)
	if !st.Predator.TargetBearing.Set {
		t.Error("bearing should be reported once the latency has elapsed")
	}
}
