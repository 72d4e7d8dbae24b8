package motion

import (
	"math"
	"testing"

	"github.com/pthm-cable/pursuit/config"
)

var saccadeCfg = config.SaccadeConfig{Interval: 1.0, Duration: 0.15, TurnRate: 3.0}

func TestForageIdleBetweenSaccades(t *testing.T) {
	turn, clock, dir, active := Forage(saccadeCfg, 0, 0.5, 1, false)
	if turn != 0 || active {
		t.Errorf("expected straight swimming, got turn=%f active=%v", turn, active)
	}
	if clock != 0 || dir != 1 {
		t.Errorf("bookkeeping changed while idle: clock=%f dir=%f", clock, dir)
	}
}

func TestForageStartsSaccadeAfterInterval(t *testing.T) {
	turn, clock, dir, active := Forage(saccadeCfg, 0, 1.0, 1, false)
	if !active {
		t.Fatal("saccade should start at the interval boundary")
	}
	if turn != saccadeCfg.TurnRate {
		t.Errorf("saccade turn wrong: got %f, want %f", turn, saccadeCfg.TurnRate)
	}
	if clock != 1.0 || dir != 1 {
		t.Errorf("onset bookkeeping wrong: clock=%f dir=%f", clock, dir)
	}
}

func TestForageSaccadeEndsAndAlternates(t *testing.T) {
	// Mid-saccade: still turning.
	turn, _, _, active := Forage(saccadeCfg, 1.0, 1.05, -1, true)
	if !active || turn != -saccadeCfg.TurnRate {
		t.Errorf("mid-saccade wrong: turn=%f active=%v", turn, active)
	}

	// Past the duration: saccade ends, direction flips.
	turn, clock, dir, active := Forage(saccadeCfg, 1.0, 1.15, -1, true)
	if active || turn != 0 {
		t.Errorf("saccade should end: turn=%f active=%v", turn, active)
	}
	if dir != 1 {
		t.Errorf("direction should alternate: got %f", dir)
	}
	if clock != 1.15 {
		t.Errorf("clock should mark saccade end: got %f", clock)
	}
}

var escapeCfg = config.EscapeConfig{
	Distance: 0.02,
	Latency:  0.01,
	Duration: 0.3,
	Speed:    0.1,
	TurnRate: 25,
}

func TestEscapeLatency(t *testing.T) {
	turn, speed := Escape(0.005, 0, escapeCfg, 0.012, 1, 24, ProfileFull)
	if turn != 0 {
		t.Errorf("no turning during latency: got %f", turn)
	}
	if speed != 0.012 {
		t.Errorf("base speed during latency: got %f", speed)
	}
}

func TestEscapeFullProfile(t *testing.T) {
	turn, speed := Escape(0.02, 0, escapeCfg, 0.012, -1, 24, ProfileFull)
	if turn != -24 {
		t.Errorf("escape turn wrong: got %f, want -24", turn)
	}
	if speed != escapeCfg.Speed {
		t.Errorf("full profile should jump to escape speed: got %f", speed)
	}
}

func TestEscapeRampProfile(t *testing.T) {
	base := 0.012

	// At motor onset the ramp starts from the base speed.
	_, speed := Escape(escapeCfg.Latency, 0, escapeCfg, base, 1, 24, ProfileRamp)
	if math.Abs(speed-base) > 1e-12 {
		t.Errorf("ramp start wrong: got %f, want %f", speed, base)
	}

	// Halfway through the duration the ramp is halfway up.
	mid := escapeCfg.Latency + escapeCfg.Duration/2
	want := base + (escapeCfg.Speed-base)/2
	_, speed = Escape(mid, 0, escapeCfg, base, 1, 24, ProfileRamp)
	if math.Abs(speed-want) > 1e-12 {
		t.Errorf("ramp midpoint wrong: got %f, want %f", speed, want)
	}

	// The ramp saturates at the escape speed.
	_, speed = Escape(escapeCfg.Latency+2*escapeCfg.Duration, 0, escapeCfg, base, 1, 24, ProfileRamp)
	if speed != escapeCfg.Speed {
		t.Errorf("ramp should saturate: got %f", speed)
	}
}
