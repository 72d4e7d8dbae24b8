package vision

import (
	"math"
	"testing"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
)

var visionCfg = config.VisionConfig{FOVAngle: math.Pi, Latency: 0.05}

const fieldSize = 0.05

func TestDetectOutOfRange(t *testing.T) {
	target := []geom.Vec{{X: 1, Y: 0}}
	det := Detect(visionCfg, fieldSize, 0, geom.Vec{}, 0, target, 0, false)
	if det.InField || det.Detected {
		t.Errorf("distant target should not be seen: %+v", det)
	}
}

func TestDetectBehindObserver(t *testing.T) {
	target := []geom.Vec{{X: -0.01, Y: 0}}
	det := Detect(visionCfg, fieldSize, 0, geom.Vec{}, 0, target, 0, false)
	if det.InField || det.Detected {
		t.Errorf("target behind the observer should not be seen: %+v", det)
	}
}

func TestDetectLatencyGating(t *testing.T) {
	target := []geom.Vec{{X: 0.01, Y: 0}}

	// First sighting: in field, not yet reported.
	det := Detect(visionCfg, fieldSize, 1.0, geom.Vec{}, 0, target, 0, false)
	if !det.InField {
		t.Fatal("target should be in field")
	}
	if det.InFieldTime != 1.0 {
		t.Errorf("in-field time should be first sighting: got %f", det.InFieldTime)
	}
	if det.Detected {
		t.Error("target should not be reported before the latency elapses")
	}

	// Persistence carries the original entry time.
	det = Detect(visionCfg, fieldSize, 1.02, geom.Vec{}, 0, target, det.InFieldTime, det.InField)
	if det.InFieldTime != 1.0 || det.Detected {
		t.Errorf("persistence wrong before latency: %+v", det)
	}

	// After the latency the bearing is reported.
	det = Detect(visionCfg, fieldSize, 1.05, geom.Vec{}, 0, target, det.InFieldTime, det.InField)
	if !det.Detected {
		t.Fatal("target should be reported after the latency")
	}
	if math.Abs(det.Bearing) > 1e-12 {
		t.Errorf("bearing wrong: got %f, want 0", det.Bearing)
	}
}

func TestDetectLostTargetClearsPersistence(t *testing.T) {
	target := []geom.Vec{{X: 1, Y: 0}}
	det := Detect(visionCfg, fieldSize, 2.0, geom.Vec{}, 0, target, 1.0, true)
	if det.InField || det.Detected {
		t.Errorf("losing the target should clear persistence: %+v", det)
	}
}

func TestDetectBearing(t *testing.T) {
	// Target up and to the right of an observer facing +X.
	target := []geom.Vec{{X: 0.01, Y: 0.01}}
	cfg := config.VisionConfig{FOVAngle: math.Pi, Latency: 0}
	det := Detect(cfg, fieldSize, 0, geom.Vec{}, 0, target, 0, false)
	if !det.Detected {
		t.Fatal("target should be detected with zero latency")
	}
	if math.Abs(det.Bearing-math.Pi/4) > 1e-12 {
		t.Errorf("bearing wrong: got %f, want %f", det.Bearing, math.Pi/4)
	}
}

func TestDetectObserverOffset(t *testing.T) {
	// Observer away from the origin, facing -X; target ahead of it.
	pos := geom.Vec{X: 0.1, Y: 0}
	target := []geom.Vec{{X: 0.08, Y: 0}}
	cfg := config.VisionConfig{FOVAngle: math.Pi, Latency: 0}
	det := Detect(cfg, fieldSize, 0, pos, math.Pi, target, 0, false)
	if !det.Detected {
		t.Fatal("target ahead should be detected")
	}
	if math.Abs(math.Abs(det.Bearing)-math.Pi) > 1e-9 {
		t.Errorf("bearing wrong: got %f, want ±pi", det.Bearing)
	}
}
