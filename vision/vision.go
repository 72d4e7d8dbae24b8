// Package vision implements the predator's visual detector: field-of-view
// gating over the target's body outline with temporal persistence.
package vision

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/geom"
)

// Detection is the detector output for one tick.
type Detection struct {
	Bearing     float64 // Arena-frame bearing toward the target
	Detected    bool    // Bearing is valid
	InFieldTime float64 // Time the target first entered the field
	InField     bool    // InFieldTime is valid
}

// Detect scans the target's arena-frame body outline from the observer's
// pose. A target point is in the field when it lies within fieldSize of the
// observer and within the angular aperture around its heading. The target is
// only reported (Detected) once it has been continuously in the field for
// the configured latency; priorInField/priorSet carry that persistence
// across ticks. Losing sight of the target clears both.
func Detect(cfg config.VisionConfig, fieldSize, now float64, pos geom.Vec, orientation float64, target []geom.Vec, priorInField float64, priorSet bool) Detection {
	halfAngle := cfg.FOVAngle / 2

	var sum geom.Vec
	visible := 0
	for _, p := range target {
		rel := r2.Sub(p, pos)
		r, th := geom.Polar(rel)
		if r >= fieldSize {
			continue
		}
		if math.Abs(geom.WrapAngle(th-orientation)) > halfAngle {
			continue
		}
		sum = r2.Add(sum, p)
		visible++
	}
	if visible == 0 {
		return Detection{}
	}

	inField := now
	if priorSet {
		inField = priorInField
	}
	det := Detection{InFieldTime: inField, InField: true}
	if now-inField >= cfg.Latency {
		centroid := r2.Scale(1/float64(visible), sum)
		det.Bearing = math.Atan2(centroid.Y-pos.Y, centroid.X-pos.X)
		det.Detected = true
	}
	return det
}
