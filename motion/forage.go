// Package motion implements the locomotor pattern generators the behavior
// models delegate to: the foraging saccade cycle and the escape maneuver.
package motion

import "github.com/pthm-cable/pursuit/config"

// Forage advances the periodic saccade cycle by one tick and returns the
// resulting turning rate together with the updated saccade bookkeeping.
//
// While idle, clock marks the end of the previous saccade (or the last
// reset); a new saccade starts once a full interval has elapsed, and the
// clock then marks its onset. Direction alternates between saccades.
func Forage(p config.SaccadeConfig, clock, now, dir float64, active bool) (turn, clockOut, dirOut float64, activeOut bool) {
	if active {
		if now-clock >= p.Duration {
			// Saccade over; next one is timed from its end.
			return 0, now, -dir, false
		}
		return dir * p.TurnRate, clock, dir, true
	}
	if now-clock >= p.Interval {
		return dir * p.TurnRate, now, dir, true
	}
	return 0, clock, dir, false
}
