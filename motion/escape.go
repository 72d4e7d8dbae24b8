package motion

import "github.com/pthm-cable/pursuit/config"

// Profile selects the kinematic shape of an escape maneuver.
type Profile uint8

const (
	// ProfileFull jumps to the escape speed as soon as the latency elapses.
	ProfileFull Profile = iota
	// ProfileRamp ramps speed linearly from the base speed to the escape
	// speed over the escape duration (reduced Weihs-style profile).
	ProfileRamp
)

// Escape returns the turning rate and speed of an escape in progress.
// onset is the trigger time; dir is the drawn escape direction and rate the
// drawn turning-rate magnitude. During the latency period the agent keeps
// its base speed and does not turn.
func Escape(now, onset float64, p config.EscapeConfig, baseSpeed, dir, rate float64, profile Profile) (turn, speed float64) {
	elapsed := now - onset
	if elapsed < p.Latency {
		return 0, baseSpeed
	}
	turn = dir * rate
	if profile == ProfileRamp {
		frac := (elapsed - p.Latency) / p.Duration
		if frac > 1 {
			frac = 1
		}
		return turn, baseSpeed + (p.Speed-baseSpeed)*frac
	}
	return turn, p.Speed
}
