package behavior

import "fmt"

// SimMode selects the per-tick update variant.
type SimMode uint8

const (
	// ModeDefault runs the full prey and predator models plus the strike model.
	ModeDefault SimMode = iota
	// ModeWeihs runs the simplified combined update with no strike.
	ModeWeihs
	// ModeWeihsAccel is ModeWeihs with a linear speed ramp during escapes.
	ModeWeihsAccel
	// ModeWeihsCaptureCheck adds visual targeting and the deterministic
	// strike model to the simplified update.
	ModeWeihsCaptureCheck
	// ModeSimpleStrike runs the accelerated simplified update and terminates
	// the run once a started strike exceeds its duration.
	ModeSimpleStrike
)

// ParseSimMode maps the CLI mode literal to a SimMode. Unknown literals are
// an error; the run must not start.
func ParseSimMode(s string) (SimMode, error) {
	switch s {
	case "default":
		return ModeDefault, nil
	case "weihs":
		return ModeWeihs, nil
	case "weihs-with-acceleration":
		return ModeWeihsAccel, nil
	case "weihs-with-capture-check":
		return ModeWeihsCaptureCheck, nil
	case "simple-strike":
		return ModeSimpleStrike, nil
	}
	return 0, fmt.Errorf("behavior: unknown simulation mode %q", s)
}

// String returns the CLI literal for the mode.
func (m SimMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeWeihs:
		return "weihs"
	case ModeWeihsAccel:
		return "weihs-with-acceleration"
	case ModeWeihsCaptureCheck:
		return "weihs-with-capture-check"
	case ModeSimpleStrike:
		return "simple-strike"
	}
	return fmt.Sprintf("SimMode(%d)", uint8(m))
}

// StrikeTest selects how the capture radius is tested during a strike.
type StrikeTest uint8

const (
	// StrikeTestUnset defaults to deterministic with a warning.
	StrikeTestUnset StrikeTest = iota
	// StrikeTestDeterministic tests against the instantaneous reach directly.
	StrikeTestDeterministic
	// StrikeTestProbabilistic scales the reach by a halved chi-squared draw.
	StrikeTestProbabilistic
)

// ParseStrikeTest maps a config/CLI literal to a StrikeTest. The empty
// string is the unset mode.
func ParseStrikeTest(s string) (StrikeTest, error) {
	switch s {
	case "":
		return StrikeTestUnset, nil
	case "deterministic":
		return StrikeTestDeterministic, nil
	case "probabilistic":
		return StrikeTestProbabilistic, nil
	}
	return 0, fmt.Errorf("behavior: unknown strike test mode %q", s)
}

// String returns the config literal for the strike-test mode.
func (t StrikeTest) String() string {
	switch t {
	case StrikeTestUnset:
		return "unset"
	case StrikeTestDeterministic:
		return "deterministic"
	case StrikeTestProbabilistic:
		return "probabilistic"
	}
	return fmt.Sprintf("StrikeTest(%d)", uint8(t))
}
