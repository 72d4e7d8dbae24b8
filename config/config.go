// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation parameters for one run. It is loaded once and
// treated as immutable afterwards.
type Config struct {
	Arena    ArenaConfig   `yaml:"arena"`
	Physics  PhysicsConfig `yaml:"physics"`
	Prey     AgentConfig   `yaml:"prey"`
	Predator AgentConfig   `yaml:"predator"`
	Escape   EscapeConfig  `yaml:"escape"`
	Strike   StrikeConfig  `yaml:"strike"`
	Vision   VisionConfig  `yaml:"vision"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig holds the circular arena geometry.
type ArenaConfig struct {
	Radius float64 `yaml:"radius"` // Arena radius in meters
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // Integration timestep in seconds
}

// Position is a 2-D point in the arena frame.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AgentConfig holds the per-agent body, sensory, and locomotion parameters.
type AgentConfig struct {
	FieldSize          float64       `yaml:"field_size"`          // Sensory field radius; also the wall-avoidance margin
	BodyLength         float64       `yaml:"body_length"`         // Snout-to-tail length
	BodyWidth          float64       `yaml:"body_width"`          // Maximum body width
	COMLength          float64       `yaml:"com_length"`          // Snout to center-of-mass distance
	OutlinePoints      int           `yaml:"outline_points"`      // Points in the body outline
	CruiseSpeed        float64       `yaml:"cruise_speed"`        // Baseline swimming speed
	WallGain           float64       `yaml:"wall_gain"`           // Wall-avoidance (and targeting) turning gain
	InitialOrientation float64       `yaml:"initial_orientation"` // Heading at t=0, radians
	InitialPosition    Position      `yaml:"initial_position"`    // Arena-frame position at t=0
	Saccade            SaccadeConfig `yaml:"saccade"`
}

// SaccadeConfig holds the foraging saccade parameters.
type SaccadeConfig struct {
	Interval float64 `yaml:"interval"`  // Seconds of straight swimming between saccades
	Duration float64 `yaml:"duration"`  // Length of one saccadic turn
	TurnRate float64 `yaml:"turn_rate"` // Turning rate during a saccade, rad/s
}

// EscapeConfig holds the prey escape-response parameters.
type EscapeConfig struct {
	Distance float64 `yaml:"distance"`  // Predator distance that triggers an escape
	Latency  float64 `yaml:"latency"`   // Delay between trigger and motor onset
	Duration float64 `yaml:"duration"`  // Length of the escape maneuver after latency
	Speed    float64 `yaml:"speed"`     // Burst speed during the escape
	TurnRate float64 `yaml:"turn_rate"` // Mean escape turning-rate magnitude, rad/s
}

// StrikeConfig holds the predator strike parameters.
type StrikeConfig struct {
	TriggerDistance float64 `yaml:"trigger_distance"` // Prey distance that starts a strike
	Duration        float64 `yaml:"duration"`         // Length of one strike attempt
	Reach           float64 `yaml:"reach"`            // Configured reach scale of the suction zone
	Range           float64 `yaml:"range"`            // Angular width of the capture zone, radians
	FanPoints       int     `yaml:"fan_points"`       // Points on the suction-zone boundary fan
	Test            string  `yaml:"test"`             // "deterministic", "probabilistic", or empty
}

// VisionConfig holds the predator visual-detection parameters.
type VisionConfig struct {
	FOVAngle float64 `yaml:"fov_angle"` // Full angular aperture of the visual field, radians
	Latency  float64 `yaml:"latency"`   // In-field time required before a target is reported
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	StrikeHalfRange float64 // Strike.Range / 2
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.StrikeHalfRange = c.Strike.Range / 2
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
