package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/angrypixel.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:         -0.01,
			Friction:        0.95,
			BounceFrictionX: 0.8,
			BounceFrictionY: 0.0, // The floor absorbs vertical bounces
			StepsPerTick:    2,
			StillThreshold:  0.01,
			StillTimeout:    60,
		},
		Aim: AimConfig{
			StartX:       6,
			StartY:       5,
			AngleSpeed:   0.05,
			PowerSpeed:   0.1,
			PowerFactor:  0.15,
			InitialAngle: math.Pi / 4,
			InitialPower: 4,
		},
		Timing: TimingConfig{
			TickRate:     30,
			InputLockout: 10,
		},
		Display: DisplayConfig{
			OnColor:  "#ff4030",
			OffColor: "#2a0c0a",
			Scale:    12,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
