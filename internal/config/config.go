// Package config provides YAML-based configuration for the game's physics,
// aiming, timing and display constants.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable constant of the game.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Aim     AimConfig     `yaml:"aim"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// PhysicsConfig defines the projectile simulation.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`           // Added to vy every step (negative pulls down)
	Friction        float64 `yaml:"friction"`          // Damping of the velocity along a hit surface
	BounceFrictionX float64 `yaml:"bounce_friction_x"` // Restitution off vertical surfaces
	BounceFrictionY float64 `yaml:"bounce_friction_y"` // Restitution off horizontal surfaces
	StepsPerTick    int     `yaml:"steps_per_tick"`
	StillThreshold  float64 `yaml:"still_threshold"` // Speed below which the pixel counts as still
	StillTimeout    int     `yaml:"still_timeout"`   // Consecutive still steps before it dies
}

// AimConfig defines the slingshot.
type AimConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	AngleSpeed   float64 `yaml:"angle_speed"` // Radians per tick while held
	PowerSpeed   float64 `yaml:"power_speed"` // Power units per tick while held
	PowerFactor  float64 `yaml:"power_factor"`
	InitialAngle float64 `yaml:"initial_angle"`
	InitialPower float64 `yaml:"initial_power"`
}

// TimingConfig defines the tick loop.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Ticks per second
	InputLockout int `yaml:"input_lockout"` // Ticks to ignore input after a level loads
}

// DisplayConfig defines how display drivers show the LED matrix.
type DisplayConfig struct {
	OnColor  string `yaml:"on_color"`
	OffColor string `yaml:"off_color"`
	Scale    int    `yaml:"scale"` // Window pixels per LED
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects values that would stall or break the tick loop.
func (c Config) Validate() error {
	switch {
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("timing.tick_rate must be positive, got %d: %w", c.Timing.TickRate, ErrInvalid)
	case c.Timing.InputLockout < 0:
		return fmt.Errorf("timing.input_lockout must not be negative, got %d: %w", c.Timing.InputLockout, ErrInvalid)
	case c.Physics.StepsPerTick <= 0:
		return fmt.Errorf("physics.steps_per_tick must be positive, got %d: %w", c.Physics.StepsPerTick, ErrInvalid)
	case c.Physics.StillTimeout <= 0:
		return fmt.Errorf("physics.still_timeout must be positive, got %d: %w", c.Physics.StillTimeout, ErrInvalid)
	case c.Display.Scale <= 0:
		return fmt.Errorf("display.scale must be positive, got %d: %w", c.Display.Scale, ErrInvalid)
	}
	return nil
}
