package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded): %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  steps_per_tick: 4\ntiming:\n  tick_rate: 60\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Physics.StepsPerTick != 4 {
		t.Errorf("StepsPerTick = %d, expected 4", cfg.Physics.StepsPerTick)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.Timing.TickRate)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != -0.01 {
		t.Errorf("Gravity = %v, expected default -0.01", cfg.Physics.Gravity)
	}
	if cfg.Timing.InputLockout != 10 {
		t.Errorf("InputLockout = %d, expected default 10", cfg.Timing.InputLockout)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero tick rate", "timing:\n  tick_rate: 0\n"},
		{"negative lockout", "timing:\n  input_lockout: -1\n"},
		{"zero steps", "physics:\n  steps_per_tick: 0\n"},
		{"zero still timeout", "physics:\n  still_timeout: 0\n"},
		{"zero scale", "display:\n  scale: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("physics: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("aim:\n  initial_power: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Aim.InitialPower != 6 {
		t.Errorf("InitialPower = %v, expected 6", cfg.Aim.InitialPower)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() = %v, expected a not-exist error", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	// Point HOME and the working directory at empty temp dirs
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}
