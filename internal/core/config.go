package core

// RuntimeConfig contains what a display driver needs to run a session.
type RuntimeConfig struct {
	TickRate int    // Session ticks per second
	Scale    int    // Window pixels per LED (window driver only)
	OnColor  string // Lit LED color, hex
	OffColor string // Dark LED color, hex
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 30,
		Scale:    12,
		OnColor:  "#ff4030",
		OffColor: "#2a0c0a",
	}
}
