package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/game"
	"github.com/vovakirdan/angry-pixel/internal/registry"
)

// Display runs sessions in the terminal.
type Display struct{}

func init() {
	registry.Register("tui", func() registry.Display { return Display{} })
}

// ID returns the display identifier.
func (Display) ID() string { return "tui" }

// Title returns the display name.
func (Display) Title() string { return "Terminal (half-block LEDs)" }

// Run plays sess until the player quits.
func (Display) Run(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	return Run(sess, cfg, logger)
}
