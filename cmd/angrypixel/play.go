package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/angry-pixel/internal/game"
	"github.com/vovakirdan/angry-pixel/internal/registry"
)

var (
	flagDisplay string
	flagLevel   int
)

var errNoTTY = errors.New("the terminal display needs an interactive terminal")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the levels in order",
	Long: `Start playing from the chosen level. Clearing a level shows the next
arrow; press throw to continue.

Controls:
  Up/Down, W/S      - Raise/lower the angle
  Right/Left, D/A   - More/less power
  Space/Enter       - Throw, next level, retry
  Q/Esc             - Quit

Examples:
  angrypixel play
  angrypixel play --level 4
  angrypixel play --display window
  angrypixel play --debug --log-file angrypixel.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDisplay, "display", "tui", "Display driver (see 'angrypixel displays')")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from (1-based)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	return play(flagDisplay, flagLevel-1)
}

// play runs display on a new session starting at level index start.
func play(displayID string, start int) error {
	if !registry.Exists(displayID) {
		return fmt.Errorf("unknown display %q, run 'angrypixel displays' to see the list", displayID)
	}

	fullScreen := displayID == "tui"
	if fullScreen && !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if start < 0 || start >= cat.Len() {
		return fmt.Errorf("level %d out of range 1..%d", start+1, cat.Len())
	}

	logger, closeLog, err := newLogger(fullScreen)
	if err != nil {
		return err
	}
	defer closeLog()

	display, err := registry.Create(displayID)
	if err != nil {
		return err
	}

	sess := game.New(cat, cfg)
	sess.LoadLevel(start)

	logger.Debug("starting", "display", displayID, "level", start+1, "tick_rate", cfg.Timing.TickRate)
	if err := display.Run(sess, runtimeConfig(cfg), logger); err != nil {
		return fmt.Errorf("run %s display: %w", displayID, err)
	}
	return nil
}
