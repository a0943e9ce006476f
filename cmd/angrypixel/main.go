// angrypixel is a dot-matrix slingshot puzzle: throw a pixel at the targets
// on a 64x16 LED display.
//
// Usage:
//
//	angrypixel play             - Play from the first level
//	angrypixel menu             - Pick a level interactively
//	angrypixel levels           - List the level catalog
//	angrypixel sim              - Simulate one throw headlessly
//	angrypixel displays         - List display drivers
//
// Global flags:
//
//	--config <path>    - Config YAML (default search: ~/.angrypixel, ./configs, embedded)
//	--fps <rate>       - Override the tick rate
//	--log-file <path>  - Write logs to a file
//	--debug            - Log every game event
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/angry-pixel/internal/config"
	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/level"

	// Import displays to register them
	_ "github.com/vovakirdan/angry-pixel/internal/platform/tui"
	_ "github.com/vovakirdan/angry-pixel/internal/platform/window"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "angrypixel",
	Short: "Angry Pixel - a slingshot puzzle on a 64x16 LED matrix",
	Long: `Angry Pixel is a slingshot puzzle played on a 64x16 dot-matrix display.
Aim, set the power and throw your pixel to knock out every target before
your pixels run out.

Available commands:
  play      - Play the levels in order
  menu      - Pick a level interactively
  levels    - Show the level catalog
  sim       - Simulate a single throw and print the result
  displays  - Show the available display drivers

Examples:
  angrypixel play
  angrypixel play --display window --level 3
  angrypixel sim --level 1 --angle 30 --power 5
  angrypixel levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(displaysCmd)
}

// loadConfig loads the game configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS != 0 {
		cfg.Timing.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, nil
}

// loadCatalog returns the built-in level catalog.
func loadCatalog() (*level.Catalog, error) {
	cat := level.Builtin()
	if cat.Len() == 0 {
		return nil, errors.New("no levels available")
	}
	return cat, nil
}

// runtimeConfig extracts what display drivers need.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: cfg.Timing.TickRate,
		Scale:    cfg.Display.Scale,
		OnColor:  cfg.Display.OnColor,
		OffColor: cfg.Display.OffColor,
	}
}

// newLogger builds the CLI logger. Logs go to --log-file when set; otherwise
// to stderr, unless quiet is set because a full-screen display owns the
// terminal. The returned close function must be called when done.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	var (
		out      io.Writer = os.Stderr
		closeLog           = func() {}
	)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "angrypixel",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeLog, nil
}
