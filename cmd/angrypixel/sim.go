package main

import (
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
	"github.com/vovakirdan/angry-pixel/internal/game"
)

var (
	flagSimLevel    int
	flagSimAngle    float64
	flagSimPower    float64
	flagSimMaxTicks int
	flagSimPNG      string
	flagSimPNGScale int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate a single throw and print the result",
	Long: `Runs one throw without a display and prints the outcome and the final
frame as ASCII art ('#' lit, '.' dark). The frame shows the world after the
throw, or the win/lose screen when the throw decided the level.

Examples:
  angrypixel sim --level 1 --angle 30 --power 5
  angrypixel sim --level 2 --angle 50 --power 6 --png throw.png`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level to throw on (1-based)")
	simCmd.Flags().Float64Var(&flagSimAngle, "angle", 45, "Throw angle in degrees")
	simCmd.Flags().Float64Var(&flagSimPower, "power", 4, "Throw power")
	simCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 3000, "Give up after this many ticks")
	simCmd.Flags().StringVar(&flagSimPNG, "png", "", "Also write the final frame to this PNG file")
	simCmd.Flags().IntVar(&flagSimPNGScale, "png-scale", 8, "PNG pixels per LED")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	index := flagSimLevel - 1
	if index < 0 || index >= cat.Len() {
		return fmt.Errorf("level %d out of range 1..%d", flagSimLevel, cat.Len())
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	sess := game.New(cat, cfg)
	sess.LoadLevel(index)

	aim := game.Aim{Angle: flagSimAngle * math.Pi / 180, Power: flagSimPower}
	res := sess.RunThrow(aim, flagSimMaxTicks)
	logger.Debug("throw finished", "state", res.State, "ticks", res.Ticks, "events", len(res.Events))

	c := canvas.New(make([]byte, canvas.BufferSize))
	sess.Render(c)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Level %d (%s): %s after %d ticks\n", index+1, sess.LevelName(), res.State, res.Ticks)
	fmt.Fprintf(out, "Targets left: %d  Pixels: %d/%d\n\n", sess.Targets(), sess.PixelsUsed(), sess.PixelsAvailable())
	fmt.Fprintln(out, c.String())

	if flagSimPNG != "" {
		if err := writePNG(c, flagSimPNG, flagSimPNGScale, cfg.Display.OnColor, cfg.Display.OffColor); err != nil {
			return err
		}
		logger.Info("frame written", "path", flagSimPNG)
	}
	return nil
}

// writePNG saves the frame using the configured LED colors.
func writePNG(c *canvas.Canvas, path string, scale int, onHex, offHex string) error {
	on, err := colorful.Hex(onHex)
	if err != nil {
		return fmt.Errorf("display.on_color %q: %w", onHex, err)
	}
	off, err := colorful.Hex(offHex)
	if err != nil {
		return fmt.Errorf("display.off_color %q: %w", offHex, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.EncodePNG(f, scale, on, off); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
