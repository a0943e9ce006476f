// Package window provides the Ebitengine display driver: the LED matrix in a
// desktop window, sampled keyboard state as input.
package window

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/game"
	"github.com/vovakirdan/angry-pixel/internal/platform"
	"github.com/vovakirdan/angry-pixel/internal/registry"
)

// ledGap is the unlit border around each LED, in window pixels.
const ledGap = 1

var background = color.RGBA{R: 8, G: 4, B: 4, A: 255}

// keyBindings maps each button to the keys that hold it.
var keyBindings = []struct {
	button core.Button
	keys   []ebiten.Key
}{
	{core.ButtonAngleUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ButtonAngleDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ButtonPowerUp, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ButtonPowerDown, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ButtonThrow, []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}},
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *game.Session
	canvas  *canvas.Canvas
	scale   int
	on, off color.Color
	logger  *log.Logger
	level   int
}

// NewGame creates the ebiten adapter for sess.
func NewGame(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	on, err := parseColor(cfg.OnColor)
	if err != nil {
		return nil, err
	}
	off, err := parseColor(cfg.OffColor)
	if err != nil {
		return nil, err
	}
	if cfg.Scale <= ledGap*2 {
		return nil, fmt.Errorf("window: scale %d too small for LED gaps", cfg.Scale)
	}

	c := canvas.New(make([]byte, canvas.BufferSize))
	sess.Render(c)

	return &Game{
		session: sess,
		canvas:  c,
		scale:   cfg.Scale,
		on:      on,
		off:     off,
		logger:  logger,
		level:   -1,
	}, nil
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("window: color %q: %w", hex, err)
	}
	return c, nil
}

// buttons samples the held keys.
func buttons(pressed func(ebiten.Key) bool) core.Buttons {
	var b core.Buttons
	for _, kb := range keyBindings {
		for _, k := range kb.keys {
			if pressed(k) {
				b.Set(kb.button)
				break
			}
		}
	}
	return b
}

// Update runs one session tick. Ebitengine calls it at the configured TPS.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	res := g.session.Tick(buttons(ebiten.IsKeyPressed))
	platform.LogEvents(g.logger, res.Events)
	g.session.Render(g.canvas)

	if lvl := g.session.Level(); lvl != g.level {
		g.level = lvl
		ebiten.SetWindowTitle(fmt.Sprintf("Angry Pixel - %d. %s", lvl+1, g.session.LevelName()))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := clipboard.WriteAll(g.canvas.String()); err != nil {
			g.logger.Warn("could not copy frame", "error", err)
		} else {
			g.logger.Info("frame copied to clipboard")
		}
	}

	return nil
}

// Draw paints every LED, lit or dark.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	size := float32(g.scale - ledGap*2)
	for y := range canvas.Height {
		for x := range canvas.Width {
			col := g.off
			if g.canvas.Pixel(x, y) {
				col = g.on
			}
			px := float32(x*g.scale + ledGap)
			py := float32(y*g.scale + ledGap)
			vector.FillRect(screen, px, py, size, size, col, false)
		}
	}
}

// Layout fixes the logical screen to the scaled matrix.
func (g *Game) Layout(_, _ int) (int, int) {
	return canvas.Width * g.scale, canvas.Height * g.scale
}

// Run opens the window and plays sess until it is closed.
func Run(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	g, err := NewGame(sess, cfg, logger)
	if err != nil {
		return err
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Angry Pixel")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Display runs sessions in a desktop window.
type Display struct{}

func init() {
	registry.Register("window", func() registry.Display { return Display{} })
}

// ID returns the display identifier.
func (Display) ID() string { return "window" }

// Title returns the display name.
func (Display) Title() string { return "Desktop window (Ebitengine)" }

// Run plays sess until the window closes.
func (Display) Run(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	return Run(sess, cfg, logger)
}
