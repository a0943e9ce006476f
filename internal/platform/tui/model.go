package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/game"
	"github.com/vovakirdan/angry-pixel/internal/platform"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	hudStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for playing a session in the terminal.
type Model struct {
	session  *game.Session
	canvas   *canvas.Canvas
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	matrix   lipgloss.Style
	logger   *log.Logger
	buttons  core.Buttons // Pressed since the last tick
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	c := canvas.New(make([]byte, canvas.BufferSize))
	sess.Render(c)

	return Model{
		session: sess,
		canvas:  c,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		matrix:  MatrixStyle(cfg.OnColor, cfg.OffColor),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Terminals report presses, not held keys, so a key counts as held for the
// tick that follows it. Key repeat keeps a held key steering.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}

	if b, ok := m.keys.Button(msg); ok {
		m.buttons.Set(b)
	}
	return m, nil
}

// handleTick runs one session tick and renders the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Tick(m.buttons)
	platform.LogEvents(m.logger, res.Events)
	m.session.Render(m.canvas)

	// Clear input for next frame
	m.buttons.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as ASCII art under
// ~/.angrypixel/screenshots.
func (m Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}

	dir := filepath.Join(home, ".angrypixel", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.session.Level()+1, timestamp))
	if err := os.WriteFile(path, []byte(m.canvas.String()+"\n"), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// hud describes the session state below the matrix.
func (m Model) hud() string {
	s := m.session
	aim := s.Aim()

	parts := []string{
		fmt.Sprintf("LVL %d/%d %s", s.Level()+1, s.LevelCount(), s.LevelName()),
		fmt.Sprintf("PIXELS %d/%d", s.PixelsUsed(), s.PixelsAvailable()),
		fmt.Sprintf("TARGETS %d", s.Targets()),
		fmt.Sprintf("ANGLE %.0f°", aim.Angle*180/math.Pi),
		fmt.Sprintf("POWER %.1f", aim.Power),
		strings.ToUpper(s.State().String()),
	}
	return strings.Join(parts, "  ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("A N G R Y   P I X E L"))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(RenderCanvas(m.canvas, m.matrix)))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render(m.hud()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Run starts the Bubble Tea program for sess.
func Run(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(sess, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
