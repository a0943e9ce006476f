package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
)

// Half-block glyphs pack two LED rows into one terminal row.
const (
	blockNone   = ' '
	blockUpper  = '▀'
	blockLower  = '▄'
	blockFull   = '█'
	ledsPerCell = 2
)

// MatrixStyle colors lit LEDs with the foreground and dark LEDs with the
// background.
func MatrixStyle(on, off string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(on)).
		Background(lipgloss.Color(off))
}

// halfBlock picks the glyph for a pair of vertically stacked LEDs.
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return blockFull
	case top:
		return blockUpper
	case bottom:
		return blockLower
	default:
		return blockNone
	}
}

// RenderCanvas converts the LED matrix to styled terminal rows,
// canvas.Height/2 rows of canvas.Width cells.
func RenderCanvas(c *canvas.Canvas, style lipgloss.Style) string {
	var sb strings.Builder
	rows := canvas.Height / ledsPerCell
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(canvas.Width*rows*4 + rows)

	var row strings.Builder
	for y := 0; y < canvas.Height; y += ledsPerCell {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row.Reset()
		for x := range canvas.Width {
			row.WriteRune(halfBlock(c.Pixel(x, y), c.Pixel(x, y+1)))
		}
		// One style per row keeps escape sequences to a minimum.
		sb.WriteString(style.Render(row.String()))
	}
	return sb.String()
}
