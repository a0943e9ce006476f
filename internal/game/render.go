package game

import (
	"github.com/vovakirdan/angry-pixel/internal/assets"
	"github.com/vovakirdan/angry-pixel/internal/canvas"
)

// Screen layout. Canvas rows grow downward, world y grows upward.
const (
	screenBottom = canvas.Height - 1

	labelX, labelY = 2, 2
	levelNumberX   = 15
	labelGap       = 2
	pixelIconX     = 3
	pixelIconY     = 11
	throwCountX    = 6
	throwCountY    = 9
	arrowX, arrowY = 55, 7
)

// Render clears c and draws the current frame.
func (s *Session) Render(c *canvas.Canvas) {
	c.Clear()

	switch s.state {
	case StateWon:
		s.renderWon(c)
	case StateLost:
		s.renderLost(c)
	default:
		s.renderWorld(c)
	}
}

func (s *Session) renderWorld(c *canvas.Canvas) {
	const far = CellSize - 1

	for row := range s.grid {
		for col, cell := range s.grid[row] {
			x, y := CellOrigin(row, col)
			switch cell {
			case CellSolid:
				c.FillRect(x, screenBottom-y, x+far, screenBottom-(y+far))
			case CellBox:
				c.StrokeRect(x, screenBottom-y, x+far, screenBottom-(y+far))
			case CellTarget:
				drawTarget(c, int(x)+1, int(y)+1)
			}
		}
	}

	if p := s.projectile; p.Alive {
		c.SetPixel(int(p.X), screenBottom-int(p.Y))
	}

	if s.state == StateAim {
		c.SetPixel(int(s.aimX), screenBottom-int(s.aimY))
	}

	c.VLine(s.cfg.Aim.StartX, screenBottom-s.cfg.Aim.StartY, screenBottom)
}

// drawTarget draws a four-pixel diamond around world point (cx, cy).
func drawTarget(c *canvas.Canvas, cx, cy int) {
	c.SetPixel(cx-1, screenBottom-cy)
	c.SetPixel(cx, screenBottom-(cy+1))
	c.SetPixel(cx+1, screenBottom-cy)
	c.SetPixel(cx, screenBottom-(cy-1))
}

func (s *Session) renderWon(c *canvas.Canvas) {
	c.Blit(labelX, labelY, assets.LVL)
	// Deliberately 1-based: players see level 1, not catalog index 0.
	end := drawNumber(c, levelNumberX, labelY, s.level+1)
	c.Blit(end+labelGap, labelY, assets.Cleared)

	c.SetPixel(pixelIconX, pixelIconY)
	drawNumber(c, throwCountX, throwCountY, s.pixelsUsed)

	if s.HasNextLevel() {
		c.Blit(arrowX, arrowY, assets.Next)
	}
}

func (s *Session) renderLost(c *canvas.Canvas) {
	c.Blit(labelX, labelY, assets.Failed)
	c.Blit(arrowX, arrowY, assets.Retry)
}

// drawNumber draws n starting at x, with one blank column between digits,
// and returns the x just past the last digit. Negative n draws as 0.
func drawNumber(c *canvas.Canvas, x, y, n int) int {
	if n < 0 {
		n = 0
	}

	digits := 1
	for v := n / 10; v > 0; v /= 10 {
		digits++
	}
	end := x + digits*assets.DigitWidth + digits - 1

	dx := end
	for range digits {
		dx -= assets.DigitWidth
		c.Blit(dx, y, assets.Digits[n%10])
		dx--
		n /= 10
	}
	return end
}
