package game

import (
	"math"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
	"github.com/vovakirdan/angry-pixel/internal/config"
)

// edgeGap keeps a pixel bounced off the left or bottom face of a solid cell
// just outside that cell, so the next lookup does not land in it again.
const edgeGap = 0.1

// Projectile is the thrown pixel, in canvas space with y pointing up.
type Projectile struct {
	Alive  bool
	X, Y   float64
	VX, VY float64
}

// Hit describes a breakable cell the projectile destroyed.
type Hit struct {
	Row, Col int
	Cell     CellType
}

// integrate applies gravity and advances the position by one explicit
// Euler step.
func (p *Projectile) integrate(ph config.PhysicsConfig) {
	p.VY += ph.Gravity
	p.X += p.VX
	p.Y += p.VY
}

// bounceX reflects off a vertical surface.
func (p *Projectile) bounceX(ph config.PhysicsConfig) {
	p.VX = -p.VX * ph.BounceFrictionX
	p.VY *= ph.Friction
}

// bounceY reflects off a horizontal surface.
func (p *Projectile) bounceY(ph config.PhysicsConfig) {
	p.VY = -p.VY * ph.BounceFrictionY
	p.VX *= ph.Friction
}

// bounceWalls keeps the projectile between the side walls and above the
// ground. There is no ceiling.
func (p *Projectile) bounceWalls(ph config.PhysicsConfig) {
	const maxX = float64(canvas.Width - 1)

	if p.X < 0 {
		p.X = 0
		p.bounceX(ph)
	} else if p.X > maxX {
		p.X = maxX
		p.bounceX(ph)
	}

	if p.Y < 0 {
		p.Y = 0
		p.bounceY(ph)
	}
}

// cell maps the position to the grid cell under it.
// ok is false outside the grid's span.
func (p *Projectile) cell() (row, col int, ok bool) {
	if p.X < GridOffsetX || p.Y < 0 || p.Y > GridTop {
		return 0, 0, false
	}
	row = int(p.Y) / CellSize
	col = (int(p.X) - GridOffsetX) / CellSize
	if row >= GridRows || col >= GridCols {
		return 0, 0, false
	}
	return row, col, true
}

// bounceOffCell pushes the projectile out of a solid cell through the face
// it most likely entered, judged by the larger offset from the cell centre.
// Exact ties go to the top/bottom faces.
func (p *Projectile) bounceOffCell(row, col int, ph config.PhysicsConfig) {
	x0, y0 := CellOrigin(row, col)
	const half = CellSize / 2.0

	dx := p.X - (x0 + half)
	dy := p.Y - (y0 + half)

	if math.Abs(dx) > math.Abs(dy) {
		if dx < 0 {
			p.X = x0 - edgeGap
		} else {
			p.X = x0 + CellSize
		}
		p.bounceX(ph)
		return
	}

	if dy < 0 {
		p.Y = y0 - edgeGap
	} else {
		p.Y = y0 + CellSize
	}
	p.bounceY(ph)
}

// collide resolves contact with the grid. Solid cells bounce the projectile;
// a breakable cell is cleared and reported. ok is false when nothing
// breakable was hit.
func (p *Projectile) collide(g *Grid, ph config.PhysicsConfig) (hit Hit, ok bool) {
	row, col, inGrid := p.cell()
	if !inGrid {
		return Hit{}, false
	}

	switch cell := g[row][col]; cell {
	case CellSolid:
		p.bounceOffCell(row, col, ph)
	case CellBox, CellTarget:
		g[row][col] = CellEmpty
		return Hit{Row: row, Col: col, Cell: cell}, true
	}
	return Hit{}, false
}

// still reports whether both velocity components are below the threshold.
func (p *Projectile) still(ph config.PhysicsConfig) bool {
	return math.Abs(p.VX) < ph.StillThreshold && math.Abs(p.VY) < ph.StillThreshold
}
