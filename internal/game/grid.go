// Package game implements the Angry Pixel simulation: the world grid, the
// projectile physics, the aim/throw/settle state machine and the renderer.
// It is deterministic and UI-agnostic; display drivers call Session.Tick
// at a fixed rate and read the canvas it renders into.
package game

import (
	"fmt"

	"github.com/vovakirdan/angry-pixel/internal/canvas"
	"github.com/vovakirdan/angry-pixel/internal/level"
)

// World geometry in canvas pixels. The grid occupies the right half of the
// display; y grows upward from the ground.
const (
	GridRows    = level.Rows
	GridCols    = level.Cols
	CellSize    = 3
	GridOffsetX = canvas.Width / 2
	GridTop     = GridRows * CellSize
)

// CellType is the content of one grid cell.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellSolid
	CellBox
	CellTarget
)

// String returns a human-readable name for the cell type.
func (c CellType) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellSolid:
		return "Solid"
	case CellBox:
		return "Box"
	case CellTarget:
		return "Target"
	default:
		return "Unknown"
	}
}

// Breakable reports whether the projectile destroys this cell on contact.
// Breakable cells are also the ones affected by gravity.
func (c CellType) Breakable() bool {
	return c == CellBox || c == CellTarget
}

func cellTypeFor(t level.ObjectType) CellType {
	switch t {
	case level.Solid:
		return CellSolid
	case level.Box:
		return CellBox
	case level.Target:
		return CellTarget
	default:
		return CellEmpty
	}
}

// Grid holds the world cells indexed [row][col]; row 0 is the bottom row.
type Grid [GridRows][GridCols]CellType

// Reset empties every cell.
func (g *Grid) Reset() {
	*g = Grid{}
}

// Stamp resets the grid and places every object of l.
// Two objects in one cell means the level data is malformed, which panics.
func (g *Grid) Stamp(l level.Level) {
	g.Reset()
	for _, o := range l.Objects {
		if !g.InBounds(o.Row, o.Col) {
			panic(fmt.Sprintf("game: %v is outside the grid", o))
		}
		if g[o.Row][o.Col] != CellEmpty {
			panic(fmt.Sprintf("game: %v overlaps a %v cell", o, g[o.Row][o.Col]))
		}
		g[o.Row][o.Col] = cellTypeFor(o.Type)
	}
}

// InBounds reports whether (row, col) is a grid cell.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < GridRows && col >= 0 && col < GridCols
}

// At returns the cell at (row, col), or CellEmpty outside the grid.
func (g Grid) At(row, col int) CellType {
	if !g.InBounds(row, col) {
		return CellEmpty
	}
	return g[row][col]
}

// Count returns the number of cells of type t.
func (g Grid) Count(t CellType) int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if g[row][col] == t {
				n++
			}
		}
	}
	return n
}

// Settle runs one gravity pass and reports whether anything moved.
//
// Cells are visited bottom row first, left to right. A breakable cell drops
// one row when the cell below is empty. Because a drop vacates its cell before
// the row above is visited, a stacked column moves down together in a single
// pass, while each object still falls at most one row per call.
func (g *Grid) Settle() bool {
	moved := false
	for row := 1; row < GridRows; row++ {
		for col := 0; col < GridCols; col++ {
			if g[row][col].Breakable() && g[row-1][col] == CellEmpty {
				g[row-1][col] = g[row][col]
				g[row][col] = CellEmpty
				moved = true
			}
		}
	}
	return moved
}

// CellOrigin returns the canvas-space bottom-left corner of a cell.
func CellOrigin(row, col int) (x, y float64) {
	return float64(GridOffsetX + col*CellSize), float64(row * CellSize)
}
