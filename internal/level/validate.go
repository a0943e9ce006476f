package level

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrUnknownObject  = errors.New("unknown object type")
	ErrCellOutOfRange = errors.New("cell out of range")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrNoTargets      = errors.New("level has no targets")
	ErrNoPixels       = errors.New("level has no pixels to throw")
)

// Validate checks a single level: every object inside the grid, at most one
// object per cell, at least one target and a positive throw budget.
func Validate(l Level) error {
	if l.Pixels <= 0 {
		return ErrNoPixels
	}

	var occupied [Rows][Cols]bool
	for _, o := range l.Objects {
		switch o.Type {
		case Solid, Box, Target:
		default:
			return fmt.Errorf("%v: %w", o, ErrUnknownObject)
		}
		if o.Row < 0 || o.Row >= Rows || o.Col < 0 || o.Col >= Cols {
			return fmt.Errorf("%v: %w", o, ErrCellOutOfRange)
		}
		if occupied[o.Row][o.Col] {
			return fmt.Errorf("%v: %w", o, ErrCellOccupied)
		}
		occupied[o.Row][o.Col] = true
	}

	if l.Targets() == 0 {
		return ErrNoTargets
	}
	return nil
}
