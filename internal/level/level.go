// Package level describes the puzzle layouts: which objects sit in which
// grid cell and how many pixels the player may throw.
// Levels are static data; nothing in this package is mutated after load.
package level

import (
	"fmt"
	"strings"
)

// Grid dimensions shared by every level.
const (
	Rows = 5
	Cols = 10
)

// ObjectType is the kind of a placed object.
type ObjectType int

const (
	Solid  ObjectType = iota + 1 // Indestructible wall, the pixel bounces off
	Box                          // Breakable, falls when unsupported
	Target                       // Breakable, falls, must all be destroyed to win
)

// String returns the lowercase name used in level files.
func (t ObjectType) String() string {
	switch t {
	case Solid:
		return "solid"
	case Box:
		return "box"
	case Target:
		return "target"
	default:
		return "unknown"
	}
}

// ParseObjectType is the inverse of ObjectType.String.
func ParseObjectType(s string) (ObjectType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid":
		return Solid, true
	case "box":
		return Box, true
	case "target":
		return Target, true
	default:
		return 0, false
	}
}

// PlacedObject is one object of a level. Row 0 is the bottom row.
type PlacedObject struct {
	Type ObjectType
	Col  int
	Row  int
}

func (o PlacedObject) String() string {
	return fmt.Sprintf("%s@(row %d, col %d)", o.Type, o.Row, o.Col)
}

// Level is an immutable puzzle layout.
type Level struct {
	Name    string
	Pixels  int // Throw budget
	Objects []PlacedObject
}

// Targets returns the number of target objects.
func (l Level) Targets() int {
	n := 0
	for _, o := range l.Objects {
		if o.Type == Target {
			n++
		}
	}
	return n
}
