package level

import (
	"errors"
	"testing"
)

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()

	if cat.Len() != 5 {
		t.Fatalf("Builtin().Len() = %d, expected 5", cat.Len())
	}

	budgets := []int{3, 8, 6, 6, 6}
	targets := []int{1, 3, 1, 3, 2}
	for i := range budgets {
		l, ok := cat.Get(i)
		if !ok {
			t.Fatalf("Get(%d) should succeed", i)
		}
		if l.Pixels != budgets[i] {
			t.Errorf("level %d pixels = %d, expected %d", i, l.Pixels, budgets[i])
		}
		if l.Targets() != targets[i] {
			t.Errorf("level %d targets = %d, expected %d", i, l.Targets(), targets[i])
		}
		if l.Name == "" {
			t.Errorf("level %d should have a name", i)
		}
	}

	first, _ := cat.Get(0)
	want := []PlacedObject{
		{Type: Box, Col: 0, Row: 0},
		{Type: Target, Col: 0, Row: 1},
	}
	if len(first.Objects) != len(want) {
		t.Fatalf("level 0 has %d objects, expected %d", len(first.Objects), len(want))
	}
	for i, o := range want {
		if first.Objects[i] != o {
			t.Errorf("level 0 object %d = %v, expected %v", i, first.Objects[i], o)
		}
	}
}

func TestCatalogGetOutOfRange(t *testing.T) {
	cat := Builtin()

	for _, i := range []int{-1, cat.Len(), cat.Len() + 10} {
		if _, ok := cat.Get(i); ok {
			t.Errorf("Get(%d) should report out of range", i)
		}
	}

	var empty *Catalog
	if empty.Len() != 0 {
		t.Error("nil catalog should be empty")
	}
	if _, ok := empty.Get(0); ok {
		t.Error("nil catalog Get should fail")
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	cat, err := NewCatalog(Level{
		Pixels:  1,
		Objects: []PlacedObject{{Type: Target, Col: 1, Row: 0}},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	levels := cat.Levels()
	levels[0].Pixels = 99

	l, _ := cat.Get(0)
	if l.Pixels != 1 {
		t.Error("mutating Levels() must not change the catalog")
	}
}

func TestValidate(t *testing.T) {
	target := PlacedObject{Type: Target, Col: 0, Row: 0}

	tests := []struct {
		name  string
		level Level
		want  error
	}{
		{
			name:  "valid",
			level: Level{Pixels: 1, Objects: []PlacedObject{target}},
		},
		{
			name:  "no pixels",
			level: Level{Pixels: 0, Objects: []PlacedObject{target}},
			want:  ErrNoPixels,
		},
		{
			name:  "no targets",
			level: Level{Pixels: 3, Objects: []PlacedObject{{Type: Box, Col: 0, Row: 0}}},
			want:  ErrNoTargets,
		},
		{
			name:  "unknown type",
			level: Level{Pixels: 3, Objects: []PlacedObject{target, {Type: 0, Col: 1, Row: 0}}},
			want:  ErrUnknownObject,
		},
		{
			name:  "column out of range",
			level: Level{Pixels: 3, Objects: []PlacedObject{target, {Type: Box, Col: Cols, Row: 0}}},
			want:  ErrCellOutOfRange,
		},
		{
			name:  "row out of range",
			level: Level{Pixels: 3, Objects: []PlacedObject{target, {Type: Box, Col: 0, Row: -1}}},
			want:  ErrCellOutOfRange,
		},
		{
			name:  "two objects in one cell",
			level: Level{Pixels: 3, Objects: []PlacedObject{target, {Type: Solid, Col: 0, Row: 0}}},
			want:  ErrCellOccupied,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.level)
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestNewCatalogReportsLevelIndex(t *testing.T) {
	good := Level{Pixels: 1, Objects: []PlacedObject{{Type: Target, Col: 0, Row: 0}}}
	bad := Level{Pixels: 1}

	_, err := NewCatalog(good, bad)
	if !errors.Is(err, ErrNoTargets) {
		t.Fatalf("NewCatalog() = %v, expected ErrNoTargets", err)
	}
	if err.Error() != "level 1: level has no targets" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
levels:
  - name: one
    pixels: 2
    objects:
      - { type: Solid, col: 0, row: 0 }
      - { type: target, col: 0, row: 1 }
`)
	cat, err := ParseYAML(doc)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	l, _ := cat.Get(0)
	if l.Objects[0].Type != Solid {
		t.Errorf("type names should be case-insensitive, got %v", l.Objects[0].Type)
	}

	_, err = ParseYAML([]byte("levels:\n  - pixels: 1\n    objects:\n      - { type: cannon, col: 0, row: 0 }\n"))
	if !errors.Is(err, ErrUnknownObject) {
		t.Errorf("ParseYAML() = %v, expected ErrUnknownObject", err)
	}

	if _, err := ParseYAML([]byte("levels: [")); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestObjectTypeString(t *testing.T) {
	for _, ot := range []ObjectType{Solid, Box, Target} {
		back, ok := ParseObjectType(ot.String())
		if !ok || back != ot {
			t.Errorf("ParseObjectType(%q) = %v, %v", ot.String(), back, ok)
		}
	}
	if ObjectType(42).String() != "unknown" {
		t.Error("unexpected name for an invalid type")
	}
}
