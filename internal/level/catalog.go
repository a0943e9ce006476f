package level

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/levels.yaml
var builtinYAML []byte

// Catalog is an ordered, read-only list of levels.
type Catalog struct {
	levels []Level
}

// NewCatalog validates levels and wraps them in a catalog.
func NewCatalog(levels ...Level) (*Catalog, error) {
	for i, l := range levels {
		if err := Validate(l); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}
	return &Catalog{levels: append([]Level(nil), levels...)}, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.levels)
}

// Get returns level i. ok is false when i is out of range.
func (c *Catalog) Get(i int) (Level, bool) {
	if i < 0 || i >= c.Len() {
		return Level{}, false
	}
	return c.levels[i], true
}

// Levels returns a copy of all levels in order.
func (c *Catalog) Levels() []Level {
	if c == nil {
		return nil
	}
	return append([]Level(nil), c.levels...)
}

var builtin *Catalog

func init() {
	cat, err := ParseYAML(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("level: builtin catalog: %v", err))
	}
	builtin = cat
}

// Builtin returns the catalog shipped with the game.
func Builtin() *Catalog {
	return builtin
}

// yamlCatalog is the on-disk layout of a catalog.
type yamlCatalog struct {
	Levels []yamlLevel `yaml:"levels"`
}

type yamlLevel struct {
	Name    string       `yaml:"name"`
	Pixels  int          `yaml:"pixels"`
	Objects []yamlObject `yaml:"objects"`
}

type yamlObject struct {
	Type string `yaml:"type"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
}

// ParseYAML decodes and validates a catalog document.
func ParseYAML(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]Level, 0, len(yc.Levels))
	for i, yl := range yc.Levels {
		l := Level{
			Name:    yl.Name,
			Pixels:  yl.Pixels,
			Objects: make([]PlacedObject, 0, len(yl.Objects)),
		}
		for _, yo := range yl.Objects {
			t, ok := ParseObjectType(yo.Type)
			if !ok {
				return nil, fmt.Errorf("level %d: object %q: %w", i, yo.Type, ErrUnknownObject)
			}
			l.Objects = append(l.Objects, PlacedObject{Type: t, Col: yo.Col, Row: yo.Row})
		}
		levels = append(levels, l)
	}

	return NewCatalog(levels...)
}
