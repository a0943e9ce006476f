// Package registry provides a global registry for display drivers.
// Drivers register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/game"
)

// Display shows a game session on some output and feeds it player input.
// The session is pure logic; the display owns timing, input and drawing.
type Display interface {
	// ID returns a unique identifier for this display (e.g., "tui", "window").
	// Used for the --display flag.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Run drives sess at cfg.TickRate until the player quits.
	Run(sess *game.Session, cfg core.RuntimeConfig, logger *log.Logger) error
}

// DisplayInfo contains metadata about a registered display.
type DisplayInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new display.
type Factory func() Display

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a display factory to the registry.
// Panics if a display with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: display %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered displays, sorted by ID.
func List() []DisplayInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DisplayInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DisplayInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a display by its ID.
func Create(id string) (Display, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown display %q", id)
	}

	return f(), nil
}

// Exists checks if a display with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
