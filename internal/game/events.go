package game

// Event reports something that happened during a tick.
// Display drivers use events for logging; the simulation never reads them.
type Event interface {
	event()
}

// LevelLoadedEvent is emitted whenever a level is (re)loaded.
type LevelLoadedEvent struct {
	Level int
}

func (LevelLoadedEvent) event() {}

// ThrowEvent is emitted when the player launches the pixel.
type ThrowEvent struct {
	Angle           float64
	Power           float64
	PixelsUsed      int
	PixelsAvailable int
}

func (ThrowEvent) event() {}

// CellDestroyedEvent is emitted when the pixel breaks a box or target.
type CellDestroyedEvent struct {
	Row, Col int
	Cell     CellType
}

func (CellDestroyedEvent) event() {}

// DeathReason explains why the pixel stopped.
type DeathReason int

const (
	DeathImpact DeathReason = iota // Broke a box or a non-final target
	DeathStill                     // Stopped moving
)

// String returns a human-readable name for the reason.
func (r DeathReason) String() string {
	switch r {
	case DeathImpact:
		return "impact"
	case DeathStill:
		return "still"
	default:
		return "unknown"
	}
}

// ProjectileDiedEvent is emitted when the pixel dies and the world starts
// settling. It is not emitted when the pixel wins the level.
type ProjectileDiedEvent struct {
	Reason DeathReason
}

func (ProjectileDiedEvent) event() {}

// LevelWonEvent is emitted when the last target is destroyed.
type LevelWonEvent struct {
	Level      int
	PixelsUsed int
}

func (LevelWonEvent) event() {}

// LevelLostEvent is emitted when the world settles with no pixels left.
type LevelLostEvent struct {
	Level int
}

func (LevelLostEvent) event() {}
