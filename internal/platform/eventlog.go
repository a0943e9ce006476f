// Package platform holds what the display drivers share.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/angry-pixel/internal/game"
)

// LogEvents writes one structured log line per game event.
func LogEvents(logger *log.Logger, events []game.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case game.LevelLoadedEvent:
			logger.Info("level loaded", "level", e.Level+1)
		case game.ThrowEvent:
			logger.Debug("throw",
				"angle", e.Angle,
				"power", e.Power,
				"pixel", e.PixelsUsed,
				"of", e.PixelsAvailable)
		case game.CellDestroyedEvent:
			logger.Debug("cell destroyed", "cell", e.Cell, "row", e.Row, "col", e.Col)
		case game.ProjectileDiedEvent:
			logger.Debug("pixel died", "reason", e.Reason)
		case game.LevelWonEvent:
			logger.Info("level cleared", "level", e.Level+1, "throws", e.PixelsUsed)
		case game.LevelLostEvent:
			logger.Info("level failed", "level", e.Level+1)
		}
	}
}
