// Package core provides the small set of types shared by the game core and
// the display drivers. It contains no UI dependencies so game logic stays
// pure and testable.
package core

import "strings"

// Button is one logical input of the game.
type Button uint8

const (
	ButtonAngleDown Button = 1 << iota
	ButtonAngleUp
	ButtonPowerDown
	ButtonPowerUp
	ButtonThrow
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonAngleDown:
		return "AngleDown"
	case ButtonAngleUp:
		return "AngleUp"
	case ButtonPowerDown:
		return "PowerDown"
	case ButtonPowerUp:
		return "PowerUp"
	case ButtonThrow:
		return "Throw"
	default:
		return "Unknown"
	}
}

// AllButtons lists the buttons in bit order.
var AllButtons = []Button{ButtonAngleDown, ButtonAngleUp, ButtonPowerDown, ButtonPowerUp, ButtonThrow}

// Buttons is the snapshot of pressed buttons sampled once per tick.
// Drivers own polarity and debouncing; the core only sees pressed or not.
type Buttons uint8

// Set marks b as pressed.
func (s *Buttons) Set(b Button) {
	*s |= Buttons(b)
}

// Has returns true if b is pressed.
func (s Buttons) Has(b Button) bool {
	return s&Buttons(b) != 0
}

// Clear releases every button.
func (s *Buttons) Clear() {
	*s = 0
}

// String lists the pressed buttons, e.g. "AngleUp|Throw".
func (s Buttons) String() string {
	var names []string
	for _, b := range AllButtons {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// Press builds a snapshot from individual buttons.
func Press(buttons ...Button) Buttons {
	var s Buttons
	for _, b := range buttons {
		s.Set(b)
	}
	return s
}
