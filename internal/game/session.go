package game

import (
	"math"

	"github.com/vovakirdan/angry-pixel/internal/config"
	"github.com/vovakirdan/angry-pixel/internal/core"
	"github.com/vovakirdan/angry-pixel/internal/level"
)

// State is the phase of the game loop.
type State int

const (
	StateAim         State = iota // Player adjusts angle and power
	StateThrow                    // Projectile in flight
	StateUpdateWorld              // Boxes and targets settle under gravity
	StateLost                     // No pixels left, waiting for retry
	StateWon                      // All targets destroyed, waiting for next
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAim:
		return "Aim"
	case StateThrow:
		return "Throw"
	case StateUpdateWorld:
		return "UpdateWorld"
	case StateLost:
		return "Lost"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Aim is the slingshot setting. Neither field is clamped.
type Aim struct {
	Angle float64 // Radians, 0 points right, positive is up
	Power float64
}

// TickResult reports the state after a tick and what happened during it.
type TickResult struct {
	State  State
	Events []Event
}

// Session is one play-through of a level catalog.
// It is not safe for concurrent use.
type Session struct {
	catalog *level.Catalog
	cfg     config.Config

	tick  uint64
	state State
	level int

	grid       Grid
	projectile Projectile
	aim        Aim
	aimX, aimY float64

	targets         int
	pixelsAvailable int
	pixelsUsed      int
	stillSteps      int
	lockout         int

	events []Event
}

// New creates a session over cat and loads its first level.
// With an empty catalog the session stays in StateAim on an empty grid.
func New(cat *level.Catalog, cfg config.Config) *Session {
	s := &Session{
		catalog: cat,
		cfg:     cfg,
		level:   -1,
		aim: Aim{
			Angle: cfg.Aim.InitialAngle,
			Power: cfg.Aim.InitialPower,
		},
	}
	s.updateAimPosition()
	s.LoadLevel(0)
	return s
}

// LoadLevel resets the world to level index. Out-of-range indices are ignored.
// The aim setting carries over from the previous level.
func (s *Session) LoadLevel(index int) {
	l, ok := s.catalog.Get(index)
	if !ok {
		return
	}

	s.level = index
	s.grid.Stamp(l)
	s.targets = l.Targets()
	s.pixelsAvailable = l.Pixels
	s.pixelsUsed = 0
	s.projectile = Projectile{}
	s.stillSteps = 0
	s.state = StateAim
	s.lockout = s.cfg.Timing.InputLockout
	s.updateAimPosition()

	s.emit(LevelLoadedEvent{Level: index})
}

// Tick advances the game by one frame with the buttons currently held.
// Events include anything emitted by LoadLevel since the previous tick.
func (s *Session) Tick(in core.Buttons) TickResult {
	s.tick++

	if s.lockout > 0 {
		s.lockout--
	} else {
		s.handleInput(in)
	}

	if s.state == StateThrow {
		for i := 0; i < s.cfg.Physics.StepsPerTick && s.state == StateThrow; i++ {
			s.step()
		}
	}

	if s.state == StateUpdateWorld {
		s.updateWorld()
	}

	res := TickResult{State: s.state, Events: s.events}
	s.events = nil
	return res
}

// SetAim overrides the slingshot setting, as if the player had steered to it.
func (s *Session) SetAim(a Aim) {
	s.aim = a
	s.updateAimPosition()
}

func (s *Session) handleInput(in core.Buttons) {
	switch s.state {
	case StateAim:
		if in.Has(core.ButtonAngleDown) {
			s.aim.Angle -= s.cfg.Aim.AngleSpeed
		} else if in.Has(core.ButtonAngleUp) {
			s.aim.Angle += s.cfg.Aim.AngleSpeed
		}
		if in.Has(core.ButtonPowerDown) {
			s.aim.Power -= s.cfg.Aim.PowerSpeed
		} else if in.Has(core.ButtonPowerUp) {
			s.aim.Power += s.cfg.Aim.PowerSpeed
		}
		s.updateAimPosition()

		if in.Has(core.ButtonThrow) {
			s.throw()
		}

	case StateWon:
		if in.Has(core.ButtonThrow) && s.HasNextLevel() {
			s.LoadLevel(s.level + 1)
		}

	case StateLost:
		if in.Has(core.ButtonThrow) {
			s.LoadLevel(s.level)
		}
	}
}

// updateAimPosition places the aim marker opposite the throw direction,
// where the pixel is pulled back to.
func (s *Session) updateAimPosition() {
	s.aimX = s.cfg.Aim.StartX - math.Cos(s.aim.Angle)*s.aim.Power
	s.aimY = s.cfg.Aim.StartY - math.Sin(s.aim.Angle)*s.aim.Power
}

func (s *Session) throw() {
	speed := s.aim.Power * s.cfg.Aim.PowerFactor
	s.projectile = Projectile{
		Alive: true,
		X:     s.cfg.Aim.StartX,
		Y:     s.cfg.Aim.StartY,
		VX:    math.Cos(s.aim.Angle) * speed,
		VY:    math.Sin(s.aim.Angle) * speed,
	}
	s.stillSteps = 0
	s.pixelsUsed++
	s.state = StateThrow

	s.emit(ThrowEvent{
		Angle:           s.aim.Angle,
		Power:           s.aim.Power,
		PixelsUsed:      s.pixelsUsed,
		PixelsAvailable: s.pixelsAvailable,
	})
}

// step runs one physics step of the live projectile.
func (s *Session) step() {
	p := &s.projectile
	if !p.Alive {
		return
	}
	ph := s.cfg.Physics

	p.integrate(ph)
	p.bounceWalls(ph)

	if hit, ok := p.collide(&s.grid, ph); ok {
		p.Alive = false
		s.emit(CellDestroyedEvent{Row: hit.Row, Col: hit.Col, Cell: hit.Cell})

		if hit.Cell == CellTarget {
			s.targets--
			if s.targets <= 0 {
				s.state = StateWon
				s.emit(LevelWonEvent{Level: s.level, PixelsUsed: s.pixelsUsed})
				return
			}
		}
		s.kill(DeathImpact)
		return
	}

	if !p.still(ph) {
		s.stillSteps = 0
		return
	}
	s.stillSteps++
	if s.stillSteps >= ph.StillTimeout {
		s.kill(DeathStill)
	}
}

func (s *Session) kill(reason DeathReason) {
	s.projectile.Alive = false
	s.state = StateUpdateWorld
	s.emit(ProjectileDiedEvent{Reason: reason})
}

// updateWorld runs one settle pass. Once nothing moves the player may throw
// again, or loses when the budget is spent.
func (s *Session) updateWorld() {
	if s.grid.Settle() {
		return
	}
	if s.pixelsUsed < s.pixelsAvailable {
		s.state = StateAim
		return
	}
	s.state = StateLost
	s.emit(LevelLostEvent{Level: s.level})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// State returns the current game phase.
func (s *Session) State() State { return s.state }

// Level returns the current level index, or -1 if none was ever loaded.
func (s *Session) Level() int { return s.level }

// LevelCount returns the number of levels in the catalog.
func (s *Session) LevelCount() int { return s.catalog.Len() }

// LevelName returns the current level's name, or "" if none is loaded.
func (s *Session) LevelName() string {
	l, _ := s.catalog.Get(s.level)
	return l.Name
}

// HasNextLevel reports whether a level follows the current one.
func (s *Session) HasNextLevel() bool { return s.level < s.catalog.Len()-1 }

// Grid returns a copy of the world grid.
func (s *Session) Grid() Grid { return s.grid }

// Projectile returns a copy of the projectile.
func (s *Session) Projectile() Projectile { return s.projectile }

// Aim returns the slingshot setting.
func (s *Session) Aim() Aim { return s.aim }

// AimPosition returns the aim marker position in canvas space.
func (s *Session) AimPosition() (x, y float64) { return s.aimX, s.aimY }

// Targets returns the number of targets left on the level.
func (s *Session) Targets() int { return s.targets }

// PixelsAvailable returns the level's throw budget.
func (s *Session) PixelsAvailable() int { return s.pixelsAvailable }

// PixelsUsed returns the number of throws made on this level.
func (s *Session) PixelsUsed() int { return s.pixelsUsed }

// Lockout returns the number of ticks input stays ignored.
func (s *Session) Lockout() int { return s.lockout }

// Ticks returns the number of ticks run so far.
func (s *Session) Ticks() uint64 { return s.tick }
