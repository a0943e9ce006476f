package game

import "math"

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick  uint64
	State State
	Level int

	Targets         int
	PixelsAvailable int
	PixelsUsed      int
	StillSteps      int
	Lockout         int

	Alive        bool
	X, Y, VX, VY float64
	Angle, Power float64
	AimX, AimY   float64
	Cells        []CellType // Flattened row*GridCols + col
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	cells := make([]CellType, 0, GridRows*GridCols)
	for row := range s.grid {
		cells = append(cells, s.grid[row][:]...)
	}

	return Snapshot{
		Tick:            s.tick,
		State:           s.state,
		Level:           s.level,
		Targets:         s.targets,
		PixelsAvailable: s.pixelsAvailable,
		PixelsUsed:      s.pixelsUsed,
		StillSteps:      s.stillSteps,
		Lockout:         s.lockout,
		Alive:           s.projectile.Alive,
		X:               s.projectile.X,
		Y:               s.projectile.Y,
		VX:              s.projectile.VX,
		VY:              s.projectile.VY,
		Angle:           s.aim.Angle,
		Power:           s.aim.Power,
		AimX:            s.aimX,
		AimY:            s.aimY,
		Cells:           cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so any drift changes the hash.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Targets)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PixelsAvailable) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PixelsUsed)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StillSteps)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lockout)         //#nosec G115 -- hash computation
	if snap.Alive {
		h = h*31 + 1
	}

	for _, f := range []float64{snap.X, snap.Y, snap.VX, snap.VY, snap.Angle, snap.Power, snap.AimX, snap.AimY} {
		h = h*31 + math.Float64bits(f)
	}

	for _, c := range snap.Cells {
		h = h*31 + uint64(c)
	}

	return h
}
