package game

import "github.com/vovakirdan/angry-pixel/internal/core"

// ThrowResult summarizes a headless throw.
type ThrowResult struct {
	State  State
	Ticks  int // Ticks run, including the lockout wait
	Events []Event
}

// RunThrow waits out the input lockout, throws with aim a and ticks without
// input until the world is still again or maxTicks have run. It does nothing
// unless the session is aiming.
func (s *Session) RunThrow(a Aim, maxTicks int) ThrowResult {
	res := ThrowResult{State: s.state}
	if s.state != StateAim {
		return res
	}

	s.SetAim(a)

	tick := func(in core.Buttons) {
		r := s.Tick(in)
		res.State = r.State
		res.Events = append(res.Events, r.Events...)
		res.Ticks++
	}

	for s.lockout > 0 && res.Ticks < maxTicks {
		tick(0)
	}
	if res.Ticks >= maxTicks {
		return res
	}

	tick(core.Press(core.ButtonThrow))
	for res.Ticks < maxTicks && (res.State == StateThrow || res.State == StateUpdateWorld) {
		tick(0)
	}
	return res
}
