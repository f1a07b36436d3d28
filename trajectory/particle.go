package trajectory

import (
	"fmt"

	"github.com/itlt/infall/integrator"
)

// Status is the state of a Particle's fall.
type Status int

const (
	Falling Status = iota
	// Frozen is terminal for ITLT particles: they stop at the boundary.
	Frozen
	// Crashed is terminal for Standard particles: they stop at the center.
	Crashed
)

func (s Status) String() string {
	switch s {
	case Falling:
		return "Falling"
	case Frozen:
		return "Frozen"
	case Crashed:
		return "Crashed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Particle is a single radially infalling particle. Its velocity law and
// clamp value are fixed when it is created.
type Particle struct {
	Mode integrator.Mode
	Status Status

	state integrator.State
	law integrator.Law
	method integrator.Method
	floor float64
	terminal Status
}

// NewParticle creates a falling particle at x0. Standard particles crash at
// 0 and ITLT particles freeze at the boundary length.
func NewParticle(
	mode integrator.Mode, x0 float64,
	p integrator.Params, method integrator.Method,
) *Particle {
	pt := &Particle{
		Mode: mode, Status: Falling,
		state: integrator.State{x0},
		law: integrator.NewLaw(mode, p),
		method: method,
	}

	switch mode {
	case integrator.Standard:
		pt.floor, pt.terminal = 0, Crashed
	case integrator.ITLT:
		pt.floor, pt.terminal = p.BoundaryLength, Frozen
	}

	return pt
}

// X returns the particle's current position.
func (pt *Particle) X() float64 { return pt.state[0] }

// Floor returns the position at which the particle stops.
func (pt *Particle) Floor() float64 { return pt.floor }

// Done returns true if the particle has reached its terminal state.
func (pt *Particle) Done() bool { return pt.Status != Falling }

// Advance moves the particle forward by one step of size dt. A particle at or
// below its floor is pinned there and never integrated again. A step which
// overshoots the floor is clamped to it exactly.
func (pt *Particle) Advance(dt float64) {
	if pt.Done() || pt.state[0] <= pt.floor {
		pt.pin()
		return
	}

	pt.state = pt.method.Step(pt.law, pt.state, dt)
	if pt.state[0] < pt.floor { pt.pin() }
}

func (pt *Particle) pin() {
	pt.state[0] = pt.floor
	pt.Status = pt.terminal
}
