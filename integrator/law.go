package integrator

import (
	"fmt"
	"strings"

	"github.com/itlt/infall/resist"
)

// Mode selects the velocity law a particle falls under.
type Mode int

const (
	// Standard particles fall at a constant velocity.
	Standard Mode = iota
	// ITLT particles have their velocity divided by the temporal resistance.
	ITLT
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "Standard"
	case ITLT:
		return "ITLT"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a (case-insensitive) mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "itlt":
		return ITLT, nil
	}
	return 0, fmt.Errorf(
		"Mode must be one of [Standard | ITLT]. '%s' is not recognized.", s,
	)
}

// Law is an autonomous velocity law, dx/dt = Velocity(x).
type Law interface {
	Velocity(x float64) float64
}

// Params are the physical constants a Law may need.
type Params struct {
	BaseVelocity       float64
	BoundaryLength     float64
	ResistanceConstant float64
}

// StandardLaw is constant inward drift.
type StandardLaw struct {
	V float64
}

func (law StandardLaw) Velocity(x float64) float64 { return -law.V }

// ITLTLaw is inward drift damped by the temporal resistance at x. Velocity
// goes to zero as x approaches Boundary, which is what makes the particle
// freeze rather than anything inside the law itself.
type ITLTLaw struct {
	V, Boundary, K float64
}

func (law ITLTLaw) Velocity(x float64) float64 {
	// resist.Resistance uses a finite sentinel inside the boundary, so this
	// is always a real number.
	return -law.V / resist.Resistance(x, law.Boundary, law.K)
}

// NewLaw returns the Law for the given mode.
func NewLaw(mode Mode, p Params) Law {
	switch mode {
	case Standard:
		return StandardLaw{ p.BaseVelocity }
	case ITLT:
		return ITLTLaw{ p.BaseVelocity, p.BoundaryLength, p.ResistanceConstant }
	}
	panic(fmt.Sprintf("Unknown mode %d.", int(mode)))
}

var (
	_ Law = StandardLaw{}
	_ Law = ITLTLaw{}
)
