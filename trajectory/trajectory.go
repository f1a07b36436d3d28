/*package trajectory runs the Standard and ITLT particles side by side and
records their positions.
*/
package trajectory

import (
	"github.com/itlt/infall/integrator"
	"github.com/itlt/infall/io"
)

var (
	SeriesHeader = []string{"t", "x_standard", "x_itlt"}
)

// Series is the recorded output of a run. Times, Standard and ITLT all have
// one entry per step and Times[i] = i*dt.
//
// Positions are recorded before each step, so Series starts with the
// initial state and does not include the state after the final step. That
// state is kept in FinalStandard and FinalITLT.
type Series struct {
	Times, Standard, ITLT []float64

	// First recorded index at the crash/freeze value, or -1.
	CrashStep, FreezeStep int

	FinalStandard, FinalITLT float64

	BoundaryLength float64
	TimeStep float64
}

// Run integrates both particles for con.Steps steps. con must have passed
// CheckInit.
func Run(con *io.SimulationConfig) *Series {
	n, dt := con.Steps, con.TimeStep
	p, method := con.Params(), con.IntegrationMethod()

	std := NewParticle(integrator.Standard, con.StartDistance, p, method)
	itlt := NewParticle(integrator.ITLT, con.StartDistance, p, method)

	s := &Series{
		Times: make([]float64, n),
		Standard: make([]float64, n),
		ITLT: make([]float64, n),
		CrashStep: -1, FreezeStep: -1,
		BoundaryLength: con.BoundaryLength,
		TimeStep: dt,
	}

	for i := 0; i < n; i++ {
		s.Times[i] = float64(i) * dt
		s.Standard[i], s.ITLT[i] = std.X(), itlt.X()

		if s.CrashStep < 0 && std.X() <= std.Floor() { s.CrashStep = i }
		if s.FreezeStep < 0 && itlt.X() <= itlt.Floor() { s.FreezeStep = i }

		std.Advance(dt)
		itlt.Advance(dt)
	}

	s.FinalStandard, s.FinalITLT = std.X(), itlt.X()
	return s
}

// Len returns the number of recorded steps.
func (s *Series) Len() int { return len(s.Times) }

// Columns returns the table columns matching SeriesHeader.
func (s *Series) Columns() [][]float64 {
	return [][]float64{ s.Times, s.Standard, s.ITLT }
}

// CrashTime returns the time at which the Standard particle was first
// recorded at the center.
func (s *Series) CrashTime() (t float64, ok bool) {
	if s.CrashStep < 0 { return 0, false }
	return s.Times[s.CrashStep], true
}

// FreezeTime returns the time at which the ITLT particle was first recorded
// at the boundary.
func (s *Series) FreezeTime() (t float64, ok bool) {
	if s.FreezeStep < 0 { return 0, false }
	return s.Times[s.FreezeStep], true
}
