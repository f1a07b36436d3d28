package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/itlt/infall/integrator"
)

const (
	ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Prefix of the output files. The trajectory table is written to
# <Output>.txt and, if Plot is set, the figure is written to <Output>.png.
Output = path/to/rk4_simulation_result

#######################
# Optional Parameters #
#######################

# Physical constants, in normalized units where the boundary length is 1.
# The values below are the defaults.
# BoundaryLength     = 1.0
# ResistanceConstant = 1.0
# BaseVelocity       = 0.5

# Integration parameters. Steps is the number of recorded samples: the state
# after the final step is computed but is not written to the table.
# TimeStep      = 0.01
# Steps         = 3000
# StartDistance = 5.0

# Integration scheme. One of [ RK4 | Euler ].
# Method = RK4

# Also write <Output>.csv next to the whitespace table.
# CSV = true

# Render the trajectories with matplotlib.
# Plot = true

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleCurveFile = `[Curve]

#######################
# Required Parameters #
#######################

# Prefix of the output files: <Output>.txt, <Output>.csv and <Output>.png.
Output = path/to/itlt_data_export

#######################
# Optional Parameters #
#######################

# Boundary length (meters) and resistance constant (seconds). Defaults are
# the Planck length and the Planck time.
# BoundaryLength     = 1.616255e-35
# ResistanceConstant = 5.391247e-44

# Dilation ratios are dilation values divided by TimeUnit. Default is the
# Planck time.
# TimeUnit = 5.391247e-44

# Sampling bands, in multiples of BoundaryLength. BandEdge lists the band
# boundaries in increasing order and BandPoints the number of evenly spaced
# samples in each band (one fewer entry than BandEdge). The defaults put most
# of the samples near the boundary:
# BandEdge = 1.001
# BandEdge = 1.1
# BandEdge = 2.5
# BandEdge = 10.0
# BandPoints = 50
# BandPoints = 50
# BandPoints = 50

# Write <Output>.csv and render <Output>.png.
# CSV = true
# Plot = true

# ProfileFile = prof.out
# LogFile = log.out`
)

const (
	PlanckLength = 1.616255e-35
	PlanckTime   = 5.391247e-44
)

var (
	DefaultBandEdges  = []float64{1.001, 1.1, 2.5, 10.0}
	DefaultBandPoints = []int{50, 50, 50}
)

// SimulationConfig describes a single trajectory run. Once CheckInit has
// returned successfully it should be treated as immutable.
type SimulationConfig struct {
	// Required
	Output string

	// Optional
	BoundaryLength, ResistanceConstant, BaseVelocity float64
	TimeStep float64
	Steps int
	StartDistance float64
	Method string

	CSV, Plot bool
	ProfileFile, LogFile string
}

type SimulationWrapper struct {
	Simulation SimulationConfig
}

func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}

	con.BoundaryLength = 1.0
	con.ResistanceConstant = 1.0
	con.BaseVelocity = 0.5
	con.TimeStep = 0.01
	con.Steps = 3000
	con.StartDistance = 5.0
	con.Method = "RK4"

	return &SimulationWrapper{con}
}

// NewSimulationConfig creates a validated SimulationConfig which uses the
// RK4 integrator and writes no files.
func NewSimulationConfig(
	l, k, v, dt float64, steps int, x0 float64,
) (SimulationConfig, error) {
	con := SimulationConfig{
		BoundaryLength: l, ResistanceConstant: k, BaseVelocity: v,
		TimeStep: dt, Steps: steps, StartDistance: x0, Method: "RK4",
	}
	err := con.CheckInit()
	return con, err
}

// CheckInit validates con and normalizes its Method name.
func (con *SimulationConfig) CheckInit() error {
	if con.BoundaryLength <= 0 {
		return fmt.Errorf(
			"BoundaryLength must be positive, but is %g.", con.BoundaryLength,
		)
	} else if con.ResistanceConstant <= 0 {
		return fmt.Errorf(
			"ResistanceConstant must be positive, but is %g.",
			con.ResistanceConstant,
		)
	} else if con.BaseVelocity <= 0 {
		return fmt.Errorf(
			"BaseVelocity must be positive, but is %g.", con.BaseVelocity,
		)
	} else if con.TimeStep <= 0 {
		return fmt.Errorf("TimeStep must be positive, but is %g.", con.TimeStep)
	} else if con.Steps <= 0 {
		return fmt.Errorf("Steps must be positive, but is %d.", con.Steps)
	} else if con.StartDistance <= con.BoundaryLength {
		return fmt.Errorf(
			"StartDistance must be larger than BoundaryLength (%g), but is %g.",
			con.BoundaryLength, con.StartDistance,
		)
	}

	m, err := integrator.ParseMethod(con.Method)
	if err != nil { return err }
	con.Method = m.String()

	return nil
}

func (con *SimulationConfig) ValidOutput() bool {
	return strings.TrimSpace(con.Output) != ""
}

// IntegrationMethod returns the integrator selected by con.Method.
func (con *SimulationConfig) IntegrationMethod() integrator.Method {
	m, err := integrator.ParseMethod(con.Method)
	if err != nil { panic(err.Error()) }
	return m
}

// Params returns the constants needed by the velocity laws.
func (con *SimulationConfig) Params() integrator.Params {
	return integrator.Params{
		BaseVelocity: con.BaseVelocity,
		BoundaryLength: con.BoundaryLength,
		ResistanceConstant: con.ResistanceConstant,
	}
}

// ReadSimulationConfig reads and validates the [Simulation] section of a
// config file.
func ReadSimulationConfig(fname string) (*SimulationConfig, error) {
	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Simulation.CheckInit(); err != nil { return nil, err }
	return &wrap.Simulation, nil
}

// CurveConfig describes a sampled dilation curve.
type CurveConfig struct {
	// Required
	Output string

	// Optional
	BoundaryLength, ResistanceConstant float64
	TimeUnit float64

	BandEdge []float64
	BandPoints []int

	CSV, Plot bool
	ProfileFile, LogFile string
}

type CurveWrapper struct {
	Curve CurveConfig
}

// DefaultCurveWrapper returns the Planck-unit defaults. Band slices are left
// empty, since gcfg appends to multi-valued variables; CheckInit fills them
// in.
func DefaultCurveWrapper() *CurveWrapper {
	con := CurveConfig{}

	con.BoundaryLength = PlanckLength
	con.ResistanceConstant = PlanckTime
	con.TimeUnit = PlanckTime

	return &CurveWrapper{con}
}

// NewCurveConfig creates a validated CurveConfig with the default bands.
func NewCurveConfig(l, k, timeUnit float64) (CurveConfig, error) {
	con := CurveConfig{
		BoundaryLength: l, ResistanceConstant: k, TimeUnit: timeUnit,
	}
	err := con.CheckInit()
	return con, err
}

// CheckInit validates con and fills in the default bands if none were given.
func (con *CurveConfig) CheckInit() error {
	if con.BoundaryLength <= 0 {
		return fmt.Errorf(
			"BoundaryLength must be positive, but is %g.", con.BoundaryLength,
		)
	} else if con.ResistanceConstant <= 0 {
		return fmt.Errorf(
			"ResistanceConstant must be positive, but is %g.",
			con.ResistanceConstant,
		)
	} else if con.TimeUnit <= 0 {
		return fmt.Errorf("TimeUnit must be positive, but is %g.", con.TimeUnit)
	}

	if len(con.BandEdge) == 0 && len(con.BandPoints) == 0 {
		con.BandEdge = append([]float64{}, DefaultBandEdges...)
		con.BandPoints = append([]int{}, DefaultBandPoints...)
	}

	if len(con.BandEdge) < 2 {
		return fmt.Errorf(
			"At least two BandEdge values are required, but %d were given.",
			len(con.BandEdge),
		)
	} else if len(con.BandPoints) != len(con.BandEdge) - 1 {
		return fmt.Errorf(
			"%d BandEdge values need %d BandPoints values, but %d were given.",
			len(con.BandEdge), len(con.BandEdge) - 1, len(con.BandPoints),
		)
	}

	if con.BandEdge[0] <= 0 {
		return fmt.Errorf(
			"BandEdge values must be positive, but the first is %g.",
			con.BandEdge[0],
		)
	}
	for i := 1; i < len(con.BandEdge); i++ {
		if con.BandEdge[i] <= con.BandEdge[i - 1] {
			return fmt.Errorf(
				"BandEdge values must be increasing, but %g follows %g.",
				con.BandEdge[i], con.BandEdge[i - 1],
			)
		}
	}
	for i, n := range con.BandPoints {
		if n <= 0 {
			return fmt.Errorf(
				"BandPoints value %d must be positive, but is %d.", i, n,
			)
		}
	}

	return nil
}

func (con *CurveConfig) ValidOutput() bool {
	return strings.TrimSpace(con.Output) != ""
}

// ReadCurveConfig reads and validates the [Curve] section of a config file.
func ReadCurveConfig(fname string) (*CurveConfig, error) {
	wrap := DefaultCurveWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Curve.CheckInit(); err != nil { return nil, err }
	return &wrap.Curve, nil
}
