package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itlt/infall/integrator"
	"github.com/itlt/infall/io"
)

func defaultConfig(t *testing.T, steps int) *io.SimulationConfig {
	con, err := io.NewSimulationConfig(1.0, 1.0, 0.5, 0.01, steps, 5.0)
	if err != nil { t.Fatal(err.Error()) }
	return &con
}

func TestRunLengths(t *testing.T) {
	con := defaultConfig(t, 3000)
	s := Run(con)

	assert.Equal(t, 3000, s.Len())
	assert.Equal(t, 3000, len(s.Standard))
	assert.Equal(t, 3000, len(s.ITLT))
	assert.Equal(t, 0.0, s.Times[0])
	assert.InDelta(t, 29.99, s.Times[2999], 1e-12)
	for i := range s.Times {
		assert.Equal(t, float64(i) * 0.01, s.Times[i])
	}

	assert.Equal(t, 5.0, s.Standard[0])
	assert.Equal(t, 5.0, s.ITLT[0])
	assert.Equal(t, 3, len(s.Columns()))
}

func TestRunInvariants(t *testing.T) {
	s := Run(defaultConfig(t, 3000))

	for i := 1; i < s.Len(); i++ {
		assert.True(t, s.Standard[i] <= s.Standard[i - 1],
			"standard rose at %d", i)
		assert.True(t, s.ITLT[i] <= s.ITLT[i - 1], "itlt rose at %d", i)
	}

	for i := 0; i < s.Len(); i++ {
		if s.Standard[i] < 0 { t.Fatalf("standard below 0 at %d", i) }
		if s.ITLT[i] < 1 { t.Fatalf("itlt below boundary at %d", i) }
	}
}

func TestRunCrash(t *testing.T) {
	s := Run(defaultConfig(t, 3000))

	// 5.0 / (0.5 * 0.01) = 1000 steps, give or take rounding.
	assert.True(t, s.CrashStep >= 1000 && s.CrashStep <= 1002,
		"crash step %d", s.CrashStep)
	assert.True(t, s.Standard[s.CrashStep - 1] > 0)
	for i := s.CrashStep; i < s.Len(); i++ {
		assert.Equal(t, 0.0, s.Standard[i], "step %d", i)
	}
	assert.Equal(t, 0.0, s.FinalStandard)

	ct, ok := s.CrashTime()
	assert.True(t, ok)
	assert.InDelta(t, 10.0, ct, 0.03)

	// Before the crash the fall is exactly linear.
	for i := 0; i < 1000; i++ {
		assert.InDelta(t, 5.0 - 0.005*float64(i), s.Standard[i], 1e-9)
	}
}

func TestRunFreeze(t *testing.T) {
	s := Run(defaultConfig(t, 3000))

	assert.True(t, s.FreezeStep > 0 && s.FreezeStep < s.Len(),
		"freeze step %d", s.FreezeStep)
	for i := s.FreezeStep; i < s.Len(); i++ {
		assert.Equal(t, 1.0, s.ITLT[i], "step %d", i)
	}
	assert.Equal(t, 1.0, s.FinalITLT)

	// The ITLT particle always lags the standard one.
	for i := 1; i < s.Len(); i++ {
		assert.True(t, s.ITLT[i] >= s.Standard[i], "step %d", i)
	}
}

func TestRunSlowsNearBoundary(t *testing.T) {
	s := Run(defaultConfig(t, 3000))

	j := 0
	for j < s.Len() && s.ITLT[j] >= 1.05 { j++ }
	assert.True(t, j > 0 && j < s.Len() - 1)

	for i := 1; i < j; i++ {
		prev := s.ITLT[i - 1] - s.ITLT[i]
		next := s.ITLT[i] - s.ITLT[i + 1]
		assert.True(t, next <= prev + 1e-12, "step %d: %g > %g", i, next, prev)
	}

	first := s.ITLT[0] - s.ITLT[1]
	last := s.ITLT[j] - s.ITLT[j + 1]
	assert.True(t, last < first)
}

func TestRunOffByOne(t *testing.T) {
	// With a single step only the initial state is recorded.
	s := Run(defaultConfig(t, 1))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 5.0, s.Standard[0])
	assert.InDelta(t, 4.995, s.FinalStandard, 1e-12)
	assert.True(t, s.FinalITLT < 5.0)
	assert.Equal(t, -1, s.CrashStep)
	assert.Equal(t, -1, s.FreezeStep)

	_, ok := s.CrashTime()
	assert.False(t, ok)
	_, ok = s.FreezeTime()
	assert.False(t, ok)
}

func TestRunEuler(t *testing.T) {
	con := defaultConfig(t, 2000)
	con.Method = "Euler"
	assert.Nil(t, con.CheckInit())
	s := Run(con)

	rk := Run(defaultConfig(t, 2000))
	for i := range s.Standard {
		assert.InDelta(t, rk.Standard[i], s.Standard[i], 1e-9)
		assert.True(t, s.ITLT[i] >= 1)
	}
}

func TestParticle(t *testing.T) {
	p := integrator.Params{
		BaseVelocity: 1, BoundaryLength: 1, ResistanceConstant: 1,
	}

	std := NewParticle(integrator.Standard, 0.25, p, integrator.MethodRK4)
	assert.Equal(t, Falling, std.Status)
	std.Advance(0.1)
	assert.InDelta(t, 0.15, std.X(), 1e-15)
	std.Advance(1)
	assert.Equal(t, 0.0, std.X())
	assert.Equal(t, Crashed, std.Status)
	std.Advance(1)
	assert.Equal(t, 0.0, std.X())

	itlt := NewParticle(integrator.ITLT, 1, p, integrator.MethodRK4)
	assert.Equal(t, 1.0, itlt.Floor())
	itlt.Advance(0.1)
	assert.Equal(t, 1.0, itlt.X())
	assert.Equal(t, Frozen, itlt.Status)
	assert.Equal(t, "Frozen", itlt.Status.String())

	far := NewParticle(integrator.ITLT, 100, p, integrator.MethodEuler)
	far.Advance(0.1)
	assert.True(t, far.X() < 100 && far.X() > 99.8)
	assert.False(t, far.Done())
	assert.False(t, math.IsNaN(far.X()))
}

func BenchmarkRun(b *testing.B) {
	con, _ := io.NewSimulationConfig(1.0, 1.0, 0.5, 0.01, 3000, 5.0)
	for i := 0; i < b.N; i++ { Run(&con) }
}
