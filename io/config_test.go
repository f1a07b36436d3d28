package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"
)

func TestExampleSimulationFile(t *testing.T) {
	wrap := DefaultSimulationWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleSimulationFile)
	assert.Nil(t, err)

	con := &wrap.Simulation
	assert.Nil(t, con.CheckInit())
	assert.True(t, con.ValidOutput())
	assert.Equal(t, 1.0, con.BoundaryLength)
	assert.Equal(t, 0.5, con.BaseVelocity)
	assert.Equal(t, 3000, con.Steps)
	assert.Equal(t, 5.0, con.StartDistance)
	assert.Equal(t, "RK4", con.Method)
}

func TestSimulationOverrides(t *testing.T) {
	wrap := DefaultSimulationWrapper()
	err := gcfg.ReadStringInto(wrap, `[Simulation]
Output = out/run
Steps = 2000
Method = euler
StartDistance = 7.5
Plot = true`)
	assert.Nil(t, err)

	con := &wrap.Simulation
	assert.Nil(t, con.CheckInit())
	assert.Equal(t, 2000, con.Steps)
	assert.Equal(t, 7.5, con.StartDistance)
	assert.Equal(t, "Euler", con.Method)
	assert.True(t, con.Plot)
	assert.False(t, con.CSV)
	assert.Equal(t, 0.01, con.TimeStep)
}

func TestSimulationCheckInit(t *testing.T) {
	tests := []struct {
		l, k, v, dt float64
		steps int
		x0 float64
		ok bool
	}{
		{1, 1, 0.5, 0.01, 3000, 5, true},
		{0, 1, 0.5, 0.01, 3000, 5, false},
		{1, -1, 0.5, 0.01, 3000, 5, false},
		{1, 1, 0, 0.01, 3000, 5, false},
		{1, 1, 0.5, 0, 3000, 5, false},
		{1, 1, 0.5, 0.01, 0, 5, false},
		{1, 1, 0.5, 0.01, 3000, 1, false},
		{1, 1, 0.5, 0.01, 3000, 0.5, false},
	}

	for i := range tests {
		tt := tests[i]
		_, err := NewSimulationConfig(tt.l, tt.k, tt.v, tt.dt, tt.steps, tt.x0)
		if tt.ok {
			assert.Nil(t, err, "test %d", i)
		} else {
			assert.NotNil(t, err, "test %d", i)
		}
	}

	con, _ := NewSimulationConfig(1, 1, 0.5, 0.01, 10, 5)
	con.Method = "verlet"
	assert.NotNil(t, con.CheckInit())
}

func TestSimulationParams(t *testing.T) {
	con, err := NewSimulationConfig(2, 3, 0.25, 0.1, 10, 5)
	assert.Nil(t, err)
	p := con.Params()
	assert.Equal(t, 2.0, p.BoundaryLength)
	assert.Equal(t, 3.0, p.ResistanceConstant)
	assert.Equal(t, 0.25, p.BaseVelocity)
	assert.Equal(t, "RK4", con.IntegrationMethod().String())
}

func TestReadSimulationConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sim.cfg")
	body := "[Simulation]\nOutput = run\nTimeStep = -1\n"
	assert.Nil(t, os.WriteFile(fname, []byte(body), 0644))

	_, err := ReadSimulationConfig(fname)
	assert.NotNil(t, err)

	body = "[Simulation]\nOutput = run\nSteps = 12\n"
	assert.Nil(t, os.WriteFile(fname, []byte(body), 0644))
	con, err := ReadSimulationConfig(fname)
	assert.Nil(t, err)
	assert.Equal(t, 12, con.Steps)
	assert.Equal(t, "run", con.Output)
}

func TestExampleCurveFile(t *testing.T) {
	wrap := DefaultCurveWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleCurveFile)
	assert.Nil(t, err)

	con := &wrap.Curve
	assert.Nil(t, con.CheckInit())
	assert.Equal(t, PlanckLength, con.BoundaryLength)
	assert.Equal(t, PlanckTime, con.TimeUnit)
	assert.Equal(t, DefaultBandEdges, con.BandEdge)
	assert.Equal(t, DefaultBandPoints, con.BandPoints)
}

func TestCurveBands(t *testing.T) {
	wrap := DefaultCurveWrapper()
	err := gcfg.ReadStringInto(wrap, `[Curve]
Output = curve
BandEdge = 1.01
BandEdge = 2
BandPoints = 7`)
	assert.Nil(t, err)
	assert.Nil(t, wrap.Curve.CheckInit())
	assert.Equal(t, []float64{1.01, 2}, wrap.Curve.BandEdge)
	assert.Equal(t, []int{7}, wrap.Curve.BandPoints)
}

func TestCurveCheckInit(t *testing.T) {
	tests := []struct {
		edges []float64
		points []int
		ok bool
	}{
		{nil, nil, true},
		{[]float64{1, 2}, []int{3}, true},
		{[]float64{1}, []int{}, false},
		{[]float64{1, 2, 3}, []int{3}, false},
		{[]float64{2, 1}, []int{3}, false},
		{[]float64{-1, 1}, []int{3}, false},
		{[]float64{1, 2}, []int{0}, false},
	}

	for i := range tests {
		con := CurveConfig{
			BoundaryLength: 1, ResistanceConstant: 1, TimeUnit: 1,
			BandEdge: tests[i].edges, BandPoints: tests[i].points,
		}
		err := con.CheckInit()
		if tests[i].ok {
			assert.Nil(t, err, "test %d", i)
		} else {
			assert.NotNil(t, err, "test %d", i)
		}
	}

	_, err := NewCurveConfig(1, 1, 0)
	assert.NotNil(t, err)
	_, err = NewCurveConfig(0, 1, 1)
	assert.NotNil(t, err)
	con, err := NewCurveConfig(1, 2, 3)
	assert.Nil(t, err)
	assert.Equal(t, 4, len(con.BandEdge))
}
