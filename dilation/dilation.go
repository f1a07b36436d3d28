/*package dilation samples the closed-form time dilation curve on a
non-uniform grid of distance factors.

Distance factors are given in multiples of the boundary length, so a factor
of 2 is twice the boundary length from the center.
*/
package dilation

import (
	"fmt"
	"sort"

	"github.com/itlt/infall/io"
	"github.com/itlt/infall/resist"
)

var (
	CurveHeader = []string{
		"Distance_Factor_(x/l_p)", "Time_Dilation_Value_(s)", "Dilation_Ratio",
	}
)

// Band is a range of distance factors sampled with N evenly spaced points,
// both ends included.
type Band struct {
	Lo, Hi float64
	N int
}

// DefaultBands resolve the region near the boundary most finely.
var DefaultBands = []Band{
	{1.001, 1.1, 50}, // near the static boundary
	{1.1, 2.5, 50},   // transition zone
	{2.5, 10.0, 50},  // classical zone
}

// Bands converts the band edges and point counts of a validated CurveConfig
// into Bands.
func Bands(con *io.CurveConfig) []Band {
	bands := make([]Band, len(con.BandPoints))
	for i := range bands {
		bands[i] = Band{con.BandEdge[i], con.BandEdge[i + 1], con.BandPoints[i]}
	}
	return bands
}

// Linspace returns n evenly spaced values from lo to hi inclusive. The last
// value is exactly hi.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 { return []float64{} }
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}

	dx := (hi - lo) / float64(n - 1)
	for i := range xs { xs[i] = lo + float64(i)*dx }
	xs[n - 1] = hi
	return xs
}

// Factors concatenates the samples of each band and sorts them. Shared band
// edges appear once per band.
func Factors(bands []Band) []float64 {
	xs := []float64{}
	for _, b := range bands {
		xs = append(xs, Linspace(b.Lo, b.Hi, b.N)...)
	}
	sort.Float64s(xs)
	return xs
}

// Sample is one row of a dilation curve.
type Sample struct {
	Factor float64 // x / l
	Value float64 // dilation, in the units of the resistance constant
	Ratio float64 // Value / time unit
}

// Curve is a list of Samples in increasing Factor order.
type Curve []Sample

// SampleCurve evaluates the dilation curve described by a validated CurveConfig.
func SampleCurve(con *io.CurveConfig) Curve {
	return SampleFactors(
		Factors(Bands(con)), con.ResistanceConstant, con.TimeUnit,
	)
}

// SampleFactors evaluates the dilation at each of the given factors. Factors
// at or inside the boundary have infinite Value and Ratio.
func SampleFactors(xs []float64, k, timeUnit float64) Curve {
	c := make(Curve, len(xs))
	for i, xf := range xs {
		// resist.Dilation returns +Inf at the boundary, not the finite
		// integrator sentinel: these values are meant for log-scale plots.
		v := resist.Dilation(xf, k)
		c[i] = Sample{ xf, v, v / timeUnit }
	}
	return c
}

// Factors returns the distance factor column.
func (c Curve) Factors() []float64 {
	out := make([]float64, len(c))
	for i := range c { out[i] = c[i].Factor }
	return out
}

// Values returns the dilation value column.
func (c Curve) Values() []float64 {
	out := make([]float64, len(c))
	for i := range c { out[i] = c[i].Value }
	return out
}

// Ratios returns the dilation ratio column.
func (c Curve) Ratios() []float64 {
	out := make([]float64, len(c))
	for i := range c { out[i] = c[i].Ratio }
	return out
}

// Distances converts the distance factors to absolute distances for a
// boundary length l.
func (c Curve) Distances(l float64) []float64 {
	out := make([]float64, len(c))
	for i := range c { out[i] = c[i].Factor * l }
	return out
}

// Columns returns the table columns matching CurveHeader.
func (c Curve) Columns() [][]float64 {
	return [][]float64{ c.Factors(), c.Values(), c.Ratios() }
}

// FromColumns rebuilds a Curve from table columns in CurveHeader order.
func FromColumns(cols [][]float64) (Curve, error) {
	if len(cols) != len(CurveHeader) {
		return nil, fmt.Errorf(
			"Expected %d curve columns, got %d.", len(CurveHeader), len(cols),
		)
	}

	c := make(Curve, len(cols[0]))
	for i := range c {
		c[i] = Sample{ cols[0][i], cols[1][i], cols[2][i] }
	}
	return c, nil
}
