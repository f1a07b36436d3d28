/*package resist contains the temporal resistance function used by both the
trajectory integrator and the dilation curve sampler.

The resistance at a distance x from the center is

    T(x) = k / sqrt(1 - (l/x)^2)

where l is the boundary length and k is the resistance constant. T diverges as
x approaches l and tends to k for x >> l.
*/
package resist

import (
	"math"
)

const (
	// InfiniteResistance is the value Resistance returns at or inside the
	// boundary. It is finite so that v / T stays a (tiny) real number in
	// the integrator instead of becoming 0 * Inf or NaN.
	InfiniteResistance = 1e9
	// Epsilon is the smallest square-root factor Resistance will divide by.
	Epsilon = 1e-9
)

// Resistance returns the temporal resistance at position x for a boundary
// length l and resistance constant k. Positions at or inside the boundary
// return InfiniteResistance.
func Resistance(x, l, k float64) float64 {
	if x <= l { return InfiniteResistance }

	r := l / x
	radicand := 1 - r*r
	if math.IsNaN(radicand) || radicand < 0 { return InfiniteResistance }

	factor := math.Sqrt(radicand)
	if factor < Epsilon { factor = Epsilon }
	return k / factor
}

// Dilation returns the time dilation at the distance factor xf = x / l for a
// resistance constant k. Unlike Resistance, factors at or inside the boundary
// return +Inf: curve plots show this as an unbounded value on a log axis.
func Dilation(xf, k float64) float64 {
	if xf <= 1 { return math.Inf(+1) }
	r := 1 / xf
	return k / math.Sqrt(1 - r*r)
}
