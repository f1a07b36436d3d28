/*package plot renders trajectories and dilation curves with matplotlib.

Figures are queued with pyplot and are only drawn when the caller runs
plt.Execute.
*/
package plot

import (
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/itlt/infall/dilation"
	"github.com/itlt/infall/trajectory"
)

const (
	StandardColor = "Crimson"
	ITLTColor     = "RoyalBlue"
	BoundaryColor = "ForestGreen"
	CurveColor    = "#D32F2F"

	// Distance factor at which the curve's "classical" region begins.
	PhaseTransition = 2.0
)

// Trajectory queues a figure of both particles' positions against time, with
// horizontal reference lines at the center and at the boundary.
func Trajectory(s *trajectory.Series, fname string) {
	if s.Len() == 0 { return }
	t0, t1 := s.Times[0], s.Times[s.Len() - 1]

	plt.Figure(plt.FigSize(10, 6))

	plt.Plot(s.Times, s.Standard, "--", plt.C(StandardColor), plt.LW(2))
	plt.Plot(s.Times, s.ITLT, plt.C(ITLTColor), plt.LW(3))

	hx, hy := HLine(t0, t1, s.BoundaryLength)
	plt.Plot(hx, hy, ":", plt.C(BoundaryColor), plt.LW(2))
	hx, hy = HLine(t0, t1, 0)
	plt.Plot(hx, hy, "k", plt.LW(1))

	plt.Title("Particle Infall: Standard Model vs. Inverse Time Limit Theory")
	plt.XLabel(`Time $t$`, plt.FontSize(14))
	plt.YLabel(`Radial distance $r$`, plt.FontSize(14))

	yHi := math.Max(s.Standard[0], s.ITLT[0])
	plt.XLim(t0, t1)
	plt.YLim(-0.05*yHi, 1.05*yHi)

	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}

// Curve queues a log-scale figure of the dilation ratio against distance
// factor, with vertical markers at the boundary and at PhaseTransition.
func Curve(c dilation.Curve, fname string) {
	if len(c) == 0 { return }
	xs, ys := c.Factors(), c.Ratios()
	yLo, yHi, ok := LogLimits(ys)
	if !ok { return }

	plt.Figure(plt.FigSize(12, 7))
	plt.Plot(xs, ys, plt.C(CurveColor), plt.LW(3))

	vx, vy := VLine(1, yLo, yHi)
	plt.Plot(vx, vy, "k", plt.LW(2))
	vx, vy = VLine(PhaseTransition, yLo, yHi)
	plt.Plot(vx, vy, "--", plt.C(BoundaryColor), plt.LW(2))

	plt.Title("Temporal Resistance at the Static Boundary")
	plt.XLabel(`Distance from center [$l_p$]`, plt.FontSize(14))
	plt.YLabel(`Dilation ratio [$t_p$]`, plt.FontSize(14))

	plt.YScale("log")
	plt.YLim(yLo, yHi)
	plt.XLim(math.Min(1, xs[0]) - 0.1, xs[len(xs) - 1])

	plt.Grid(plt.Axis("y"), plt.Which("both"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
}

// HLine returns the endpoints of a horizontal line at y spanning [x0, x1].
func HLine(x0, x1, y float64) (xs, ys []float64) {
	return []float64{x0, x1}, []float64{y, y}
}

// VLine returns the endpoints of a vertical line at x spanning [y0, y1].
func VLine(x, y0, y1 float64) (xs, ys []float64) {
	return []float64{x, x}, []float64{y0, y1}
}

// LogLimits returns padded log-axis limits for the finite, positive values
// of ys. ok is false if there are no such values.
func LogLimits(ys []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(+1), math.Inf(-1)
	for _, y := range ys {
		if y <= 0 || math.IsInf(y, 0) || math.IsNaN(y) { continue }
		if y < lo { lo = y }
		if y > hi { hi = y }
	}
	if math.IsInf(lo, 0) { return 0, 0, false }
	return lo / 2, hi * 2, true
}
