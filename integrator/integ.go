/*package integrator contains fixed-step integrators for one-dimensional
autonomous ODEs of the form dx/dt = law.Velocity(x).

All steppers are pure: the input State is never modified.
*/
package integrator

import (
	"fmt"
	"strings"
)

// State is a particle's state vector. Only State[0], the radial position, is
// used by the laws in this package.
type State []float64

// Clone returns a copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// axpy returns y + a*k.
func axpy(y State, a float64, k State) State {
	out := make(State, len(y))
	for i := range y { out[i] = y[i] + a*k[i] }
	return out
}

func deriv(law Law, y State) State {
	dy := make(State, len(y))
	for i := range y { dy[i] = law.Velocity(y[i]) }
	return dy
}

// RK4 advances y by one classical fourth-order Runge-Kutta step of size dt.
func RK4(law Law, y State, dt float64) State {
	k1 := deriv(law, y)
	k2 := deriv(law, axpy(y, dt/2, k1))
	k3 := deriv(law, axpy(y, dt/2, k2))
	k4 := deriv(law, axpy(y, dt, k3))

	next := make(State, len(y))
	f := dt / 6.0
	for i := range y {
		next[i] = y[i] + f*(k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
	return next
}

// Euler advances y by one explicit Euler step of size dt.
func Euler(law Law, y State, dt float64) State {
	return axpy(y, dt, deriv(law, y))
}

// Method is a named single-step integration scheme.
type Method int

const (
	MethodRK4 Method = iota
	MethodEuler
)

func (m Method) String() string {
	switch m {
	case MethodRK4:
		return "RK4"
	case MethodEuler:
		return "Euler"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a (case-insensitive) method name into a Method. The
// empty string is RK4.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "RK4":
		return MethodRK4, nil
	case "EULER":
		return MethodEuler, nil
	}
	return 0, fmt.Errorf(
		"Method must be one of [RK4 | Euler]. '%s' is not recognized.", s,
	)
}

// Step advances y by one step of size dt using m.
func (m Method) Step(law Law, y State, dt float64) State {
	switch m {
	case MethodRK4:
		return RK4(law, y, dt)
	case MethodEuler:
		return Euler(law, y, dt)
	}
	panic(fmt.Sprintf("Unknown method %d.", int(m)))
}
