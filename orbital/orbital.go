package orbital

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// OrbitalElements describe a bound two-body orbit in units where G = 1. The
// orbit lies in the x-y plane with pericenter on the +x axis at t = 0.
type OrbitalElements struct {
	SemimajorAxis float64
	TotalMass     float64
	MassRatio     float64 // secondary / primary
	Eccentricity  float64
}

type Body struct {
	Mass     float64
	Position r2.Vec
	Velocity r2.Vec
}

// OrbitalState holds the primary at index 0 and the secondary at index 1.
type OrbitalState [2]Body

func NewOrbitalElements(a, m, q, e float64) (oe OrbitalElements, err error) {
	switch {
	case !(a > 0):
		err = fmt.Errorf("semi-major axis must be positive, got %g", a)
	case !(m > 0):
		err = fmt.Errorf("total mass must be positive, got %g", m)
	case !(q >= 0 && q <= 1):
		err = fmt.Errorf("mass ratio must be in [0, 1], got %g", q)
	case !(e >= 0 && e < 1):
		err = fmt.Errorf("eccentricity must be in [0, 1), got %g", e)
	}
	oe = OrbitalElements{SemimajorAxis: a, TotalMass: m, MassRatio: q, Eccentricity: e}
	return
}

func (oe OrbitalElements) Masses() (m1, m2 float64) {
	m1 = oe.TotalMass / (1 + oe.MassRatio)
	m2 = oe.TotalMass * oe.MassRatio / (1 + oe.MassRatio)
	return
}

func (oe OrbitalElements) MeanMotion() float64 {
	a := oe.SemimajorAxis
	return math.Sqrt(oe.TotalMass / (a * a * a))
}

func (oe OrbitalElements) Period() float64 {
	return 2 * math.Pi / oe.MeanMotion()
}

// OrbitalStateFromTime places both bodies about the center of mass at time t.
func (oe OrbitalElements) OrbitalStateFromTime(t float64) (os OrbitalState) {
	var (
		a, e   = oe.SemimajorAxis, oe.Eccentricity
		n      = oe.MeanMotion()
		ecc    = SolveKepler(math.Mod(n*t, 2*math.Pi), e)
		sinE   = math.Sin(ecc)
		cosE   = math.Cos(ecc)
		b      = a * math.Sqrt(1-e*e)
		eDot   = n / (1 - e*cosE)
		m1, m2 = oe.Masses()
		m      = oe.TotalMass
	)
	// Separation of the secondary from the primary
	sep := r2.Vec{X: a * (cosE - e), Y: b * sinE}
	vel := r2.Vec{X: -a * sinE * eDot, Y: b * cosE * eDot}
	os[0] = Body{
		Mass:     m1,
		Position: r2.Scale(-m2/m, sep),
		Velocity: r2.Scale(-m2/m, vel),
	}
	os[1] = Body{
		Mass:     m2,
		Position: r2.Scale(m1/m, sep),
		Velocity: r2.Scale(m1/m, vel),
	}
	return
}

// SolveKepler returns the eccentric anomaly E with E - e sin(E) = M.
func SolveKepler(meanAnomaly, e float64) (ecc float64) {
	var (
		tol     = 1e-14
		maxIter = 100
	)
	ecc = meanAnomaly
	if e > 0.8 {
		ecc = math.Pi
	}
	for iter := 0; iter < maxIter; iter++ {
		f := ecc - e*math.Sin(ecc) - meanAnomaly
		if math.Abs(f) < tol {
			break
		}
		ecc -= f / (1 - e*math.Cos(ecc))
	}
	return
}
