package orbital

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCircularEqualMass(t *testing.T) {
	oe, err := NewOrbitalElements(1, 1, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, oe.Period(), 1e-14)
	{ // t = 0, both bodies on the x axis
		os := oe.OrbitalStateFromTime(0)
		assert.Equal(t, 0.5, os[0].Mass)
		assert.Equal(t, 0.5, os[1].Mass)
		assert.InDelta(t, -0.5, os[0].Position.X, 1e-14)
		assert.InDelta(t, 0.5, os[1].Position.X, 1e-14)
		assert.InDelta(t, -0.5, os[0].Velocity.Y, 1e-14)
		assert.InDelta(t, 0.5, os[1].Velocity.Y, 1e-14)
	}
	{ // Diametrically opposed at all times
		for _, time := range []float64{0.3, 1.7, 4.0, 100.0} {
			os := oe.OrbitalStateFromTime(time)
			sum := r2.Add(os[0].Position, os[1].Position)
			assert.InDelta(t, 0, r2.Norm(sum), 1e-12)
			assert.InDelta(t, 1, r2.Norm(r2.Sub(os[1].Position, os[0].Position)), 1e-12)
		}
	}
	{ // Quarter period
		os := oe.OrbitalStateFromTime(0.25 * oe.Period())
		assert.InDelta(t, 0, os[1].Position.X, 1e-12)
		assert.InDelta(t, 0.5, os[1].Position.Y, 1e-12)
	}
}

func TestEccentricUnequalMass(t *testing.T) {
	oe, err := NewOrbitalElements(1, 1, 0.25, 0.5)
	require.NoError(t, err)
	m1, m2 := oe.Masses()
	assert.InDelta(t, 0.8, m1, 1e-15)
	assert.InDelta(t, 0.2, m2, 1e-15)
	energy := func(os OrbitalState) float64 {
		v := r2.Sub(os[1].Velocity, os[0].Velocity)
		r := r2.Norm(r2.Sub(os[1].Position, os[0].Position))
		mu := m1 * m2 / (m1 + m2)
		return 0.5*mu*r2.Norm2(v) - m1*m2/r
	}
	e0 := energy(oe.OrbitalStateFromTime(0))
	assert.InDelta(t, -m1*m2/2, e0, 1e-12)
	for _, time := range []float64{0.5, 1.3, 2.9, 5.1} {
		os := oe.OrbitalStateFromTime(time)
		momentum := r2.Add(r2.Scale(os[0].Mass, os[0].Velocity), r2.Scale(os[1].Mass, os[1].Velocity))
		com := r2.Add(r2.Scale(os[0].Mass, os[0].Position), r2.Scale(os[1].Mass, os[1].Position))
		assert.InDelta(t, 0, r2.Norm(momentum), 1e-12)
		assert.InDelta(t, 0, r2.Norm(com), 1e-12)
		assert.InDelta(t, e0, energy(os), 1e-10)
	}
	{ // Pericenter separation at t = 0
		os := oe.OrbitalStateFromTime(0)
		assert.InDelta(t, 0.5, r2.Norm(r2.Sub(os[1].Position, os[0].Position)), 1e-12)
	}
}

func TestSolveKepler(t *testing.T) {
	for _, e := range []float64{0, 0.1, 0.5, 0.9, 0.99} {
		for _, M := range []float64{0, 0.1, 1, 3, 6} {
			E := SolveKepler(M, e)
			assert.InDelta(t, M, E-e*math.Sin(E), 1e-12)
		}
	}
}

func TestNewOrbitalElements(t *testing.T) {
	_, err := NewOrbitalElements(1, 1, 1.5, 0)
	assert.Error(t, err)
	_, err = NewOrbitalElements(1, 1, 1, 1)
	assert.Error(t, err)
	_, err = NewOrbitalElements(0, 1, 1, 0)
	assert.Error(t, err)
	_, err = NewOrbitalElements(1, -1, 1, 0)
	assert.Error(t, err)
}
