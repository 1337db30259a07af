package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOD(t *testing.T) {
	X, Rho, _, _, _ := SOD_calc(0.1)
	xCheck := []float64{0, 0.3816784043380077, 0.3816784043380077, 0.49297271874376455, 0.49297271874376455,
		0.5927452620047974, 0.5927452620047974, 0.675215573202932, 0.675215573202932, 1}
	rhoCheck := []float64{1, 1, 1, 0.4263194281781805, 0.4263194281781805,
		0.4263194281781805, 0.26557371170513905, 0.26557371170513905, 0.125, 0.125}
	require.Len(t, X, len(xCheck))
	assert.True(t, isNear(xCheck, X, 0.001))
	assert.True(t, isNear(rhoCheck, Rho, 0.001))
	X, _, _, _, _ = SOD_calc(0.2)
	assert.True(t, math.Abs(X[8]-0.8504) < 0.0001)
}

func TestStarState(t *testing.T) {
	{ // Sod
		s, err := NewSolution(State{Rho: 1, P: 1}, State{Rho: 0.125, P: 0.1}, 1.4, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.30313017805, s.PStar, 1e-9)
		assert.InDelta(t, 0.92745262005, s.UStar, 1e-9)
		w := s.Waves()
		assert.InDelta(t, -1.18321595662, w.LeftHead, 1e-9)
		assert.InDelta(t, -0.07027281256, w.LeftTail, 1e-9)
		assert.InDelta(t, 1.75215573203, w.RightHead, 1e-9)
		assert.Equal(t, w.RightHead, w.RightTail)
		{ // Plateaus either side of the contact
			assert.InDelta(t, 0.42631942818, s.Sample(0.55, 0.1).Rho, 1e-9)
			assert.InDelta(t, 0.26557371171, s.Sample(0.65, 0.1).Rho, 1e-9)
		}
	}
	{ // Symmetric rarefactions leave a near vacuum at rest in the middle
		s, err := NewSolution(State{Rho: 1, U: -2, P: 0.4}, State{Rho: 1, U: 2, P: 0.4}, 1.4, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.00189387342, s.PStar, 1e-9)
		assert.InDelta(t, 0, s.UStar, 1e-12)
		assert.InDelta(t, 0.02185211821, s.Sample(0.5, 0.1).Rho, 1e-9)
	}
	{ // Colliding streams make two shocks
		s, err := NewSolution(State{Rho: 1, U: 2, P: 0.4}, State{Rho: 1, U: -2, P: 0.4}, 1.4, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 5.62842712475, s.PStar, 1e-9)
		w := s.Waves()
		assert.InDelta(t, 0.61421356237, w.RightHead, 1e-9)
		assert.InDelta(t, -w.RightHead, w.LeftHead, 1e-9)
		assert.InDelta(t, 4.25619641525, s.Sample(0.5, 0.1).Rho, 1e-9)
		assert.Equal(t, State{Rho: 1, U: -2, P: 0.4}, s.Sample(0.9, 0.1))
	}
	{ // Equal states are unchanged
		st := State{Rho: 1, P: 0.125}
		s, err := NewSolution(st, st, 1.4, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.125, s.PStar, 1e-12)
		got := s.Sample(0.45, 0.2)
		assert.InDelta(t, 1, got.Rho, 1e-12)
		assert.InDelta(t, 0, got.U, 1e-12)
	}
}

func TestSampleBounds(t *testing.T) {
	left, right := State{Rho: 1, P: 1}, State{Rho: 0.1, P: 0.125}
	s, err := NewSolution(left, right, 5./3., 0.5)
	require.NoError(t, err)
	assert.Equal(t, left, s.Sample(0.2, 0))
	assert.Equal(t, right, s.Sample(0.5, 0))
	assert.Equal(t, left, s.Sample(0, 0.15))
	assert.Equal(t, right, s.Sample(1, 0.15))
	{ // The fan joins its neighbors continuously
		w := s.Waves()
		head := s.Sample(0.5+w.LeftHead*0.15+1e-9, 0.15)
		tail := s.Sample(0.5+w.LeftTail*0.15-1e-9, 0.15)
		assert.InDelta(t, left.Rho, head.Rho, 1e-6)
		assert.InDelta(t, s.UStar, tail.U, 1e-6)
		assert.InDelta(t, s.PStar, tail.P, 1e-6)
	}
}

func TestBadStates(t *testing.T) {
	_, err := NewSolution(State{Rho: 0, P: 1}, State{Rho: 1, P: 1}, 1.4, 0)
	assert.Error(t, err)
	_, err = NewSolution(State{Rho: 1, P: 1}, State{Rho: 1, P: 1}, 1, 0)
	assert.Error(t, err)
	_, err = NewSolution(State{Rho: 1, U: -20, P: 1}, State{Rho: 1, U: 20, P: 1}, 1.4, 0)
	assert.Error(t, err)
}

func isNear(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if math.Abs(b[i]-val) > tol {
			return false
		}
	}
	return true
}
