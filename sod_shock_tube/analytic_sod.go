package sod_shock_tube

import (
	"fmt"
	"math"
)

// State is a primitive gas state: density, velocity and pressure.
type State struct {
	Rho, U, P float64
}

// Solution is the exact self-similar solution of a gamma-law Riemann problem
// with the diaphragm at X0.
type Solution struct {
	Left, Right State
	Gamma, X0   float64
	PStar       float64 // Pressure between the two nonlinear waves
	UStar       float64 // Velocity of the contact
	cl, cr      float64
}

func NewSolution(left, right State, gamma, x0 float64) (s *Solution, err error) {
	if !(left.Rho > 0 && left.P > 0 && right.Rho > 0 && right.P > 0) {
		return nil, fmt.Errorf("states must have positive density and pressure, got %v and %v", left, right)
	}
	if !(gamma > 1) {
		return nil, fmt.Errorf("gamma must be greater than 1, got %g", gamma)
	}
	s = &Solution{
		Left:  left,
		Right: right,
		Gamma: gamma,
		X0:    x0,
		cl:    math.Sqrt(gamma * left.P / left.Rho),
		cr:    math.Sqrt(gamma * right.P / right.Rho),
	}
	if 2/(gamma-1)*(s.cl+s.cr) <= right.U-left.U {
		return nil, fmt.Errorf("initial states generate a vacuum")
	}
	if s.PStar, err = s.fzero(); err != nil {
		return nil, err
	}
	fl, _ := s.waveFunction(s.PStar, left, s.cl)
	fr, _ := s.waveFunction(s.PStar, right, s.cr)
	s.UStar = 0.5*(left.U+right.U) + 0.5*(fr-fl)
	return
}

// waveFunction relates the pressure across a left or right wave to the
// velocity jump, shock branch above the outer pressure, rarefaction below.
func (s *Solution) waveFunction(p float64, k State, c float64) (f, df float64) {
	g := s.Gamma
	if p > k.P {
		var (
			A = 2 / ((g + 1) * k.Rho)
			B = (g - 1) / (g + 1) * k.P
			q = math.Sqrt(A / (B + p))
		)
		f = (p - k.P) * q
		df = q * (1 - 0.5*(p-k.P)/(B+p))
		return
	}
	pRatio := p / k.P
	f = 2 * c / (g - 1) * (math.Pow(pRatio, (g-1)/(2*g)) - 1)
	df = 1 / (k.Rho * c) * math.Pow(pRatio, -(g+1)/(2*g))
	return
}

// fzero finds the star pressure by Newton iteration from the two rarefaction
// approximation.
func (s *Solution) fzero() (p float64, err error) {
	var (
		g       = s.Gamma
		z       = (g - 1) / (2 * g)
		du      = s.Right.U - s.Left.U
		tol     = 1e-12
		maxIter = 100
	)
	p = math.Pow((s.cl+s.cr-0.5*(g-1)*du)/(s.cl/math.Pow(s.Left.P, z)+s.cr/math.Pow(s.Right.P, z)), 1/z)
	p = math.Max(p, tol)
	for iter := 0; iter < maxIter; iter++ {
		fl, dfl := s.waveFunction(p, s.Left, s.cl)
		fr, dfr := s.waveFunction(p, s.Right, s.cr)
		pNew := p - (fl+fr+du)/(dfl+dfr)
		if pNew < tol {
			pNew = tol
		}
		if 2*math.Abs(pNew-p)/(pNew+p) < tol {
			return pNew, nil
		}
		p = pNew
	}
	return 0, fmt.Errorf("star pressure did not converge in %d iterations", maxIter)
}

// Waves holds the signal speeds of the solution, left to right. A shock has
// equal head and tail speeds.
type Waves struct {
	LeftHead, LeftTail, Contact, RightTail, RightHead float64
}

func (s *Solution) Waves() (w Waves) {
	var (
		g = s.Gamma
		z = (g - 1) / (2 * g)
	)
	w.Contact = s.UStar
	if s.PStar > s.Left.P {
		w.LeftHead = s.Left.U - s.cl*math.Sqrt((g+1)/(2*g)*s.PStar/s.Left.P+z)
		w.LeftTail = w.LeftHead
	} else {
		w.LeftHead = s.Left.U - s.cl
		w.LeftTail = s.UStar - s.cl*math.Pow(s.PStar/s.Left.P, z)
	}
	if s.PStar > s.Right.P {
		w.RightHead = s.Right.U + s.cr*math.Sqrt((g+1)/(2*g)*s.PStar/s.Right.P+z)
		w.RightTail = w.RightHead
	} else {
		w.RightHead = s.Right.U + s.cr
		w.RightTail = s.UStar + s.cr*math.Pow(s.PStar/s.Right.P, z)
	}
	return
}

// Sample evaluates the solution at x a time t after the diaphragm bursts.
func (s *Solution) Sample(x, t float64) State {
	if t <= 0 {
		if x < s.X0 {
			return s.Left
		}
		return s.Right
	}
	var (
		g  = s.Gamma
		g6 = (g - 1) / (g + 1)
		w  = s.Waves()
		S  = (x - s.X0) / t
	)
	if S <= s.UStar {
		k, c := s.Left, s.cl
		switch {
		case S <= w.LeftHead:
			return k
		case s.PStar > k.P:
			r := s.PStar / k.P
			return State{Rho: k.Rho * (r + g6) / (g6*r + 1), U: s.UStar, P: s.PStar}
		case S > w.LeftTail:
			return State{Rho: k.Rho * math.Pow(s.PStar/k.P, 1/g), U: s.UStar, P: s.PStar}
		default:
			cf := 2 / (g + 1) * (c + 0.5*(g-1)*(k.U-S))
			return State{
				Rho: k.Rho * math.Pow(cf/c, 2/(g-1)),
				U:   2 / (g + 1) * (c + 0.5*(g-1)*k.U + S),
				P:   k.P * math.Pow(cf/c, 2*g/(g-1)),
			}
		}
	}
	k, c := s.Right, s.cr
	switch {
	case S >= w.RightHead:
		return k
	case s.PStar > k.P:
		r := s.PStar / k.P
		return State{Rho: k.Rho * (r + g6) / (g6*r + 1), U: s.UStar, P: s.PStar}
	case S < w.RightTail:
		return State{Rho: k.Rho * math.Pow(s.PStar/k.P, 1/g), U: s.UStar, P: s.PStar}
	default:
		cf := 2 / (g + 1) * (c - 0.5*(g-1)*(k.U-S))
		return State{
			Rho: k.Rho * math.Pow(cf/c, 2/(g-1)),
			U:   2 / (g + 1) * (-c + 0.5*(g-1)*k.U + S),
			P:   k.P * math.Pow(cf/c, 2*g/(g-1)),
		}
	}
}

// SOD_calc samples the classic Sod problem (gamma = 1.4) on [0, 1] at the
// edges of each wave, the points where the profile changes character.
func SOD_calc(t float64) (X, Rho, P, U, E []float64) {
	s, err := NewSolution(State{Rho: 1, P: 1}, State{Rho: 0.125, P: 0.1}, 1.4, 0.5)
	if err != nil {
		panic(err)
	}
	var (
		w   = s.Waves()
		tol = 0.00000001
	)
	X = []float64{0}
	for _, speed := range []float64{w.LeftHead, w.LeftTail, w.Contact, w.RightHead} {
		x := s.X0 + speed*t
		X = append(X, x-tol, x+tol)
	}
	X = append(X, 1)
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		st := s.Sample(x, t)
		Rho[i], U[i], P[i] = st.Rho, st.U, st.P
		E[i] = P[i] / ((s.Gamma - 1.) * Rho[i])
	}
	return
}
