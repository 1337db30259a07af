package setup

import (
	"fmt"

	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/sod_shock_tube"
	"github.com/notargets/gosailfish/types"
)

// Shocktube is the Sod problem on [0, 1], diaphragm at x = 0.5.
type Shocktube struct {
	defaults
	exact *sod_shock_tube.Solution
}

func NewShocktube(parameters string) (st *Shocktube, err error) {
	if err = noParameters("shocktube", parameters); err != nil {
		return nil, err
	}
	st = &Shocktube{}
	var (
		left, right = make([]float64, NumPrimitive), make([]float64, NumPrimitive)
		gamma       = st.EquationOfState().(types.GammaLaw).GammaLawIndex
	)
	st.InitialPrimitive(0, 0, left)
	st.InitialPrimitive(1, 0, right)
	if st.exact, err = sod_shock_tube.NewSolution(
		sod_shock_tube.State{Rho: left[0], U: left[1], P: left[2]},
		sod_shock_tube.State{Rho: right[0], U: right[1], P: right[2]},
		gamma, 0.5); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	return
}

func (*Shocktube) SolverName() string { return types.SolverEuler1D }

func (*Shocktube) InitialPrimitive(x, _ float64, primitive []float64) {
	if x < 0.5 {
		primitive[0] = 1.0
		primitive[2] = 1.0
	} else {
		primitive[0] = 0.1
		primitive[2] = 0.125
	}
	primitive[1] = 0.0
}

// ExactPrimitive is the exact Riemann solution at time t, matching
// InitialPrimitive at t = 0.
func (st *Shocktube) ExactPrimitive(x, t float64, primitive []float64) {
	state := st.exact.Sample(x, t-st.InitialTime())
	primitive[0] = state.Rho
	primitive[1] = state.U
	primitive[2] = state.P
}

func (*Shocktube) EndTime() (float64, bool) { return 0.15, true }

func (*Shocktube) EquationOfState() types.EquationOfState {
	return types.GammaLaw{GammaLawIndex: 5.0 / 3.0}
}

func (*Shocktube) Mesh(resolution int) mesh.Mesh {
	return mesh.NewUniformFaces(0, 1, resolution)
}
