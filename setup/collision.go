package setup

import (
	"math"

	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/types"
)

// Collision sends two Gaussian density bumps at x = -0.25 and x = 0.25
// toward each other over a cold, tenuous background.
type Collision struct {
	defaults
}

func NewCollision(parameters string) (*Collision, error) {
	if err := noParameters("collision", parameters); err != nil {
		return nil, err
	}
	return &Collision{}, nil
}

func (*Collision) SolverName() string { return types.SolverEuler1D }

func (*Collision) InitialPrimitive(x, _ float64, primitive []float64) {
	var (
		xl, xr = -0.25, 0.25
		dx     = 0.025
	)
	gaussian := func(x, x0 float64) float64 {
		return math.Exp(-(x - x0) * (x - x0) / (dx * dx))
	}
	step := func(x, x0 float64) float64 {
		if math.Abs(x-x0) < dx*10 {
			return 1
		}
		return 0
	}
	rho := gaussian(x, xl) + gaussian(x, xr) + 1e-2
	primitive[0] = rho
	primitive[1] = step(x, xl) - step(x, xr)
	primitive[2] = rho * 1e-4
}

func (*Collision) EndTime() (float64, bool) { return 5.0, true }

func (*Collision) EquationOfState() types.EquationOfState {
	return types.GammaLaw{GammaLawIndex: 5.0 / 3.0}
}

func (*Collision) Mesh(resolution int) mesh.Mesh {
	return mesh.NewUniformFaces(-1, 1, resolution)
}
