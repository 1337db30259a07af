package setup

import (
	"math"

	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/types"
)

// Explosion is a dense disk of radius 0.25 in a uniform isothermal medium.
type Explosion struct {
	defaults
}

func NewExplosion(parameters string) (*Explosion, error) {
	if err := noParameters("explosion", parameters); err != nil {
		return nil, err
	}
	return &Explosion{}, nil
}

func (*Explosion) SolverName() string { return types.SolverIso2D }

func (*Explosion) InitialPrimitive(x, y float64, primitive []float64) {
	if math.Sqrt(x*x+y*y) < 0.25 {
		primitive[0] = 1.0
	} else {
		primitive[0] = 0.1
	}
	primitive[1] = 0.0
	primitive[2] = 0.0
}

func (*Explosion) EndTime() (float64, bool) { return 0.2, true }

func (*Explosion) EquationOfState() types.EquationOfState {
	return types.Isothermal{SoundSpeedSquared: 1.0}
}

func (*Explosion) Mesh(resolution int) mesh.Mesh {
	return mesh.NewCenteredSquare(1.0, resolution)
}
