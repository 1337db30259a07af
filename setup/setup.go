package setup

import (
	"fmt"
	"io"
	"sync"

	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/types"
)

const (
	NumPrimitive = 3 // values written per cell by InitialPrimitive
	NumGuard     = 2 // guard cells per side of a structured mesh
)

// Setup is an initial value problem. Implementations are immutable once
// built, so every method may be called from any number of goroutines.
type Setup interface {
	PrintParameters(w io.Writer)
	// SolverName names the solver family whose primitive layout this setup
	// writes, see types.SolverIso2D and types.SolverEuler1D.
	SolverName() string
	// InitialPrimitive writes NumPrimitive values for the point (x, y). It
	// must depend on nothing but its arguments and the setup's parameters.
	InitialPrimitive(x, y float64, primitive []float64)
	InitialTime() float64
	EndTime() (t float64, ok bool)
	// Masses returns the point masses at time t in a fixed order.
	Masses(t float64) []types.PointMass
	EquationOfState() types.EquationOfState
	BufferZone() types.BufferZone
	Viscosity() (nu float64, ok bool)
	Mesh(resolution int) mesh.Mesh
	CoordinateSystem() types.Coordinates
}

// ExactSolution is implemented by setups whose evolution is known in closed
// form.
type ExactSolution interface {
	ExactPrimitive(x, t float64, primitive []float64)
}

// defaults supplies the optional parts of Setup. Variants embed it and
// override what they need.
type defaults struct{}

func (defaults) PrintParameters(io.Writer)           {}
func (defaults) InitialTime() float64                { return 0 }
func (defaults) EndTime() (float64, bool)            { return 0, false }
func (defaults) Masses(float64) []types.PointMass    { return nil }
func (defaults) BufferZone() types.BufferZone        { return types.NoBuffer{} }
func (defaults) Viscosity() (float64, bool)          { return 0, false }
func (defaults) CoordinateSystem() types.Coordinates { return types.Cartesian }

// InitialPrimitiveVec fills the whole domain. A structured mesh gets
// NumGuard guard cells on every side, evaluated from the same function as
// the interior, laid out with strides si = 3*(nj+4) and sj = 3. A 1D face
// mesh gets one entry per cell, sampled at the cell midpoint.
func InitialPrimitiveVec(s Setup, m mesh.Mesh) (primitive []float64) {
	switch m := m.(type) {
	case *mesh.StructuredMesh:
		var (
			ng = NumGuard
			si = NumPrimitive * (m.NJ + 2*ng)
			sj = NumPrimitive
		)
		primitive = make([]float64, (m.NI+2*ng)*(m.NJ+2*ng)*NumPrimitive)
		for i := -ng; i < m.NI+ng; i++ {
			for j := -ng; j < m.NJ+ng; j++ {
				n := (i+ng)*si + (j+ng)*sj
				x, y := m.CellCoordinates(i, j)
				s.InitialPrimitive(x, y, primitive[n:n+NumPrimitive])
			}
		}
	case mesh.FacePositions1D:
		primitive = make([]float64, m.NumCells()*NumPrimitive)
		for i := 0; i < m.NumCells(); i++ {
			n := i * NumPrimitive
			s.InitialPrimitive(m.CellCenter(i), 0, primitive[n:n+NumPrimitive])
		}
	default:
		panic(fmt.Errorf("unknown mesh type %T", m))
	}
	return
}

// InitialPrimitivePatch fills only the cells of space, which may reach into
// the guard zones.
func InitialPrimitivePatch(s Setup, space mesh.IndexSpace, m *mesh.StructuredMesh) *mesh.Patch {
	return mesh.FromSliceFunction(space, NumPrimitive, func(i, j int, prim []float64) {
		x, y := m.CellCoordinates(i, j)
		s.InitialPrimitive(x, y, prim)
	})
}

// InitialPrimitivePatches decomposes m into numPatches row bands, each grown
// by its guard cells, and fills them concurrently.
func InitialPrimitivePatches(s Setup, m *mesh.StructuredMesh, numPatches int) (patches []*mesh.Patch) {
	var (
		spaces = m.Decompose(numPatches)
		wg     sync.WaitGroup
	)
	patches = make([]*mesh.Patch, len(spaces))
	for np := range spaces {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			patches[np] = InitialPrimitivePatch(s, spaces[np].Extend(NumGuard), m)
		}(np)
	}
	wg.Wait()
	return
}

// RequireSolver rejects pairing s with a solver of another family.
func RequireSolver(s Setup, solverName string) error {
	if s.SolverName() != solverName {
		return fmt.Errorf("%w: setup needs solver %s, got %s", ErrInvalidSetup, s.SolverName(), solverName)
	}
	return nil
}

// noParameters rejects any non-empty parameter string.
func noParameters(name, parameters string) error {
	if len(parameters) != 0 {
		return fmt.Errorf("%w: %s problem does not take any parameters, got %s", ErrInvalidSetup, name, parameters)
	}
	return nil
}
