package setup

import (
	"fmt"

	"github.com/notargets/gosailfish/lookuptable"
	"github.com/notargets/gosailfish/mesh"
	"github.com/notargets/gosailfish/types"
)

// Sedov starts from a tabulated self-similar blast wave. The table rows are
// (r, rho, v, p) and the mesh is built from the tabulated radii.
type Sedov struct {
	defaults
	faces mesh.FacePositions1D
	table *lookuptable.Table
}

// NewSedov reads the table named by parameters.
func NewSedov(parameters string) (s *Sedov, err error) {
	var (
		filename = parameters
		table    *lookuptable.Table
	)
	if len(filename) == 0 {
		return nil, fmt.Errorf("%w: sedov problem needs the path of a lookup table", ErrInvalidSetup)
	}
	if table, err = lookuptable.ReadFile(filename, 1+NumPrimitive); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSetup, err)
	}
	if table.Len() < 2 {
		return nil, fmt.Errorf("%w: table must have at least 2 rows", ErrInvalidSetup)
	}
	s = &Sedov{
		faces: facesFromCenters(table.Column(0)),
		table: table,
	}
	return
}

// facesFromCenters places interior faces midway between neighboring centers
// and the two outer faces half a neighboring spacing beyond the end centers.
func facesFromCenters(centers []float64) (faces mesh.FacePositions1D) {
	n := len(centers)
	faces = make(mesh.FacePositions1D, n+1)
	faces[0] = centers[0] - 0.5*(centers[1]-centers[0])
	for i := 1; i < n; i++ {
		faces[i] = 0.5 * (centers[i-1] + centers[i])
	}
	faces[n] = centers[n-1] + 0.5*(centers[n-1]-centers[n-2])
	return
}

func (*Sedov) SolverName() string { return types.SolverEuler1D }

func (s *Sedov) InitialPrimitive(x, _ float64, primitive []float64) {
	row := s.table.Sample(x)
	primitive[0] = row[1]
	primitive[1] = row[2]
	primitive[2] = row[3]
}

func (*Sedov) InitialTime() float64 { return 1.0 }

func (*Sedov) EquationOfState() types.EquationOfState {
	return types.GammaLaw{GammaLawIndex: 5.0 / 3.0}
}

// Mesh ignores resolution, the table fixes the cells.
func (s *Sedov) Mesh(int) mesh.Mesh {
	return append(mesh.FacePositions1D(nil), s.faces...)
}

func (*Sedov) CoordinateSystem() types.Coordinates { return types.SphericalPolar }
