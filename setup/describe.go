package setup

import (
	"fmt"
	"io"

	"github.com/notargets/gosailfish/mesh"
)

// Describe prints the static description of s on a mesh of the given
// resolution, followed by the point masses at the initial time.
func Describe(w io.Writer, s Setup, resolution int) {
	fmt.Fprintf(w, "[%s]\t\t= Solver\n", s.SolverName())
	fmt.Fprintf(w, "[%s]\t= Equation of State\n", s.EquationOfState())
	fmt.Fprintf(w, "[%s]\t\t= Coordinates\n", s.CoordinateSystem())
	fmt.Fprintf(w, "[%s]\t\t\t= Buffer Zone\n", s.BufferZone())
	if nu, ok := s.Viscosity(); ok {
		fmt.Fprintf(w, "%8.5f\t\t= Viscosity\n", nu)
	} else {
		fmt.Fprintf(w, "[inviscid]\t\t= Viscosity\n")
	}
	fmt.Fprintf(w, "%8.5f\t\t= Initial Time\n", s.InitialTime())
	if t, ok := s.EndTime(); ok {
		fmt.Fprintf(w, "%8.5f\t\t= End Time\n", t)
	} else {
		fmt.Fprintf(w, "[unlimited]\t\t= End Time\n")
	}
	switch m := s.Mesh(resolution).(type) {
	case *mesh.StructuredMesh:
		fmt.Fprintf(w, "[%d x %d], dx = %g\t= Structured Mesh\n", m.NI, m.NJ, m.DX)
		x0, y0 := m.CellCoordinates(0, 0)
		x1, y1 := m.CellCoordinates(m.NI-1, m.NJ-1)
		fmt.Fprintf(w, "[%g, %g] x [%g, %g]\t= Cell Centers\n", x0, x1, y0, y1)
	case mesh.FacePositions1D:
		xMin, xMax := m.Extent()
		fmt.Fprintf(w, "[%d cells on %g, %g]\t= Face Mesh\n", m.NumCells(), xMin, xMax)
	}
	for n, pm := range s.Masses(s.InitialTime()) {
		fmt.Fprintf(w, "Mass[%d] = %+8.5f at (%+8.5f, %+8.5f), v = (%+8.5f, %+8.5f), sink %s\n",
			n, pm.Mass, pm.X, pm.Y, pm.VX, pm.VY, pm.Model)
	}
	s.PrintParameters(w)
}
