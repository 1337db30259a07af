package mesh

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Mesh is either a *StructuredMesh or a FacePositions1D. A setup commits to
// exactly one kind.
type Mesh interface {
	NumCells() int
	isMesh()
}

// StructuredMesh is a logically rectangular 2D grid of NI x NJ cells whose
// lower-left corner sits at (X0, Y0).
type StructuredMesh struct {
	NI, NJ int
	X0, Y0 float64
	DX, DY float64
}

// NewCenteredSquare builds a resolution x resolution grid spanning
// [-domainRadius, domainRadius] in both directions.
func NewCenteredSquare(domainRadius float64, resolution int) (m *StructuredMesh) {
	if resolution < 1 {
		panic(fmt.Errorf("resolution must be positive, got %d", resolution))
	}
	var (
		dx = 2 * domainRadius / float64(resolution)
	)
	m = &StructuredMesh{
		NI: resolution, NJ: resolution,
		X0: -domainRadius, Y0: -domainRadius,
		DX: dx, DY: dx,
	}
	return
}

func (*StructuredMesh) isMesh() {}

func (m *StructuredMesh) NumCells() int { return m.NI * m.NJ }

// CellCoordinates returns the center of cell (i, j). Indices outside
// [0, NI) x [0, NJ) are valid and land in the guard zones.
func (m *StructuredMesh) CellCoordinates(i, j int) (x, y float64) {
	x = m.X0 + (float64(i)+0.5)*m.DX
	y = m.Y0 + (float64(j)+0.5)*m.DY
	return
}

// CellIndex is the inverse of CellCoordinates; the result may lie outside
// the interior index space.
func (m *StructuredMesh) CellIndex(x, y float64) (i, j int) {
	i = int(math.Floor((x - m.X0) / m.DX))
	j = int(math.Floor((y - m.Y0) / m.DY))
	return
}

// IndexSpace covers the interior cells only.
func (m *StructuredMesh) IndexSpace() IndexSpace {
	return IndexSpace{I0: 0, I1: m.NI, J0: 0, J1: m.NJ}
}

// Decompose splits the interior into at most numPatches bands of whole
// i-rows, balanced to within one row.
func (m *StructuredMesh) Decompose(numPatches int) (spaces []IndexSpace) {
	if numPatches < 1 {
		numPatches = 1
	}
	if numPatches > m.NI {
		numPatches = m.NI
	}
	pm := NewPartitionMap(numPatches, m.NI)
	spaces = make([]IndexSpace, numPatches)
	for n := 0; n < numPatches; n++ {
		iMin, iMax := pm.GetBucketRange(n)
		spaces[n] = IndexSpace{I0: iMin, I1: iMax, J0: 0, J1: m.NJ}
	}
	return
}

// FacePositions1D holds N+1 strictly increasing face coordinates bounding N
// cells of arbitrary width.
type FacePositions1D []float64

// NewUniformFaces spaces resolution cells evenly over [x0, x1].
func NewUniformFaces(x0, x1 float64, resolution int) FacePositions1D {
	if resolution < 1 {
		panic(fmt.Errorf("resolution must be positive, got %d", resolution))
	}
	return floats.Span(make([]float64, resolution+1), x0, x1)
}

func (FacePositions1D) isMesh() {}

func (f FacePositions1D) NumCells() int {
	if len(f) < 2 {
		return 0
	}
	return len(f) - 1
}

func (f FacePositions1D) CellCenter(i int) float64 {
	return 0.5 * (f[i] + f[i+1])
}

func (f FacePositions1D) CellWidth(i int) float64 {
	return f[i+1] - f[i]
}

// CellIndex returns the cell containing x, or -1 when x lies outside the
// faces. A point on an interior face belongs to the cell on its right.
func (f FacePositions1D) CellIndex(x float64) int {
	n := f.NumCells()
	if n == 0 || x < f[0] || x > f[n] {
		return -1
	}
	i := sort.SearchFloat64s(f, x)
	switch {
	case i < len(f) && f[i] == x && i < n:
		return i
	case i == 0:
		return 0
	}
	return i - 1
}

// Validate checks there is at least one cell and faces strictly increase.
func (f FacePositions1D) Validate() error {
	if len(f) < 2 {
		return fmt.Errorf("need at least 2 faces, got %d", len(f))
	}
	for i := 1; i < len(f); i++ {
		if !(f[i] > f[i-1]) {
			return fmt.Errorf("faces not strictly increasing at index %d: %g <= %g", i, f[i], f[i-1])
		}
	}
	return nil
}

// Extent returns the outermost face coordinates.
func (f FacePositions1D) Extent() (xMin, xMax float64) {
	return floats.Min(f), floats.Max(f)
}
