package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredMesh(t *testing.T) {
	m := NewCenteredSquare(1, 4)
	assert.Equal(t, 16, m.NumCells())
	assert.InDelta(t, 0.5, m.DX, 1e-15)
	{ // Cell centers, including guard zones
		x, y := m.CellCoordinates(0, 0)
		assert.InDelta(t, -0.75, x, 1e-15)
		assert.InDelta(t, -0.75, y, 1e-15)
		x, y = m.CellCoordinates(3, 1)
		assert.InDelta(t, 0.75, x, 1e-15)
		assert.InDelta(t, -0.25, y, 1e-15)
		x, y = m.CellCoordinates(-2, 5)
		assert.InDelta(t, -1.75, x, 1e-15)
		assert.InDelta(t, 1.75, y, 1e-15)
	}
	{ // CellIndex inverts CellCoordinates
		for i := -2; i < 6; i++ {
			for j := -2; j < 6; j++ {
				x, y := m.CellCoordinates(i, j)
				ii, jj := m.CellIndex(x, y)
				assert.Equal(t, [2]int{i, j}, [2]int{ii, jj})
			}
		}
	}
	assert.Panics(t, func() { NewCenteredSquare(1, 0) })
}

func TestDecompose(t *testing.T) {
	m := NewCenteredSquare(1, 10)
	{
		spaces := m.Decompose(3)
		require.Len(t, spaces, 3)
		assert.Equal(t, IndexSpace{0, 4, 0, 10}, spaces[0])
		assert.Equal(t, IndexSpace{4, 7, 0, 10}, spaces[1])
		assert.Equal(t, IndexSpace{7, 10, 0, 10}, spaces[2])
		var total int
		for _, s := range spaces {
			total += s.Len()
		}
		assert.Equal(t, m.NumCells(), total)
	}
	{ // Never more patches than rows
		assert.Len(t, m.Decompose(25), 10)
		assert.Len(t, m.Decompose(0), 1)
	}
	{
		pm := NewPartitionMap(3, 10)
		bn, iMin, iMax := pm.GetBucket(5)
		assert.Equal(t, []int{1, 4, 7}, []int{bn, iMin, iMax})
		bn, _, _ = pm.GetBucket(10)
		assert.Equal(t, -1, bn)
		assert.Equal(t, 3, pm.GetBucketDimension(2))
		assert.Equal(t, 10, pm.GetBucketDimension(-1))
	}
}

func TestFacePositions1D(t *testing.T) {
	f := NewUniformFaces(0, 1, 4)
	require.NoError(t, f.Validate())
	assert.Equal(t, 4, f.NumCells())
	assert.Equal(t, 0., f[0])
	assert.Equal(t, 1., f[4])
	assert.InDelta(t, 0.375, f.CellCenter(1), 1e-15)
	assert.InDelta(t, 0.25, f.CellWidth(3), 1e-15)
	{
		assert.Equal(t, 0, f.CellIndex(0))
		assert.Equal(t, 1, f.CellIndex(0.3))
		assert.Equal(t, 2, f.CellIndex(0.5))
		assert.Equal(t, 3, f.CellIndex(1))
		assert.Equal(t, -1, f.CellIndex(-0.1))
		assert.Equal(t, -1, f.CellIndex(1.1))
	}
	{
		xMin, xMax := f.Extent()
		assert.Equal(t, [2]float64{0, 1}, [2]float64{xMin, xMax})
	}
	assert.Error(t, FacePositions1D{0}.Validate())
	assert.Error(t, FacePositions1D{0, 1, 1}.Validate())
	assert.Equal(t, 0, FacePositions1D{}.NumCells())
}

func TestPatch(t *testing.T) {
	space := IndexSpace{I0: -2, I1: 3, J0: 1, J1: 4}
	ni, nj := space.Dims()
	assert.Equal(t, 5, ni)
	assert.Equal(t, 3, nj)
	p := FromSliceFunction(space, 3, func(i, j int, fields []float64) {
		fields[0] = float64(i)
		fields[1] = float64(j)
		fields[2] = float64(i * j)
	})
	assert.Len(t, p.Data, 45)
	assert.Equal(t, []float64{-2, 1, -2}, p.Data[0:3])
	assert.Equal(t, []float64{-2, 2, -4}, p.Data[3:6])
	assert.Equal(t, []float64{2, 3, 6}, p.At(2, 3))
	assert.Panics(t, func() { p.At(3, 1) })
	assert.Equal(t, IndexSpace{-4, 5, -1, 6}, space.Extend(2))
	assert.Equal(t, "[-2, 3) x [1, 4)", space.String())
}
