package lookuptable

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
# r  rho  v  p
0.1  4.0  0.0  1.0
0.2  2.0  1.0  0.5

0.4  1.0  2.0  0.25
`

func TestRead(t *testing.T) {
	tab, err := Read(strings.NewReader(sampleTable), 4)
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Len())
	assert.Equal(t, 4, tab.NumColumns())
	assert.Equal(t, []float64{0.1, 0.2, 0.4}, tab.Column(0))
	assert.Equal(t, []float64{0.2, 2, 1, 0.5}, tab.Rows()[1])
	{ // Interpolation between rows
		row := tab.Sample(0.3)
		assert.InDelta(t, 0.3, row[0], 1e-15)
		assert.InDelta(t, 1.5, row[1], 1e-12)
		assert.InDelta(t, 1.5, row[2], 1e-12)
		assert.InDelta(t, 0.375, row[3], 1e-12)
	}
	{ // Exact nodes and clamping past the ends
		assert.Equal(t, []float64{0.2, 2, 1, 0.5}, tab.Sample(0.2))
		assert.Equal(t, []float64{0, 4, 0, 1}, tab.Sample(0))
		assert.Equal(t, []float64{1, 1, 2, 0.25}, tab.Sample(1))
	}
}

func TestReadErrors(t *testing.T) {
	cases := []string{
		"0.1 1 2\n",              // too few fields
		"0.1 1 2 3 4\n",          // too many fields
		"0.1 1 2 x\n",            // not a number
		"0.2 1 2 3\n0.1 1 2 3\n", // decreasing
		"0.1 1 2 3\n0.1 1 2 3\n", // repeated
		"# nothing\n",            // empty
	}
	for _, text := range cases {
		_, err := Read(strings.NewReader(text), 4)
		assert.True(t, errors.Is(err, ErrBadTable), text)
	}
}

func TestSingleRow(t *testing.T) {
	tab, err := Read(strings.NewReader("0.5 1 2 3\n"), 4)
	require.NoError(t, err)
	assert.Equal(t, 1, tab.Len())
	assert.Equal(t, []float64{7, 1, 2, 3}, tab.Sample(7))
}

func TestReadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "table.dat")
	require.NoError(t, os.WriteFile(filename, []byte(sampleTable), 0644))
	tab, err := ReadFile(filename, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Len())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.dat"), 4)
	assert.True(t, errors.Is(err, ErrBadTable))
}
