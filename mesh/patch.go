package mesh

import "fmt"

// IndexSpace is the half-open rectangle [I0, I1) x [J0, J1) of cell indices.
type IndexSpace struct {
	I0, I1 int
	J0, J1 int
}

func (s IndexSpace) Dims() (ni, nj int) {
	return s.I1 - s.I0, s.J1 - s.J0
}

func (s IndexSpace) Len() int {
	ni, nj := s.Dims()
	return ni * nj
}

func (s IndexSpace) Contains(i, j int) bool {
	return i >= s.I0 && i < s.I1 && j >= s.J0 && j < s.J1
}

// Extend grows the space by n cells on every side, e.g. to take in guard
// zones.
func (s IndexSpace) Extend(n int) IndexSpace {
	return IndexSpace{I0: s.I0 - n, I1: s.I1 + n, J0: s.J0 - n, J1: s.J1 + n}
}

func (s IndexSpace) String() string {
	return fmt.Sprintf("[%d, %d) x [%d, %d)", s.I0, s.I1, s.J0, s.J1)
}

// Patch owns the field data for one IndexSpace. Data is row-major with j
// the fast index and NumFields values interleaved per cell.
type Patch struct {
	Space     IndexSpace
	NumFields int
	Data      []float64
}

func NewPatch(space IndexSpace, numFields int) *Patch {
	return &Patch{
		Space:     space,
		NumFields: numFields,
		Data:      make([]float64, space.Len()*numFields),
	}
}

// FromSliceFunction allocates a patch and calls f once per cell with the
// global index and that cell's field slice.
func FromSliceFunction(space IndexSpace, numFields int, f func(i, j int, fields []float64)) (p *Patch) {
	p = NewPatch(space, numFields)
	for i := space.I0; i < space.I1; i++ {
		for j := space.J0; j < space.J1; j++ {
			n := p.offset(i, j)
			f(i, j, p.Data[n:n+numFields])
		}
	}
	return
}

func (p *Patch) offset(i, j int) int {
	_, nj := p.Space.Dims()
	return ((i-p.Space.I0)*nj + (j - p.Space.J0)) * p.NumFields
}

// At returns the field slice of global cell (i, j).
func (p *Patch) At(i, j int) []float64 {
	if !p.Space.Contains(i, j) {
		panic(fmt.Errorf("index (%d, %d) outside patch %s", i, j, p.Space))
	}
	n := p.offset(i, j)
	return p.Data[n : n+p.NumFields]
}
