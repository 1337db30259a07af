package lookuptable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
)

var ErrBadTable = errors.New("bad lookup table")

// Table is a set of rows with a fixed number of columns, ordered by a
// strictly increasing first column. Sample interpolates every other column
// linearly in the first.
type Table struct {
	numColumns int
	rows       [][]float64
	interps    []interp.PiecewiseLinear
}

// ReadFile reads a whitespace delimited ASCII table. Blank lines and lines
// starting with '#' are skipped.
func ReadFile(filename string, numColumns int) (t *Table, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return nil, fmt.Errorf("%w: unable to open file %s: %s", ErrBadTable, filename, err)
	}
	defer file.Close()
	if t, err = Read(file, numColumns); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func Read(r io.Reader, numColumns int) (t *Table, err error) {
	var (
		scanner = bufio.NewScanner(r)
		rows    [][]float64
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != numColumns {
			return nil, fmt.Errorf("%w: line %d has %d fields, expected %d", ErrBadTable, lineNum, len(fields), numColumns)
		}
		row := make([]float64, numColumns)
		for n, field := range fields {
			if row[n], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrBadTable, lineNum, err)
			}
		}
		if len(rows) != 0 && !(row[0] > rows[len(rows)-1][0]) {
			return nil, fmt.Errorf("%w: line %d: coordinate %g does not increase", ErrBadTable, lineNum, row[0])
		}
		rows = append(rows, row)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadTable, err)
	}
	return New(rows)
}

// New builds a table from rows that all share the first row's width.
func New(rows [][]float64) (t *Table, err error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadTable)
	}
	t = &Table{numColumns: len(rows[0]), rows: rows}
	if t.numColumns < 2 {
		return nil, fmt.Errorf("%w: need at least 2 columns, got %d", ErrBadTable, t.numColumns)
	}
	for i, row := range rows {
		if len(row) != t.numColumns {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrBadTable, i, len(row), t.numColumns)
		}
		if i > 0 && !(row[0] > rows[i-1][0]) {
			return nil, fmt.Errorf("%w: row %d: coordinate %g does not increase", ErrBadTable, i, row[0])
		}
	}
	if len(rows) < 2 {
		return
	}
	xs := t.Column(0)
	t.interps = make([]interp.PiecewiseLinear, t.numColumns)
	for c := 1; c < t.numColumns; c++ {
		if err = t.interps[c].Fit(xs, t.Column(c)); err != nil {
			return nil, fmt.Errorf("%w: column %d: %s", ErrBadTable, c, err)
		}
	}
	return
}

func (t *Table) Len() int        { return len(t.rows) }
func (t *Table) NumColumns() int { return t.numColumns }

// Rows exposes the parsed rows; callers must not modify them.
func (t *Table) Rows() [][]float64 { return t.rows }

func (t *Table) Column(c int) (col []float64) {
	col = make([]float64, len(t.rows))
	for i, row := range t.rows {
		col[i] = row[c]
	}
	return
}

// Sample returns a full row at coordinate x. Outside the tabulated range the
// nearest end row is used.
func (t *Table) Sample(x float64) (row []float64) {
	row = make([]float64, t.numColumns)
	row[0] = x
	if len(t.rows) == 1 {
		copy(row[1:], t.rows[0][1:])
		return
	}
	for c := 1; c < t.numColumns; c++ {
		row[c] = t.interps[c].Predict(x)
	}
	return
}
