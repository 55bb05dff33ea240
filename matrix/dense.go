// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness. Every solver takes Matrix and fast-paths on *Dense.
package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Dense over a fresh flat slice
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense matrix from a slice of row slices.
// The input is copied; the returned matrix shares no storage with rows.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Execute): copy each row into the flat backing slice.
// Errors: ErrInvalidDimensions on empty input, ErrRaggedRows on uneven rows.
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Allocate and fill, validating each row length on the way
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrRaggedRows
		}
		copy(m.data[i*c:(i+1)*c], rows[i]) // row i lands at flat offset i*c
	}

	return m, nil
}

// NewDenseFromFlat builds an r×c Dense matrix from row-major flat data.
// The input slice is copied; the matrix shares no storage with data.
// Errors: ErrInvalidDimensions on non-positive shape, ErrDimensionMismatch
// when len(data) != rows*cols.
// Complexity: O(r*c) time and memory.
func NewDenseFromFlat(rows, cols int, data []float64) (*Dense, error) {
	// Validate dimensions first, then the flat length.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}

	// Copy the backing data to keep the matrix independent of the caller.
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Dense{r: rows, c: cols, data: cp}, nil
}

// Flatten returns a fresh row-major copy of m as a flat slice plus its shape.
// Solvers use it to take their defensive working copy at entry; the returned
// slice never aliases the caller's storage.
// Fast-path: *Dense copies its backing slice directly; the fallback reads
// element-wise via At in fixed i→j order.
// Complexity: O(r*c) time and memory.
func Flatten(m Matrix) ([]float64, int, int, error) {
	// Guard nil before touching the interface.
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, 0, err
	}
	rows, cols := m.Rows(), m.Cols()

	// Fast-path: copy the Dense backing slice in one call.
	if d, ok := m.(*Dense); ok {
		cp := make([]float64, len(d.data))
		copy(cp, d.data)

		return cp, rows, cols, nil
	}

	// Fallback: element-wise copy via the interface.
	out := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, 0, 0, denseErrorf("Flatten", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, rows, cols, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	// Copy all elements into a new backing slice
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
