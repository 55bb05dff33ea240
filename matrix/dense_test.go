// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFromRows verifies construction from row slices and input copying.
func TestNewDenseFromRows(t *testing.T) {
	rows := [][]float64{{4, 1}, {1, 3}}       // source rows
	m, err := matrix.NewDenseFromRows(rows)   // build the matrix
	require.NoError(t, err)                   // construction must succeed
	require.Equal(t, 2, m.Rows())             // two rows expected
	require.Equal(t, 2, m.Cols())             // two columns expected

	rows[0][0] = 99          // mutate the source after construction
	v, err := m.At(0, 0)     // read back the matrix entry
	require.NoError(t, err)  // valid indices
	require.Equal(t, 4.0, v) // matrix must not alias the caller's slices
}

// TestNewDenseFromRowsRagged ensures uneven rows are rejected.
func TestNewDenseFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}}) // second row too short
	require.ErrorIs(t, err, matrix.ErrRaggedRows)               // expect ErrRaggedRows

	_, err = matrix.NewDenseFromRows(nil)                // empty input
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	_ = m.Set(0, 0, 1.0) // initialize elements to distinct values
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone() // clone the matrix

	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)     // retrieve original matrix element
	require.NoError(t, err)        // assert At() succeeded on original
	require.Equal(t, 1.0, origVal) // expect original remains unchanged

	cloneVal, err := clone.At(0, 0) // retrieve clone's element
	require.NoError(t, err)         // assert At() succeeded on clone
	require.Equal(t, 3.0, cloneVal) // expect clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}}) // 2x2 sample
	require.NoError(t, err)                                        // ensure valid creation

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches
}
