package vecnd

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnsupportedDimension is returned when a dimension has no Array type,
	// i.e. it falls outside [1, MaxDim].
	ErrUnsupportedDimension = errors.New("unsupported dimension")
)

// ErrDimensionMismatch indicates that input held a different number of
// elements than the vector dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrIndexOutOfRange indicates an element index outside [0, Dimension).
type ErrIndexOutOfRange struct {
	Index     int
	Dimension int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for dimension %d", e.Index, e.Dimension)
}

// ErrSyntax indicates a field that is not a valid number, or a number
// outside the range of the element type.
//
// The underlying strconv error (strconv.ErrSyntax or strconv.ErrRange) can
// be accessed via errors.Unwrap.
type ErrSyntax struct {
	Field int
	Text  string
	cause error
}

func (e *ErrSyntax) Error() string {
	if errors.Is(e.cause, strconv.ErrRange) {
		return fmt.Sprintf("number %q out of range at field %d", e.Text, e.Field)
	}
	return fmt.Sprintf("invalid number %q at field %d", e.Text, e.Field)
}

func (e *ErrSyntax) Unwrap() error { return e.cause }
