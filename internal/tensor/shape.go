package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Shape holds the dimensions of a 2-D tensor as [rows, cols].
type Shape [2]int

// Rows returns the number of rows.
func (s Shape) Rows() int {
	return s[0]
}

// Cols returns the number of columns.
func (s Shape) Cols() int {
	return s[1]
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	return s[0] * s[1]
}

// Validate checks if the shape is valid (both dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// Transposed returns the shape with rows and columns swapped.
func (s Shape) Transposed() Shape {
	return Shape{s[1], s[0]}
}

// String formats the shape as "[rows x cols]".
func (s Shape) String() string {
	return fmt.Sprintf("[%dx%d]", s[0], s[1])
}
