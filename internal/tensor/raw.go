package tensor

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RawTensor is a dense 2-D matrix of float64 values stored in row-major order.
//
// RawTensor carries no gradient information. It is the value half of an
// autodiff.Tensor and the unit the backward rules compute with.
type RawTensor struct {
	shape Shape
	data  []float64
}

// NewRaw creates a zero-filled RawTensor with the given shape.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid shape %s", shape)
	}
	return &RawTensor{
		shape: shape,
		data:  make([]float64, shape.NumElements()),
	}, nil
}

// newRaw is NewRaw for shapes already known to be valid.
func newRaw(shape Shape) *RawTensor {
	r, err := NewRaw(shape)
	if err != nil {
		exceptions.Panicf("%+v", err)
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Rows returns the number of rows.
func (r *RawTensor) Rows() int {
	return r.shape[0]
}

// Cols returns the number of columns.
func (r *RawTensor) Cols() int {
	return r.shape[1]
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Data returns the row-major backing slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// checkIndex panics if (i, j) is outside the tensor.
func (r *RawTensor) checkIndex(i, j int) {
	if i < 0 || i >= r.shape[0] || j < 0 || j >= r.shape[1] {
		exceptions.Panicf("index (%d, %d) out of range for tensor of shape %s", i, j, r.shape)
	}
}

// At returns the element at row i, column j.
func (r *RawTensor) At(i, j int) float64 {
	r.checkIndex(i, j)
	return r.data[i*r.shape[1]+j]
}

// Set sets the element at row i, column j.
func (r *RawTensor) Set(i, j int, value float64) {
	r.checkIndex(i, j)
	r.data[i*r.shape[1]+j] = value
}

// Item returns the single value of a 1x1 tensor.
// Panics for any other shape.
func (r *RawTensor) Item() float64 {
	if r.shape != (Shape{1, 1}) {
		exceptions.Panicf("Item() only works for 1x1 tensors, got shape %s", r.shape)
	}
	return r.data[0]
}

// Clone creates a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	c := &RawTensor{shape: r.shape, data: make([]float64, len(r.data))}
	copy(c.data, r.data)
	return c
}

// Equal reports whether both tensors have the same shape and identical cells.
func (r *RawTensor) Equal(other *RawTensor) bool {
	if r.shape != other.shape {
		return false
	}
	for i, v := range r.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String returns the tensor's cells laid out as a matrix.
func (r *RawTensor) String() string {
	m := mat.NewDense(r.shape[0], r.shape[1], r.data)
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze()))
}
