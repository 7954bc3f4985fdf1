package tensor

import (
	"github.com/pkg/errors"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4})
func Zeros(shape Shape) *RawTensor {
	return newRaw(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *RawTensor {
	return Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{2, 2}, 3.5)
func Full(shape Shape, value float64) *RawTensor {
	t := newRaw(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a 1x1 tensor holding value.
func Scalar(value float64) *RawTensor {
	return Full(Shape{1, 1}, value)
}

// FromRows creates a tensor from a slice of rows.
// The rows are copied; all rows must have the same, non-zero length.
//
// Example:
//
//	t, err := tensor.FromRows([][]float64{
//	    {1, 2, 3},
//	    {4, 5, 6},
//	})
func FromRows(rows [][]float64) (*RawTensor, error) {
	if len(rows) == 0 {
		return nil, errors.New("FromRows: at least one row required")
	}
	shape := Shape{len(rows), len(rows[0])}
	t, err := NewRaw(shape)
	if err != nil {
		return nil, errors.WithMessage(err, "FromRows")
	}
	for i, row := range rows {
		if len(row) != shape[1] {
			return nil, errors.Errorf("FromRows: row %d has %d columns, row 0 has %d", i, len(row), shape[1])
		}
		copy(t.data[i*shape[1]:], row)
	}
	return t, nil
}

// FromSlice creates a tensor of the given shape from row-major data.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %s requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := NewRaw(shape)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}
