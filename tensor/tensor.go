// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/gradnet/internal/tensor"
)

// Shape represents the dimensions [rows, cols] of a tensor.
type Shape = tensor.Shape

// RawTensor is a dense row-major float64 matrix.
//
// RawTensor provides:
//   - Shape information via Shape(), Rows(), Cols()
//   - Direct data access via Data(), At(), Set()
//   - Formatting via String()
type RawTensor = tensor.RawTensor

// NewRaw creates a zero-filled tensor, returning an error for invalid shapes.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) *RawTensor {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) *RawTensor {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) *RawTensor {
	return tensor.Full(shape, value)
}

// Scalar creates a 1x1 tensor.
func Scalar(value float64) *RawTensor {
	return tensor.Scalar(value)
}

// FromRows creates a tensor from a slice of equal-length rows.
//
// Example:
//
//	x, err := tensor.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}) // [2x3]
func FromRows(rows [][]float64) (*RawTensor, error) {
	return tensor.FromRows(rows)
}

// FromSlice creates a tensor of the given shape from row-major data.
func FromSlice(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Add returns a + b elementwise.
func Add(a, b *RawTensor) *RawTensor { return tensor.Add(a, b) }

// Sub returns a - b elementwise.
func Sub(a, b *RawTensor) *RawTensor { return tensor.Sub(a, b) }

// Neg returns -a.
func Neg(a *RawTensor) *RawTensor { return tensor.Neg(a) }

// Scale returns c * a.
func Scale(c float64, a *RawTensor) *RawTensor { return tensor.Scale(c, a) }

// MulElem returns the elementwise product of a and b.
func MulElem(a, b *RawTensor) *RawTensor { return tensor.MulElem(a, b) }

// MatMul returns the matrix product a @ b.
func MatMul(a, b *RawTensor) *RawTensor { return tensor.MatMul(a, b) }

// Pow raises every element of a to the integer power exp.
func Pow(a *RawTensor, exp int) *RawTensor { return tensor.Pow(a, exp) }

// Mean returns the 1x1 average of all elements of a.
func Mean(a *RawTensor) *RawTensor { return tensor.Mean(a) }

// ReLU returns max(0, a) elementwise.
func ReLU(a *RawTensor) *RawTensor { return tensor.ReLU(a) }

// EqualApprox reports whether a and b have equal shapes and elements within tol.
func EqualApprox(a, b *RawTensor, tol float64) bool { return tensor.EqualApprox(a, b, tol) }
