// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/born-ml/gradnet/internal/autodiff/ops"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Tape records operations and owns every node of a computation graph.
//
// A Tape is not safe for concurrent use.
type Tape = autodiff.Tape

// Tensor is a handle to a node recorded on a Tape.
type Tensor = autodiff.Tensor

// NodeID identifies a node within its Tape.
type NodeID = autodiff.NodeID

// Kind identifies the operation that produced a tensor.
type Kind = ops.Kind

// Operation kinds.
const (
	KindNone = ops.KindNone
	KindNeg  = ops.KindNeg
	KindAdd  = ops.KindAdd
	KindSub  = ops.KindSub
	KindMul  = ops.KindMul
	KindPow  = ops.KindPow
	KindMean = ops.KindMean
	KindReLU = ops.KindReLU
)

// NewTape creates an empty tape that records operations.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// New creates an untracked leaf tensor holding raw.
func New(raw *tensor.RawTensor, tape *Tape) *Tensor {
	return autodiff.New(raw, tape)
}

// Full creates an untracked leaf filled with value.
func Full(shape tensor.Shape, value float64, tape *Tape) *Tensor {
	return autodiff.Full(shape, value, tape)
}

// Zeros creates an untracked leaf filled with zeros.
func Zeros(shape tensor.Shape, tape *Tape) *Tensor {
	return autodiff.Zeros(shape, tape)
}

// Ones creates an untracked leaf filled with ones.
func Ones(shape tensor.Shape, tape *Tape) *Tensor {
	return autodiff.Ones(shape, tape)
}

// Scalar creates an untracked 1x1 leaf.
func Scalar(value float64, tape *Tape) *Tensor {
	return autodiff.Scalar(value, tape)
}

// FromRows creates an untracked leaf from a slice of equal-length rows.
func FromRows(rows [][]float64, tape *Tape) (*Tensor, error) {
	return autodiff.FromRows(rows, tape)
}
