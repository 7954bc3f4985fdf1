package autodiff

import (
	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/pkg/errors"
)

// New creates a leaf Tensor holding raw. The tensor owns raw from now on.
func New(raw *tensor.RawTensor, tape *Tape) *Tensor {
	return tape.leaf(raw)
}

// Full creates a leaf filled with value.
//
// Example:
//
//	t := autodiff.Full(tensor.Shape{2, 3}, 0.5, tape)
func Full(shape tensor.Shape, value float64, tape *Tape) *Tensor {
	return tape.leaf(tensor.Full(shape, value))
}

// Zeros creates a leaf filled with zeros.
func Zeros(shape tensor.Shape, tape *Tape) *Tensor {
	return tape.leaf(tensor.Zeros(shape))
}

// Ones creates a leaf filled with ones.
func Ones(shape tensor.Shape, tape *Tape) *Tensor {
	return tape.leaf(tensor.Ones(shape))
}

// Scalar creates a 1x1 leaf.
func Scalar(value float64, tape *Tape) *Tensor {
	return tape.leaf(tensor.Scalar(value))
}

// FromRows creates a leaf from a slice of equally sized rows.
func FromRows(rows [][]float64, tape *Tape) (*Tensor, error) {
	raw, err := tensor.FromRows(rows)
	if err != nil {
		return nil, errors.WithMessage(err, "autodiff")
	}
	return tape.leaf(raw), nil
}
