package nn

import "github.com/born-ml/gradnet/internal/autodiff"

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
// It has no parameters.
type ReLU struct {
	base
}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU to the input.
func (r *ReLU) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	return input.ReLU()
}

// ResetGrad does nothing; ReLU has no parameters.
func (r *ReLU) ResetGrad() {}

// Parameters returns an empty slice.
func (r *ReLU) Parameters() []*Parameter {
	return []*Parameter{}
}
