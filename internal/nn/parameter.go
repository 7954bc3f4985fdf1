package nn

import (
	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors with gradient tracking enabled. They typically
// represent weights and biases of layers.
//
// Example:
//
//	weight := nn.NewParameter("weight", autodiff.Ones(tensor.Shape{2, 3}, tape))
//
//	// Get gradient after backward pass
//	grad := weight.Grad()
type Parameter struct {
	name   string           // Parameter name (e.g., "weight", "bias")
	tensor *autodiff.Tensor // The parameter tensor
}

// NewParameter creates a new trainable parameter and enables gradient
// tracking on t.
func NewParameter(name string, t *autodiff.Tensor) *Parameter {
	if !t.RequiresGrad() {
		t.WithGrad()
	}
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *autodiff.Tensor {
	return p.tensor
}

// Grad returns a copy of the accumulated gradient.
func (p *Parameter) Grad() *tensor.RawTensor {
	return p.tensor.Grad()
}

// ZeroGrad resets the accumulated gradient to zeros.
//
// This should be called before each backward pass to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.tensor.ResetGrad()
}
