// Package nn implements neural network modules on top of the autodiff tape.
//
// This package provides building blocks for constructing neural networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable parameters with gradient tracking
//   - Linear: Fully connected layer
//   - ReLU: Rectified linear activation
//   - Model: Container chaining modules in order
//   - MSELoss: Mean squared error
//
// Design inspired by PyTorch's nn.Module.
package nn

import (
	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewModel(
//	    nn.NewLinear(2, 4, tape),
//	    nn.NewReLU(),
//	    nn.NewLinear(4, 1, tape),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	//
	// The input tensor should have the appropriate shape for this module.
	// For example, Linear expects [batch_size, in_features].
	Forward(input *autodiff.Tensor) *autodiff.Tensor

	// Backward seeds the loss gradient with ones and back-propagates it.
	Backward(loss *autodiff.Tensor)

	// ResetGrad zeroes the gradients of every parameter.
	ResetGrad()

	// Parameters returns all trainable parameters of this module.
	//
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter
}

// Backward seeds loss with a gradient of ones (1 for a scalar loss) and runs
// the backward pass. It is the Backward of every module in this package.
func Backward(loss *autodiff.Tensor) {
	loss.SetGrad(tensor.Ones(loss.Shape()))
	loss.Backward()
}

// base provides the default Backward.
type base struct{}

// Backward implements Module.
func (base) Backward(loss *autodiff.Tensor) {
	Backward(loss)
}

// resetGrads zeroes the gradients of params.
func resetGrads(params []*Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
