package ops

import "github.com/born-ml/gradnet/internal/tensor"

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x >= 0, else 0
//
// The gradient passes through wherever the forward input was non-negative.
type ReLUOp struct {
	input *tensor.RawTensor // x
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(input *tensor.RawTensor) *ReLUOp {
	return &ReLUOp{input: input}
}

// Kind returns KindReLU.
func (op *ReLUOp) Kind() Kind { return KindReLU }

// NumInputs returns 1.
func (op *ReLUOp) NumInputs() int { return 1 }

// Backward computes input gradient for ReLU.
func (op *ReLUOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	grad := op.input.Apply(func(i, j int, v float64) float64 {
		if v >= 0 {
			return outputGrad.At(i, j)
		}
		return 0
	})
	return []*tensor.RawTensor{grad}
}
