package ops

import "github.com/born-ml/gradnet/internal/tensor"

// SubOp represents an element-wise subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// NewSubOp creates a new SubOp.
func NewSubOp() *SubOp {
	return &SubOp{}
}

// Kind returns KindSub.
func (op *SubOp) Kind() Kind { return KindSub }

// NumInputs returns 2.
func (op *SubOp) NumInputs() int { return 2 }

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad, tensor.Neg(outputGrad)}
}
