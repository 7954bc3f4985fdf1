package ops

import "github.com/born-ml/gradnet/internal/tensor"

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// NewAddOp creates a new AddOp.
func NewAddOp() *AddOp {
	return &AddOp{}
}

// Kind returns KindAdd.
func (op *AddOp) Kind() Kind { return KindAdd }

// NumInputs returns 2.
func (op *AddOp) NumInputs() int { return 2 }

// Backward passes the output gradient unchanged to both inputs.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad, outputGrad}
}
