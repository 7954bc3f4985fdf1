package ops

import "github.com/born-ml/gradnet/internal/tensor"

// NegOp represents negation: output = -a.
type NegOp struct{}

// NewNegOp creates a new NegOp.
func NewNegOp() *NegOp {
	return &NegOp{}
}

// Kind returns KindNeg.
func (op *NegOp) Kind() Kind { return KindNeg }

// NumInputs returns 1.
func (op *NegOp) NumInputs() int { return 1 }

// Backward returns -outputGrad.
func (op *NegOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	return []*tensor.RawTensor{tensor.Neg(outputGrad)}
}
