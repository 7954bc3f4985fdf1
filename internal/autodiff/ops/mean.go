package ops

import "github.com/born-ml/gradnet/internal/tensor"

// MeanOp represents the mean over all elements: output = sum(a) / N, a 1x1 tensor.
//
// Backward pass:
//   - d(mean)/da_ij = 1/N, so grad_a = outputGrad / N broadcast to a's shape
type MeanOp struct {
	inputShape tensor.Shape
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(inputShape tensor.Shape) *MeanOp {
	return &MeanOp{inputShape: inputShape}
}

// Kind returns KindMean.
func (op *MeanOp) Kind() Kind { return KindMean }

// NumInputs returns 1.
func (op *MeanOp) NumInputs() int { return 1 }

// Backward spreads the scalar output gradient evenly over the input.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	share := outputGrad.Item() / float64(op.inputShape.NumElements())
	return []*tensor.RawTensor{tensor.Full(op.inputShape, share)}
}
