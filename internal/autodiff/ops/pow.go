package ops

import (
	"math"

	"github.com/born-ml/gradnet/internal/tensor"
)

// PowOp represents raising to an integer power: output = a^exp.
//
// Backward pass:
//   - d(a^e)/da = e * a^(e-1), so grad_a = e * a^(e-1) * outputGrad
type PowOp struct {
	input *tensor.RawTensor
	exp   int
}

// NewPowOp creates a new PowOp.
func NewPowOp(input *tensor.RawTensor, exp int) *PowOp {
	return &PowOp{input: input, exp: exp}
}

// Kind returns KindPow.
func (op *PowOp) Kind() Kind { return KindPow }

// NumInputs returns 1.
func (op *PowOp) NumInputs() int { return 1 }

// Exponent returns the power the input was raised to.
func (op *PowOp) Exponent() int { return op.exp }

// Backward computes the input gradient for the power function.
//
// For exp == 0 the output is constant and the gradient is zero, including at a == 0.
func (op *PowOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	if op.exp == 0 {
		return []*tensor.RawTensor{tensor.Zeros(op.input.Shape())}
	}
	e := float64(op.exp)
	grad := op.input.Apply(func(i, j int, v float64) float64 {
		return e * math.Pow(v, e-1) * outputGrad.At(i, j)
	})
	return []*tensor.RawTensor{grad}
}
