// Package ops defines the differentiable operations recorded by the autodiff tape.
//
// Each operation captures, at forward time, whatever its local derivative needs
// and computes input gradients during the backward pass:
//   - NegOp: y = -a (dy/da = -1)
//   - AddOp: y = a + b (dy/da = 1, dy/db = 1)
//   - SubOp: y = a - b (dy/da = 1, dy/db = -1)
//   - MatMulOp: y = a @ b (d/dA = grad @ B^T, d/dB = A^T @ grad)
//   - PowOp: y = a^e (dy/da = e * a^(e-1))
//   - MeanOp: y = mean(a) (dy/da = 1/N everywhere)
//   - ReLUOp: y = max(a, 0) (dy/da = 1 where a >= 0, else 0)
package ops

import "github.com/born-ml/gradnet/internal/tensor"

// Kind tags the operation that produced a node.
type Kind int

// Operation kinds. KindNone marks leaves (inputs and parameters).
const (
	KindNone Kind = iota
	KindNeg
	KindAdd
	KindSub
	KindMul
	KindPow
	KindMean
	KindReLU
)

// String returns the operation name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNeg:
		return "Neg"
	case KindAdd:
		return "Add"
	case KindSub:
		return "Sub"
	case KindMul:
		return "Mul"
	case KindPow:
		return "Pow"
	case KindMean:
		return "Mean"
	case KindReLU:
		return "ReLU"
	default:
		return "Unknown"
	}
}

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Kind returns the operation tag.
	Kind() Kind

	// NumInputs returns how many parent tensors the operation consumes.
	NumInputs() int

	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input, in input order, each shaped like its input.
	// outputGrad is read-only.
	Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor
}
