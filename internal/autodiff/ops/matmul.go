package ops

import "github.com/born-ml/gradnet/internal/tensor"

// MatMulOp represents a matrix multiplication operation: output = a @ b.
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ B^T
//   - d(A@B)/dB = A^T @ outputGrad
//
// Where @ denotes matrix multiplication and ^T denotes transpose.
type MatMulOp struct {
	a, b *tensor.RawTensor // forward values of the operands
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b *tensor.RawTensor) *MatMulOp {
	return &MatMulOp{a: a, b: b}
}

// Kind returns KindMul.
func (op *MatMulOp) Kind() Kind { return KindMul }

// NumInputs returns 2.
func (op *MatMulOp) NumInputs() int { return 2 }

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor) []*tensor.RawTensor {
	gradA := tensor.MatMul(outputGrad, op.b.Transpose())
	gradB := tensor.MatMul(op.a.Transpose(), outputGrad)
	return []*tensor.RawTensor{gradA, gradB}
}
