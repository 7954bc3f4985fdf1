package autodiff

import (
	"github.com/born-ml/gradnet/internal/autodiff/ops"
	"github.com/born-ml/gradnet/internal/tensor"
)

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return t.tape.record(tensor.Neg(t.value), ops.NewNegOp(), t)
}

// Add returns t + other element-wise. Shapes must match.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.tape.record(tensor.Add(t.value, other.value), ops.NewAddOp(), t, other)
}

// Sub returns t - other element-wise. Shapes must match.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.tape.record(tensor.Sub(t.value, other.value), ops.NewSubOp(), t, other)
}

// MatMul returns the matrix product t @ other.
// t is [m x k], other is [k x p], the result is [m x p].
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return t.tape.record(tensor.MatMul(t.value, other.value), ops.NewMatMulOp(t.value, other.value), t, other)
}

// Pow raises every element to the integer power exp.
func (t *Tensor) Pow(exp int) *Tensor {
	return t.tape.record(tensor.Pow(t.value, exp), ops.NewPowOp(t.value, exp), t)
}

// Mean returns the mean of all elements as a 1x1 tensor.
func (t *Tensor) Mean() *Tensor {
	return t.tape.record(tensor.Mean(t.value), ops.NewMeanOp(t.value.Shape()), t)
}

// ReLU returns max(t, 0) element-wise.
func (t *Tensor) ReLU() *Tensor {
	return t.tape.record(tensor.ReLU(t.value), ops.NewReLUOp(t.value), t)
}
