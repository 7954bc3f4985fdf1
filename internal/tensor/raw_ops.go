package tensor

import (
	"math"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/floats"
)

// checkSameShape panics if a and b differ in shape.
func checkSameShape(op string, a, b *RawTensor) {
	if a.shape != b.shape {
		exceptions.Panicf("%s: shape mismatch %s vs %s", op, a.shape, b.shape)
	}
}

// Add returns a + b element-wise.
func Add(a, b *RawTensor) *RawTensor {
	checkSameShape("add", a, b)
	result := newRaw(a.shape)
	floats.AddTo(result.data, a.data, b.data)
	return result
}

// Sub returns a - b element-wise.
func Sub(a, b *RawTensor) *RawTensor {
	checkSameShape("sub", a, b)
	result := newRaw(a.shape)
	floats.SubTo(result.data, a.data, b.data)
	return result
}

// Neg returns -a.
func Neg(a *RawTensor) *RawTensor {
	return Scale(-1, a)
}

// Scale returns c * a.
func Scale(c float64, a *RawTensor) *RawTensor {
	result := a.Clone()
	floats.Scale(c, result.data)
	return result
}

// MulElem returns the element-wise (Hadamard) product of a and b.
func MulElem(a, b *RawTensor) *RawTensor {
	checkSameShape("mul", a, b)
	result := newRaw(a.shape)
	floats.MulTo(result.data, a.data, b.data)
	return result
}

// MatMul returns the matrix product a @ b.
// a is [m x k], b is [k x p], the result is [m x p].
func MatMul(a, b *RawTensor) *RawTensor {
	m, k := a.shape[0], a.shape[1]
	k2, p := b.shape[0], b.shape[1]
	if k != k2 {
		exceptions.Panicf("matmul: incompatible dimensions %s @ %s (%d != %d)", a.shape, b.shape, k, k2)
	}
	result := newRaw(Shape{m, p})
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			var sum float64
			for l := 0; l < k; l++ {
				sum += a.data[i*k+l] * b.data[l*p+j]
			}
			result.data[i*p+j] = sum
		}
	}
	return result
}

// Pow raises every element of a to the integer power exp.
func Pow(a *RawTensor, exp int) *RawTensor {
	result := newRaw(a.shape)
	for i, v := range a.data {
		result.data[i] = math.Pow(v, float64(exp))
	}
	return result
}

// Mean returns the mean of all elements as a 1x1 tensor.
func Mean(a *RawTensor) *RawTensor {
	return Scalar(floats.Sum(a.data) / float64(len(a.data)))
}

// ReLU returns max(a, 0) element-wise.
func ReLU(a *RawTensor) *RawTensor {
	result := newRaw(a.shape)
	for i, v := range a.data {
		if v >= 0 {
			result.data[i] = v
		}
	}
	return result
}

// AddInPlace adds other into r.
func (r *RawTensor) AddInPlace(other *RawTensor) {
	checkSameShape("add in place", r, other)
	floats.Add(r.data, other.data)
}

// SubInPlace subtracts other from r.
func (r *RawTensor) SubInPlace(other *RawTensor) {
	checkSameShape("sub in place", r, other)
	floats.Sub(r.data, other.data)
}

// CopyFrom overwrites r's cells with other's.
func (r *RawTensor) CopyFrom(other *RawTensor) {
	checkSameShape("copy", r, other)
	copy(r.data, other.data)
}

// EqualApprox reports whether a and b have the same shape and every pair of
// cells is within tol, either absolutely or relatively.
func EqualApprox(a, b *RawTensor, tol float64) bool {
	if a.shape != b.shape {
		return false
	}
	return floats.EqualApprox(a.data, b.data, tol)
}
