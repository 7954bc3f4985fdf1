package tensor

import "github.com/gomlx/exceptions"

// Row returns a copy of row i.
func (r *RawTensor) Row(i int) []float64 {
	r.checkIndex(i, 0)
	row := make([]float64, r.shape[1])
	copy(row, r.data[i*r.shape[1]:(i+1)*r.shape[1]])
	return row
}

// Col returns a copy of column j.
func (r *RawTensor) Col(j int) []float64 {
	r.checkIndex(0, j)
	col := make([]float64, r.shape[0])
	for i := range col {
		col[i] = r.data[i*r.shape[1]+j]
	}
	return col
}

// Transpose returns a new tensor with rows and columns swapped.
func (r *RawTensor) Transpose() *RawTensor {
	m, n := r.shape[0], r.shape[1]
	result := newRaw(r.shape.Transposed())
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			result.data[j*m+i] = r.data[i*n+j]
		}
	}
	return result
}

// Apply returns a new tensor whose cell (i, j) is fn(i, j, r[i, j]).
//
// Example:
//
//	plusOne := t.Apply(func(_, _ int, v float64) float64 { return v + 1 })
func (r *RawTensor) Apply(fn func(i, j int, v float64) float64) *RawTensor {
	n := r.shape[1]
	result := newRaw(r.shape)
	for idx, v := range r.data {
		result.data[idx] = fn(idx/n, idx%n, v)
	}
	return result
}

// Concat stacks other below r. Both tensors must have the same number of columns.
//
// Example:
//
//	a := tensor.Zeros(tensor.Shape{2, 3})
//	b := tensor.Ones(tensor.Shape{1, 3})
//	c := a.Concat(b) // Shape: [3x3]
func (r *RawTensor) Concat(other *RawTensor) *RawTensor {
	if r.shape[1] != other.shape[1] {
		exceptions.Panicf("concat: column mismatch %s vs %s", r.shape, other.shape)
	}
	result := newRaw(Shape{r.shape[0] + other.shape[0], r.shape[1]})
	copy(result.data, r.data)
	copy(result.data[len(r.data):], other.data)
	return result
}
