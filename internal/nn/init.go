package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/gradnet/internal/tensor"
)

// Initializer creates the initial value of a parameter with the given shape.
type Initializer func(shape tensor.Shape) *tensor.RawTensor

// Ones initializes every element to one.
func Ones() Initializer {
	return tensor.Ones
}

// Zeros initializes every element to zero.
func Zeros() Initializer {
	return tensor.Zeros
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
// where fan_in and fan_out are the rows and columns of the weight.
func Xavier(rng *rand.Rand) Initializer {
	return func(shape tensor.Shape) *tensor.RawTensor {
		bound := math.Sqrt(6.0 / float64(shape.Rows()+shape.Cols()))
		t := tensor.Zeros(shape)
		data := t.Data()
		for i := range data {
			data[i] = (rng.Float64()*2.0 - 1.0) * bound
		}
		return t
	}
}
