package nn

import (
	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row with shape [1, out_features], repeated for every batch row
//   - y is the output tensor with shape [batch_size, out_features]
//
// Weights and biases are initialized to ones unless configured otherwise.
//
// Example:
//
//	tape := autodiff.NewTape()
//	layer := nn.NewLinear(784, 128, tape, nn.WithWeightInit(nn.Xavier(rng)))
//	output := layer.Forward(input) // shape: [batch, 128]
type Linear struct {
	base
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [1, out_features]
	tape        *autodiff.Tape
}

// LinearOption configures NewLinear.
type LinearOption func(*linearConfig)

type linearConfig struct {
	weightInit Initializer
	biasInit   Initializer
}

// WithWeightInit sets the weight initializer.
func WithWeightInit(init Initializer) LinearOption {
	return func(c *linearConfig) { c.weightInit = init }
}

// WithBiasInit sets the bias initializer.
func WithBiasInit(init Initializer) LinearOption {
	return func(c *linearConfig) { c.biasInit = init }
}

// NewLinear creates a new Linear layer whose parameters live on tape.
func NewLinear(inFeatures, outFeatures int, tape *autodiff.Tape, options ...LinearOption) *Linear {
	config := linearConfig{weightInit: Ones(), biasInit: Ones()}
	for _, opt := range options {
		opt(&config)
	}

	weight := autodiff.New(config.weightInit(tensor.Shape{inFeatures, outFeatures}), tape).Named("weight")
	bias := autodiff.New(config.biasInit(tensor.Shape{1, outFeatures}), tape).Named("bias")

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
		tape:        tape,
	}
}

// Forward computes the output of the linear layer.
//
// Input shape: [batch_size, in_features]
// Output shape: [batch_size, out_features]
func (l *Linear) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	inputShape := input.Shape()
	if inputShape.Cols() != l.inFeatures {
		exceptions.Panicf("Linear.Forward: expected input with %d features, got shape %s", l.inFeatures, inputShape)
	}

	output := input.MatMul(l.weight.Tensor())

	bias := l.bias.Tensor()
	if batch := inputShape.Rows(); batch > 1 {
		// ones[batch x 1] @ bias[1 x out] repeats the bias row and sums its
		// gradient over the batch on the way back.
		bias = autodiff.Ones(tensor.Shape{batch, 1}, l.tape).MatMul(bias)
	}
	return output.Add(bias)
}

// ResetGrad zeroes the weight and bias gradients.
func (l *Linear) ResetGrad() {
	resetGrads(l.Parameters())
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
