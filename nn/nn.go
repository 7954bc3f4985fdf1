// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/born-ml/gradnet/internal/nn"
)

// Module is the interface implemented by every layer and by Model.
type Module = nn.Module

// Parameter is a trainable tensor with a name.
type Parameter = nn.Parameter

// Linear is a fully connected layer y = x @ W + b.
type Linear = nn.Linear

// LinearOption configures a Linear layer.
type LinearOption = nn.LinearOption

// ReLU is the rectified linear unit activation module.
type ReLU = nn.ReLU

// Model chains modules, feeding each output into the next module.
type Model = nn.Model

// MSELoss computes the mean squared error between predictions and targets.
type MSELoss = nn.MSELoss

// Initializer produces the initial value of a parameter of a given shape.
type Initializer = nn.Initializer

// NewParameter wraps t as a named parameter, enabling gradient tracking.
func NewParameter(name string, t *autodiff.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// NewLinear creates a Linear layer with weight [in x out] and bias [1 x out].
//
// Weight and bias default to ones; override with WithWeightInit and WithBiasInit.
func NewLinear(inFeatures, outFeatures int, tape *autodiff.Tape, options ...LinearOption) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, tape, options...)
}

// WithWeightInit sets the weight initializer of a Linear layer.
func WithWeightInit(init Initializer) LinearOption {
	return nn.WithWeightInit(init)
}

// WithBiasInit sets the bias initializer of a Linear layer.
func WithBiasInit(init Initializer) LinearOption {
	return nn.WithBiasInit(init)
}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewModel creates a Model from an ordered list of modules.
func NewModel(modules ...Module) *Model {
	return nn.NewModel(modules...)
}

// NewMSELoss creates an MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Backward seeds loss with a gradient of ones and runs the backward pass.
func Backward(loss *autodiff.Tensor) {
	nn.Backward(loss)
}

// Ones returns an initializer that fills parameters with ones.
func Ones() Initializer {
	return nn.Ones()
}

// Zeros returns an initializer that fills parameters with zeros.
func Zeros() Initializer {
	return nn.Zeros()
}

// Xavier returns a Glorot uniform initializer drawing from rng.
func Xavier(rng *rand.Rand) Initializer {
	return nn.Xavier(rng)
}
