// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on top of package autodiff.
//
// # Modules
//
// A Module exposes Forward, Backward, ResetGrad and Parameters:
//   - Linear: fully connected layer y = x @ W + b
//   - ReLU: elementwise activation without parameters
//   - Model: ordered chain of modules
//
// # Training
//
//	tape := autodiff.NewTape()
//	model := nn.NewModel(
//	    nn.NewLinear(2, 4, tape, nn.WithWeightInit(nn.Xavier(rng))),
//	    nn.NewReLU(),
//	    nn.NewLinear(4, 1, tape),
//	)
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//	mse := nn.NewMSELoss()
//
//	mark := tape.Mark()
//	for _, sample := range data {
//	    model.ResetGrad()
//	    loss := mse.Forward(model.Forward(sample.Input), sample.Output)
//	    model.Backward(loss)
//	    sgd.Step()
//	    tape.Release(mark)
//	}
package nn
