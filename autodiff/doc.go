// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over 2-D tensors.
//
// # Overview
//
// Operations on autodiff tensors are recorded on a Tape, an arena of nodes
// addressed by integer ids. Calling Backward on a result walks the recorded
// graph once, in reverse order of creation, and accumulates gradients into
// every tracked tensor that contributed to it.
//
//   - Leaves created by New, Scalar, FromRows etc. are untracked until WithGrad.
//   - Results of operations are tracked and start with a zero gradient.
//   - A tensor used by several operations receives the sum of all contributions.
//
// # Basic Usage
//
//	tape := autodiff.NewTape()
//	a := autodiff.Scalar(1, tape).WithGrad()
//	b := autodiff.Scalar(2, tape).WithGrad()
//	y := a.MatMul(b).Pow(2)
//
//	y.SetGrad(tensor.Scalar(1))
//	y.Backward()
//	fmt.Println(a.Grad()) // 8
//
// # Memory
//
// The tape grows with every recorded operation. Training loops take a Mark
// before the first step and Release it after each step, which drops the
// intermediate nodes; handles to released nodes panic when used.
package autodiff
