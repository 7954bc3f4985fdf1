// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense two-dimensional float64 tensors.
//
// # Overview
//
// Every tensor in gradnet is a row-major matrix with shape [rows x cols];
// scalars are 1x1 tensors. This package provides:
//   - Construction: Zeros, Ones, Full, Scalar, FromRows, FromSlice
//   - Element access: At, Set, Item, Row, Col
//   - Arithmetic: Add, Sub, Neg, MatMul, Pow, Mean, ReLU
//
// Arithmetic here is plain value computation. Use package autodiff to record
// operations on a tape and compute gradients.
//
// # Basic Usage
//
//	x, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
//	if err != nil {
//	    return err
//	}
//	y := tensor.MatMul(x, x.Transpose())
//	fmt.Println(y)
//
// Shape mismatches and out-of-range indices are caller bugs and panic.
// Constructors that take user data return errors instead.
package tensor
