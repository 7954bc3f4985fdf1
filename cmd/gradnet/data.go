package main

import (
	"github.com/born-ml/gradnet/tensor"
)

// TestData is one training sample: an input row and its expected output.
type TestData struct {
	Input  *tensor.RawTensor
	Output *tensor.RawTensor
}

// linearData samples y = m*x + b for x in 1..9.
func linearData(m, b float64) []TestData {
	data := make([]TestData, 0, 9)
	for x := 1.0; x <= 9; x++ {
		data = append(data, TestData{
			Input:  tensor.Scalar(x),
			Output: tensor.Scalar(m*x + b),
		})
	}
	return data
}

// xorData returns the XOR truth table.
func xorData() []TestData {
	table := [][3]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	data := make([]TestData, 0, len(table))
	for _, row := range table {
		input := tensor.Zeros(tensor.Shape{1, 2})
		input.Set(0, 0, row[0])
		input.Set(0, 1, row[1])
		data = append(data, TestData{Input: input, Output: tensor.Scalar(row[2])})
	}
	return data
}
