// Package serialization provides the .grad format for saving and loading model parameters.
//
// The .grad format is a small binary format holding a named set of 2-D float64 tensors:
//
//	Format Structure:
//	  [4 bytes: Magic "GRAD"]
//	  [4 bytes: Version (uint32 LE)]
//	  [8 bytes: Header Size (uint64 LE)]
//	  [32 bytes: SHA-256 of header and tensor data]
//	  [Header: JSON metadata]
//	  [Tensor data: float64 LE, row-major, in header order]
//
// Example usage:
//
//	// Save a model
//	err := serialization.SaveFile("model.grad", model.StateDict(), &serialization.Header{ModelType: "Model"})
//
//	// Load it back
//	stateDict, header, err := serialization.LoadFile("model.grad")
//	if err != nil {
//	    return err
//	}
//	err = model.LoadStateDict(stateDict)
package serialization
