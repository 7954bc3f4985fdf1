package serialization

import (
	"fmt"
	"math"
	"sort"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 16 * 1024 * 1024 // maximum header size
	MaxTensorCount   = 100_000          // Maximum number of tensors in a file
	MaxTensorNameLen = 4096             // Maximum tensor name length
)

// ValidateHeader checks tensor names, shapes and offsets against the data section size.
func ValidateHeader(header *Header, dataSize int64) error {
	if len(header.Tensors) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(header.Tensors), MaxTensorCount),
		}
	}

	seen := make(map[string]bool, len(header.Tensors))
	for _, t := range header.Tensors {
		if t.Name == "" || len(t.Name) > MaxTensorNameLen {
			return &ValidationError{
				Type:    "invalid_name",
				Tensor:  t.Name,
				Details: fmt.Sprintf("name length %d not in [1, %d]", len(t.Name), MaxTensorNameLen),
			}
		}
		if seen[t.Name] {
			return &ValidationError{Type: "duplicate_name", Tensor: t.Name, Details: "tensor appears twice"}
		}
		seen[t.Name] = true

		rows, cols := t.Shape[0], t.Shape[1]
		if rows <= 0 || cols <= 0 {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  t.Name,
				Details: fmt.Sprintf("shape [%dx%d] must be positive", rows, cols),
			}
		}
		if int64(rows) > math.MaxInt64/bytesPerElement/int64(cols) {
			return &ValidationError{
				Type:    "invalid_shape",
				Tensor:  t.Name,
				Details: fmt.Sprintf("shape [%dx%d] overflows the byte size", rows, cols),
			}
		}
		if want := int64(rows) * int64(cols) * bytesPerElement; t.Size != want {
			return &ValidationError{
				Type:    "size_mismatch",
				Tensor:  t.Name,
				Details: fmt.Sprintf("size %d bytes, shape [%dx%d] needs %d", t.Size, rows, cols, want),
			}
		}
	}
	return ValidateTensorOffsets(header.Tensors, dataSize)
}

// ValidateTensorOffsets checks for overlapping tensor offsets and out-of-bounds access.
func ValidateTensorOffsets(tensors []TensorMeta, dataSize int64) error {
	sorted := make([]TensorMeta, len(tensors))
	copy(sorted, tensors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
			}
		}

		// t.Offset+t.Size may overflow int64.
		if t.Offset > dataSize-t.Size {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}
	return nil
}
