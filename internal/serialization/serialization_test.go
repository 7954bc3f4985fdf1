package serialization_test

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/born-ml/gradnet/internal/serialization"
	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"0.weight": must.M1(tensor.FromRows([][]float64{{1.5, -2}, {0.25, 3}})),
		"0.bias":   must.M1(tensor.FromRows([][]float64{{-0.125, 7}})),
	}
}

func encode(t *testing.T, stateDict map[string]*tensor.RawTensor, header *serialization.Header) []byte {
	var buf bytes.Buffer
	require.NoError(t, serialization.Write(&buf, stateDict, header))
	return buf.Bytes()
}

func TestWriteRead(t *testing.T) {
	header := &serialization.Header{
		Version:    "v0.1.0",
		ModelType:  "Model",
		Metadata:   map[string]string{"task": "linear"},
		Checkpoint: &serialization.CheckpointMeta{Epoch: 10, Loss: 0.5, OptimizerType: "SGD", LR: 0.01},
	}
	encoded := encode(t, sampleStateDict(), header)
	assert.Equal(t, serialization.MagicBytes, string(encoded[:4]))

	stateDict, got, err := serialization.Read(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, stateDict, 2)
	for name, want := range sampleStateDict() {
		assert.True(t, want.Equal(stateDict[name]), "tensor %q differs", name)
	}

	assert.Equal(t, serialization.FormatVersion, got.FormatVersion)
	assert.Equal(t, "Model", got.ModelType)
	assert.Equal(t, "linear", got.Metadata["task"])
	require.NotNil(t, got.Checkpoint)
	assert.Equal(t, 10, got.Checkpoint.Epoch)
	assert.False(t, got.CreatedAt.IsZero())

	// Tensors are stored sorted by name.
	require.Len(t, got.Tensors, 2)
	assert.Equal(t, "0.bias", got.Tensors[0].Name)
	assert.Equal(t, [2]int{1, 2}, got.Tensors[0].Shape)
	assert.Equal(t, int64(16), got.Tensors[1].Offset)
}

func TestRead_InvalidMagic(t *testing.T) {
	encoded := encode(t, sampleStateDict(), nil)
	copy(encoded, "NOPE")
	_, _, err := serialization.Read(bytes.NewReader(encoded))
	assert.ErrorIs(t, err, serialization.ErrInvalidMagic)
}

func TestRead_UnsupportedVersion(t *testing.T) {
	encoded := encode(t, sampleStateDict(), nil)
	encoded[4] = 9
	_, _, err := serialization.Read(bytes.NewReader(encoded))
	assert.True(t, errors.Is(err, serialization.ErrUnsupportedVersion), "got %v", err)
}

func TestRead_Corrupted(t *testing.T) {
	encoded := encode(t, sampleStateDict(), nil)
	encoded[len(encoded)-1] ^= 0xff
	_, _, err := serialization.Read(bytes.NewReader(encoded))
	assert.ErrorIs(t, err, serialization.ErrChecksumMismatch)
}

func TestRead_Truncated(t *testing.T) {
	encoded := encode(t, sampleStateDict(), nil)
	_, _, err := serialization.Read(bytes.NewReader(encoded[:10]))
	assert.ErrorContains(t, err, "failed to read fixed header")
}

func TestValidateHeader(t *testing.T) {
	valid := serialization.TensorMeta{Name: "a", Shape: [2]int{1, 2}, Offset: 0, Size: 16}

	tests := []struct {
		name     string
		tensors  []serialization.TensorMeta
		dataSize int64
		wantType string
	}{
		{"valid", []serialization.TensorMeta{valid}, 16, ""},
		{"empty name", []serialization.TensorMeta{{Shape: [2]int{1, 1}, Size: 8}}, 8, "invalid_name"},
		{"duplicate", []serialization.TensorMeta{valid, valid}, 32, "duplicate_name"},
		{"bad shape", []serialization.TensorMeta{{Name: "a", Shape: [2]int{0, 1}}}, 8, "invalid_shape"},
		{"size mismatch", []serialization.TensorMeta{{Name: "a", Shape: [2]int{1, 2}, Size: 8}}, 16, "size_mismatch"},
		{"out of bounds", []serialization.TensorMeta{valid}, 8, "out_of_bounds"},
		{"overlap", []serialization.TensorMeta{valid, {Name: "b", Shape: [2]int{1, 1}, Offset: 8, Size: 8}}, 32, "offset_overlap"},
		{"negative", []serialization.TensorMeta{{Name: "a", Shape: [2]int{1, 1}, Offset: -8, Size: 8}}, 8, "negative_offset"},
		{"offset overflow", []serialization.TensorMeta{{Name: "a", Shape: [2]int{1, 1}, Offset: math.MaxInt64 - 7, Size: 8}}, 16, "out_of_bounds"},
		{"shape overflow", []serialization.TensorMeta{{Name: "a", Shape: [2]int{1<<61 + 1, 1}, Size: 8}}, 8, "invalid_shape"},
		{"shape product overflow", []serialization.TensorMeta{{Name: "a", Shape: [2]int{1 << 31, 1 << 31}, Size: 8}}, 8, "invalid_shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := serialization.ValidateHeader(&serialization.Header{Tensors: tt.tensors}, tt.dataSize)
			if tt.wantType == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *serialization.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantType, validationErr.Type)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &serialization.ValidationError{Type: "offset_overlap", Tensor: "a", Tensor2: "b", Details: "x"}
	assert.Equal(t, `offset_overlap: tensors "a" and "b": x`, err.Error())

	err = &serialization.ValidationError{Type: "too_many_tensors", Details: "y"}
	assert.Equal(t, "too_many_tensors: y", err.Error())
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.grad")
	require.NoError(t, serialization.SaveFile(path, sampleStateDict(), &serialization.Header{ModelType: "Linear"}))

	stateDict, header, err := serialization.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Linear", header.ModelType)
	assert.True(t, sampleStateDict()["0.weight"].Equal(stateDict["0.weight"]))

	_, _, err = serialization.LoadFile(filepath.Join(t.TempDir(), "missing.grad"))
	assert.ErrorContains(t, err, "failed to open")
}

// frame encodes header and data with a valid checksum, bypassing Write.
func frame(t *testing.T, header *serialization.Header, data []byte) []byte {
	headerJSON, err := json.Marshal(header)
	require.NoError(t, err)
	checksum := serialization.ComputeChecksum(headerJSON, data)

	var buf bytes.Buffer
	buf.WriteString(serialization.MagicBytes)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(serialization.FormatVersion)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint64(len(headerJSON))))
	buf.Write(checksum[:])
	buf.Write(headerJSON)
	buf.Write(data)
	return buf.Bytes()
}

func TestRead_MalformedLayout(t *testing.T) {
	tests := []struct {
		name string
		meta serialization.TensorMeta
	}{
		{"offset overflow", serialization.TensorMeta{Name: "a", Shape: [2]int{1, 1}, Offset: math.MaxInt64 - 7, Size: 8}},
		{"shape overflow", serialization.TensorMeta{Name: "a", Shape: [2]int{1<<61 + 1, 1}, Size: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := frame(t, &serialization.Header{
				FormatVersion: serialization.FormatVersion,
				Tensors:       []serialization.TensorMeta{tt.meta},
			}, make([]byte, 16))

			var err error
			require.NotPanics(t, func() {
				_, _, err = serialization.Read(bytes.NewReader(encoded))
			})
			var validationErr *serialization.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}
