package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/pkg/errors"
)

// Write encodes stateDict to w in .grad format.
//
// Tensors are written in alphabetical order by name. Header fields other than
// FormatVersion and Tensors are taken from header, which may be nil.
func Write(w io.Writer, stateDict map[string]*tensor.RawTensor, header *Header) error {
	var h Header
	if header != nil {
		h = *header
	}
	h.FormatVersion = FormatVersion
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}

	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		names = append(names, name)
	}
	sort.Strings(names)

	h.Tensors = make([]TensorMeta, 0, len(names))
	var data bytes.Buffer
	for _, name := range names {
		raw := stateDict[name]
		meta := TensorMeta{
			Name:   name,
			Shape:  [2]int{raw.Rows(), raw.Cols()},
			Offset: int64(data.Len()),
			Size:   int64(raw.NumElements() * bytesPerElement),
		}
		h.Tensors = append(h.Tensors, meta)
		var buf [bytesPerElement]byte
		for _, v := range raw.Data() {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			data.Write(buf[:])
		}
	}

	headerJSON, err := json.Marshal(&h)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	checksum := ComputeChecksum(headerJSON, data.Bytes())

	var fixed [FixedHeaderSize]byte
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	binary.LittleEndian.PutUint64(fixed[8:16], uint64(len(headerJSON)))
	copy(fixed[16:], checksum[:])

	for _, section := range [][]byte{fixed[:], headerJSON, data.Bytes()} {
		if _, err := w.Write(section); err != nil {
			return errors.Wrap(err, "failed to write .grad data")
		}
	}
	return nil
}

// SaveFile writes stateDict to the file at path, replacing it if it exists.
func SaveFile(path string, stateDict map[string]*tensor.RawTensor, header *Header) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", path)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "failed to close %q", path)
		}
	}()
	return Write(file, stateDict, header)
}
