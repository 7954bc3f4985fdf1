package serialization

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/pkg/errors"
)

// Read decodes a .grad stream, validating its checksum and tensor layout.
func Read(r io.Reader) (map[string]*tensor.RawTensor, *Header, error) {
	var fixed [FixedHeaderSize]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read fixed header")
	}
	if string(fixed[0:4]) != MagicBytes {
		return nil, nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return nil, nil, errors.WithMessagef(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion)
	}
	headerSize := binary.LittleEndian.Uint64(fixed[8:16])
	if headerSize > MaxHeaderSize {
		return nil, nil, ErrHeaderTooLarge
	}
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[16:])

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read tensor data")
	}
	if err := ValidateChecksum(ComputeChecksum(headerJSON, data), stored); err != nil {
		return nil, nil, err
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse header JSON")
	}
	if err := ValidateHeader(&header, int64(len(data))); err != nil {
		return nil, nil, errors.WithMessage(err, "validation failed")
	}

	stateDict := make(map[string]*tensor.RawTensor, len(header.Tensors))
	for _, meta := range header.Tensors {
		raw, err := tensor.NewRaw(tensor.Shape(meta.Shape))
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "tensor %q", meta.Name)
		}
		values := raw.Data()
		section := data[meta.Offset : meta.Offset+meta.Size]
		for i := range values {
			values[i] = math.Float64frombits(binary.LittleEndian.Uint64(section[i*bytesPerElement:]))
		}
		stateDict[meta.Name] = raw
	}
	return stateDict, &header, nil
}

// LoadFile reads the .grad file at path.
func LoadFile(path string) (map[string]*tensor.RawTensor, *Header, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open %q", path)
	}
	defer func() { _ = file.Close() }()
	stateDict, header, err := Read(file)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "loading %q", path)
	}
	return stateDict, header, nil
}
