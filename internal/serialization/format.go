package serialization

import "time"

// Format constants.
const (
	MagicBytes      = "GRAD"
	FormatVersion   = 1
	ChecksumSize    = 32             // SHA-256 checksum size
	FixedHeaderSize = 4 + 4 + 8 + 32 // magic + version + header size + checksum
	bytesPerElement = 8
)

// Header represents the JSON header in a .grad file.
type Header struct {
	FormatVersion int               `json:"format_version"`       // Version of the .grad format
	Version       string            `json:"gradnet_version"`      // Version of gradnet that created this file
	ModelType     string            `json:"model_type"`           // Type of model (e.g., "Model", "Linear")
	CreatedAt     time.Time         `json:"created_at"`           // When the file was created
	Tensors       []TensorMeta      `json:"tensors"`              // Tensor metadata
	Metadata      map[string]string `json:"metadata,omitempty"`   // Custom metadata
	Checkpoint    *CheckpointMeta   `json:"checkpoint,omitempty"` // Training state (optional)
}

// CheckpointMeta contains training state information for checkpoints.
type CheckpointMeta struct {
	Epoch         int     `json:"epoch"`          // Training epoch number
	Loss          float64 `json:"loss"`           // Loss value at checkpoint
	OptimizerType string  `json:"optimizer_type"` // Optimizer type ("SGD")
	LR            float64 `json:"lr"`             // Learning rate
}

// TensorMeta describes a tensor in the .grad file.
type TensorMeta struct {
	Name   string `json:"name"`   // Tensor name (e.g., "0.weight")
	Shape  [2]int `json:"shape"`  // Rows and columns
	Offset int64  `json:"offset"` // Offset in the data section
	Size   int64  `json:"size"`   // Size in bytes
}
