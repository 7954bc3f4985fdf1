// Package autodiff implements reverse-mode automatic differentiation over
// dense 2-D tensors.
//
// Architecture:
//   - Tape: an arena of graph nodes addressed by integer ids
//   - Tensor: a value plus a handle (tape, id, generation) to its node
//   - Operation interface (package ops): each op implements its backward pass
//   - Backward: one sweep in reverse construction order, so every node has
//     received all of its gradient contributions before it propagates them
//
// Usage:
//
//	tape := autodiff.NewTape()
//	x := autodiff.Scalar(3, tape).WithGrad()
//	y := x.Pow(2) // y = x²
//
//	y.SetGrad(tensor.Scalar(1))
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6
//
// A Tape is not safe for concurrent use.
package autodiff

import (
	"github.com/born-ml/gradnet/internal/autodiff/ops"
	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/gomlx/exceptions"
)

// NodeID addresses a node inside its Tape. Ids grow in construction order.
type NodeID int

// node is the gradient-tracking record behind a Tensor.
type node struct {
	value   *tensor.RawTensor // forward value ("last")
	grad    *tensor.RawTensor // accumulated gradient, nil while tracking is disabled
	op      ops.Operation     // nil for leaves
	parents []NodeID
	name    string
	gen     uint64
}

// kind returns the operation tag of the node.
func (n *node) kind() ops.Kind {
	if n.op == nil {
		return ops.KindNone
	}
	return n.op.Kind()
}

// Tape records the computation graph as tensors are combined.
//
// Nodes live in an arena and reference their parents by id. Parents are
// always created before their consumers, so node order is a topological order.
type Tape struct {
	nodes        []node
	gen          uint64 // bumped by Release, invalidates handles to dropped nodes
	notRecording bool
}

// NewTape creates an empty tape that records operations.
func NewTape() *Tape {
	return &Tape{
		nodes: make([]node, 0, 64),
	}
}

// Len returns the number of nodes in the arena.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// StartRecording enables operation recording (the default).
func (t *Tape) StartRecording() {
	t.notRecording = false
}

// StopRecording disables operation recording. Operations still compute their
// values, but their results are untracked leaves with no parents.
func (t *Tape) StopRecording() {
	t.notRecording = true
}

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape) IsRecording() bool {
	return !t.notRecording
}

// Mark returns a position in the arena that can later be passed to Release.
//
// Usage:
//
//	mark := tape.Mark() // after the model parameters are created
//	for step := range steps {
//	    // forward, backward, optimizer step ...
//	    tape.Release(mark)
//	}
func (t *Tape) Mark() int {
	return len(t.nodes)
}

// Release drops every node created after mark. Tensors that referred to
// dropped nodes become stale and panic on use.
func (t *Tape) Release(mark int) {
	if mark < 0 || mark > len(t.nodes) {
		exceptions.Panicf("tape: release mark %d out of range [0, %d]", mark, len(t.nodes))
	}
	if mark == len(t.nodes) {
		return
	}
	clear(t.nodes[mark:])
	t.nodes = t.nodes[:mark]
	t.gen++
}

// add appends a node and returns a tensor handle to it.
func (t *Tape) add(n node) *Tensor {
	n.gen = t.gen
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return &Tensor{tape: t, id: id, gen: t.gen, value: n.value}
}

// leaf appends an untracked leaf holding value.
func (t *Tape) leaf(value *tensor.RawTensor) *Tensor {
	return t.add(node{value: value})
}

// record appends the result of an operation on the given parents.
// Results start with tracking enabled and a zero gradient.
func (t *Tape) record(value *tensor.RawTensor, op ops.Operation, parents ...*Tensor) *Tensor {
	if op.NumInputs() != len(parents) {
		exceptions.Panicf("tape: %s expects %d inputs, got %d", op.Kind(), op.NumInputs(), len(parents))
	}
	ids := make([]NodeID, len(parents))
	for i, p := range parents {
		if p.tape != t {
			exceptions.Panicf("tape: %s mixes tensors from different tapes", op.Kind())
		}
		p.node() // validates the handle
		ids[i] = p.id
	}
	if t.notRecording {
		return t.leaf(value)
	}
	return t.add(node{
		value:   value,
		grad:    tensor.Zeros(value.Shape()),
		op:      op,
		parents: ids,
	})
}

// lookup returns the node for (id, gen), panicking on stale or foreign handles.
func (t *Tape) lookup(id NodeID, gen uint64) *node {
	if int(id) < 0 || int(id) >= len(t.nodes) || t.nodes[id].gen != gen {
		exceptions.Panicf("tape: stale tensor handle (node %d, generation %d); the node was released", id, gen)
	}
	return &t.nodes[id]
}

// accumulate adds grad into the node's accumulated gradient.
// Nodes without gradient tracking ignore contributions.
func (t *Tape) accumulate(id NodeID, grad *tensor.RawTensor) {
	n := &t.nodes[id]
	if n.grad == nil {
		return
	}
	n.grad.AddInPlace(grad)
}
