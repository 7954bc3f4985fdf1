package autodiff

import (
	"fmt"
	"strings"

	"github.com/born-ml/gradnet/internal/autodiff/ops"
	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Tensor is a dense 2-D value plus a handle to its node in the computation graph.
//
// Copying a *Tensor (or calling Clone) shares the node: both refer to the same
// graph vertex. Operations never mutate their operands; they append a new node.
type Tensor struct {
	tape  *Tape
	id    NodeID
	gen   uint64
	value *tensor.RawTensor
}

// node returns the tensor's node, panicking if the handle is stale.
func (t *Tensor) node() *node {
	return t.tape.lookup(t.id, t.gen)
}

// Tape returns the tape the tensor was recorded on.
func (t *Tensor) Tape() *Tape {
	return t.tape
}

// ID returns the tensor's node id.
func (t *Tensor) ID() NodeID {
	return t.id
}

// Kind returns the operation that produced the tensor (ops.KindNone for leaves).
func (t *Tensor) Kind() ops.Kind {
	return t.node().kind()
}

// Value returns the underlying RawTensor.
//
// WARNING: Modifying the returned tensor modifies this tensor's value.
func (t *Tensor) Value() *tensor.RawTensor {
	return t.value
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() tensor.Shape {
	return t.value.Shape()
}

// At returns the element at row i, column j.
func (t *Tensor) At(i, j int) float64 {
	return t.value.At(i, j)
}

// Item returns the value of a 1x1 tensor.
func (t *Tensor) Item() float64 {
	return t.value.Item()
}

// Equal compares values only: shape first, then every cell.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.value.Equal(other.value)
}

// Clone returns another handle to the same graph node.
func (t *Tensor) Clone() *Tensor {
	c := *t
	return &c
}

// Detach returns an untracked leaf sharing this tensor's data.
// Gradients do not flow through the result.
func (t *Tensor) Detach() *Tensor {
	t.node()
	return t.tape.leaf(t.value)
}

// Transpose returns an untracked leaf holding the transposed value.
func (t *Tensor) Transpose() *Tensor {
	t.node()
	return t.tape.leaf(t.value.Transpose())
}

// Named sets a label used when printing expressions built from this tensor.
// Returns the tensor itself for method chaining.
func (t *Tensor) Named(name string) *Tensor {
	t.node().name = name
	return t
}

// Label describes how the tensor was computed, e.g. "(w * x)" or "((a + b)^2)".
// Unnamed leaves are printed by value. An unnamed subexpression used more than
// once is spelled out the first time as "#<id>=(...)" and afterwards as "#<id>".
func (t *Tensor) Label() string {
	n := t.node()
	l := &labeler{tape: t.tape, refs: t.tape.refCounts(t.id), seen: make(map[NodeID]bool)}
	var sb strings.Builder
	l.write(&sb, t.id, n)
	return sb.String()
}

// String returns the tensor's value laid out as a matrix.
func (t *Tensor) String() string {
	return t.value.String()
}

// labeler builds one expression label, printing shared subexpressions once.
type labeler struct {
	tape *Tape
	refs []int
	seen map[NodeID]bool
}

func (l *labeler) write(sb *strings.Builder, id NodeID, n *node) {
	if n.name != "" {
		sb.WriteString(n.name)
		return
	}
	if n.op == nil {
		sb.WriteString(n.value.String())
		return
	}
	if l.refs[id] > 1 {
		if l.seen[id] {
			fmt.Fprintf(sb, "#%d", id)
			return
		}
		l.seen[id] = true
		fmt.Fprintf(sb, "#%d=", id)
	}

	arg := func(i int) {
		p := n.parents[i]
		l.write(sb, p, &l.tape.nodes[p])
	}
	switch n.op.Kind() {
	case ops.KindNeg:
		sb.WriteString("(- ")
		arg(0)
		sb.WriteString(")")
	case ops.KindAdd, ops.KindSub, ops.KindMul:
		symbol := map[ops.Kind]string{ops.KindAdd: " + ", ops.KindSub: " - ", ops.KindMul: " * "}[n.op.Kind()]
		sb.WriteString("(")
		arg(0)
		sb.WriteString(symbol)
		arg(1)
		sb.WriteString(")")
	case ops.KindPow:
		sb.WriteString("(")
		arg(0)
		fmt.Fprintf(sb, "^%d)", n.op.(*ops.PowOp).Exponent())
	default:
		fmt.Fprintf(sb, "(%s ", n.op.Kind())
		arg(0)
		sb.WriteString(")")
	}
}

// refCounts returns, for every node root depends on, how many times it is
// used as an operand within that subgraph.
func (t *Tape) refCounts(root NodeID) []int {
	reached := t.reachable(root)
	refs := make([]int, root+1)
	for id, ok := range reached {
		if !ok {
			continue
		}
		for _, p := range t.nodes[id].parents {
			refs[p]++
		}
	}
	return refs
}

// WithGrad enables gradient tracking with a zero gradient.
// Enabling it twice is a no-op that logs a warning.
// Returns the tensor itself for method chaining.
//
// Example:
//
//	w := autodiff.Ones(tensor.Shape{2, 2}, tape).WithGrad()
func (t *Tensor) WithGrad() *Tensor {
	n := t.node()
	if n.grad != nil {
		klog.Warningf("tensor %d already has grad enabled", t.id)
		return t
	}
	n.grad = tensor.Zeros(n.value.Shape())
	return t
}

// RequiresGrad returns true if gradient tracking is enabled.
func (t *Tensor) RequiresGrad() bool {
	return t.node().grad != nil
}

// Grad returns a copy of the accumulated gradient.
// Panics if gradient tracking is not enabled.
func (t *Tensor) Grad() *tensor.RawTensor {
	n := t.node()
	if n.grad == nil {
		exceptions.Panicf("tensor %d doesn't have grad enabled", t.id)
	}
	return n.grad.Clone()
}

// SetGrad replaces the accumulated gradient with a copy of grad, enabling
// tracking if needed. grad must have the tensor's shape.
func (t *Tensor) SetGrad(grad *tensor.RawTensor) {
	n := t.node()
	if !grad.Shape().Equal(n.value.Shape()) {
		exceptions.Panicf("SetGrad: gradient shape %s doesn't match tensor shape %s", grad.Shape(), n.value.Shape())
	}
	n.grad = grad.Clone()
}

// ResetGrad zeroes the accumulated gradient, enabling tracking if needed.
func (t *Tensor) ResetGrad() {
	n := t.node()
	n.grad = tensor.Zeros(n.value.Shape())
}

// Last returns a copy of the forward value cached on the node.
// Panics if gradient tracking is not enabled.
func (t *Tensor) Last() *tensor.RawTensor {
	n := t.node()
	if n.grad == nil {
		exceptions.Panicf("tensor %d doesn't have grad enabled", t.id)
	}
	return n.value.Clone()
}
