package autodiff

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Backward propagates the tensor's accumulated gradient to every ancestor.
//
// The caller seeds the gradient first, typically with SetGrad(tensor.Scalar(1))
// on a scalar loss. Gradients are added into ancestors' accumulated gradients;
// call ResetGrad on parameters before each new pass.
//
// Algorithm:
//  1. Mark the nodes reachable from t through parent links
//  2. Visit them in decreasing id. Consumers always have larger ids than their
//     inputs, so a node's gradient is complete by the time it is visited
//  3. Each op computes its input gradients, which are added into the parents
//
// Every reachable node is visited exactly once.
func (t *Tensor) Backward() {
	root := t.node()
	if root.grad == nil {
		exceptions.Panicf("backward: tensor %d doesn't have grad enabled", t.id)
	}

	tape := t.tape
	reached := tape.reachable(t.id)
	for id := t.id; id >= 0; id-- {
		if !reached[id] {
			continue
		}
		n := &tape.nodes[id]
		if n.op == nil || n.grad == nil {
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("backward: node %d %s value=%v grad=%v", id, n.op.Kind(), n.value, n.grad)
		}
		inputGrads := n.op.Backward(n.grad)
		for i, parent := range n.parents {
			tape.accumulate(parent, inputGrads[i])
		}
	}
}

// reachable marks every node that root depends on, root included.
func (t *Tape) reachable(root NodeID) []bool {
	reached := make([]bool, root+1)
	reached[root] = true
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, parent := range t.nodes[id].parents {
			if !reached[parent] {
				reached[parent] = true
				stack = append(stack, parent)
			}
		}
	}
	return reached
}
