package nn

import (
	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// Model is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewModel(
//	    nn.NewLinear(2, 4, tape),
//	    nn.NewReLU(),
//	    nn.NewLinear(4, 1, tape),
//	)
//
//	output := model.Forward(input)
type Model struct {
	base
	modules []Module
}

// NewModel creates a new Model from modules applied in order.
func NewModel(modules ...Module) *Model {
	return &Model{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (m *Model) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	output := input
	for _, module := range m.modules {
		output = module.Forward(output)
	}
	return output
}

// ResetGrad zeroes the gradients of every module.
func (m *Model) ResetGrad() {
	for _, module := range m.modules {
		module.ResetGrad()
	}
}

// Parameters returns all trainable parameters from all modules, in order.
func (m *Model) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range m.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (m *Model) Add(module Module) {
	m.modules = append(m.modules, module)
}

// Len returns the number of modules in the sequence.
func (m *Model) Len() int {
	return len(m.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (m *Model) Module(index int) Module {
	if index < 0 || index >= len(m.modules) {
		exceptions.Panicf("Model.Module: index %d out of bounds for %d modules", index, len(m.modules))
	}
	return m.modules[index]
}
