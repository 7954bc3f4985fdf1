package nn

import (
	"strconv"

	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/pkg/errors"
)

// StateDict returns copies of all parameter values, keyed by the module path
// followed by the parameter name. Nested models add one index per level.
//
// Example keys for Linear, ReLU, Linear: "0.weight", "0.bias", "2.weight", "2.bias".
// Wrapping that model as the first module of another gives "0.0.weight", ..., "0.2.bias".
func (m *Model) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	m.walkParameters("", func(key string, p *Parameter) {
		stateDict[key] = p.Tensor().Value().Clone()
	})
	return stateDict
}

// LoadStateDict copies the values in stateDict into the model parameters.
//
// Every parameter must be present with a matching shape; on error no
// parameter is modified. Extra entries are ignored.
func (m *Model) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	type update struct {
		param *Parameter
		value *tensor.RawTensor
	}
	var (
		updates []update
		err     error
	)
	m.walkParameters("", func(key string, p *Parameter) {
		if err != nil {
			return
		}
		value, found := stateDict[key]
		if !found {
			err = errors.Errorf("LoadStateDict: missing parameter %q", key)
			return
		}
		if want := p.Tensor().Shape(); !value.Shape().Equal(want) {
			err = errors.Errorf("LoadStateDict: parameter %q has shape %s, model expects %s", key, value.Shape(), want)
			return
		}
		updates = append(updates, update{p, value})
	})
	if err != nil {
		return err
	}
	for _, u := range updates {
		u.param.Tensor().Value().CopyFrom(u.value)
	}
	return nil
}

// walkParameters calls visit for every parameter in module order, descending
// into nested models so that each parameter gets a unique key.
func (m *Model) walkParameters(prefix string, visit func(key string, p *Parameter)) {
	for i, module := range m.modules {
		path := prefix + strconv.Itoa(i) + "."
		if inner, ok := module.(*Model); ok {
			inner.walkParameters(path, visit)
			continue
		}
		for _, p := range module.Parameters() {
			visit(path+p.Name(), p)
		}
	}
}
