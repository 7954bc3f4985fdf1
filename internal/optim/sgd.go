package optim

import (
	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/internal/tensor"
	"k8s.io/klog/v2"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.RawTensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over params.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.RawTensor),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for _, param := range s.params {
		update := param.Grad()
		if s.momentum != 0 {
			update = s.updateVelocity(param, update)
		}
		update = tensor.Scale(s.lr, update)
		param.Tensor().Value().SubInPlace(update)
		if klog.V(3).Enabled() {
			klog.Infof("sgd: %s updated by %v", param.Name(), update)
		}
	}
}

// updateVelocity applies velocity = momentum * velocity + grad and returns it.
func (s *SGD) updateVelocity(param *nn.Parameter, grad *tensor.RawTensor) *tensor.RawTensor {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = tensor.Zeros(grad.Shape())
		s.velocities[param] = velocity
	}
	velocity.CopyFrom(tensor.Add(tensor.Scale(s.momentum, velocity), grad))
	return velocity
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
