package nn

import (
	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(model.Forward(input), targets)
//	model.Backward(loss)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss as a 1x1 tensor.
func (m *MSELoss) Forward(predictions, targets *autodiff.Tensor) *autodiff.Tensor {
	if !predictions.Shape().Equal(targets.Shape()) {
		exceptions.Panicf("MSELoss: predictions shape %s doesn't match targets shape %s",
			predictions.Shape(), targets.Shape())
	}
	return predictions.Sub(targets).Pow(2).Mean()
}
