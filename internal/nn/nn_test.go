package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/gradnet/internal/autodiff"
	"github.com/born-ml/gradnet/internal/nn"
	"github.com/born-ml/gradnet/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromRows(tape *autodiff.Tape, rows ...[]float64) *autodiff.Tensor {
	return must.M1(autodiff.FromRows(rows, tape))
}

// TestParameter tests Parameter creation and methods.
func TestParameter(t *testing.T) {
	tape := autodiff.NewTape()
	data := fromRows(tape, []float64{1, 2, 3})
	param := nn.NewParameter("test_param", data)

	assert.Equal(t, "test_param", param.Name())
	assert.Same(t, data, param.Tensor())
	assert.True(t, data.RequiresGrad(), "NewParameter should enable gradient tracking")
	assert.Equal(t, []float64{0, 0, 0}, param.Grad().Data())

	data.SetGrad(tensor.Ones(tensor.Shape{1, 3}))
	assert.Equal(t, []float64{1, 1, 1}, param.Grad().Data())

	param.ZeroGrad()
	assert.Equal(t, []float64{0, 0, 0}, param.Grad().Data())
}

// TestLinear_Shapes tests parameter shapes and defaults.
func TestLinear_Shapes(t *testing.T) {
	tape := autodiff.NewTape()
	layer := nn.NewLinear(3, 2, tape)

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 2, layer.OutFeatures())
	assert.Equal(t, tensor.Shape{3, 2}, layer.Weight().Tensor().Shape())
	assert.Equal(t, tensor.Shape{1, 2}, layer.Bias().Tensor().Shape())
	assert.Equal(t, []float64{1, 1}, layer.Bias().Tensor().Value().Data())

	params := layer.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "weight", params[0].Name())
	assert.Equal(t, "bias", params[1].Name())
	for _, p := range params {
		assert.True(t, p.Tensor().RequiresGrad())
	}
}

// TestLinear_Forward tests y = x @ W + b for a single sample.
func TestLinear_Forward(t *testing.T) {
	tape := autodiff.NewTape()
	layer := nn.NewLinear(2, 3, tape)

	output := layer.Forward(fromRows(tape, []float64{1, 2}))
	assert.Equal(t, tensor.Shape{1, 3}, output.Shape())
	assert.Equal(t, []float64{4, 4, 4}, output.Value().Data())
}

// TestLinear_ForwardBatch tests bias broadcasting over the batch and its gradient.
func TestLinear_ForwardBatch(t *testing.T) {
	tape := autodiff.NewTape()
	layer := nn.NewLinear(2, 3, tape, nn.WithBiasInit(nn.Zeros()))
	layer.Bias().Tensor().Value().Set(0, 1, 10)

	x := fromRows(tape, []float64{1, 2}, []float64{3, 4})
	output := layer.Forward(x)
	assert.Equal(t, tensor.Shape{2, 3}, output.Shape())
	assert.Equal(t, []float64{3, 13, 3, 7, 17, 7}, output.Value().Data())

	layer.Backward(output)

	// The bias gradient sums over the batch.
	assert.Equal(t, []float64{2, 2, 2}, layer.Bias().Grad().Data())
	// weight grad = x^T @ ones[2x3]
	assert.Equal(t, []float64{4, 4, 4, 6, 6, 6}, layer.Weight().Grad().Data())
}

// TestLinear_InputMismatch tests the feature-count check.
func TestLinear_InputMismatch(t *testing.T) {
	tape := autodiff.NewTape()
	layer := nn.NewLinear(2, 1, tape)

	err := exceptions.TryCatch[error](func() { layer.Forward(fromRows(tape, []float64{1, 2, 3})) })
	require.ErrorContains(t, err, "expected input with 2 features")
}

// TestLinear_ResetGrad tests clearing layer gradients.
func TestLinear_ResetGrad(t *testing.T) {
	tape := autodiff.NewTape()
	layer := nn.NewLinear(1, 1, tape)

	layer.Backward(layer.Forward(fromRows(tape, []float64{3})))
	assert.Equal(t, 3.0, layer.Weight().Grad().Item())
	assert.Equal(t, 1.0, layer.Bias().Grad().Item())

	layer.ResetGrad()
	assert.Equal(t, 0.0, layer.Weight().Grad().Item())
	assert.Equal(t, 0.0, layer.Bias().Grad().Item())
}

// TestReLU_Module tests the stateless activation module.
func TestReLU_Module(t *testing.T) {
	tape := autodiff.NewTape()
	relu := nn.NewReLU()

	output := relu.Forward(fromRows(tape, []float64{-1, 0, 2}))
	assert.Equal(t, []float64{0, 0, 2}, output.Value().Data())
	assert.Empty(t, relu.Parameters())
	require.NotPanics(t, relu.ResetGrad)
}

// TestModel tests chaining and aggregation.
func TestModel(t *testing.T) {
	tape := autodiff.NewTape()
	first := nn.NewLinear(2, 2, tape)
	second := nn.NewLinear(2, 1, tape)
	model := nn.NewModel(first, nn.NewReLU())
	model.Add(second)

	assert.Equal(t, 3, model.Len())
	assert.Same(t, second, model.Module(2))
	require.Panics(t, func() { model.Module(3) })

	params := model.Parameters()
	require.Len(t, params, 4)
	assert.Same(t, first.Weight(), params[0])
	assert.Same(t, second.Bias(), params[3])

	// [1, 1] -> first: [3, 3] -> relu: [3, 3] -> second: [7]
	output := model.Forward(fromRows(tape, []float64{1, 1}))
	assert.Equal(t, 7.0, output.Item())

	model.Backward(output)
	assert.Equal(t, []float64{3, 3}, second.Weight().Grad().Data())
	assert.Equal(t, 1.0, second.Bias().Grad().Item())
	assert.Equal(t, []float64{1, 1, 1, 1}, first.Weight().Grad().Data())

	model.ResetGrad()
	for _, p := range model.Parameters() {
		assert.True(t, tensor.Zeros(p.Tensor().Shape()).Equal(p.Grad()), "%s not reset", p.Name())
	}
}

// TestBackward_SeedsOne tests the default Backward on a scalar loss.
func TestBackward_SeedsOne(t *testing.T) {
	tape := autodiff.NewTape()
	x := autodiff.Scalar(3, tape).WithGrad()
	loss := x.Pow(2)

	nn.Backward(loss)
	assert.Equal(t, 1.0, loss.Grad().Item())
	assert.Equal(t, 6.0, x.Grad().Item())
}

// TestMSELoss tests mean squared error.
func TestMSELoss(t *testing.T) {
	tape := autodiff.NewTape()
	mse := nn.NewMSELoss()

	predictions := fromRows(tape, []float64{1, 2}, []float64{3, 4})
	targets := fromRows(tape, []float64{1, 0}, []float64{3, 0})
	loss := mse.Forward(predictions, targets)
	assert.Equal(t, tensor.Shape{1, 1}, loss.Shape())
	assert.Equal(t, 5.0, loss.Item())

	require.Panics(t, func() { mse.Forward(predictions, fromRows(tape, []float64{1, 2})) })
}

// TestXavier tests the initialization bound and reproducibility.
func TestXavier(t *testing.T) {
	shape := tensor.Shape{4, 2}
	bound := math.Sqrt(6.0 / 6.0)

	w := nn.Xavier(rand.New(rand.NewSource(42)))(shape)
	assert.Equal(t, shape, w.Shape())
	for _, v := range w.Data() {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}

	again := nn.Xavier(rand.New(rand.NewSource(42)))(shape)
	assert.True(t, w.Equal(again))
}

// TestLearnLinearEquation fits y = m*x + b with a single Linear(1, 1) layer.
func TestLearnLinearEquation(t *testing.T) {
	const (
		m            = -3.0
		b            = 13.0
		learningRate = 0.01
		numEpochs    = 1000
	)

	tape := autodiff.NewTape()
	layer := nn.NewLinear(1, 1, tape)
	model := nn.NewModel(layer)
	params := model.Parameters()
	mark := tape.Mark()

	for epoch := 0; epoch < numEpochs; epoch++ {
		for x := 1.0; x <= 9; x++ {
			model.ResetGrad()
			input := autodiff.Scalar(x, tape)
			target := autodiff.Scalar(m*x+b, tape)

			prediction := model.Forward(input)
			loss := prediction.Sub(target).Pow(2)
			model.Backward(loss)

			// param -= lr * grad
			for _, p := range params {
				p.Tensor().Value().SubInPlace(tensor.Scale(learningRate, p.Grad()))
			}
			tape.Release(mark)
		}
	}

	assert.Equal(t, mark, tape.Len())
	assert.InEpsilon(t, m, layer.Weight().Tensor().Item(), 1e-5)
	assert.InEpsilon(t, b, layer.Bias().Tensor().Item(), 1e-5)
}

// TestModel_StateDict tests exporting and restoring parameter values.
func TestModel_StateDict(t *testing.T) {
	tape := autodiff.NewTape()
	rng := rand.New(rand.NewSource(3))
	source := nn.NewModel(
		nn.NewLinear(2, 3, tape, nn.WithWeightInit(nn.Xavier(rng))),
		nn.NewReLU(),
		nn.NewLinear(3, 1, tape, nn.WithWeightInit(nn.Xavier(rng))),
	)
	stateDict := source.StateDict()
	require.Len(t, stateDict, 4)
	assert.Contains(t, stateDict, "0.weight")
	assert.Contains(t, stateDict, "2.bias")

	// StateDict returns copies.
	stateDict["0.bias"].Set(0, 0, 100)
	assert.Equal(t, 1.0, source.Parameters()[1].Tensor().At(0, 0))

	target := nn.NewModel(nn.NewLinear(2, 3, tape), nn.NewReLU(), nn.NewLinear(3, 1, tape))
	require.NoError(t, target.LoadStateDict(source.StateDict()))
	for i, p := range target.Parameters() {
		assert.True(t, source.Parameters()[i].Tensor().Value().Equal(p.Tensor().Value()), p.Name())
	}
}

// TestModel_LoadStateDictErrors tests missing and mis-shaped parameters.
func TestModel_LoadStateDictErrors(t *testing.T) {
	tape := autodiff.NewTape()
	model := nn.NewModel(nn.NewLinear(2, 1, tape))

	err := model.LoadStateDict(map[string]*tensor.RawTensor{"0.weight": tensor.Zeros(tensor.Shape{2, 1})})
	require.ErrorContains(t, err, `missing parameter "0.bias"`)

	err = model.LoadStateDict(map[string]*tensor.RawTensor{
		"0.weight": tensor.Zeros(tensor.Shape{2, 1}),
		"0.bias":   tensor.Zeros(tensor.Shape{1, 2}),
	})
	require.ErrorContains(t, err, `"0.bias" has shape`)

	// Nothing was modified by the failed loads.
	assert.Equal(t, []float64{1, 1}, model.Parameters()[0].Tensor().Value().Data())
}

// TestModel_StateDictNested tests that nested models get unique, path-based keys.
func TestModel_StateDictNested(t *testing.T) {
	tape := autodiff.NewTape()
	rng := rand.New(rand.NewSource(5))
	newModel := func() *nn.Model {
		inner := nn.NewModel(
			nn.NewLinear(1, 2, tape, nn.WithWeightInit(nn.Xavier(rng))),
			nn.NewReLU(),
			nn.NewLinear(2, 1, tape, nn.WithWeightInit(nn.Xavier(rng))),
		)
		return nn.NewModel(inner, nn.NewLinear(1, 1, tape))
	}
	source := newModel()

	stateDict := source.StateDict()
	assert.Len(t, stateDict, len(source.Parameters()))
	for _, key := range []string{"0.0.weight", "0.0.bias", "0.2.weight", "0.2.bias", "1.weight", "1.bias"} {
		assert.Contains(t, stateDict, key)
	}
	assert.Equal(t, tensor.Shape{1, 2}, stateDict["0.0.weight"].Shape())
	assert.Equal(t, tensor.Shape{2, 1}, stateDict["0.2.weight"].Shape())

	// A model loads its own state dict, and a fresh one reproduces it.
	require.NoError(t, source.LoadStateDict(stateDict))
	target := newModel()
	require.NoError(t, target.LoadStateDict(stateDict))
	for i, p := range target.Parameters() {
		assert.True(t, source.Parameters()[i].Tensor().Value().Equal(p.Tensor().Value()), p.Name())
	}
}
