// Package main provides the gradnet demo CLI.
//
// It trains small models with the gradnet autodiff engine:
//
//	gradnet -task=linear -epochs=1000 -lr=0.01
//	gradnet -task=xor -epochs=2000 -lr=0.05 -progress -save=xor.grad
//	gradnet -task=xor -epochs=0 -load=xor.grad
//	gradnet version
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/born-ml/gradnet/autodiff"
	"github.com/born-ml/gradnet/nn"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

// Coefficients of the line learned by the linear task.
const (
	lineSlope     = -3.0
	lineIntercept = 13.0
)

var (
	flagTask     = flag.String("task", "linear", "Task to train: \"linear\" fits y = -3x + 13, \"xor\" learns the XOR table.")
	flagEpochs   = flag.Int("epochs", 1000, "Number of passes over the training data.")
	flagLR       = flag.Float64("lr", 0.01, "SGD learning rate.")
	flagProgress = flag.Bool("progress", false, "Display a progress bar while training.")
	flagSeed     = flag.Int64("seed", 42, "Seed for random weight initialization (xor task).")
	flagLoad     = flag.String("load", "", "Initialize the model from this .grad file.")
	flagSave     = flag.String("save", "", "Save the trained model to this .grad file.")
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("gradnet %s\n", version)
		return
	}

	klog.InitFlags(nil)
	flag.Parse()

	config := trainConfig{
		Epochs:   *flagEpochs,
		LR:       *flagLR,
		Progress: *flagProgress,
		Load:     *flagLoad,
		Save:     *flagSave,
	}
	err := exceptions.TryCatch[error](func() {
		if err := run(*flagTask, config, *flagSeed); err != nil {
			panic(err)
		}
	})
	if err != nil {
		klog.Fatalf("Failed with error: %+v", err)
	}
}

func run(task string, config trainConfig, seed int64) error {
	switch task {
	case "linear":
		w, b, loss, err := runLinear(config)
		if err != nil {
			return err
		}
		fmt.Printf("loss=%g\nweight=%.6f (want %g)\nbias=%.6f (want %g)\n", loss, w, lineSlope, b, lineIntercept)
	case "xor":
		predictions, loss, err := runXOR(config, seed)
		if err != nil {
			return err
		}
		fmt.Printf("loss=%g\n", loss)
		for i, sample := range xorData() {
			fmt.Printf("%v -> %.4f (want %g)\n", sample.Input.Data(), predictions[i], sample.Output.Item())
		}
	default:
		return errors.Errorf("unknown task %q, expected \"linear\" or \"xor\"", task)
	}
	return nil
}

// runLinear trains Linear(1, 1) on the line and returns the learned weight and bias.
func runLinear(config trainConfig) (weight, bias, loss float64, err error) {
	tape := autodiff.NewTape()
	layer := nn.NewLinear(1, 1, tape)
	model := nn.NewModel(layer)

	loss, err = train(model, tape, linearData(lineSlope, lineIntercept), config)
	if err != nil {
		return 0, 0, 0, err
	}
	return layer.Weight().Tensor().Item(), layer.Bias().Tensor().Item(), loss, nil
}

// runXOR trains a 2-4-1 ReLU network on XOR and returns its predictions.
func runXOR(config trainConfig, seed int64) ([]float64, float64, error) {
	rng := rand.New(rand.NewSource(seed))
	tape := autodiff.NewTape()
	model := nn.NewModel(
		nn.NewLinear(2, 4, tape, nn.WithWeightInit(nn.Xavier(rng)), nn.WithBiasInit(nn.Zeros())),
		nn.NewReLU(),
		nn.NewLinear(4, 1, tape, nn.WithWeightInit(nn.Xavier(rng)), nn.WithBiasInit(nn.Zeros())),
	)

	data := xorData()
	loss, err := train(model, tape, data, config)
	if err != nil {
		return nil, 0, err
	}
	predictions := make([]float64, len(data))
	for i, sample := range data {
		predictions[i] = predict(model, tape, sample)
	}
	return predictions, loss, nil
}
