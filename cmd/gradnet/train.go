package main

import (
	"github.com/born-ml/gradnet/autodiff"
	"github.com/born-ml/gradnet/internal/serialization"
	"github.com/born-ml/gradnet/nn"
	"github.com/born-ml/gradnet/optim"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// trainConfig holds the hyperparameters of a training run.
type trainConfig struct {
	Epochs   int
	LR       float64
	Progress bool
	Load     string // .grad file to initialize parameters from
	Save     string // .grad file to write parameters to after training
}

// train fits model to data with per-sample SGD steps and returns the mean
// loss of the last epoch.
//
// Every step records its graph after mark and releases it before the next
// sample, so the tape only holds the parameters between steps.
func train(model *nn.Model, tape *autodiff.Tape, data []TestData, config trainConfig) (float64, error) {
	if config.Load != "" {
		stateDict, header, err := serialization.LoadFile(config.Load)
		if err != nil {
			return 0, err
		}
		if err := model.LoadStateDict(stateDict); err != nil {
			return 0, errors.WithMessagef(err, "loading %q", config.Load)
		}
		klog.V(1).Infof("loaded %d tensors from %q (created %s)", len(stateDict), config.Load, header.CreatedAt)
	}

	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: config.LR})
	mse := nn.NewMSELoss()

	var bar *progressbar.ProgressBar
	if config.Progress {
		bar = progressbar.NewOptions(config.Epochs,
			progressbar.OptionSetDescription("Training"),
			progressbar.OptionUseANSICodes(true),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("epochs"),
			progressbar.OptionSetTheme(progressbar.ThemeUnicode),
		)
	}

	mark := tape.Mark()
	var epochLoss float64
	for epoch := range config.Epochs {
		epochLoss = 0
		for _, sample := range data {
			model.ResetGrad()
			input := autodiff.New(sample.Input, tape)
			target := autodiff.New(sample.Output, tape)

			loss := mse.Forward(model.Forward(input), target)
			epochLoss += loss.Item()
			model.Backward(loss)
			sgd.Step()
			tape.Release(mark)
		}
		epochLoss /= float64(len(data))

		if klog.V(1).Enabled() && (epoch+1)%100 == 0 {
			klog.Infof("epoch %d: loss=%g", epoch+1, epochLoss)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if config.Save != "" {
		header := &serialization.Header{
			Version:   version,
			ModelType: "Model",
			Checkpoint: &serialization.CheckpointMeta{
				Epoch:         config.Epochs,
				Loss:          epochLoss,
				OptimizerType: "SGD",
				LR:            config.LR,
			},
		}
		if err := serialization.SaveFile(config.Save, model.StateDict(), header); err != nil {
			return 0, err
		}
	}
	return epochLoss, nil
}

// predict runs model on input without recording gradients.
func predict(model *nn.Model, tape *autodiff.Tape, sample TestData) float64 {
	tape.StopRecording()
	defer tape.StartRecording()

	mark := tape.Mark()
	defer tape.Release(mark)
	return model.Forward(autodiff.New(sample.Input, tape)).Item()
}
