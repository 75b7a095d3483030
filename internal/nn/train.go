package nn

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Optimizer updates network parameters from the partials of a loss.
// optim.SGD implements it.
type Optimizer[F dual.Float] interface {
	Step(loss dual.Dual[F]) error
}

// TrainingSet yields (samples, labels) batches of shape [batch_size,
// features]. Every yielded array is owned by the consumer, which releases
// it. dataset.Dataset implements it.
type TrainingSet[F dual.Float] interface {
	TrainBatches() iter.Seq2[*array.Array2[F], *array.Array2[F]]
}

// TrainConfig holds configuration for Train.
type TrainConfig[F dual.Float] struct {
	Epochs   int // Number of passes over the training set (default: 1)
	LogEvery int // Call OnEpoch every LogEvery epochs (default: 1)

	// OnEpoch, if set, receives the epoch index and the mean batch loss of
	// that epoch.
	OnEpoch func(epoch int, loss F)
}

// TrainStep runs one optimization step on a batch: forward pass with
// tracked parameters, mean squared error against the labels, and an
// optimizer step along the loss partials.
//
// Parameters:
//   - net: Network to train
//   - opt: Optimizer holding the network's parameters
//   - x: Samples with shape [batch_size, in_features]
//   - y: Labels with shape [batch_size, out_features]
//
// Returns the loss before the update.
func TrainStep[F dual.Float](net *Network[F], opt Optimizer[F], x, y *array.Array2[F]) (F, error) {
	out, err := net.ForwardReal(x)
	if err != nil {
		return 0, errors.Wrap(err, "forward")
	}
	defer out.Release()

	loss, err := NewMSE[F]().Loss(out, y)
	if err != nil {
		return 0, err
	}
	if err := opt.Step(loss); err != nil {
		return 0, errors.Wrap(err, "optimizer step")
	}
	return loss.Val(), nil
}

// Train runs TrainStep over every training batch for cfg.Epochs epochs and
// returns the mean batch loss of the last epoch.
func Train[F dual.Float](net *Network[F], opt Optimizer[F], data TrainingSet[F], cfg TrainConfig[F]) (F, error) {
	if cfg.Epochs <= 0 {
		cfg.Epochs = 1
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1
	}

	var epochLoss F
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		var total F
		batches := 0
		for x, y := range data.TrainBatches() {
			loss, err := TrainStep(net, opt, x, y)
			x.Release()
			y.Release()
			if err != nil {
				return 0, errors.Wrapf(err, "epoch %d batch %d", epoch, batches)
			}
			total += loss
			batches++
		}
		if batches == 0 {
			return 0, errors.New("training set yielded no batches")
		}

		epochLoss = total / F(batches)
		if cfg.OnEpoch != nil && epoch%cfg.LogEvery == 0 {
			cfg.OnEpoch(epoch, epochLoss)
		}
	}
	return epochLoss, nil
}
