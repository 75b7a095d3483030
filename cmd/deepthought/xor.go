package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"

	"github.com/deepthought-ml/deepthought/array"
	"github.com/deepthought-ml/deepthought/dataset"
	"github.com/deepthought-ml/deepthought/nn"
	"github.com/deepthought-ml/deepthought/optim"
)

func runXOR(args []string) {
	fs := flag.NewFlagSet("xor", flag.ExitOnError)
	epochs := fs.Int("epochs", 11000, "Number of training epochs")
	lr := fs.Float64("lr", 0.3, "Learning rate for SGD")
	momentum := fs.Float64("momentum", 0, "SGD momentum")
	seed := fs.Uint64("seed", 1, "Seed for weight initialization")
	logEvery := fs.Int("log-every", 1000, "Print the loss every N epochs")
	debugAlloc := fs.Bool("debug-alloc", false, "Log every array allocation to stderr")
	_ = fs.Parse(args)

	if *debugAlloc {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		dbg := array.NewDebugAllocator(logger)
		prev := array.SetAllocationHook(dbg)
		defer func() {
			array.SetAllocationHook(prev)
			fmt.Printf("Allocations: %d, frees: %d, live bytes: %d\n", dbg.Allocs(), dbg.Frees(), dbg.LiveBytes())
		}()
	}

	records := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	labels := [][]float64{{0}, {1}, {1}, {0}}
	data, err := dataset.Raw(records, labels, 1, dataset.One)
	if err != nil {
		log.Fatalf("Failed to build dataset: %v", err)
	}

	src := rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)
	sigmoid := nn.NewSigmoid[float64]()
	net, err := nn.NewMLP([]int{2, 3, 3, 1}, sigmoid, sigmoid, src)
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}

	fmt.Printf("Network: 2-3-3-1 sigmoid, %d parameters\n", net.NumParameters())
	fmt.Printf("Optimizer: SGD (lr=%.3f, momentum=%.3f)\n", *lr, *momentum)

	sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: *lr, Momentum: *momentum})
	final, err := nn.Train(net, sgd, data, nn.TrainConfig[float64]{
		Epochs:   *epochs,
		LogEvery: *logEvery,
		OnEpoch: func(epoch int, loss float64) {
			fmt.Printf("Epoch %5d: mean loss %.6f\n", epoch, loss)
		},
	})
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	fmt.Printf("Final mean loss: %.6f\n\n", final)

	evaluate(net, records, labels)
}

// evaluate prints the rounded prediction for every row next to its label.
func evaluate(net *nn.Network[float64], records, labels [][]float64) {
	total := 0.0
	for i, r := range records {
		x, err := array.FromSlice(r, array.Ix2{1, len(r)})
		if err != nil {
			log.Fatalf("Failed to build input: %v", err)
		}
		pred, err := net.Predict(x)
		x.Release()
		if err != nil {
			log.Fatalf("Prediction failed: %v", err)
		}
		out, err := pred.Slice()
		pred.Release()
		if err != nil {
			log.Fatalf("Prediction failed: %v", err)
		}

		for j, v := range out {
			d := v - labels[i][j]
			total += d * d
		}
		fmt.Printf("%v -> %.4f (rounded %.0f) == %v\n", r, out[0], math.Round(out[0]), labels[i])
	}
	fmt.Printf("Mean loss over %d samples: %.4f\n", len(records), total/float64(len(records)))
}
