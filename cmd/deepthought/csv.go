package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/deepthought-ml/deepthought/dataset"
	"github.com/deepthought-ml/deepthought/nn"
	"github.com/deepthought-ml/deepthought/optim"
)

func runCSV(args []string) {
	fs := flag.NewFlagSet("csv", flag.ExitOnError)
	path := fs.String("file", "", "Path to a CSV file with a header row (required)")
	labelList := fs.String("labels", "", "Comma separated label column names (required)")
	hidden := fs.String("hidden", "20,10,5", "Comma separated hidden layer widths")
	split := fs.Float64("split", 0.8, "Fraction of rows used for training")
	batch := fs.Int("batch", 2, "Batch size (0 = all training rows)")
	epochs := fs.Int("epochs", 100, "Number of training epochs")
	lr := fs.Float64("lr", 0.01, "Learning rate for SGD")
	momentum := fs.Float64("momentum", 0.1, "SGD momentum")
	seed := fs.Uint64("seed", 1, "Seed for weight initialization")
	logEvery := fs.Int("log-every", 10, "Print the loss every N epochs")
	_ = fs.Parse(args)

	if *path == "" || *labelList == "" {
		fs.Usage()
		log.Fatalf("-file and -labels are required")
	}

	tbl, err := dataset.LoadCSVFile[float64](*path, strings.Split(*labelList, ",")...)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *path, err)
	}
	bs := dataset.All
	if *batch > 0 {
		bs = dataset.Number(*batch)
	}
	data, err := tbl.Dataset(dataset.Config{Split: *split, Batch: bs, Normalize: true})
	if err != nil {
		log.Fatalf("Failed to build dataset: %v", err)
	}
	fmt.Printf("Loaded %d rows: %d record columns, %d label columns\n",
		data.Length(), data.RecordColumns(), data.LabelColumns())
	fmt.Printf("   Train: %d rows, Test: %d rows, batch size %s\n", data.NumTrain(), data.NumTest(), bs)

	widths := []int{data.RecordColumns()}
	for _, s := range strings.Split(*hidden, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		w, err := strconv.Atoi(s)
		if err != nil {
			log.Fatalf("Invalid hidden width %q: %v", s, err)
		}
		widths = append(widths, w)
	}
	widths = append(widths, data.LabelColumns())

	src := rand.NewPCG(*seed, *seed+1)
	net, err := nn.NewMLP(widths, nn.NewReLU[float64](), nn.NewSigmoid[float64](), src)
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}
	fmt.Printf("Network: %v, %d parameters\n", widths, net.NumParameters())

	sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: *lr, Momentum: *momentum})
	_, err = nn.Train(net, sgd, data, nn.TrainConfig[float64]{
		Epochs:   *epochs,
		LogEvery: *logEvery,
		OnEpoch: func(epoch int, loss float64) {
			fmt.Printf("Epoch %4d: mean loss %.6f\n", epoch, loss)
		},
	})
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	testCSV(net, data)
}

// testCSV prints denormalized predictions for the test split.
func testCSV(net *nn.Network[float64], data *dataset.Dataset[float64]) {
	mse := nn.NewMSE[float64]()
	total := 0.0
	n := 0
	for x, y := range data.TestBatches() {
		out, err := net.ForwardReal(x)
		if err != nil {
			log.Fatalf("Forward failed: %v", err)
		}
		loss, err := mse.Loss(out, y)
		if err != nil {
			log.Fatalf("Loss failed: %v", err)
		}
		total += loss.Val()
		n++

		pred, err := net.Predict(x)
		if err != nil {
			log.Fatalf("Prediction failed: %v", err)
		}
		rows := x.Shape()[0]
		p, _ := pred.Slice()
		l, _ := y.Slice()
		cols := data.LabelColumns()
		for r := 0; r < rows; r++ {
			got, _ := data.DenormalizeLabel(p[r*cols : (r+1)*cols])
			want, _ := data.DenormalizeLabel(l[r*cols : (r+1)*cols])
			fmt.Printf("%.3f should be %.3f\n", got, want)
		}

		out.Release()
		pred.Release()
		x.Release()
		y.Release()
	}
	if n == 0 {
		fmt.Println("No test batches")
		return
	}
	fmt.Printf("Mean loss over %d test batches: %.4f\n", n, total/float64(n))
}
