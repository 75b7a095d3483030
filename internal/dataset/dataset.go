// Package dataset holds tabular training data in memory and serves it to
// the trainer in batches.
//
// A Dataset keeps records (inputs) and labels (targets) as two row-aligned
// tables. The first Split fraction of the rows is the training set, the
// rest the test set. Both are served as (samples, labels) pairs of
// [batch_size, features] arrays; rows that do not fill a whole batch are
// dropped.
package dataset

import (
	"iter"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/deepthought-ml/deepthought/internal/array"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// ErrNoData is returned when a dataset is built without rows or columns.
var ErrNoData = errors.New("dataset has no data")

// BatchSize is the number of rows in one batch.
type BatchSize struct {
	n int // 0 means every row of the split
}

var (
	// All serves the whole split as one batch (batch gradient descent).
	All = BatchSize{}
	// One serves one row per batch (stochastic gradient descent).
	One = BatchSize{n: 1}
)

// Number serves n rows per batch (mini-batch gradient descent).
func Number(n int) BatchSize {
	return BatchSize{n: n}
}

// of resolves the batch size against a split of rows rows.
func (b BatchSize) of(rows int) int {
	if b.n == 0 {
		return rows
	}
	return b.n
}

// String returns "all" or the row count.
func (b BatchSize) String() string {
	if b.n == 0 {
		return "all"
	}
	return strconv.Itoa(b.n)
}

// Config holds configuration for a Dataset.
type Config struct {
	Split     float64   // Fraction of rows used for training, in [0, 1]
	Batch     BatchSize // Rows per batch (default: All)
	Normalize bool      // Divide every column by its mean
}

// Dataset is an in-memory table of records and labels.
type Dataset[F dual.Float] struct {
	split  float64
	batch  BatchSize
	rows   int
	recs   table
	labels table
}

// table is a row-major float64 matrix plus the column means it was divided
// by (all ones when not normalized).
type table struct {
	data  []float64
	cols  int
	means []float64
}

func (t *table) row(i int) []float64 {
	return t.data[i*t.cols : (i+1)*t.cols]
}

// New creates a dataset whose records and labels are normalized by their
// column means.
//
// Parameters:
//   - records: Input rows, all of the same length
//   - labels: Target rows, one per record
//   - split: Fraction of rows used for training
//   - batch: Rows per batch
func New[F dual.Float](records, labels [][]F, split float64, batch BatchSize) (*Dataset[F], error) {
	return FromConfig(records, labels, Config{Split: split, Batch: batch, Normalize: true})
}

// Raw creates a dataset that serves records and labels unchanged.
func Raw[F dual.Float](records, labels [][]F, split float64, batch BatchSize) (*Dataset[F], error) {
	return FromConfig(records, labels, Config{Split: split, Batch: batch})
}

// FromConfig creates a dataset from cfg.
func FromConfig[F dual.Float](records, labels [][]F, cfg Config) (*Dataset[F], error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}
	if len(records) != len(labels) {
		return nil, errors.Errorf("got %d records but %d labels", len(records), len(labels))
	}
	if cfg.Split < 0 || cfg.Split > 1 || math.IsNaN(cfg.Split) {
		return nil, errors.Errorf("train/test split %v is outside [0, 1]", cfg.Split)
	}
	if cfg.Batch.n < 0 {
		return nil, errors.Errorf("batch size %d is negative", cfg.Batch.n)
	}

	recs, err := newTable(records, cfg.Normalize)
	if err != nil {
		return nil, errors.Wrap(err, "records")
	}
	labs, err := newTable(labels, cfg.Normalize)
	if err != nil {
		return nil, errors.Wrap(err, "labels")
	}

	return &Dataset[F]{
		split:  cfg.Split,
		batch:  cfg.Batch,
		rows:   len(records),
		recs:   recs,
		labels: labs,
	}, nil
}

func newTable[F dual.Float](rows [][]F, normalize bool) (table, error) {
	cols := len(rows[0])
	if cols == 0 {
		return table{}, ErrNoData
	}
	t := table{
		data:  make([]float64, 0, len(rows)*cols),
		cols:  cols,
		means: make([]float64, cols),
	}
	for i, r := range rows {
		if len(r) != cols {
			return table{}, errors.Errorf("row %d has %d columns, expected %d", i, len(r), cols)
		}
		for _, v := range r {
			t.data = append(t.data, float64(v))
		}
	}

	if !normalize {
		for c := range t.means {
			t.means[c] = 1
		}
		return t, nil
	}

	column := make([]float64, len(rows))
	for c := 0; c < cols; c++ {
		for i := range rows {
			column[i] = t.data[i*cols+c]
		}
		// A zero mean would divide by zero; such columns stay unscaled.
		if m := stat.Mean(column, nil); m != 0 {
			t.means[c] = m
		} else {
			t.means[c] = 1
		}
	}
	for i := range rows {
		floats.Div(t.row(i), t.means)
	}
	return t, nil
}

// Length returns the number of rows.
func (d *Dataset[F]) Length() int {
	return d.rows
}

// NumTrain returns the number of training rows, floor(rows * split).
func (d *Dataset[F]) NumTrain() int {
	return int(float64(d.rows) * d.split)
}

// NumTest returns the number of test rows.
func (d *Dataset[F]) NumTest() int {
	return d.rows - d.NumTrain()
}

// RecordColumns returns the number of record columns.
func (d *Dataset[F]) RecordColumns() int {
	return d.recs.cols
}

// LabelColumns returns the number of label columns.
func (d *Dataset[F]) LabelColumns() int {
	return d.labels.cols
}

// RecordMeans returns the column means records were divided by.
func (d *Dataset[F]) RecordMeans() []F {
	return convert[F](d.recs.means)
}

// LabelMeans returns the column means labels were divided by.
func (d *Dataset[F]) LabelMeans() []F {
	return convert[F](d.labels.means)
}

// DenormalizeRecord maps a normalized record row back to its original
// scale.
func (d *Dataset[F]) DenormalizeRecord(row []F) ([]F, error) {
	return denormalize(row, d.recs.means)
}

// DenormalizeLabel maps a normalized label row, such as a network output,
// back to its original scale.
func (d *Dataset[F]) DenormalizeLabel(row []F) ([]F, error) {
	return denormalize(row, d.labels.means)
}

func denormalize[F dual.Float](row []F, means []float64) ([]F, error) {
	if len(row) != len(means) {
		return nil, &array.ShapeMismatchError{Expected: []int{len(means)}, Found: []int{len(row)}}
	}
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = float64(v)
	}
	floats.Mul(out, means)
	return convert[F](out), nil
}

// TrainBatches returns an iterator over the training rows in batches.
// The caller owns, and should release, every yielded array.
func (d *Dataset[F]) TrainBatches() iter.Seq2[*array.Array2[F], *array.Array2[F]] {
	return d.batches(0, d.NumTrain())
}

// TestBatches returns an iterator over the test rows in batches. The
// caller owns, and should release, every yielded array.
func (d *Dataset[F]) TestBatches() iter.Seq2[*array.Array2[F], *array.Array2[F]] {
	return d.batches(d.NumTrain(), d.rows)
}

// batches serves rows [from, to). Iteration ends early if a batch cannot
// be allocated.
func (d *Dataset[F]) batches(from, to int) iter.Seq2[*array.Array2[F], *array.Array2[F]] {
	return func(yield func(*array.Array2[F], *array.Array2[F]) bool) {
		size := d.batch.of(to - from)
		if size == 0 {
			return
		}
		for start := from; start+size <= to; start += size {
			x, err := rowsOf[F](&d.recs, start, size)
			if err != nil {
				return
			}
			y, err := rowsOf[F](&d.labels, start, size)
			if err != nil {
				x.Release()
				return
			}
			if !yield(x, y) {
				return
			}
		}
	}
}

// NumBatches returns the number of batches TrainBatches yields.
func (d *Dataset[F]) NumBatches() int {
	n := d.NumTrain()
	size := d.batch.of(n)
	if size == 0 {
		return 0
	}
	return n / size
}

// rowsOf copies rows [start, start+n) of t into a new [n, cols] array.
func rowsOf[F dual.Float](t *table, start, n int) (*array.Array2[F], error) {
	return array.FromSlice(convert[F](t.data[start*t.cols:(start+n)*t.cols]), array.Ix2{n, t.cols})
}

func convert[F dual.Float](xs []float64) []F {
	out := make([]F, len(xs))
	for i, x := range xs {
		out[i] = F(x)
	}
	return out
}
