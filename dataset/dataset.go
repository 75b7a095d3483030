// Copyright 2025 The deepthought Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset holds tabular training data in memory and serves it in
// batches.
//
// # Basic Usage
//
//	tbl, err := dataset.LoadCSVFile[float64]("heart_failure.csv", "death_event")
//	if err != nil {
//	    log.Fatalf("load: %v", err)
//	}
//	data, err := tbl.Dataset(dataset.Config{
//	    Split:     0.8,
//	    Batch:     dataset.Number(2),
//	    Normalize: true,
//	})
//
//	for x, y := range data.TrainBatches() {
//	    // x: [2, 12], y: [2, 1]
//	}
package dataset

import (
	"io"

	"github.com/deepthought-ml/deepthought/internal/dataset"
	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Dataset is an in-memory table of records and labels.
type Dataset[F dual.Float] = dataset.Dataset[F]

// Config holds configuration for a Dataset.
type Config = dataset.Config

// BatchSize is the number of rows in one batch.
type BatchSize = dataset.BatchSize

// Batch sizes.
var (
	All = dataset.All
	One = dataset.One
)

// ErrNoData is returned when a dataset is built without rows or columns.
var ErrNoData = dataset.ErrNoData

// Number serves n rows per batch.
func Number(n int) BatchSize {
	return dataset.Number(n)
}

// New creates a dataset normalized by its column means.
func New[F dual.Float](records, labels [][]F, split float64, batch BatchSize) (*Dataset[F], error) {
	return dataset.New(records, labels, split, batch)
}

// Raw creates a dataset that serves records and labels unchanged.
func Raw[F dual.Float](records, labels [][]F, split float64, batch BatchSize) (*Dataset[F], error) {
	return dataset.Raw(records, labels, split, batch)
}

// FromConfig creates a dataset from cfg.
func FromConfig[F dual.Float](records, labels [][]F, cfg Config) (*Dataset[F], error) {
	return dataset.FromConfig(records, labels, cfg)
}

// Table is a numeric CSV file split into record and label columns.
type Table[F dual.Float] = dataset.Table[F]

// LoadCSV reads a headered numeric CSV; labelColumns name the label columns.
func LoadCSV[F dual.Float](r io.Reader, labelColumns ...string) (*Table[F], error) {
	return dataset.LoadCSV[F](r, labelColumns...)
}

// LoadCSVFile is LoadCSV on the named file.
func LoadCSVFile[F dual.Float](path string, labelColumns ...string) (*Table[F], error) {
	return dataset.LoadCSVFile[F](path, labelColumns...)
}
