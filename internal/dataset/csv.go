package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/deepthought-ml/deepthought/internal/dual"
)

// Table is a numeric CSV file split into record and label columns.
type Table[F dual.Float] struct {
	RecordColumns []string // Header names of the record columns, in file order
	LabelColumns  []string // Header names of the label columns, in the requested order
	Records       [][]F
	Labels        [][]F
}

// LoadCSV reads a CSV file with a header row and numeric fields.
//
// CSV Format:
//
//	age,anaemia,...,death_event
//	75,0,...,1
//
// Parameters:
//   - r: CSV source
//   - labelColumns: Header names of the columns used as labels; every
//     other column becomes a record column
//
// Returns the parsed table, or an error naming the offending row and
// column.
func LoadCSV[F dual.Float](r io.Reader, labelColumns ...string) (*Table[F], error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("CSV file is empty or missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}
	if len(labelColumns) == 0 {
		return nil, errors.New("no label columns requested")
	}

	labelIdx := make([]int, len(labelColumns))
	for i, name := range labelColumns {
		labelIdx[i] = slices.Index(header, name)
		if labelIdx[i] < 0 {
			return nil, errors.Errorf("label column %q not found in header", name)
		}
	}
	var recordIdx []int
	t := &Table[F]{LabelColumns: slices.Clone(labelColumns)}
	for i, name := range header {
		if !slices.Contains(labelIdx, i) {
			recordIdx = append(recordIdx, i)
			t.RecordColumns = append(t.RecordColumns, name)
		}
	}

	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV row %d", row)
		}

		rec, err := parseFields[F](fields, recordIdx, header, row)
		if err != nil {
			return nil, err
		}
		lab, err := parseFields[F](fields, labelIdx, header, row)
		if err != nil {
			return nil, err
		}
		t.Records = append(t.Records, rec)
		t.Labels = append(t.Labels, lab)
	}

	if len(t.Records) == 0 {
		return nil, ErrNoData
	}
	return t, nil
}

// LoadCSVFile is LoadCSV on the named file.
func LoadCSVFile[F dual.Float](path string, labelColumns ...string) (*Table[F], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return LoadCSV[F](file, labelColumns...)
}

func parseFields[F dual.Float](fields []string, idx []int, header []string, row int) ([]F, error) {
	out := make([]F, len(idx))
	for i, c := range idx {
		v, err := strconv.ParseFloat(fields[c], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value at row %d, column %q", row, header[c])
		}
		out[i] = F(v)
	}
	return out, nil
}

// Dataset creates a dataset from the table with cfg.
func (t *Table[F]) Dataset(cfg Config) (*Dataset[F], error) {
	return FromConfig(t.Records, t.Labels, cfg)
}
