package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/born-ml/linalg/tensor"
	"github.com/pkg/errors"
)

// readMatrix loads a JSON array of rows from path ("-" for stdin).
func readMatrix(path string, stdin io.Reader, dtype tensor.DataType, device tensor.Device) (*tensor.RawTensor, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // G304: path comes from the command line.
		if err != nil {
			return nil, errors.Wrap(err, "open matrix")
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Errorf("%s: empty matrix", path)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("%s: row %d has %d columns, want %d", path, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return tensor.FromFloat64s(data, tensor.Shape{len(rows), cols}, dtype, device)
}

// encodeTensor converts a tensor to nested slices: a matrix becomes rows,
// a vector a flat array, a scalar a number.
func encodeTensor(t *tensor.RawTensor) any {
	if t == nil {
		return nil
	}
	data := t.Float64s()
	shape := t.Shape()
	switch len(shape) {
	case 0:
		return data[0]
	case 1:
		return data
	}

	cols := shape[len(shape)-1]
	rows := make([][]float64, 0, len(data)/cols)
	for i := 0; i < len(data); i += cols {
		rows = append(rows, data[i:i+cols])
	}
	return rows
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode result")
}
