// SPDX-License-Identifier: MIT

package artifact

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/q4/matrix"
)

const (
	opReadCSV  = "ReadCSV"
	opWriteCSV = "WriteCSV"
)

// Table is a numeric CSV table.
type Table struct {
	Header []string   // numeric column names, in input order
	Data   *mat.Dense // rows×len(Header)
	Labels []string   // one per row when a label column was requested, else nil
}

// ReadOption configures ReadCSV.
type ReadOption func(*readOptions)

type readOptions struct {
	labelColumn string
}

// WithLabelColumn names a column to keep as string labels instead of data.
func WithLabelColumn(name string) ReadOption {
	return func(o *readOptions) { o.labelColumn = name }
}

// ReadCSV parses a header-first CSV table.
// Cells are trimmed and parsed with strconv.ParseFloat; NaN and Inf cells are
// rejected so the result satisfies matrix.ValidateInput.
//
// Errors: ErrInvalidInput for malformed CSV, a missing label column, no data
// rows, no numeric columns, or a non-numeric or non-finite cell.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Table, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, artifactErrorf(opReadCSV, fmt.Errorf("%w: %w", matrix.ErrInvalidInput, err))
	}
	if len(records) < 2 {
		return nil, artifactErrorf(opReadCSV, matrix.ErrEmpty)
	}

	header := records[0]
	labelIdx := -1
	if o.labelColumn != "" {
		for j, name := range header {
			if strings.TrimSpace(name) == o.labelColumn {
				labelIdx = j
				break
			}
		}
		if labelIdx < 0 {
			return nil, artifactErrorf(opReadCSV,
				fmt.Errorf("%w: label column %q not found", matrix.ErrInvalidInput, o.labelColumn))
		}
	}

	t := &Table{}
	for j, name := range header {
		if j != labelIdx {
			t.Header = append(t.Header, strings.TrimSpace(name))
		}
	}
	if len(t.Header) == 0 {
		return nil, artifactErrorf(opReadCSV, matrix.ErrEmpty)
	}

	rows := records[1:]
	data := make([]float64, 0, len(rows)*len(t.Header))
	for i, rec := range rows {
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if j == labelIdx {
				t.Labels = append(t.Labels, cell)
				continue
			}
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil {
				return nil, artifactErrorf(opReadCSV,
					fmt.Errorf("%w: row %d column %q: %q", matrix.ErrInvalidInput, i+1, header[j], cell))
			}
			data = append(data, v)
		}
	}
	t.Data = mat.NewDense(len(rows), len(t.Header), data)
	if err = matrix.ValidateFinite(t.Data); err != nil {
		return nil, artifactErrorf(opReadCSV, err)
	}

	return t, nil
}

// ReadCSVFile opens path and calls ReadCSV.
func ReadCSVFile(path string, opts ...ReadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, artifactErrorf(opReadCSV, fmt.Errorf("%w: %w", matrix.ErrInvalidInput, err))
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}

// WriteCSV writes header then the rows of M, formatting values with the
// shortest representation that round-trips. A nil header is replaced by
// x0..x{d-1}.
func WriteCSV(w io.Writer, header []string, M mat.Matrix) error {
	if err := matrix.ValidateNotNil(M); err != nil {
		return artifactErrorf(opWriteCSV, err)
	}
	n, d := M.Dims()
	if header == nil {
		header = DefaultHeader(d)
	}
	if len(header) != d {
		return artifactErrorf(opWriteCSV,
			fmt.Errorf("%w: header has %d names for %d columns", matrix.ErrDimensionMismatch, len(header), d))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return artifactErrorf(opWriteCSV, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}
	rec := make([]string, d)
	for i := 0; i < n; i++ {
		for j := range rec {
			rec[j] = strconv.FormatFloat(M.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return artifactErrorf(opWriteCSV, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return artifactErrorf(opWriteCSV, fmt.Errorf("%w: %w", matrix.ErrSerialization, err))
	}

	return nil
}

// DefaultHeader returns x0..x{d-1}.
func DefaultHeader(d int) []string {
	h := make([]string, d)
	for j := range h {
		h[j] = "x" + strconv.Itoa(j)
	}

	return h
}
