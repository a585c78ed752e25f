package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yshekhar/cliquecoloc/pkg/model"
)

// CSVWriter writes a dataset back in the feature,idx,x,y column order, one
// row per instance, sorted the way the caller provides them (the pipeline
// always supplies total-order input).
type CSVWriter struct{}

// NewCSVWriter creates a CSV writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes records as CSV to writer.
func (w *CSVWriter) Write(records []model.InstanceRecord, out io.Writer) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"feature", "idx", "x", "y"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Feature,
			strconv.Itoa(r.Idx),
			strconv.FormatFloat(r.X, 'g', -1, 64),
			strconv.FormatFloat(r.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteToFile writes records as CSV to a file.
func (w *CSVWriter) WriteToFile(records []model.InstanceRecord, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(records, file)
}
