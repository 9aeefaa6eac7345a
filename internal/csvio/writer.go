package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pfrederiksen/euromillions-csv/internal/draw"
)

// Writer writes draws as CSV rows
type Writer struct {
	w    *csv.Writer
	rows int
}

// NewWriter creates a Writer on w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WriteHeader writes the column names
func (w *Writer) WriteHeader() error {
	if err := w.w.Write(draw.Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// Write writes one draw
func (w *Writer) Write(d draw.Draw) error {
	if err := w.w.Write(d.Row()); err != nil {
		return fmt.Errorf("writing row for %s: %w", d.Date, err)
	}
	w.rows++
	return nil
}

// Flush writes any buffered data and reports the first write error
func (w *Writer) Flush() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Rows returns the number of draw rows written, header excluded
func (w *Writer) Rows() int {
	return w.rows
}
