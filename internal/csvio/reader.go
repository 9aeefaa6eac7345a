package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/euromillions-csv/internal/draw"
)

// ErrHeader is returned when the first row is not the expected header
var ErrHeader = errors.New("unexpected csv header")

// ReadAll reads a CSV written by Writer back into draws
func ReadAll(r io.Reader) ([]draw.Draw, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = draw.Columns

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrHeader)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if strings.Join(header, ",") != strings.Join(draw.Header(), ",") {
		return nil, fmt.Errorf("%w: %v", ErrHeader, header)
	}

	draws := make([]draw.Draw, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(draws)+2, err)
		}

		d, err := draw.FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(draws)+2, err)
		}
		draws = append(draws, d)
	}

	return draws, nil
}
