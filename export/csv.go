// Package export renders a snapshot's entity list for interchange: CSV and
// JSON with the exact column set Text, Start, End, Label, and highlighted
// HTML for visualization.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/siherrmann/annotator/model"
)

// CSVHeader is the exact header row of the CSV export. Column order is part
// of the interchange contract.
var CSVHeader = []string{"Text", "Start", "End", "Label"}

// WriteCSV writes the spans as CSV with the contract header row
func WriteCSV(w io.Writer, spans []model.Span) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, span := range spans {
		record := []string{
			span.Text,
			strconv.Itoa(span.Start),
			strconv.Itoa(span.End),
			span.Label,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a CSV export back into spans. The header row is validated
// against the contract.
func ReadCSV(r io.Reader) ([]model.Span, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) != len(CSVHeader) {
		return nil, fmt.Errorf("unexpected CSV header %v", header)
	}
	for i, column := range CSVHeader {
		if header[i] != column {
			return nil, fmt.Errorf("unexpected CSV header %v", header)
		}
	}

	var spans []model.Span
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		start, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("invalid start offset %q: %w", record[1], err)
		}
		end, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid end offset %q: %w", record[2], err)
		}

		spans = append(spans, model.Span{
			Text:  record[0],
			Start: start,
			End:   end,
			Label: record[3],
		})
	}

	return spans, nil
}
