package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteSummariesJSON writes the rows as an indented JSON array of records.
func WriteSummariesJSON(w io.Writer, rows []SummaryRow) error {
	if rows == nil {
		rows = []SummaryRow{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summaries: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing summaries: %w", err)
	}
	return nil
}
