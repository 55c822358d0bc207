package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"timecard/timecard"
)

type CSVWriter struct{}

func (w *CSVWriter) Extension() string {
	return "csv"
}

func (w *CSVWriter) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (w *CSVWriter) Write(out io.Writer, table timecard.Table) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(timecard.Columns); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, record := range table.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
