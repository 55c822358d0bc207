package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"timecard/timecard"
)

const excelSheetName = "Report"

type ExcelWriter struct{}

func (w *ExcelWriter) Extension() string {
	return "xlsx"
}

func (w *ExcelWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (w *ExcelWriter) Write(out io.Writer, table timecard.Table) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), excelSheetName); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}

	for col, header := range timecard.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(excelSheetName, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, row := range table.All() {
		values := excelValues(row)
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(excelSheetName, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SetColWidth(excelSheetName, "A", "D", 16); err != nil {
		return fmt.Errorf("set excel column width: %w", err)
	}

	if _, err := file.WriteTo(out); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

// excelValues keeps minutes late numeric so the sheet can sum it; blanks stay
// unset.
func excelValues(row timecard.Row) []any {
	record := row.Record()
	values := make([]any, len(record))
	for i, value := range record {
		if value != "" {
			values[i] = value
		}
	}
	if row.MinutesLate != nil {
		values[2] = *row.MinutesLate
	}
	return values
}
