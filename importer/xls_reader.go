package importer

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
)

// XLSReader reads legacy BIFF .xls workbooks.
type XLSReader struct{}

func (r *XLSReader) Read(path string) (Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xls file %s: %w", path, err)
	}
	defer file.Close()

	workbook, err := xls.OpenReader(file, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("parse xls file %s: %w", path, err)
	}

	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSheets, path)
	}
	sheet := workbook.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSheets, path)
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		values := make([]string, row.LastCol())
		for col := row.FirstCol(); col < row.LastCol(); col++ {
			values[col] = row.Col(col)
		}
		rows = append(rows, values)
	}

	return NewGrid(rows), nil
}
