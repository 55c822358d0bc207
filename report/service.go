package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"timecard/importer"
	"timecard/internal/classify"
	"timecard/timecard"
)

var weekdayPrefixes = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var errHeaderShape = errors.New(`expected "<weekday> <month>/<day>"`)

type Result struct {
	CellsScanned int
	HeaderRows   int
	HeaderCells  int
	RowsSkipped  int
	Table        timecard.Table
	Diagnostics  []error
}

// outcome is what one date header cell produced: a row or a reason to skip.
type outcome struct {
	row  timecard.Row
	skip error
}

// Build scans grid for date header rows, pairs each header cell with the cell
// directly below it, and summarizes the rows found. Unparseable cells become
// diagnostics; Build itself never fails.
func Build(grid importer.Grid) *Result {
	result := &Result{CellsScanned: grid.CellCount()}
	rows := make([]timecard.Row, 0, 32)

	for i := 0; i+1 < len(grid); i++ {
		isHeaderRow := false
		for col, cell := range grid[i] {
			if !isDateHeader(cell) {
				continue
			}
			isHeaderRow = true
			result.HeaderCells++

			out := buildRow(i, col, cell, grid.At(i+1, col))
			if out.skip != nil {
				result.RowsSkipped++
				result.Diagnostics = append(result.Diagnostics, out.skip)
				continue
			}
			rows = append(rows, out.row)
		}
		if isHeaderRow {
			result.HeaderRows++
		}
	}

	result.Table = Summarize(rows)
	return result
}

func buildRow(rowIndex, col int, header, entry importer.Cell) outcome {
	date, err := parseHeaderDate(header.String())
	if err != nil {
		return outcome{skip: &HeaderParseError{Row: rowIndex, Column: col, Value: header.String(), Err: err}}
	}

	classified, err := classify.Entry(entry)
	if err != nil {
		return outcome{skip: &EntryParseError{
			Row:    rowIndex + 1,
			Column: col,
			Header: header.String(),
			Value:  entry.String(),
			Err:    err,
		}}
	}

	return outcome{row: timecard.Row{
		Date:        date,
		ClockIn:     classified.ClockIn,
		MinutesLate: classified.MinutesLate,
		Status:      classified.Status,
	}}
}

func isDateHeader(cell importer.Cell) bool {
	if !cell.IsText() {
		return false
	}
	clean := strings.ToLower(strings.TrimSpace(cell.Text))
	for _, prefix := range weekdayPrefixes {
		if strings.HasPrefix(clean, prefix) {
			return true
		}
	}
	return false
}

// parseHeaderDate reads labels such as "Mon 1/15" or "Tuesday 01/16".
func parseHeaderDate(value string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 {
		return time.Time{}, errHeaderShape
	}

	date, err := time.Parse("1/2/2006", fmt.Sprintf("%s/%d", parts[1], timecard.Year))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", parts[1], err)
	}
	return date, nil
}

// LogDiagnostics reports every skipped cell through logger. Positions are
// logged one-based to match what a spreadsheet shows.
func (r *Result) LogDiagnostics(logger *zap.Logger) {
	for _, diagnostic := range r.Diagnostics {
		row, col, _ := Position(diagnostic)
		kind := "entry"
		var headerErr *HeaderParseError
		if errors.As(diagnostic, &headerErr) {
			kind = "header"
		}
		logger.Warn("skipped cell",
			zap.String("kind", kind),
			zap.Int("row", row+1),
			zap.Int("column", col+1),
			zap.Error(diagnostic),
		)
	}
}
