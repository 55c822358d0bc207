package report

import (
	"fmt"
	"strconv"

	"timecard/timecard"
)

// Summarize wraps rows into a table and appends the shifts-worked and
// percent-late lines. An empty input stays empty, without summary lines.
func Summarize(rows []timecard.Row) timecard.Table {
	if len(rows) == 0 {
		return timecard.Table{}
	}

	stats := timecard.Stats{}
	for _, row := range rows {
		if !row.Worked() {
			continue
		}
		stats.Worked++
		if row.Status == timecard.StatusLate {
			stats.Late++
		}
	}
	percent := "0.0"
	if stats.Worked > 0 {
		percent = strconv.FormatFloat(float64(stats.Late)/float64(stats.Worked)*100, 'f', 1, 64)
	}
	stats.PercentLate, _ = strconv.ParseFloat(percent, 64)

	return timecard.Table{
		Rows: rows,
		Summary: []timecard.Row{
			{Status: timecard.Status(fmt.Sprintf("Shifts Worked: %d", stats.Worked))},
			{Status: timecard.Status("% Late: " + percent + "%")},
		},
		Stats: stats,
	}
}
