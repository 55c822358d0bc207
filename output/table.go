package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"timecard/timecard"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	lateStyle    = cellStyle.Foreground(lipgloss.Color("9"))
	missingStyle = cellStyle.Foreground(lipgloss.Color("11"))
	summaryStyle = cellStyle.Bold(true)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderTable formats the report for a terminal. Late rows are red, missing
// rows yellow, summary rows bold.
func RenderTable(report timecard.Table) string {
	rows := report.All()
	summaryFrom := len(report.Rows)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(timecard.Columns...).
		Rows(report.Records()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < 0 || row >= len(rows):
				return cellStyle
			case row >= summaryFrom:
				return summaryStyle
			case rows[row].Status == timecard.StatusLate:
				return lateStyle
			case rows[row].Status == timecard.StatusMissing:
				return missingStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
