package timecard

import (
	"strconv"
	"time"
)

// Status is the classification of one employee-day. Summary rows carry a
// free-text label in the same field.
type Status string

const (
	StatusMissing Status = "Missing"
	StatusPTO     Status = "PTO"
	StatusHoliday Status = "Holiday"
	StatusLate    Status = "Late"
	StatusOnTime  Status = "On Time"
	StatusOther   Status = "Other"
)

// Year is applied to every header date; sheets only carry month and day.
const Year = 2024

const DateLayout = "01/02/2006"

// Columns is the fixed column order of every rendered or serialized report.
var Columns = []string{"Date", "Clock In Time", "Minutes Late", "Status"}

// Row is one line of the report. Summary rows leave Date, ClockIn and
// MinutesLate empty.
type Row struct {
	Date        time.Time
	ClockIn     string
	MinutesLate *int
	Status      Status
}

// Worked reports whether the row counts as a worked shift.
func (r Row) Worked() bool {
	return r.Status == StatusOnTime || r.Status == StatusLate
}

// Record returns the row as display strings in Columns order.
func (r Row) Record() []string {
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format(DateLayout)
	}
	late := ""
	if r.MinutesLate != nil {
		late = strconv.Itoa(*r.MinutesLate)
	}
	return []string{date, r.ClockIn, late, string(r.Status)}
}

type Stats struct {
	Worked      int
	Late        int
	PercentLate float64
}

// Table is the report: day rows in scan order followed by the summary rows.
// Summary is empty exactly when Rows is empty.
type Table struct {
	Rows    []Row
	Summary []Row
	Stats   Stats
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// All returns day rows followed by summary rows.
func (t Table) All() []Row {
	out := make([]Row, 0, len(t.Rows)+len(t.Summary))
	out = append(out, t.Rows...)
	out = append(out, t.Summary...)
	return out
}

// Records returns All() as display strings, without the header line.
func (t Table) Records() [][]string {
	rows := t.All()
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Record())
	}
	return out
}

// Minutes returns a pointer to value, for filling Row.MinutesLate.
func Minutes(value int) *int {
	return &value
}
