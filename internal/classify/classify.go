package classify

import (
	"fmt"
	"strings"

	"timecard/importer"
	"timecard/internal/timeutil"
	"timecard/timecard"
)

// Result is the classified content of one shift entry cell.
type Result struct {
	Status      timecard.Status
	ClockIn     string
	MinutesLate *int
}

// Entry classifies the cell below a date header. Leave codes win over time
// ranges; an error means the cell looked like a time range but its clock-in
// could not be parsed.
func Entry(cell importer.Cell) (Result, error) {
	if cell.IsEmpty() {
		return Result{Status: timecard.StatusMissing}, nil
	}

	entry := strings.ToLower(strings.TrimSpace(cell.String()))
	switch {
	case strings.Contains(entry, "pto"):
		return Result{Status: timecard.StatusPTO, ClockIn: "PTO"}, nil
	case strings.Contains(entry, "holiday"):
		return Result{Status: timecard.StatusHoliday, ClockIn: "Holiday"}, nil
	case isTimeRange(entry):
		return timeRange(entry)
	default:
		return Result{Status: timecard.StatusOther, ClockIn: entry}, nil
	}
}

func isTimeRange(entry string) bool {
	return strings.Contains(entry, "-") && strings.ContainsAny(entry, "ap")
}

func timeRange(entry string) (Result, error) {
	token, _, _ := strings.Cut(entry, "-")
	clockIn, ok, err := timeutil.ParseCompactClock(token)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, fmt.Errorf("missing clock-in before %q", entry[len(token):])
	}

	late, _ := timeutil.MinutesLate(clockIn, timeutil.ExpectedStart(clockIn))
	status := timecard.StatusOnTime
	if late > 0 {
		status = timecard.StatusLate
	}

	return Result{
		Status:      status,
		ClockIn:     clockIn.Format(timeutil.ClockLayout),
		MinutesLate: timecard.Minutes(late),
	}, nil
}
