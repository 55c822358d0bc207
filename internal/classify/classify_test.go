package classify

import (
	"testing"

	"timecard/importer"
	"timecard/timecard"
)

func TestEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cell        importer.Cell
		wantStatus  timecard.Status
		wantClockIn string
		wantLate    *int
	}{
		{name: "empty cell is missing", cell: importer.EmptyCell(), wantStatus: timecard.StatusMissing},
		{name: "pto any case", cell: importer.TextCell("  PTO (approved) "), wantStatus: timecard.StatusPTO, wantClockIn: "PTO"},
		{name: "holiday", cell: importer.TextCell("Holiday"), wantStatus: timecard.StatusHoliday, wantClockIn: "Holiday"},
		{name: "pto beats time range", cell: importer.TextCell("8a-12p pto"), wantStatus: timecard.StatusPTO, wantClockIn: "PTO"},
		{name: "on time morning", cell: importer.TextCell("715a-330p"), wantStatus: timecard.StatusOnTime, wantClockIn: "07:15", wantLate: timecard.Minutes(0)},
		{name: "late morning", cell: importer.TextCell("740a-4p"), wantStatus: timecard.StatusLate, wantClockIn: "07:40", wantLate: timecard.Minutes(25)},
		{name: "just after morning cutoff counts toward midday", cell: importer.TextCell("815a-4p"), wantStatus: timecard.StatusOnTime, wantClockIn: "08:15", wantLate: timecard.Minutes(0)},
		{name: "late midday", cell: importer.TextCell("1230p-9p"), wantStatus: timecard.StatusLate, wantClockIn: "12:30", wantLate: timecard.Minutes(30)},
		{name: "space before meridiem", cell: importer.TextCell("1230 p-5p"), wantStatus: timecard.StatusLate, wantClockIn: "12:30", wantLate: timecard.Minutes(30)},
		{name: "late afternoon", cell: importer.TextCell("215p-11p"), wantStatus: timecard.StatusLate, wantClockIn: "14:15", wantLate: timecard.Minutes(15)},
		{name: "spaces around hyphen", cell: importer.TextCell("7a - 3p"), wantStatus: timecard.StatusOnTime, wantClockIn: "07:00", wantLate: timecard.Minutes(0)},
		{name: "uppercase letters", cell: importer.TextCell("715A-330P"), wantStatus: timecard.StatusOnTime, wantClockIn: "07:15", wantLate: timecard.Minutes(0)},
		{name: "hyphen without meridiem", cell: importer.TextCell("7-3"), wantStatus: timecard.StatusOther, wantClockIn: "7-3"},
		{name: "free text lowercased", cell: importer.TextCell("  Sick Day "), wantStatus: timecard.StatusOther, wantClockIn: "sick day"},
		{name: "numeric cell", cell: importer.NumberCell(8), wantStatus: timecard.StatusOther, wantClockIn: "8"},
		{name: "whitespace only text", cell: importer.TextCell("   "), wantStatus: timecard.StatusOther, wantClockIn: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Entry(tc.cell)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.wantStatus {
				t.Fatalf("unexpected status: want %q, got %q", tc.wantStatus, got.Status)
			}
			if got.ClockIn != tc.wantClockIn {
				t.Fatalf("unexpected clock-in: want %q, got %q", tc.wantClockIn, got.ClockIn)
			}
			switch {
			case tc.wantLate == nil && got.MinutesLate != nil:
				t.Fatalf("expected blank minutes late, got %d", *got.MinutesLate)
			case tc.wantLate != nil && got.MinutesLate == nil:
				t.Fatalf("expected %d minutes late, got blank", *tc.wantLate)
			case tc.wantLate != nil && *tc.wantLate != *got.MinutesLate:
				t.Fatalf("unexpected minutes late: want %d, got %d", *tc.wantLate, *got.MinutesLate)
			}
		})
	}
}

func TestEntry_MalformedTimeRangeFails(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"7:15am-3pm", "-330p", "abc-def", "1315p-9p", "off-day"} {
		if got, err := Entry(importer.TextCell(raw)); err == nil {
			t.Fatalf("expected error for %q, got %+v", raw, got)
		}
	}
}
