package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const ClockLayout = "15:04"

var (
	morningCutoff   = Clock(8, 0)
	afternoonCutoff = Clock(13, 0)

	morningStart   = Clock(7, 15)
	middayStart    = Clock(12, 0)
	afternoonStart = Clock(14, 0)
)

// Clock returns a time-of-day value on the zero date, the same shape
// time.Parse produces for a "15:04" layout.
func Clock(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func MinutesFromMidnight(value time.Time) int {
	return value.Hour()*60 + value.Minute()
}

// ParseCompactClock parses clock-in tokens such as "715a", "1230p" or "8a".
// The token is AM when it contains an "a" anywhere, PM otherwise. ok is false
// for an empty token.
func ParseCompactClock(raw string) (clock time.Time, ok bool, err error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return time.Time{}, false, nil
	}

	pm := !strings.Contains(token, "a")
	digits := strings.NewReplacer("a", "", "p", "").Replace(token)

	var hourPart, minutePart string
	switch {
	case len(digits) == 3:
		hourPart, minutePart = digits[:1], digits[1:]
	case len(digits) > 2:
		hourPart, minutePart = digits[:2], digits[2:]
	default:
		hourPart = digits
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse hour in %q: %w", raw, err)
	}
	minute := 0
	if minutePart = strings.TrimSpace(minutePart); minutePart != "" {
		minute, err = strconv.Atoi(minutePart)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("parse minutes in %q: %w", raw, err)
		}
	}

	clock, err = clock12(hour, minute, pm)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse clock %q: %w", raw, err)
	}
	return clock, true, nil
}

func clock12(hour, minute int, pm bool) (time.Time, error) {
	if hour < 1 || hour > 12 {
		return time.Time{}, fmt.Errorf("hour %d out of range 1-12", hour)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("minute %d out of range 0-59", minute)
	}
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return Clock(hour, minute), nil
}

// ExpectedStart maps a clock-in to the start of the shift it belongs to.
// Cutoffs are inclusive: 08:00 is still a morning shift, 13:00 a midday one.
func ExpectedStart(clockIn time.Time) time.Time {
	minutes := MinutesFromMidnight(clockIn)
	switch {
	case minutes <= MinutesFromMidnight(morningCutoff):
		return morningStart
	case minutes <= MinutesFromMidnight(afternoonCutoff):
		return middayStart
	default:
		return afternoonStart
	}
}

// MinutesLate compares hour and minute only and never goes below zero. ok is
// false when either value is missing.
func MinutesLate(actual, expected time.Time) (minutes int, ok bool) {
	if actual.IsZero() || expected.IsZero() {
		return 0, false
	}
	diff := MinutesFromMidnight(actual) - MinutesFromMidnight(expected)
	if diff < 0 {
		diff = 0
	}
	return diff, true
}
