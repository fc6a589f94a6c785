package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CivilDateLayout is the wire format for timezone-free calendar dates.
const CivilDateLayout = "2006-01-02"

// ParseCivilDate interprets a "2006-01-02" date as local midnight in the
// given IANA timezone. Anchoring here, and never in the process's local zone,
// is what keeps the weekday and day-boundary math correct for every caller.
func ParseCivilDate(date, timezone string) (time.Time, error) {
	if strings.TrimSpace(timezone) == "" {
		return time.Time{}, NewInvalidArgument("timezone", "must not be empty")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, NewInvalidArgument("timezone", fmt.Sprintf("unrecognized identifier %q", timezone))
	}
	day, err := time.ParseInLocation(CivilDateLayout, date, loc)
	if err != nil {
		return time.Time{}, NewInvalidArgument("date", fmt.Sprintf("%q is not a %s date", date, CivilDateLayout))
	}
	return day, nil
}

// DayBounds returns the [start, end) instants of the civil day in the given
// timezone. Callers fetching exceptions for a day must use this window so the
// fetch boundary matches the slot computation's boundary exactly.
func DayBounds(date, timezone string) (time.Time, time.Time, error) {
	day, err := ParseCivilDate(date, timezone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day, day.AddDate(0, 0, 1), nil
}

// ParseClock converts an "HH:MM" wall-clock string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%q is not an HH:MM time", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", clock)
	}
	return hour*60 + minute, nil
}
