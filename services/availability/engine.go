package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"coachly/models"
)

// DefaultPastBufferMinutes keeps sessions from being booked moments before
// they would start.
const DefaultPastBufferMinutes = 15

// SlotRequest carries every input of a single slot computation. The engine is
// pure: it performs no I/O, holds no state between calls, and is safe to
// invoke concurrently.
type SlotRequest struct {
	// Date is a civil calendar date ("2006-01-02"), interpreted as a day in
	// Timezone rather than the caller's or the server's zone.
	Date        string
	SessionType string

	// Rules and Exceptions are read-only inputs owned by the caller. Rules
	// that are inactive or belong to another session type are ignored.
	Rules      []models.RecurringRule
	Exceptions []models.ExceptionInterval

	// Now is the absolute instant used for past-slot filtering.
	Now time.Time

	// Timezone is the IANA identifier of the site's reference zone.
	Timezone string

	// SessionLengthMinutes is the occupied length used for the exception
	// overlap check. It is independent of each rule's SlotDuration (the
	// spacing between offered start times).
	SessionLengthMinutes int

	// PastBufferMinutes excludes slots starting sooner than this from Now.
	// Zero means DefaultPastBufferMinutes; negative is invalid.
	PastBufferMinutes int
}

// ComputeAvailableSlots returns the ordered bookable start instants for one
// civil day. An empty result is a valid outcome, not an error; errors are
// reserved for invalid arguments.
func ComputeAvailableSlots(req SlotRequest) ([]time.Time, error) {
	if strings.TrimSpace(req.SessionType) == "" {
		return nil, NewInvalidArgument("sessionType", "must not be empty")
	}
	if req.SessionLengthMinutes <= 0 {
		return nil, NewInvalidArgument("sessionLengthMinutes", fmt.Sprintf("must be positive, got %d", req.SessionLengthMinutes))
	}
	buffer := req.PastBufferMinutes
	if buffer == 0 {
		buffer = DefaultPastBufferMinutes
	}
	if buffer < 0 {
		return nil, NewInvalidArgument("pastBufferMinutes", fmt.Sprintf("must not be negative, got %d", req.PastBufferMinutes))
	}

	// 1. Anchor the civil date in the reference zone and take its weekday
	// there. This single conversion carries the whole timezone correctness
	// of the engine.
	day, err := ParseCivilDate(req.Date, req.Timezone)
	if err != nil {
		return nil, err
	}
	weekday := int(day.Weekday()) // 0 = Sunday, matching time.Weekday

	// 2–5. Generate candidates from every matching rule, unioned and
	// deduplicated across overlapping rules.
	candidates := make(map[int64]time.Time)
	for _, rule := range req.Rules {
		if !rule.IsActive || rule.SessionType != req.SessionType || rule.DayOfWeek != weekday {
			continue
		}
		if rule.SlotDuration <= 0 {
			return nil, NewInvalidArgument("slotDuration", fmt.Sprintf("rule %s: must be positive, got %d", rule.ID, rule.SlotDuration))
		}
		startMin, err := ParseClock(rule.StartTime)
		if err != nil {
			return nil, NewInvalidArgument("startTime", fmt.Sprintf("rule %s: %v", rule.ID, err))
		}
		endMin, err := ParseClock(rule.EndTime)
		if err != nil {
			return nil, NewInvalidArgument("endTime", fmt.Sprintf("rule %s: %v", rule.ID, err))
		}
		if startMin >= endMin {
			return nil, NewInvalidArgument("startTime", fmt.Sprintf("rule %s: start %s must be before end %s", rule.ID, rule.StartTime, rule.EndTime))
		}

		// A window not evenly divisible by the duration truncates its last
		// partial slot: 09:00–10:30 at 60 minutes offers only 09:00.
		for m := startMin; m+rule.SlotDuration <= endMin; m += rule.SlotDuration {
			// Build the instant from wall-clock components so the result is
			// exact even on DST transition days.
			c := time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, day.Location())
			candidates[c.Unix()] = c
		}
	}

	sessionLength := time.Duration(req.SessionLengthMinutes) * time.Minute
	lead := time.Duration(buffer) * time.Minute

	// 6–7. Drop candidates that start too soon or whose occupied interval
	// overlaps an exception.
	slots := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if c.Add(-lead).Before(req.Now) {
			continue
		}
		if overlapsException(c, c.Add(sessionLength), req.Exceptions) {
			continue
		}
		slots = append(slots, c)
	}

	// 8. Ascending by start instant.
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	})
	return slots, nil
}

// overlapsException reports whether the half-open interval [start, end)
// intersects any exception. Touching endpoints do not count: a session ending
// exactly when a block begins, or starting exactly when one ends, is allowed.
func overlapsException(start, end time.Time, exceptions []models.ExceptionInterval) bool {
	for _, ex := range exceptions {
		if start.Before(ex.End) && end.After(ex.Start) {
			return true
		}
	}
	return false
}
