package availability

import (
	"testing"
	"time"

	"coachly/models"
)

const testZone = "America/New_York"

func nyLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	if err != nil {
		t.Fatalf("failed to load %s: %v", testZone, err)
	}
	return loc
}

func weekdayRule(day int, start, end string) models.RecurringRule {
	return models.RecurringRule{
		ID:           "rule-" + start,
		CoachID:      "coach-1",
		DayOfWeek:    day,
		StartTime:    start,
		EndTime:      end,
		SessionType:  "vod-review",
		SlotDuration: 60,
		IsActive:     true,
	}
}

func baseRequest(date string, rules []models.RecurringRule) SlotRequest {
	return SlotRequest{
		Date:                 date,
		SessionType:          "vod-review",
		Rules:                rules,
		Now:                  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Timezone:             testZone,
		SessionLengthMinutes: 60,
	}
}

func assertSlots(t *testing.T, got []time.Time, want ...time.Time) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("slot %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	req := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "09:00", "12:00")})

	first, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, second, first...)
}

func TestComputeAvailableSlots_WeekdayAnchoredInReferenceZone(t *testing.T) {
	loc := nyLocation(t)

	// Guard against the server's local zone leaking into the civil-date
	// conversion: run with a local zone a long way from New York.
	restore := time.Local
	time.Local = time.FixedZone("UTC+14", 14*3600)
	defer func() { time.Local = restore }()

	// 2025-11-17 is a Monday. Now is Monday 01:00 UTC, which is still Sunday
	// evening in New York; the Monday rule must still fire for the queried
	// date, and the slot must land at 09:00 New York time.
	req := baseRequest("2025-11-17", []models.RecurringRule{weekdayRule(1, "09:00", "10:00")})
	req.Now = time.Date(2025, 11, 17, 1, 0, 0, 0, time.UTC)

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots, time.Date(2025, 11, 17, 9, 0, 0, 0, loc))
	if got := slots[0].UTC(); got != time.Date(2025, 11, 17, 14, 0, 0, 0, time.UTC) {
		t.Errorf("expected 14:00 UTC, got %v", got)
	}
}

func TestComputeAvailableSlots_TruncatesPartialSlot(t *testing.T) {
	loc := nyLocation(t)

	// 09:00-10:30 with 60-minute spacing offers only 09:00; a 10:00 slot
	// would run past the window.
	req := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "09:00", "10:30")})

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots, time.Date(2025, 11, 19, 9, 0, 0, 0, loc))
}

func TestComputeAvailableSlots_HalfOpenExceptionOverlap(t *testing.T) {
	loc := nyLocation(t)
	exception := models.ExceptionInterval{
		ID:      "ex-1",
		CoachID: "coach-1",
		Start:   time.Date(2025, 11, 19, 10, 0, 0, 0, loc),
		End:     time.Date(2025, 11, 19, 11, 0, 0, 0, loc),
		Reason:  models.ExceptionReasonBlocked,
	}

	// A slot starting exactly when the block ends is allowed.
	req := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "09:00", "13:00")})
	req.Exceptions = []models.ExceptionInterval{exception}

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots,
		time.Date(2025, 11, 19, 9, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 11, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 12, 0, 0, 0, loc),
	)

	// One minute earlier still collides.
	req = baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "10:59", "11:59")})
	req.Exceptions = []models.ExceptionInterval{exception}

	slots, err = ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots)
}

func TestComputeAvailableSlots_PastBuffer(t *testing.T) {
	loc := nyLocation(t)
	now := time.Date(2025, 11, 19, 14, 50, 0, 0, loc)

	// 15:00 starts within the 15-minute buffer and is dropped; 16:00 stands.
	req := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "15:00", "17:00")})
	req.Now = now

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots, time.Date(2025, 11, 19, 16, 0, 0, 0, loc))

	// Exact equality at the buffer boundary is allowed: 15:05 - 15min is
	// precisely now.
	req = baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "15:05", "16:05")})
	req.Now = now

	slots, err = ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots, time.Date(2025, 11, 19, 15, 5, 0, 0, loc))
}

func TestComputeAvailableSlots_NoMatchingRules(t *testing.T) {
	// Rules exist only for Tuesday; Wednesday is a valid empty day, not an
	// error.
	req := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(2, "09:00", "12:00")})

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if slots == nil {
		t.Fatal("expected a non-nil empty slice")
	}
	assertSlots(t, slots)
}

func TestComputeAvailableSlots_InactiveAndForeignRulesIgnored(t *testing.T) {
	inactive := weekdayRule(3, "09:00", "12:00")
	inactive.IsActive = false
	otherType := weekdayRule(3, "09:00", "12:00")
	otherType.SessionType = "coaching-1on1"

	req := baseRequest("2025-11-19", []models.RecurringRule{inactive, otherType})

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots)
}

func TestComputeAvailableSlots_OverlappingRulesDeduplicate(t *testing.T) {
	loc := nyLocation(t)
	req := baseRequest("2025-11-19", []models.RecurringRule{
		weekdayRule(3, "09:00", "12:00"),
		weekdayRule(3, "10:00", "13:00"),
	})

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots,
		time.Date(2025, 11, 19, 9, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 10, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 11, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 12, 0, 0, 0, loc),
	)
}

func TestComputeAvailableSlots_SpacingIndependentOfSessionLength(t *testing.T) {
	loc := nyLocation(t)
	rule := weekdayRule(3, "09:00", "11:00")
	rule.SlotDuration = 30 // offered every half hour, sessions still run 60

	req := baseRequest("2025-11-19", []models.RecurringRule{rule})
	req.Exceptions = []models.ExceptionInterval{{
		ID:     "ex-1",
		Start:  time.Date(2025, 11, 19, 10, 30, 0, 0, loc),
		End:    time.Date(2025, 11, 19, 11, 30, 0, 0, loc),
		Reason: models.ExceptionReasonBooked,
	}}

	// Candidates run 09:00..10:30; a 60-minute session from 10:00 or 10:30
	// collides with the block, 09:30 ends exactly as it begins and is fine.
	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots,
		time.Date(2025, 11, 19, 9, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 9, 30, 0, 0, loc),
	)
}

func TestComputeAvailableSlots_BookedExceptionScenario(t *testing.T) {
	loc := nyLocation(t)

	// 2025-11-19 is a Wednesday. 10:00 New York is 15:00 UTC; the booked
	// exception knocks out exactly that slot.
	req := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "09:00", "12:00")})
	req.Exceptions = []models.ExceptionInterval{{
		ID:     "ex-1",
		Start:  time.Date(2025, 11, 19, 15, 0, 0, 0, time.UTC),
		End:    time.Date(2025, 11, 19, 16, 0, 0, 0, time.UTC),
		Reason: models.ExceptionReasonBooked,
	}}

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertSlots(t, slots,
		time.Date(2025, 11, 19, 9, 0, 0, 0, loc),
		time.Date(2025, 11, 19, 11, 0, 0, 0, loc),
	)
}

func TestComputeAvailableSlots_SpringForwardDeduplicates(t *testing.T) {
	// 2025-03-09: 02:00 does not exist in New York; its candidate normalizes
	// onto 03:00 EDT and must collapse with the real 03:00 one.
	req := baseRequest("2025-03-09", []models.RecurringRule{weekdayRule(0, "01:00", "04:00")})

	slots, err := ComputeAvailableSlots(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 distinct instants across the DST gap, got %d: %v", len(slots), slots)
	}
	if !slots[0].Before(slots[1]) {
		t.Errorf("slots out of order: %v", slots)
	}
}

func TestComputeAvailableSlots_InvalidArguments(t *testing.T) {
	valid := baseRequest("2025-11-19", []models.RecurringRule{weekdayRule(3, "09:00", "12:00")})

	cases := []struct {
		name   string
		mutate func(*SlotRequest)
	}{
		{"malformed date", func(r *SlotRequest) { r.Date = "19/11/2025" }},
		{"unknown timezone", func(r *SlotRequest) { r.Timezone = "Mars/Olympus" }},
		{"empty timezone", func(r *SlotRequest) { r.Timezone = "" }},
		{"empty session type", func(r *SlotRequest) { r.SessionType = "" }},
		{"zero session length", func(r *SlotRequest) { r.SessionLengthMinutes = 0 }},
		{"negative buffer", func(r *SlotRequest) { r.PastBufferMinutes = -1 }},
		{"malformed rule clock", func(r *SlotRequest) { r.Rules[0].StartTime = "9am" }},
		{"rule start after end", func(r *SlotRequest) { r.Rules[0].StartTime = "13:00" }},
		{"non-positive rule duration", func(r *SlotRequest) { r.Rules[0].SlotDuration = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			req.Rules = append([]models.RecurringRule(nil), valid.Rules...)
			tc.mutate(&req)

			_, err := ComputeAvailableSlots(req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !IsInvalidArgument(err) {
				t.Errorf("expected InvalidArgumentError, got %T: %v", err, err)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	// November: New York is UTC-5, so the civil day runs 05:00Z to 05:00Z.
	start, end, err := DayBounds("2025-11-19", testZone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := start.UTC(); got != time.Date(2025, 11, 19, 5, 0, 0, 0, time.UTC) {
		t.Errorf("expected day start 05:00Z, got %v", got)
	}
	if got := end.UTC(); got != time.Date(2025, 11, 20, 5, 0, 0, 0, time.UTC) {
		t.Errorf("expected day end 05:00Z next day, got %v", got)
	}

	if _, _, err := DayBounds("not-a-date", testZone); !IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError, got %v", err)
	}
}
