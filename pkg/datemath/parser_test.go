package datemath_test

import (
	"testing"
	"time"

	"voxnav/pkg/datemath"
)

func mustParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestNewParser_InvalidTimezone(t *testing.T) {
	if _, err := datemath.NewParser("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestNormalize_RelativeDays(t *testing.T) {
	p := mustParser(t)
	base := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want string
	}{
		{"today", "2025-03-10"},
		{"aaj", "2025-03-10"},
		{"आज", "2025-03-10"},
		{"tomorrow", "2025-03-11"},
		{"Tomorrow", "2025-03-11"},
		{"kal", "2025-03-11"},
		{"KAL", "2025-03-11"},
		{"कल", "2025-03-11"},
		{"day after tomorrow", "2025-03-12"},
		{"parso", "2025-03-12"},
		{"परसों", "2025-03-12"},
		{"next week", "2025-03-17"},
		{"sometime next week", "2025-03-17"},
	}

	for _, tc := range cases {
		if got := p.Normalize(tc.in, base); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_PassThrough(t *testing.T) {
	p := mustParser(t)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for _, in := range []string{"2025-06-01", "15 August", "Diwali", ""} {
		if got := p.Normalize(in, base); got != in {
			t.Errorf("Normalize(%q) = %q, want pass-through", in, got)
		}
	}
}

func TestNormalize_InDuration(t *testing.T) {
	p := mustParser(t)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	if got := p.Normalize("in 3 days", base); got != "2025-03-13" {
		t.Errorf("in 3 days = %q", got)
	}
	if got := p.Normalize("in 2 weeks", base); got != "2025-03-24" {
		t.Errorf("in 2 weeks = %q", got)
	}
	if got := p.Normalize("in 1 month", base); got != "2025-04-10" {
		t.Errorf("in 1 month = %q", got)
	}
}

func TestNormalize_NextWeekday(t *testing.T) {
	p := mustParser(t)
	// 2025-03-10 is a Monday
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	if got := p.Normalize("next friday", base); got != "2025-03-14" {
		t.Errorf("next friday = %q", got)
	}
	// same weekday rolls a full week forward
	if got := p.Normalize("next monday", base); got != "2025-03-17" {
		t.Errorf("next monday = %q", got)
	}
}

func TestNormalizeSlots(t *testing.T) {
	p := mustParser(t)
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	slots := map[string]string{
		"date":         "kal",
		"checkin_date": "today",
		"destination":  "kal", // not a date slot, untouched
	}
	p.NormalizeSlots(slots, base)

	if slots["date"] != "2025-03-11" {
		t.Errorf("date = %q", slots["date"])
	}
	if slots["checkin_date"] != "2025-03-10" {
		t.Errorf("checkin_date = %q", slots["checkin_date"])
	}
	if slots["destination"] != "kal" {
		t.Errorf("destination modified: %q", slots["destination"])
	}
}
