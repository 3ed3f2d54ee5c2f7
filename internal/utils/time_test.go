package utils

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"wednesday", time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), "2026-08-23"},
		{"sunday is its own start", time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC), "2026-08-23"},
		{"saturday", time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC), "2026-08-23"},
		{"crosses month boundary", time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), "2026-08-30"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartOfWeek(tc.in); got != tc.want {
				t.Errorf("StartOfWeek(%v) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)
	if got := StartOfMonth(in); got != "2026-08-01" {
		t.Errorf("StartOfMonth() = %s, want 2026-08-01", got)
	}
}

func TestValidateDateFormat(t *testing.T) {
	valid := []string{"2026-08-26", "2000-01-01"}
	for _, s := range valid {
		if !ValidateDateFormat(s) {
			t.Errorf("ValidateDateFormat(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "26-08-2026", "2026/08/26", "2026-13-01", "today"}
	for _, s := range invalid {
		if ValidateDateFormat(s) {
			t.Errorf("ValidateDateFormat(%q) = true, want false", s)
		}
	}
}

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		if !ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "24:00", "9am", "12:60"}
	for _, s := range invalid {
		if ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = true, want false", s)
		}
	}
}

func TestSameDay(t *testing.T) {
	if !SameDay("2026-08-26T01:00:00Z", "2026-08-26T23:00:00Z") {
		t.Error("timestamps on the same date not matched")
	}
	if SameDay("2026-08-26T01:00:00Z", "2026-08-27T01:00:00Z") {
		t.Error("timestamps on different dates matched")
	}
	if SameDay("garbage", "2026-08-26T01:00:00Z") {
		t.Error("unparseable timestamp matched")
	}
}
