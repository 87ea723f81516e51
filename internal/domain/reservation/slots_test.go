package reservation

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09h00", "09:00"},
		{"14h30", "14:30"},
		{"18h00", "18:00"},
	}
	for _, tc := range tests {
		if got := NormalizeTime(tc.in); got != tc.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayTime(t *testing.T) {
	if got := DisplayTime("09:00"); got != "09h00" {
		t.Errorf("DisplayTime(09:00) = %q, want 09h00", got)
	}
	if got := DisplayTime(NormalizeTime("14h30")); got != "14h30" {
		t.Errorf("round trip = %q, want 14h30", got)
	}
}

func TestCheckDateFreshness(t *testing.T) {
	now := time.Date(2026, time.March, 15, 17, 45, 0, 0, time.Local)

	tests := []struct {
		name string
		date string
		want error
	}{
		{name: "today late in the day", date: "2026-03-15", want: nil},
		{name: "tomorrow", date: "2026-03-16", want: nil},
		{name: "far future", date: "2027-01-01", want: nil},
		{name: "yesterday", date: "2026-03-14", want: ErrPastDate},
		{name: "last year", date: "2025-12-31", want: ErrPastDate},
		{name: "empty", date: "", want: ErrInvalidDate},
		{name: "wrong format", date: "15/03/2026", want: ErrInvalidDate},
		{name: "garbage", date: "demain", want: ErrInvalidDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDateFreshness(tc.date, now)
			if !errors.Is(err, tc.want) {
				t.Fatalf("CheckDateFreshness(%q) = %v, want %v", tc.date, err, tc.want)
			}
		})
	}
}

func TestFormatDateFR(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-03-02", "lundi 2 mars 2026"},
		{"2026-08-29", "samedi 29 août 2026"},
		{"2026-12-25", "vendredi 25 décembre 2026"},
	}
	for _, tc := range tests {
		if got := FormatDateFR(tc.date); got != tc.want {
			t.Errorf("FormatDateFR(%q) = %q, want %q", tc.date, got, tc.want)
		}
	}

	// Unparseable input passes through untouched.
	if got := FormatDateFR("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDateFR(not-a-date) = %q", got)
	}
}
