// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestValidDate(t *testing.T) {
	jayapura, err := time.LoadLocation("Asia/Jayapura")
	if err != nil {
		t.Fatalf("failed to load time zone: %s", err)
	}
	clock := clockwork.NewFakeClockAt(time.Date(2026, 12, 20, 22, 30, 0, 0, jayapura))
	now := clock.Now()
	today := StartOfDay(now)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"today", today, true},
		{"today late in the day", today.Add(time.Hour * 23), true},
		{"today plus 30 days", today.AddDate(0, 0, 30), true},
		{"yesterday", today.AddDate(0, 0, -1), false},
		{"today plus 31 days", today.AddDate(0, 0, 31), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidDate(tc.date, now, 30); got != tc.want {
				t.Errorf("expected validity of %s to be %t, got %t", tc.date, tc.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 30, 8, 0, 0, 0, time.UTC))
	t.Run("valid date is parsed", func(t *testing.T) {
		date, err := ParseDate("2026-02-28", clock.Now(), 30)
		if err != nil {
			t.Fatalf("failed to parse date: %s", err)
		}
		if date.Format(DateFormat) != "2026-02-28" {
			t.Errorf("expected date to be 2026-02-28, got %s", date.Format(DateFormat))
		}
	})
	failing := []string{"2026-03-02", "2026-01-29", "30.01.2026", "", "tomorrow"}
	for _, val := range failing {
		t.Run("parsing "+val+" fails", func(t *testing.T) {
			_, err := ParseDate(val, clock.Now(), 30)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("expected error to be %s, got %v", ErrInvalidDate, err)
			}
		})
	}
}

func TestParseStartHour(t *testing.T) {
	tests := []struct {
		val  string
		def  int
		want int
	}{
		{"0", 12, 0},
		{"23", 12, 23},
		{" 7 ", 12, 7},
		{"24", 12, 12},
		{"-1", 12, 12},
		{"noon", 12, 12},
		{"", 9, 9},
		{"", 30, DefaultStartHour},
	}
	for _, tc := range tests {
		if got := ParseStartHour(tc.val, tc.def); got != tc.want {
			t.Errorf("expected start hour for %q to be %d, got %d", tc.val, tc.want, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "Senin, 5 Januari 2026" {
		t.Errorf("expected formatted date to be %q, got %q", "Senin, 5 Januari 2026", got)
	}
}
