// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultStartHour is used for start hours that cannot be parsed or are out of range.
const DefaultStartHour = 12

// ErrInvalidDate is returned for query dates outside the allowed window.
var ErrInvalidDate = errors.New("invalid date")

var (
	dayNames   = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	monthNames = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// DayName returns the Indonesian weekday name of t.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

// FormatDate formats t as a long Indonesian date, e.g. "Senin, 5 Januari 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", DayName(t), t.Day(), monthNames[t.Month()-1], t.Year())
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD date in the given location and checks it against the window of
// today up to maxDaysAhead days ahead, both ends inclusive.
func ParseDate(val string, now time.Time, maxDaysAhead int) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, strings.TrimSpace(val), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	if !ValidDate(date, now, maxDaysAhead) {
		return time.Time{}, fmt.Errorf("%w: %s is not within %d days from today", ErrInvalidDate,
			date.Format(DateFormat), maxDaysAhead)
	}
	return date, nil
}

// ValidDate reports whether date lies between today and today+maxDaysAhead, inclusive.
func ValidDate(date, now time.Time, maxDaysAhead int) bool {
	today := StartOfDay(now)
	day := StartOfDay(date.In(now.Location()))
	return !day.Before(today) && !day.After(today.AddDate(0, 0, maxDaysAhead))
}

// ParseStartHour parses the start hour of an hourly query, falling back to def for anything that
// is not an integer in the range 0 to 23.
func ParseStartHour(val string, def int) int {
	if def < 0 || def > 23 {
		def = DefaultStartHour
	}
	hour, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || hour < 0 || hour > 23 {
		return def
	}
	return hour
}
