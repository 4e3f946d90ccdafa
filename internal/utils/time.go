package utils

import (
	"strings"
	"time"
)

// Wire formats of the reservation API. Departure and booking timestamps use
// the minute layout, payment timestamps carry seconds. Both must round-trip
// exactly or date filtering and sorting break.
const (
	layoutDate       = "2006-01-02"
	layoutDateTime   = "2006-01-02 15:04"
	layoutPayment    = "2006-01-02 15:04:05"
	layoutTimeOfDay  = "15:04"
	layoutCardExpiry = "01/06"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM" in local timezone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(s), time.Local)
}

// ParsePaymentDateTime parses "YYYY-MM-DD HH:MM:SS" in local timezone.
func ParsePaymentDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(layoutPayment, strings.TrimSpace(s), time.Local)
}

// ParseTimeOfDay parses "HH:MM" clock values used by the time-box filter.
func ParseTimeOfDay(s string) (time.Time, error) {
	return time.Parse(layoutTimeOfDay, strings.TrimSpace(s))
}

// ParseCardExpiry parses "MM/yy" card expiration dates. The result is the
// first instant of the expiry month.
func ParseCardExpiry(s string) (time.Time, error) {
	return time.ParseInLocation(layoutCardExpiry, strings.TrimSpace(s), time.Local)
}

func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

func FormatPaymentDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutPayment)
}

func FormatCardExpiry(t time.Time) string {
	return t.In(time.Local).Format(layoutCardExpiry)
}

// TimeOfDay extracts the "HH:MM" part of a departure datetime string.
func TimeOfDay(dateTime string) string {
	parts := strings.SplitN(strings.TrimSpace(dateTime), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// DateOnly extracts the "YYYY-MM-DD" part of a datetime string.
func DateOnly(dateTime string) string {
	parts := strings.SplitN(strings.TrimSpace(dateTime), " ", 2)
	return parts[0]
}
