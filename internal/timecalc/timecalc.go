package timecalc

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// BaselineMinutes is the standard workday the signed delta is computed
// against.
const BaselineMinutes = 8 * 60

// Defaults substituted for a weekday that has no log and is not a
// holiday. 07:00-15:00 with a 20 minute unpaid break is 7h40m worked,
// 20 minutes short of the baseline.
const (
	DefaultArrival       = "07:00"
	DefaultDeparture     = "15:00"
	DefaultBreakMinutes  = 20
	DefaultWorkedHours   = 7
	DefaultWorkedMinutes = 40
)

var clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ParseClock converts a 24-hour "HH:MM" string to minutes since
// midnight. No seconds, no timezone.
func ParseClock(t string) (int, error) {
	if !clockRe.MatchString(t) {
		return 0, fmt.Errorf("invalid clock value %q", t)
	}
	hours, _ := strconv.Atoi(t[:2])
	minutes, _ := strconv.Atoi(t[3:])
	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ElapsedMinutes is (departure - arrival) - unpaid break. A departure
// numerically before the arrival is NOT wrapped across midnight; the
// result goes negative, matching the stored behavior of the app this
// replaces.
func ElapsedMinutes(arrival, departure string, unpaidBreakMinutes int) (int, error) {
	arr, err := ParseClock(arrival)
	if err != nil {
		return 0, err
	}
	dep, err := ParseClock(departure)
	if err != nil {
		return 0, err
	}
	return dep - arr - unpaidBreakMinutes, nil
}

// SignedDelta splits elapsed-vs-baseline into an (hours, minutes) pair.
// The sign rides on hours; when the delta is negative but smaller than
// an hour, hours would be a signed zero, so the sign moves to minutes
// instead. Callers format the pair with FormatSignedDelta.
func SignedDelta(elapsed, baseline int) (hours, minutes int) {
	diff := elapsed - baseline
	neg := diff < 0
	if neg {
		diff = -diff
	}
	hours = diff / 60
	minutes = diff % 60
	if neg {
		if hours > 0 {
			hours = -hours
		} else {
			minutes = -minutes
		}
	}
	return hours, minutes
}

// FormatSignedDelta renders a SignedDelta pair as "-0 óra 20 perc" /
// "2 óra 0 perc". Only negative values get a sign prefix.
func FormatSignedDelta(hours, minutes int) string {
	neg := hours < 0 || (hours == 0 && minutes < 0)
	if hours < 0 {
		hours = -hours
	}
	if minutes < 0 {
		minutes = -minutes
	}
	if neg {
		return fmt.Sprintf("-%d óra %d perc", hours, minutes)
	}
	return fmt.Sprintf("%d óra %d perc", hours, minutes)
}

// DeriveDeparture computes the departure clock from arrival plus the
// declared duration, adding the unpaid break only when it is applied.
// The result wraps modulo 24h, so 23:00 + 2h lands on 01:00.
func DeriveDeparture(arrival string, durationHours float64, unpaidBreakMinutes int, breakApplied bool) (string, error) {
	arr, err := ParseClock(arrival)
	if err != nil {
		return "", err
	}

	total := arr + int(durationHours*60)
	if breakApplied {
		total += unpaidBreakMinutes
	}
	total %= 24 * 60

	return FormatClock(total), nil
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend reports whether the given calendar day is a Saturday or
// Sunday.
func IsWeekend(year int, month time.Month, day int) bool {
	wd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
