package utils

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	clockRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	dateRe  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateClock accepts 24-hour HH:MM.
func ValidateClock(t string) bool {
	return clockRe.MatchString(t)
}

// ValidateDate accepts YYYY-MM-DD. Calendar validity (Feb 30) is left
// to time.Parse at the call site.
func ValidateDate(d string) bool {
	return dateRe.MatchString(d)
}

// ValidateMonth accepts YYYY-MM.
func ValidateMonth(m string) bool {
	return monthRe.MatchString(m)
}
