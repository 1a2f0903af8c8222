package domain

import (
	"regexp"
	"time"
)

// DateLayout is the DD/MM/YYYY layout used for service dates.
const DateLayout = "02/01/2006"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)
	datePattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ValidEmail reports whether s has the shape local@domain.tld. The TLD
// must be 2 to 6 letters. No DNS or mailbox checks are made.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidDate reports whether s has the shape DD/MM/YYYY. Only digit counts
// are checked, so 99/99/9999 passes.
func ValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// ValidCategory reports whether c lies in [MinCategory, MaxCategory].
func ValidCategory(c Category) bool {
	return c >= MinCategory && c <= MaxCategory
}

// ParseDate parses a DD/MM/YYYY string as a calendar date in UTC, day
// first. Shape-valid strings that name no real day (31/02/2024) fail.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
