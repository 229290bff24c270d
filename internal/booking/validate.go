package booking

import (
	"regexp"
	"time"

	"github.com/jinzhu/now"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhone reports whether raw contains exactly 10 decimal digits once
// separators are stripped.
func ValidPhone(raw string) bool {
	return phoneRe.MatchString(CleanPhone(raw))
}

const dateLayout = "2006-01-02"

// ValidBookingDate reports whether s is a real YYYY-MM-DD calendar date that
// falls within [today, today + 1 year] inclusive, judged against the server's
// local clock. Malformed, unparseable, and out-of-window dates are all just
// invalid; no reason is distinguished.
func ValidBookingDate(s string) bool {
	return validBookingDateAt(s, time.Now())
}

func validBookingDateAt(s string, ref time.Time) bool {
	if len(s) != len(dateLayout) {
		return false
	}
	d, err := time.ParseInLocation(dateLayout, s, ref.Location())
	if err != nil {
		return false
	}
	today := now.With(ref).BeginningOfDay()
	limit := today.AddDate(1, 0, 0)
	return !d.Before(today) && !d.After(limit)
}
