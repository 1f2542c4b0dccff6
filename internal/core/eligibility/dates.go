package eligibility

import (
	"regexp"
	"strconv"
	"time"
)

// Date extraction for expiry and date-of-birth checks. Ambiguous numeric forms
// are resolved by a fixed precedence: day-first, then month-first. The order is
// part of the observable behavior and must not be reordered
var (
	reISODate   = regexp.MustCompile(`\b(\d{4})[-.](\d{1,2})[-.](\d{1,2})\b`)
	reNumDate   = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})\b`)
	reMonthDate = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2}),?\s+(\d{4})\b`)
)

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// extractDates returns every date-like substring of s that parses into a real
// calendar date, in order of appearance
func extractDates(s string) []time.Time {
	var out []time.Time

	for _, m := range reISODate.FindAllStringSubmatch(s, -1) {
		y := atoi(m[1])
		if d, ok := makeDate(y, atoi(m[2]), atoi(m[3])); ok {
			out = append(out, d)
		}
	}

	for _, m := range reNumDate.FindAllStringSubmatch(s, -1) {
		a, b := atoi(m[1]), atoi(m[2])
		y := expandYear(atoi(m[3]))
		// day-first wins when both readings validate
		if d, ok := makeDate(y, b, a); ok {
			out = append(out, d)
			continue
		}
		if d, ok := makeDate(y, a, b); ok {
			out = append(out, d)
		}
	}

	for _, m := range reMonthDate.FindAllStringSubmatch(s, -1) {
		mon, ok := monthByPrefix[lower3(m[1])]
		if !ok {
			continue
		}
		if d, ok := makeDate(atoi(m[3]), int(mon), atoi(m[2])); ok {
			out = append(out, d)
		}
	}

	return out
}

// latestDate returns the maximum of ds, false when empty
func latestDate(ds []time.Time) (time.Time, bool) {
	if len(ds) == 0 {
		return time.Time{}, false
	}
	max := ds[0]
	for _, d := range ds[1:] {
		if d.After(max) {
			max = d
		}
	}
	return max, true
}

// earliestDate returns the minimum of ds, false when empty
func earliestDate(ds []time.Time) (time.Time, bool) {
	if len(ds) == 0 {
		return time.Time{}, false
	}
	min := ds[0]
	for _, d := range ds[1:] {
		if d.Before(min) {
			min = d
		}
	}
	return min, true
}

// ageAt computes whole years from dob to now, decremented when now's
// month/day precedes the birthday
func ageAt(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// makeDate validates via time.Date roundtrip so 2024-13-40 is rejected
func makeDate(y, m, d int) (time.Time, bool) {
	if y < 1 || m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// expandYear maps 2-digit years: <50 to 2000s, otherwise 1900s
func expandYear(y int) int {
	if y >= 100 {
		return y
	}
	if y < 50 {
		return 2000 + y
	}
	return 1900 + y
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func lower3(s string) string {
	if len(s) > 3 {
		s = s[:3]
	}
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
