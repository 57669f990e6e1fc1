package booking

import "regexp"

var (
	dateFormat = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
	timeFormat = regexp.MustCompile(`^(0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
)

// IsValidDateFormat reports whether s has the exact "YYYY/MM/DD" shape.
// Only the digit shape is checked; calendar validity is not (a value such
// as "2024/13/40" passes). Callers must not assume the value names a real
// calendar date.
func IsValidDateFormat(s string) bool {
	return dateFormat.MatchString(s)
}

// IsValidTimeFormat reports whether s has the exact "HH:MM:SS" shape with
// HH in 00-23 and MM, SS in 00-59.
func IsValidTimeFormat(s string) bool {
	return timeFormat.MatchString(s)
}

// IsDateWithinRange reports whether start <= date <= end, inclusive both
// ends. Comparison is lexicographic, which coincides with chronological
// order only because the date format is fixed-width zero-padded; the
// format validators must run first.
func IsDateWithinRange(date, start, end string) bool {
	return date >= start && date <= end
}

// IsTimeWithinRange reports whether start <= t <= end, inclusive both
// ends, under the same fixed-width ordering argument as dates.
func IsTimeWithinRange(t, start, end string) bool {
	return t >= start && t <= end
}
